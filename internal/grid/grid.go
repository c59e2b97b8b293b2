package grid

import (
	"fmt"

	"instock/pkg/models"
)

// maxColumns bounds the grid to single-letter column ids ('A'..'Z').
const maxColumns = 26

const (
	DefaultRows    = 4
	DefaultColumns = 4
)

// Grid enumerates the storage palettes of a rectangular warehouse.
// It holds no state beyond its dimensions; palettes are derived on read.
type Grid struct {
	rows    int
	columns int
}

func NewGrid(rows, columns int) (*Grid, error) {
	if rows < 1 {
		return nil, fmt.Errorf("grid rows must be positive, got %d", rows)
	}
	if columns < 1 {
		return nil, fmt.Errorf("grid columns must be positive, got %d", columns)
	}
	if columns > maxColumns {
		return nil, fmt.Errorf("grid is limited to %d single-letter columns, got %d", maxColumns, columns)
	}

	return &Grid{rows: rows, columns: columns}, nil
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Columns() int {
	return g.columns
}

// Palettes returns every palette of the grid in row-major order, ids built
// as column letter + row number ("A1", "B1", ..).
func (g *Grid) Palettes() []models.Palette {
	palettes := make([]models.Palette, 0, g.rows*g.columns)
	for row := 1; row <= g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			palettes = append(palettes, models.Palette{
				ID:     PaletteID(row, column),
				Row:    row,
				Column: column,
			})
		}
	}
	return palettes
}

// Palette resolves a palette by id; the bool reports whether the id lies
// inside the grid.
func (g *Grid) Palette(id string) (models.Palette, bool) {
	for _, palette := range g.Palettes() {
		if palette.ID == id {
			return palette, true
		}
	}
	return models.Palette{}, false
}

func PaletteID(row, column int) string {
	return fmt.Sprintf("%c%d", rune('A'+column), row)
}
