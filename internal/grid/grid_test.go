package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		columns int
		wantErr bool
	}{
		{name: "Basic Case", rows: 4, columns: 4},
		{name: "Single Cell", rows: 1, columns: 1},
		{name: "Full Alphabet", rows: 2, columns: 26},
		{name: "Zero Rows", rows: 0, columns: 4, wantErr: true},
		{name: "Zero Columns", rows: 4, columns: 0, wantErr: true},
		{name: "Beyond Single Letter", rows: 4, columns: 27, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.rows, tt.columns)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows())
			assert.Equal(t, tt.columns, g.Columns())
		})
	}
}

func TestPalettesEnumeration(t *testing.T) {
	g, err := NewGrid(4, 4)
	assert.NoError(t, err)

	palettes := g.Palettes()
	assert.Len(t, palettes, 16)

	seen := make(map[string]bool)
	for _, p := range palettes {
		assert.False(t, seen[p.ID], "duplicate palette id %s", p.ID)
		seen[p.ID] = true
	}

	assert.Equal(t, "A1", palettes[0].ID)
	assert.Equal(t, "D1", palettes[3].ID)
	assert.Equal(t, "A2", palettes[4].ID)
	assert.Equal(t, "D4", palettes[15].ID)
}

func TestPaletteLookup(t *testing.T) {
	g, err := NewGrid(3, 2)
	assert.NoError(t, err)

	palette, ok := g.Palette("B3")
	assert.True(t, ok)
	assert.Equal(t, 3, palette.Row)
	assert.Equal(t, 1, palette.Column)

	_, ok = g.Palette("C1")
	assert.False(t, ok)
}
