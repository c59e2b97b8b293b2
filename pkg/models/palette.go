package models

// Palette is a single addressable storage slot in the warehouse grid,
// identified by column letter + row number ("A1"). Palettes are derived
// from the configured grid dimensions and never persisted.
type Palette struct {
	ID     string `json:"id"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}
