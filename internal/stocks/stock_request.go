package stocks

import (
	"github.com/google/uuid"
)

// StockMovementRequest is a signed quantity delta for one catalog item.
// Positive deltas merge into the existing entry (the first-assigned palette
// sticks); a delta driving the quantity to zero or below removes the entry.
type StockMovementRequest struct {
	CatalogItemID uuid.UUID `json:"catalog_item_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required"`
	PaletteID     string    `json:"palette_id"`
}

type StockQuery struct {
	PaletteID string `form:"palette_id"`
}
