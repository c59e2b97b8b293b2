package models

import (
	"github.com/google/uuid"
)

// StockEntry is a quantity of one catalog item assigned to a palette.
// The palette id is a plain field, not a key: an item occupies at most one
// palette in the ledger and the first assigned palette sticks.
type StockEntry struct {
	ID        uuid.UUID   `json:"id"`
	Item      CatalogItem `json:"item"`
	Quantity  int         `json:"quantity"`
	PaletteID string      `json:"palette_id"`
}

func (e *StockEntry) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   e.ID.String(),
		ResourceType: "stock",
	}
}
