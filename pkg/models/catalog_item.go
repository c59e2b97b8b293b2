package models

import (
	"github.com/google/uuid"
)

// Volume holds the physical dimensions of a catalog item in meters.
type Volume struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Cubic returns the cubic volume in m³.
func (v Volume) Cubic() float64 {
	return v.Length * v.Width * v.Height
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CatalogItem is the definition of a product type, independent of how much
// of it is currently in stock. Barcodes are not required to be unique:
// duplicate codes are an accepted real-world case (repackaging), lookups
// return the first match.
type CatalogItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Barcode  string    `json:"barcode"`
	Weight   float64   `json:"weight"`
	Volume   Volume    `json:"volume"`
	Category Category  `json:"category"`
}

func (i *CatalogItem) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   i.ID.String(),
		ResourceType: "catalog_item",
	}
}
