package shipments

import (
	"github.com/google/uuid"
)

type CreateShipmentRequest struct {
	CustomerCode string `json:"customer_code" binding:"required"`
	Direction    string `json:"direction" binding:"required"`
}

// ShipmentItemRequest appends a movement to a shipment. The same movement is
// applied to the stock ledger as one logical action.
type ShipmentItemRequest struct {
	CatalogItemID uuid.UUID `json:"catalog_item_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required"`
	PaletteID     string    `json:"palette_id"`
}
