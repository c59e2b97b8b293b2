package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ShipmentDirection string

const (
	ShipmentIncoming ShipmentDirection = "incoming"
	ShipmentOutgoing ShipmentDirection = "outgoing"
)

func NewShipmentDirection(value string) (ShipmentDirection, error) {
	direction := ShipmentDirection(value)
	if !direction.isValid() {
		return "", fmt.Errorf("invalid shipment direction: %s", value)
	}
	return direction, nil
}

func (d ShipmentDirection) isValid() bool {
	switch d {
	case ShipmentIncoming, ShipmentOutgoing:
		return true
	default:
		return false
	}
}

// Shipment is a directional record of stock movements for one customer
// transaction. Its StockEntries are value copies, independent of the
// warehouse-wide ledger; the two are kept in step only by the combined
// append-movement operation. Shipments are never closed or finalized.
type Shipment struct {
	ID           uuid.UUID         `json:"id"`
	CustomerCode string            `json:"customer_code"`
	Direction    ShipmentDirection `json:"direction"`
	StartDate    time.Time         `json:"start_date"`
	StockEntries []StockEntry      `json:"stock_entries"`
}

func (s *Shipment) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   s.ID.String(),
		ResourceType: "shipment",
	}
}
