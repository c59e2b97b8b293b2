package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"instock/internal/persistence"
	"instock/pkg/models"

	"github.com/google/uuid"
)

func (w *Warehouse) Shipments() []models.Shipment {
	w.mu.Lock()
	defer w.mu.Unlock()

	shipments := make([]models.Shipment, len(w.shipments))
	copy(shipments, w.shipments)
	return shipments
}

func (w *Warehouse) Shipment(id uuid.UUID) (models.Shipment, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := w.shipmentIndex(id)
	if index < 0 {
		return models.Shipment{}, false
	}
	return w.shipments[index], true
}

func (w *Warehouse) AddShipment(customerCode string, direction models.ShipmentDirection) (models.Shipment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	shipment := models.Shipment{
		ID:           uuid.New(),
		CustomerCode: customerCode,
		Direction:    direction,
		StartDate:    time.Now(),
		StockEntries: []models.StockEntry{},
	}

	next := append(append([]models.Shipment{}, w.shipments...), shipment)
	if err := persist(w, persistence.KeyShipment, next); err != nil {
		return models.Shipment{}, err
	}

	w.shipments = next
	w.notify(persistence.KeyShipment, ActionCreate)
	return shipment, nil
}

// DeleteShipment drops the record. The stock movements it produced are not
// reversed; there is no compensating rollback.
func (w *Warehouse) DeleteShipment(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := w.shipmentIndex(id)
	if index < 0 {
		return fmt.Errorf("shipment %s not found", id)
	}

	next := append([]models.Shipment{}, w.shipments...)
	next = append(next[:index], next[index+1:]...)

	if err := persist(w, persistence.KeyShipment, next); err != nil {
		return err
	}

	w.shipments = next
	w.notify(persistence.KeyShipment, ActionDelete)
	return nil
}

// AddItemToShipment merges the entry into the shipment's own entry list
// (by catalog item id) and applies the same movement to the stock ledger as
// one logical action. Both snapshots are persisted atomically before either
// collection is committed to memory.
func (w *Warehouse) AddItemToShipment(shipmentID uuid.UUID, entry models.StockEntry) (*models.Shipment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := w.shipmentIndex(shipmentID)
	if index < 0 {
		return nil, fmt.Errorf("shipment %s not found", shipmentID)
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	nextShipments := append([]models.Shipment{}, w.shipments...)
	shipment := nextShipments[index]
	shipment.StockEntries = mergedShipmentEntry(shipment.StockEntries, entry)
	nextShipments[index] = shipment

	nextStock, _ := appliedMovement(w.stockEntries, entry.Item, entry.Quantity, entry.PaletteID)

	shipmentData, err := json.Marshal(nextShipments)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shipment snapshot: %w", err)
	}
	stockData, err := json.Marshal(nextStock)
	if err != nil {
		return nil, fmt.Errorf("failed to encode stock snapshot: %w", err)
	}

	err = w.gateway.PutAll(context.Background(), map[string][]byte{
		persistence.KeyShipment: shipmentData,
		persistence.KeyStock:    stockData,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist shipment movement: %w", err)
	}

	w.shipments = nextShipments
	w.stockEntries = nextStock
	w.notify(persistence.KeyShipment, ActionUpdate)
	w.notify(persistence.KeyStock, ActionUpdate)
	return &shipment, nil
}

func mergedShipmentEntry(entries []models.StockEntry, entry models.StockEntry) []models.StockEntry {
	next := append([]models.StockEntry{}, entries...)
	for i, existing := range next {
		if existing.Item.ID == entry.Item.ID {
			existing.Quantity += entry.Quantity
			next[i] = existing
			return next
		}
	}
	return append(next, entry)
}

// RemoveItemFromShipment drops an embedded entry from the shipment only;
// the ledger keeps whatever the entry already contributed.
func (w *Warehouse) RemoveItemFromShipment(shipmentID, entryID uuid.UUID) (*models.Shipment, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := w.shipmentIndex(shipmentID)
	if index < 0 {
		return nil, fmt.Errorf("shipment %s not found", shipmentID)
	}

	nextShipments := append([]models.Shipment{}, w.shipments...)
	shipment := nextShipments[index]

	entryIndex := -1
	for i, entry := range shipment.StockEntries {
		if entry.ID == entryID {
			entryIndex = i
			break
		}
	}
	if entryIndex < 0 {
		return nil, fmt.Errorf("entry %s not found in shipment %s", entryID, shipmentID)
	}

	entries := append([]models.StockEntry{}, shipment.StockEntries...)
	shipment.StockEntries = append(entries[:entryIndex], entries[entryIndex+1:]...)
	nextShipments[index] = shipment

	if err := persist(w, persistence.KeyShipment, nextShipments); err != nil {
		return nil, err
	}

	w.shipments = nextShipments
	w.notify(persistence.KeyShipment, ActionUpdate)
	return &shipment, nil
}

func (w *Warehouse) CleanShipments() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := []models.Shipment{}
	if err := persist(w, persistence.KeyShipment, next); err != nil {
		return err
	}

	w.shipments = next
	w.notify(persistence.KeyShipment, ActionClean)
	return nil
}

// shipmentIndex must be called with the lock held.
func (w *Warehouse) shipmentIndex(id uuid.UUID) int {
	for i, shipment := range w.shipments {
		if shipment.ID == id {
			return i
		}
	}
	return -1
}
