package warehouse

import (
	"fmt"

	"instock/internal/persistence"
	"instock/pkg/models"

	"github.com/google/uuid"
)

// ApplyMovement merges a quantity delta into the ledger. An existing entry
// for the same catalog item is matched anywhere in the ledger and keeps its
// first-assigned palette; a movement driving the quantity to zero or below
// removes the entry entirely. Returns the resulting entry, or nil when the
// movement depleted it.
func (w *Warehouse) ApplyMovement(item models.CatalogItem, quantity int, paletteID string) (*models.StockEntry, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, result := appliedMovement(w.stockEntries, item, quantity, paletteID)
	if err := persist(w, persistence.KeyStock, next); err != nil {
		return nil, err
	}

	w.stockEntries = next
	w.notify(persistence.KeyStock, ActionUpdate)
	return result, nil
}

// appliedMovement computes the ledger after a movement without touching the
// warehouse. Shared with the shipment append so both persists see the same
// new state.
func appliedMovement(entries []models.StockEntry, item models.CatalogItem, quantity int, paletteID string) ([]models.StockEntry, *models.StockEntry) {
	next := append([]models.StockEntry{}, entries...)

	for i, entry := range next {
		if entry.Item.ID != item.ID {
			continue
		}

		entry.Quantity += quantity
		if entry.Quantity <= 0 {
			next = append(next[:i], next[i+1:]...)
			return next, nil
		}
		next[i] = entry
		return next, &next[i]
	}

	if quantity <= 0 {
		// depleting an absent entry is a no-op
		return next, nil
	}

	entry := models.StockEntry{
		ID:        uuid.New(),
		Item:      item,
		Quantity:  quantity,
		PaletteID: paletteID,
	}
	next = append(next, entry)
	return next, &next[len(next)-1]
}

// RemoveStockEntry deletes an entry outright, regardless of quantity.
func (w *Warehouse) RemoveStockEntry(id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := -1
	for i, entry := range w.stockEntries {
		if entry.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("stock entry %s not found", id)
	}

	next := append([]models.StockEntry{}, w.stockEntries...)
	next = append(next[:index], next[index+1:]...)

	if err := persist(w, persistence.KeyStock, next); err != nil {
		return err
	}

	w.stockEntries = next
	w.notify(persistence.KeyStock, ActionDelete)
	return nil
}

// StockEntries lists the ledger; a non-empty paletteID filters by exact
// palette match.
func (w *Warehouse) StockEntries(paletteID string) []models.StockEntry {
	w.mu.Lock()
	defer w.mu.Unlock()

	return filterByPalette(w.stockEntries, paletteID)
}

func filterByPalette(entries []models.StockEntry, paletteID string) []models.StockEntry {
	filtered := make([]models.StockEntry, 0, len(entries))
	for _, entry := range entries {
		if paletteID == "" || entry.PaletteID == paletteID {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func (w *Warehouse) CleanStock() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := []models.StockEntry{}
	if err := persist(w, persistence.KeyStock, next); err != nil {
		return err
	}

	w.stockEntries = next
	w.notify(persistence.KeyStock, ActionClean)
	return nil
}
