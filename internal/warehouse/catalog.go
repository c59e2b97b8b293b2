package warehouse

import (
	"instock/internal/persistence"
	"instock/pkg/models"

	"github.com/google/uuid"
)

// SeedCatalogItems returns the fixed demonstration catalog the store is
// pre-populated with whenever the catalog snapshot is empty.
func SeedCatalogItems() []models.CatalogItem {
	return []models.CatalogItem{
		{
			ID:      uuid.New(),
			Name:    "Куртки",
			Barcode: "4603934000274",
			Weight:  5,
			Volume:  models.Volume{Length: 0.30, Width: 0.10, Height: 0.20},
			Category: models.Category{
				ID:   uuid.New(),
				Name: "Одежда",
			},
		},
		{
			ID:      uuid.New(),
			Name:    "Посуда",
			Barcode: "4870007380032",
			Weight:  10,
			Volume:  models.Volume{Length: 0.25, Width: 0.5, Height: 0.15},
			Category: models.Category{
				ID:   uuid.New(),
				Name: "Товары для дома",
			},
		},
		{
			ID:      uuid.New(),
			Name:    "Диски для авто",
			Barcode: "4620001180059",
			Weight:  25,
			Volume:  models.Volume{Length: 0.28, Width: 1, Height: 0.18},
			Category: models.Category{
				ID:   uuid.New(),
				Name: "Товары для авто",
			},
		},
	}
}

func (w *Warehouse) CatalogItems() []models.CatalogItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]models.CatalogItem, len(w.catalogItems))
	copy(items, w.catalogItems)
	return items
}

// AddCatalogItem appends the item and snapshots the catalog. Barcode and
// name uniqueness are deliberately not enforced; FindByBarcode returns the
// first match among duplicates.
func (w *Warehouse) AddCatalogItem(item models.CatalogItem) (models.CatalogItem, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Category.ID == uuid.Nil {
		item.Category.ID = uuid.New()
	}

	next := append(append([]models.CatalogItem{}, w.catalogItems...), item)
	if err := persist(w, persistence.KeyCatalog, next); err != nil {
		return models.CatalogItem{}, err
	}

	w.catalogItems = next
	w.notify(persistence.KeyCatalog, ActionCreate)
	return item, nil
}

// DeleteCatalogItems removes every item whose id is in ids. Stock entries
// referencing a deleted item are left untouched; the catalog is never
// reference-counted against the ledger.
func (w *Warehouse) DeleteCatalogItems(ids []uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doomed := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		doomed[id] = true
	}

	next := make([]models.CatalogItem, 0, len(w.catalogItems))
	for _, item := range w.catalogItems {
		if !doomed[item.ID] {
			next = append(next, item)
		}
	}

	if err := persist(w, persistence.KeyCatalog, next); err != nil {
		return err
	}

	w.catalogItems = next
	w.notify(persistence.KeyCatalog, ActionDelete)
	return nil
}

// CatalogItem resolves an item by id.
func (w *Warehouse) CatalogItem(id uuid.UUID) (models.CatalogItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.catalogItems {
		if item.ID == id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// FindByBarcode returns the first catalog item carrying the code.
func (w *Warehouse) FindByBarcode(code string) (models.CatalogItem, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.catalogItems {
		if item.Barcode == code {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

func (w *Warehouse) CleanCatalog() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := []models.CatalogItem{}
	if err := persist(w, persistence.KeyCatalog, next); err != nil {
		return err
	}

	w.catalogItems = next
	w.notify(persistence.KeyCatalog, ActionClean)
	return nil
}
