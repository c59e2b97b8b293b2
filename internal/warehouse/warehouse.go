package warehouse

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"instock/internal/persistence"
	"instock/pkg/models"

	"go.uber.org/zap"
)

// Warehouse owns the three in-memory collections (catalog, stock ledger,
// shipment log) and snapshots them through the persistence gateway. There is
// one logical writer: every mutation runs under the lock, persists the new
// state and commits it to memory only when the write succeeded, so memory
// and storage cannot diverge on a failed write.
type Warehouse struct {
	mu      sync.Mutex
	gateway persistence.Gateway
	logger  *zap.Logger

	catalogItems []models.CatalogItem
	stockEntries []models.StockEntry
	shipments    []models.Shipment

	subscribers []chan Event
}

func New(gateway persistence.Gateway, logger *zap.Logger) *Warehouse {
	w := &Warehouse{
		gateway: gateway,
		logger:  logger,
	}

	w.loadCatalog()
	w.loadStock()
	w.loadShipments()

	return w
}

// load reads one collection snapshot. A malformed or missing snapshot is
// logged and treated as no prior data, never surfaced.
func load[T any](w *Warehouse, key string) []T {
	data, err := w.gateway.Get(context.Background(), key)
	if err != nil {
		w.logger.Warn("failed to read snapshot, starting empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var collection []T
	if err := json.Unmarshal(data, &collection); err != nil {
		w.logger.Warn("malformed snapshot, starting empty",
			zap.String("key", key), zap.Error(err))
		return nil
	}

	return collection
}

func (w *Warehouse) loadCatalog() {
	w.catalogItems = load[models.CatalogItem](w, persistence.KeyCatalog)
	if len(w.catalogItems) == 0 {
		w.catalogItems = SeedCatalogItems()
		w.logger.Info("catalog snapshot empty, seeded demonstration items",
			zap.Int("count", len(w.catalogItems)))
	}
}

func (w *Warehouse) loadStock() {
	w.stockEntries = load[models.StockEntry](w, persistence.KeyStock)
}

func (w *Warehouse) loadShipments() {
	w.shipments = load[models.Shipment](w, persistence.KeyShipment)
}

// persist writes the new value of one collection; the caller commits it to
// memory only on success.
func persist[T any](w *Warehouse, key string, collection []T) error {
	data, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", key, err)
	}

	if err := w.gateway.Put(context.Background(), key, data); err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", key, err)
	}

	return nil
}
