package warehouse

import (
	"context"
	"encoding/json"
	"testing"

	"instock/internal/persistence"
	"instock/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCatalogSeedsWhenSnapshotEmpty(t *testing.T) {
	tests := []struct {
		name     string
		snapshot []byte
	}{
		{name: "Absent Snapshot", snapshot: nil},
		{name: "Empty Array", snapshot: []byte(`[]`)},
		{name: "Malformed Snapshot", snapshot: []byte(`{broken`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := persistence.NewMemoryGateway()
			if tt.snapshot != nil {
				assert.NoError(t, gateway.Put(context.Background(), persistence.KeyCatalog, tt.snapshot))
			}

			w := New(gateway, zap.NewNop())

			items := w.CatalogItems()
			assert.Len(t, items, 3)
			assert.Equal(t, "Куртки", items[0].Name)
			assert.Equal(t, "4603934000274", items[0].Barcode)
		})
	}
}

func TestCatalogNonEmptySnapshotUsedAsIs(t *testing.T) {
	gateway := persistence.NewMemoryGateway()

	existing := []models.CatalogItem{testItem("Сапоги")}
	data, err := json.Marshal(existing)
	assert.NoError(t, err)
	assert.NoError(t, gateway.Put(context.Background(), persistence.KeyCatalog, data))

	w := New(gateway, zap.NewNop())

	items := w.CatalogItems()
	assert.Len(t, items, 1)
	assert.Equal(t, "Сапоги", items[0].Name)
}

func TestAddAndDeleteCatalogItems(t *testing.T) {
	w := New(persistence.NewMemoryGateway(), zap.NewNop())
	assert.NoError(t, w.CleanCatalog())

	added, err := w.AddCatalogItem(models.CatalogItem{
		Name:    "Ковры",
		Barcode: "96385074",
		Weight:  12,
		Category: models.Category{
			Name: "Товары для дома",
		},
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, added.ID, "missing ids are assigned")
	assert.NotEqual(t, uuid.Nil, added.Category.ID)

	assert.Len(t, w.CatalogItems(), 1)

	assert.NoError(t, w.DeleteCatalogItems([]uuid.UUID{added.ID}))
	assert.Empty(t, w.CatalogItems())
}

func TestFindByBarcodeFirstMatchWins(t *testing.T) {
	w := New(persistence.NewMemoryGateway(), zap.NewNop())
	assert.NoError(t, w.CleanCatalog())

	first, err := w.AddCatalogItem(models.CatalogItem{Name: "Первый", Barcode: "4603934000274"})
	assert.NoError(t, err)
	_, err = w.AddCatalogItem(models.CatalogItem{Name: "Второй", Barcode: "4603934000274"})
	assert.NoError(t, err)

	found, ok := w.FindByBarcode("4603934000274")
	assert.True(t, ok)
	assert.Equal(t, first.ID, found.ID, "duplicate barcodes shadow: first match returned")

	_, ok = w.FindByBarcode("0000000000000")
	assert.False(t, ok)
}

func TestCatalogPersistenceRoundTrip(t *testing.T) {
	gateway := persistence.NewMemoryGateway()
	w := New(gateway, zap.NewNop())

	_, err := w.AddCatalogItem(models.CatalogItem{Name: "Ковры", Barcode: "96385074"})
	assert.NoError(t, err)

	reloaded := New(gateway, zap.NewNop())
	assert.Equal(t, w.CatalogItems(), reloaded.CatalogItems())
}
