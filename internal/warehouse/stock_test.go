package warehouse

import (
	"testing"

	"instock/internal/persistence"
	"instock/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestWarehouse(t *testing.T) *Warehouse {
	t.Helper()
	return New(persistence.NewMemoryGateway(), zap.NewNop())
}

func testItem(name string) models.CatalogItem {
	return models.CatalogItem{
		ID:      uuid.New(),
		Name:    name,
		Barcode: "4603934000274",
		Weight:  5,
		Volume:  models.Volume{Length: 0.3, Width: 0.1, Height: 0.2},
		Category: models.Category{
			ID:   uuid.New(),
			Name: "Одежда",
		},
	}
}

func TestApplyMovementMergesByItem(t *testing.T) {
	w := newTestWarehouse(t)
	item := testItem("Куртки")

	entry, err := w.ApplyMovement(item, 5, "A1")
	assert.NoError(t, err)
	assert.Equal(t, 5, entry.Quantity)

	entry, err = w.ApplyMovement(item, 3, "A1")
	assert.NoError(t, err)
	assert.Equal(t, 8, entry.Quantity)

	entries := w.StockEntries("")
	assert.Len(t, entries, 1)
	assert.Equal(t, 8, entries[0].Quantity)
}

func TestApplyMovementKeepsFirstPalette(t *testing.T) {
	w := newTestWarehouse(t)
	item := testItem("Куртки")

	_, err := w.ApplyMovement(item, 5, "A1")
	assert.NoError(t, err)

	entry, err := w.ApplyMovement(item, 2, "B2")
	assert.NoError(t, err)
	assert.Equal(t, "A1", entry.PaletteID, "first-assigned palette sticks")
}

func TestApplyMovementDepletion(t *testing.T) {
	tests := []struct {
		name   string
		delta  int
		remain bool
	}{
		{name: "Exactly Zero", delta: -8, remain: false},
		{name: "Below Zero", delta: -100, remain: false},
		{name: "Partial", delta: -3, remain: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWarehouse(t)
			item := testItem("Куртки")

			_, err := w.ApplyMovement(item, 8, "A1")
			assert.NoError(t, err)

			entry, err := w.ApplyMovement(item, tt.delta, "A1")
			assert.NoError(t, err)

			if tt.remain {
				assert.NotNil(t, entry)
				assert.Equal(t, 8+tt.delta, entry.Quantity)
				assert.Len(t, w.StockEntries(""), 1)
			} else {
				assert.Nil(t, entry)
				assert.Empty(t, w.StockEntries(""), "depleted entry is removed outright")
			}
		})
	}
}

func TestApplyNegativeMovementForAbsentItem(t *testing.T) {
	w := newTestWarehouse(t)

	entry, err := w.ApplyMovement(testItem("Куртки"), -4, "A1")
	assert.NoError(t, err)
	assert.Nil(t, entry)
	assert.Empty(t, w.StockEntries(""))
}

func TestStockEntriesPaletteFilter(t *testing.T) {
	w := newTestWarehouse(t)

	_, err := w.ApplyMovement(testItem("Куртки"), 5, "A1")
	assert.NoError(t, err)
	_, err = w.ApplyMovement(testItem("Посуда"), 2, "B2")
	assert.NoError(t, err)

	assert.Len(t, w.StockEntries(""), 2)

	filtered := w.StockEntries("B2")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Посуда", filtered[0].Item.Name)

	assert.Empty(t, w.StockEntries("C3"))
}

func TestRemoveStockEntry(t *testing.T) {
	w := newTestWarehouse(t)

	entry, err := w.ApplyMovement(testItem("Куртки"), 5, "A1")
	assert.NoError(t, err)

	assert.NoError(t, w.RemoveStockEntry(entry.ID))
	assert.Empty(t, w.StockEntries(""))

	assert.Error(t, w.RemoveStockEntry(uuid.New()))
}

func TestStockPersistenceRoundTrip(t *testing.T) {
	gateway := persistence.NewMemoryGateway()
	w := New(gateway, zap.NewNop())

	_, err := w.ApplyMovement(testItem("Куртки"), 5, "A1")
	assert.NoError(t, err)
	_, err = w.ApplyMovement(testItem("Посуда"), 2, "B2")
	assert.NoError(t, err)

	reloaded := New(gateway, zap.NewNop())
	assert.Equal(t, w.StockEntries(""), reloaded.StockEntries(""))
}

func TestFailedPersistLeavesMemoryUnchanged(t *testing.T) {
	gateway := &failingGateway{}
	w := New(gateway, zap.NewNop())
	item := testItem("Куртки")

	gateway.fail = true
	_, err := w.ApplyMovement(item, 5, "A1")
	assert.Error(t, err)
	assert.Empty(t, w.StockEntries(""), "mutation is not committed on persist failure")
}
