package warehouse

import (
	"testing"

	"instock/pkg/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func stockFixture(t *testing.T) *Warehouse {
	t.Helper()
	w := newTestWarehouse(t)

	clothes := models.Category{ID: uuid.New(), Name: "Одежда"}
	home := models.Category{ID: uuid.New(), Name: "Товары для дома"}

	_, err := w.ApplyMovement(models.CatalogItem{
		ID:       uuid.New(),
		Name:     "Куртки",
		Weight:   5,
		Volume:   models.Volume{Length: 1, Width: 1, Height: 0.5},
		Category: clothes,
	}, 2, "A1")
	assert.NoError(t, err)

	_, err = w.ApplyMovement(models.CatalogItem{
		ID:       uuid.New(),
		Name:     "Посуда",
		Weight:   10,
		Volume:   models.Volume{Length: 1, Width: 1, Height: 2},
		Category: home,
	}, 1, "B2")
	assert.NoError(t, err)

	return w
}

func TestWeightStatistics(t *testing.T) {
	w := stockFixture(t)

	stats := w.WeightStatistics("")
	assert.Len(t, stats, 2)

	// 5*2 and 10*1 tie at 10; both pairs must be present
	byLabel := make(map[string]float64)
	for _, s := range stats {
		byLabel[s.Label] = s.Value
	}
	assert.Equal(t, 10.0, byLabel["Одежда"])
	assert.Equal(t, 10.0, byLabel["Товары для дома"])
}

func TestVolumeStatisticsDescending(t *testing.T) {
	w := stockFixture(t)

	stats := w.VolumeStatistics("")
	assert.Len(t, stats, 2)
	assert.Equal(t, "Товары для дома", stats[0].Label) // 2.0 m³
	assert.Equal(t, 2.0, stats[0].Value)
	assert.Equal(t, "Одежда", stats[1].Label) // 1.0 m³
	assert.Equal(t, 1.0, stats[1].Value)
}

func TestStatisticsPaletteFilter(t *testing.T) {
	w := stockFixture(t)

	stats := w.WeightStatistics("A1")
	assert.Len(t, stats, 1)
	assert.Equal(t, "Одежда", stats[0].Label)
	assert.Equal(t, 10.0, stats[0].Value)

	assert.Empty(t, w.WeightStatistics("C3"))
}

func TestStatisticsGroupCategoriesByValue(t *testing.T) {
	w := newTestWarehouse(t)

	// same name, different ids: separate groups by design
	for i := 0; i < 2; i++ {
		_, err := w.ApplyMovement(models.CatalogItem{
			ID:       uuid.New(),
			Name:     "Ковры",
			Weight:   3,
			Category: models.Category{ID: uuid.New(), Name: "Товары для дома"},
		}, 1, "A1")
		assert.NoError(t, err)
	}

	stats := w.WeightStatistics("")
	assert.Len(t, stats, 2)
	assert.Equal(t, "Товары для дома", stats[0].Label)
	assert.Equal(t, "Товары для дома", stats[1].Label)
}
