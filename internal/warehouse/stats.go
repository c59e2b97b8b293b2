package warehouse

import (
	"sort"

	"instock/pkg/models"
)

// Statistic is one category-level total, labelled by category name.
type Statistic struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// WeightStatistics sums weight × quantity per category over the ledger,
// optionally filtered to one palette, descending by total. Categories are
// grouped by value: two categories sharing a name but not an id stay
// separate groups.
func (w *Warehouse) WeightStatistics(paletteID string) []Statistic {
	return w.statistics(paletteID, func(entry models.StockEntry) float64 {
		return entry.Item.Weight * float64(entry.Quantity)
	})
}

// VolumeStatistics sums cubic volume × quantity per category, same shape as
// WeightStatistics.
func (w *Warehouse) VolumeStatistics(paletteID string) []Statistic {
	return w.statistics(paletteID, func(entry models.StockEntry) float64 {
		return entry.Item.Volume.Cubic() * float64(entry.Quantity)
	})
}

func (w *Warehouse) statistics(paletteID string, value func(models.StockEntry) float64) []Statistic {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := filterByPalette(w.stockEntries, paletteID)

	totals := make(map[models.Category]float64)
	order := make([]models.Category, 0)
	for _, entry := range entries {
		category := entry.Item.Category
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] += value(entry)
	}

	stats := make([]Statistic, 0, len(order))
	for _, category := range order {
		stats = append(stats, Statistic{Label: category.Name, Value: totals[category]})
	}

	// ties keep first-encountered order
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Value > stats[j].Value
	})

	return stats
}
