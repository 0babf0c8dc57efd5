package catalog

import (
	"sort"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// Sort keys accepted by Sort. Anything else is a no-op.
const (
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
	SortRating    = "rating"
	SortCondition = "condition"
)

// Condition labels rank highest-first; unknown or missing labels rank 0.
var conditionRank = map[string]int{
	"Excellent": 4,
	"Very Good": 3,
	"Good":      2,
	"Fair":      1,
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// Sort returns a new slice ordered by the named key. The input is never
// mutated and equal keys keep their relative input order.
func Sort(items []models.DerivedGadget, key string) []models.DerivedGadget {
	sorted := append([]models.DerivedGadget(nil), items...)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectivePrice(sorted[i]) < effectivePrice(sorted[j])
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return effectivePrice(sorted[i]) > effectivePrice(sorted[j])
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parsedDate(sorted[i]) > parsedDate(sorted[j])
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortCondition:
		sort.SliceStable(sorted, func(i, j int) bool {
			return conditionRank[sorted[i].Condition] > conditionRank[sorted[j].Condition]
		})
	}

	return sorted
}

func effectivePrice(d models.DerivedGadget) float64 {
	if d.Price == nil {
		return 0
	}
	return *d.Price
}

// parsedDate returns the record date as unix seconds; unparseable or
// missing dates collapse to epoch 0 and so sort last under "newest".
func parsedDate(d models.DerivedGadget) int64 {
	if d.Date == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, d.Date); err == nil {
			return t.Unix()
		}
	}
	return 0
}
