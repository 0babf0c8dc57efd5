package catalog

import (
	"context"
	"log"
	"math"

	ceiling_cache "github.com/GadgetHub-Store/gadgets-catalog-backend/cache"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// sampleLimit caps the background fetch used to estimate the global
// maximum price for the active filter context.
const sampleLimit = 1000

// CeilingResolver computes the effective maximum price offered to the
// storefront's price-range control: the larger of the current page's
// maximum and a cached background-sample maximum, each falling back to a
// currency-specific default when unusable. Sample failures are cosmetic
// and never propagate.
type CeilingResolver struct {
	source gadgetsapi.Source
}

func NewCeilingResolver(source gadgetsapi.Source) *CeilingResolver {
	return &CeilingResolver{source: source}
}

// Resolve returns the price ceiling for the given filter context and
// currently-loaded page of derived gadgets.
func (r *CeilingResolver) Resolve(ctx context.Context, filters models.FilterState, page []models.DerivedGadget) float64 {
	currency := filters.Currency.OrDefault()
	fallback := currency.DefaultCeiling()

	pageMax := flooredToDefault(maxPagePrice(page, currency), fallback)
	sampleMax := flooredToDefault(r.sampleMax(ctx, filters), fallback)

	return math.Max(pageMax, sampleMax)
}

// sampleMax returns the cached sample maximum for this filter context,
// fetching a fresh sample on miss. The sample ignores pagination and
// price bounds; only category, brand, inStock, and condition (plus
// currency) participate in the cache key, so the sample is re-fetched
// exactly when one of those dimensions changes.
func (r *CeilingResolver) sampleMax(ctx context.Context, filters models.FilterState) float64 {
	key := filters.CeilingKey()
	if cached, ok := ceiling_cache.Get(key); ok {
		return cached
	}

	result, err := r.source.List(ctx, filters.WithoutPriceBounds(), 1, sampleLimit)
	if err != nil {
		log.Printf("[ceiling] sample fetch failed, using default: %v", err)
		return 0
	}
	if result == nil || len(result.Gadgets) == 0 {
		return 0
	}

	max := maxPagePrice(AggregateAll(result.Gadgets), filters.Currency.OrDefault())
	if max > 0 {
		ceiling_cache.Set(key, max)
	}
	return max
}

// maxPagePrice is the highest positive, finite price on the page for the
// active currency; 0 when no price qualifies.
func maxPagePrice(items []models.DerivedGadget, currency models.Currency) float64 {
	var max float64
	for _, item := range items {
		price := item.PriceIn(currency)
		if price == nil {
			continue
		}
		if v := *price; v > max && !math.IsInf(v, 0) && !math.IsNaN(v) {
			max = v
		}
	}
	return max
}

func flooredToDefault(v, fallback float64) float64 {
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return fallback
	}
	return v
}
