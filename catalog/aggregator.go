// Package catalog implements the variant-aware catalog engine: variant
// aggregation, sorting, randomized ordering, search matching, price
// ceiling resolution, and the stateful catalog session that composes
// them over the remote gadgets API.
package catalog

import "github.com/GadgetHub-Store/gadgets-catalog-backend/models"

// Aggregate merges a raw gadget with its variant list into a single
// derived record. It is pure: the input is never mutated and identical
// inputs always produce identical output.
//
// Rules:
//   - stock is the sum over ALL variants, active or not; a gadget with
//     no variants keeps its own stock figure
//   - price is the cheapest ACTIVE variant's price (stable minimum:
//     ties keep the first variant); each currency falls back to the raw
//     gadget's value only when the chosen variant lacks that currency
//   - zero aggregate stock always forces the pre-order flag, whatever
//     the backend said
func Aggregate(g models.Gadget) models.DerivedGadget {
	d := models.DerivedGadget{
		Gadget:                g,
		OriginalPrice:         g.Price,
		OriginalPriceGBP:      g.PriceGBP,
		OriginalPriceMWK:      g.PriceMWK,
		OriginalStockQuantity: g.StockQuantity,
		OriginalIsPreOrder:    g.IsPreOrder,
	}

	d.VariantCount = len(g.Variants)
	d.HasVariants = d.VariantCount > 0

	for _, v := range g.Variants {
		d.TotalVariantStock += v.StockQuantity
		if v.IsActive {
			d.HasActiveVariants = true
			if v.StockQuantity > 0 {
				d.ActiveVariantCount++
			}
		}
	}

	// Inactive variants still count toward stock; they are only barred
	// from price selection.
	if d.HasVariants {
		d.StockQuantity = d.TotalVariantStock
	}

	if cheapest := cheapestActiveVariant(g.Variants); cheapest != nil {
		d.Price = cheapest.Price
		d.LowestVariantPrice = cheapest.Price
		d.LowestVariantPriceGBP = cheapest.PriceGBP
		d.LowestVariantPriceMWK = cheapest.PriceMWK

		if cheapest.PriceGBP != nil {
			d.PriceGBP = cheapest.PriceGBP
		}
		if cheapest.PriceMWK != nil {
			d.PriceMWK = cheapest.PriceMWK
		}
	}

	if d.StockQuantity == 0 {
		d.IsPreOrder = true
	}

	return d
}

// cheapestActiveVariant returns the active variant with the lowest
// parseable base price, first occurrence winning ties. Variants without
// a parseable price never qualify.
func cheapestActiveVariant(variants []models.Variant) *models.Variant {
	var cheapest *models.Variant
	for i := range variants {
		v := &variants[i]
		if !v.IsActive || v.Price == nil {
			continue
		}
		if cheapest == nil || *v.Price < *cheapest.Price {
			cheapest = v
		}
	}
	return cheapest
}

// AggregateAll derives every gadget in a fetched page.
func AggregateAll(gadgets []models.Gadget) []models.DerivedGadget {
	derived := make([]models.DerivedGadget, 0, len(gadgets))
	for _, g := range gadgets {
		derived = append(derived, Aggregate(g))
	}
	return derived
}
