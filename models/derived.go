package models

// DerivedGadget is a gadget record after variant aggregation: effective
// price and stock have been computed from the variant list, the pre-order
// flag has been reconciled against aggregate stock, and the diagnostic
// counters are filled in. Instances are built once and never mutated.
type DerivedGadget struct {
	Gadget

	// Variant diagnostics.
	HasVariants        bool `json:"has_variants"`
	HasActiveVariants  bool `json:"has_active_variants"`
	VariantCount       int  `json:"variant_count"`
	ActiveVariantCount int  `json:"active_variant_count"`
	TotalVariantStock  int  `json:"total_variant_stock"`

	// Prices of the cheapest active variant, when one exists.
	LowestVariantPrice    *float64 `json:"lowest_variant_price,omitempty"`
	LowestVariantPriceGBP *float64 `json:"lowest_variant_price_gbp,omitempty"`
	LowestVariantPriceMWK *float64 `json:"lowest_variant_price_mwk,omitempty"`

	// Raw values preserved for traceability after the override.
	OriginalPrice         *float64 `json:"original_price,omitempty"`
	OriginalPriceGBP      *float64 `json:"original_price_gbp,omitempty"`
	OriginalPriceMWK      *float64 `json:"original_price_mwk,omitempty"`
	OriginalStockQuantity int      `json:"original_stock_quantity"`
	OriginalIsPreOrder    bool     `json:"original_is_pre_order"`
}

// PriceIn returns the effective price for the given browsing currency.
// GBP browsing falls back to the base price when no GBP amount is set;
// MWK amounts have no cross-currency fallback.
func (d DerivedGadget) PriceIn(currency Currency) *float64 {
	switch currency.OrDefault() {
	case CurrencyMWK:
		return d.PriceMWK
	default:
		if d.PriceGBP != nil {
			return d.PriceGBP
		}
		return d.Price
	}
}
