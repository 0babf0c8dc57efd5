package models

// ═══════════════════════════════════════════════════════════
// Raw catalog records
// ═══════════════════════════════════════════════════════════
//
// These are the canonical shapes every backend payload is folded into at
// the gadgetsapi ingestion boundary. Downstream code (aggregator, sorter,
// matcher, session) never sees the backend's field-name variants.

// Currency identifies the browsing currency for price fields and the
// price-range ceiling.
type Currency string

const (
	CurrencyGBP Currency = "gbp"
	CurrencyMWK Currency = "mwk"
)

// Fallback ceilings used when neither the loaded page nor the background
// sample yields a usable maximum price.
const (
	DefaultCeilingGBP = 2000
	DefaultCeilingMWK = 2000000
)

// OrDefault returns the currency itself, or GBP when unset/unknown.
func (c Currency) OrDefault() Currency {
	if c == CurrencyMWK {
		return CurrencyMWK
	}
	return CurrencyGBP
}

// DefaultCeiling returns the currency-specific price-range fallback.
func (c Currency) DefaultCeiling() float64 {
	if c.OrDefault() == CurrencyMWK {
		return DefaultCeilingMWK
	}
	return DefaultCeilingGBP
}

// Variant is one purchasable configuration (colour/storage/condition) of
// a gadget, with its own price and stock.
//
// Price fields are nil when the backend omitted them or sent something
// that didn't survive sanitize-then-parse. IsActive defaults to true at
// the ingestion boundary; only an explicit false from the backend
// deactivates a variant.
type Variant struct {
	ID              string   `json:"id,omitempty"`
	Color           string   `json:"color,omitempty"`
	Storage         string   `json:"storage,omitempty"`
	ConditionStatus string   `json:"condition_status,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	PriceGBP        *float64 `json:"price_gbp,omitempty"`
	PriceMWK        *float64 `json:"price_mwk,omitempty"`
	StockQuantity   int      `json:"stock_quantity"`
	IsActive        bool     `json:"is_active"`
}

// Gadget is a raw product record as served by the gadgets API, before
// variant aggregation.
type Gadget struct {
	ID            string    `json:"id,omitempty"`
	Name          string    `json:"name,omitempty"`
	Title         string    `json:"title,omitempty"`
	Description   string    `json:"description,omitempty"`
	Brand         string    `json:"brand,omitempty"`
	Model         string    `json:"model,omitempty"`
	Category      string    `json:"category,omitempty"`
	Condition     string    `json:"condition,omitempty"`
	Price         *float64  `json:"price,omitempty"`
	PriceGBP      *float64  `json:"price_gbp,omitempty"`
	PriceMWK      *float64  `json:"price_mwk,omitempty"`
	StockQuantity int       `json:"stock_quantity"`
	IsPreOrder    bool      `json:"is_pre_order"`
	Date          string    `json:"date,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
}
