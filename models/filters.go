package models

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterState is the full filter context of a catalog view. Pointer
// fields are tri-state: nil means "not filtered on", which must never be
// forwarded to the gadgets API.
type FilterState struct {
	Category  *string  `json:"category,omitempty"`
	Brand     *string  `json:"brand,omitempty"`
	Condition *string  `json:"condition,omitempty"`
	InStock   *bool    `json:"in_stock,omitempty"`
	MinPrice  *float64 `json:"min_price,omitempty"`
	MaxPrice  *float64 `json:"max_price,omitempty"`
	Currency  Currency `json:"currency,omitempty"`
	Sort      string   `json:"sort,omitempty"`
	Search    string   `json:"search,omitempty"`
}

// QueryParams renders the filter state as request parameters for the
// gadgets API. Unset fields are omitted entirely, never sent as empty or
// null values.
func (f FilterState) QueryParams() url.Values {
	params := url.Values{}

	if f.Category != nil && *f.Category != "" {
		params.Set("category", *f.Category)
	}
	if f.Brand != nil && *f.Brand != "" {
		params.Set("brand", *f.Brand)
	}
	if f.Condition != nil && *f.Condition != "" {
		params.Set("condition", *f.Condition)
	}
	if f.InStock != nil {
		params.Set("inStock", strconv.FormatBool(*f.InStock))
	}
	if f.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Currency != "" {
		params.Set("currency", string(f.Currency.OrDefault()))
	}

	return params
}

// CeilingKey identifies the price-ceiling sample context. Only the four
// dimensions that invalidate the sample take part (plus currency, since
// ceilings are denominated): price bounds and search never do, so the
// ceiling cannot chase the user's own range slider.
func (f FilterState) CeilingKey() string {
	parts := []string{
		deref(f.Category),
		deref(f.Brand),
		formatTriState(f.InStock),
		deref(f.Condition),
		string(f.Currency.OrDefault()),
	}
	return strings.Join(parts, "|")
}

// WithoutPriceBounds returns a copy suitable for the ceiling sample
// fetch: same browsing context, no price bounds, no search.
func (f FilterState) WithoutPriceBounds() FilterState {
	f.MinPrice = nil
	f.MaxPrice = nil
	f.Search = ""
	return f
}

// EqualExceptSort reports whether two filter states describe the same
// result set and differ at most in the sort key. Used to resort
// client-side instead of refetching.
func (f FilterState) EqualExceptSort(other FilterState) bool {
	f.Sort = ""
	other.Sort = ""
	return f.CeilingKey() == other.CeilingKey() &&
		equalFloat(f.MinPrice, other.MinPrice) &&
		equalFloat(f.MaxPrice, other.MaxPrice) &&
		f.Search == other.Search
}

// PriceCeilingData is the resolver output served to the storefront's
// price-range slider.
type PriceCeilingData struct {
	Currency Currency `json:"currency"`
	Ceiling  float64  `json:"ceiling"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTriState(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

func equalFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
