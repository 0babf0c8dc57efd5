package gadgetsapi

import (
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/utils"
	"github.com/tidwall/gjson"
)

// The gadgets API has grown several spellings for the same fields
// (snake_case, camelCase, legacy names) and sends prices as numbers or
// display strings depending on the record's age. Everything is folded
// into the canonical models shapes here so no other package ever deals
// with the variance.

func decodeGadgets(data gjson.Result) []models.Gadget {
	gadgets := make([]models.Gadget, 0, len(data.Array()))
	data.ForEach(func(_, raw gjson.Result) bool {
		gadgets = append(gadgets, decodeGadget(raw))
		return true
	})
	return gadgets
}

func decodeGadget(raw gjson.Result) models.Gadget {
	g := models.Gadget{
		ID:            pickString(raw, "id", "_id", "gadget_id"),
		Name:          pickString(raw, "name"),
		Title:         pickString(raw, "title"),
		Description:   pickString(raw, "description"),
		Brand:         pickString(raw, "brand"),
		Model:         pickString(raw, "model"),
		Category:      pickString(raw, "category"),
		Condition:     pickString(raw, "condition"),
		Price:         pickPrice(raw, "price"),
		PriceGBP:      pickPrice(raw, "price_gbp", "priceGbp", "priceGBP"),
		PriceMWK:      pickPrice(raw, "price_mwk", "priceMwk", "priceMWK"),
		StockQuantity: pickStock(raw, "stock_quantity", "stockQuantity", "stock"),
		IsPreOrder:    pickBool(raw, false, "is_pre_order", "isPreOrder", "preOrder"),
		Date:          pickString(raw, "date", "created_at", "createdAt"),
		Rating:        pickFloat(raw, "rating"),
		ImageURL:      pickString(raw, "image_url", "imageUrl", "image"),
	}

	variants := firstExisting(raw, "variants")
	if variants.IsArray() {
		variants.ForEach(func(_, v gjson.Result) bool {
			g.Variants = append(g.Variants, decodeVariant(v))
			return true
		})
	}

	return g
}

func decodeVariant(raw gjson.Result) models.Variant {
	return models.Variant{
		ID:              pickString(raw, "id", "_id", "variant_id"),
		Color:           pickString(raw, "color", "colour"),
		Storage:         pickString(raw, "storage"),
		ConditionStatus: pickString(raw, "condition_status", "conditionStatus", "condition"),
		Price:           pickPrice(raw, "price"),
		PriceGBP:        pickPrice(raw, "price_gbp", "priceGbp", "priceGBP"),
		PriceMWK:        pickPrice(raw, "price_mwk", "priceMwk", "priceMWK"),
		StockQuantity:   pickStock(raw, "stock_quantity", "stockQuantity", "stock"),
		// Only an explicit false deactivates a variant.
		IsActive: pickBool(raw, true, "is_active", "isActive", "active"),
	}
}

func firstExisting(raw gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if value := raw.Get(key); value.Exists() {
			return value
		}
	}
	return gjson.Result{}
}

func pickString(raw gjson.Result, keys ...string) string {
	for _, key := range keys {
		if value := raw.Get(key); value.Exists() && value.Type == gjson.String && value.String() != "" {
			return value.String()
		} else if value.Exists() && value.Type == gjson.Number {
			return value.String()
		}
	}
	return ""
}

// pickPrice accepts numbers and display strings ("£1,299.99"); nil means
// the field is absent or unparseable in every spelling.
func pickPrice(raw gjson.Result, keys ...string) *float64 {
	for _, key := range keys {
		value := raw.Get(key)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}
		if value.Type == gjson.Number {
			price := value.Float()
			return &price
		}
		if parsed, ok := utils.ParsePrice(value.String()); ok {
			return &parsed
		}
	}
	return nil
}

func pickStock(raw gjson.Result, keys ...string) int {
	for _, key := range keys {
		value := raw.Get(key)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}
		if value.Type == gjson.Number {
			stock := int(value.Int())
			if stock < 0 {
				return 0
			}
			return stock
		}
		return utils.ParseStock(value.String())
	}
	return 0
}

func pickFloat(raw gjson.Result, keys ...string) float64 {
	for _, key := range keys {
		if value := raw.Get(key); value.Exists() && value.Type != gjson.Null {
			return value.Float()
		}
	}
	return 0
}

func pickBool(raw gjson.Result, defaultValue bool, keys ...string) bool {
	for _, key := range keys {
		if value := raw.Get(key); value.Exists() && value.Type != gjson.Null {
			return value.Bool()
		}
	}
	return defaultValue
}
