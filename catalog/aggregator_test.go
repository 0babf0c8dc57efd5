package catalog

import (
	"testing"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestAggregate_StockSumsAllVariants(t *testing.T) {
	// Inactive variants still count toward stock
	g := models.Gadget{
		Name:          "Pixel 7",
		StockQuantity: 99, // base stock is ignored once variants exist
		Variants: []models.Variant{
			{StockQuantity: 2, IsActive: false},
			{StockQuantity: 3, IsActive: true, Price: fptr(100)},
			{StockQuantity: 0, IsActive: true, Price: fptr(80)},
		},
	}

	d := Aggregate(g)

	assert.Equal(t, 5, d.StockQuantity)
	assert.Equal(t, 5, d.TotalVariantStock)
	assert.Equal(t, 99, d.OriginalStockQuantity)
}

func TestAggregate_PriceIsCheapestActiveVariant(t *testing.T) {
	g := models.Gadget{
		Price: fptr(500),
		Variants: []models.Variant{
			{Price: fptr(50), IsActive: false, StockQuantity: 1}, // inactive: never selected
			{Price: fptr(100), IsActive: true, StockQuantity: 3},
			{Price: fptr(80), IsActive: true, StockQuantity: 0},
		},
	}

	d := Aggregate(g)

	require.NotNil(t, d.Price)
	assert.Equal(t, 80.0, *d.Price)
	require.NotNil(t, d.LowestVariantPrice)
	assert.Equal(t, 80.0, *d.LowestVariantPrice)
	require.NotNil(t, d.OriginalPrice)
	assert.Equal(t, 500.0, *d.OriginalPrice)
}

func TestAggregate_MixedVariantList(t *testing.T) {
	// variants [{stock:2,inactive},{stock:3,active,100},{stock:0,active,80}]
	// → stock 5, price 80, pre-order flag untouched
	g := models.Gadget{
		Price:      fptr(200),
		IsPreOrder: false,
		Variants: []models.Variant{
			{StockQuantity: 2, IsActive: false},
			{StockQuantity: 3, IsActive: true, Price: fptr(100)},
			{StockQuantity: 0, IsActive: true, Price: fptr(80)},
		},
	}

	d := Aggregate(g)

	assert.Equal(t, 5, d.StockQuantity)
	require.NotNil(t, d.Price)
	assert.Equal(t, 80.0, *d.Price)
	assert.False(t, d.IsPreOrder)
}

func TestAggregate_NoActiveVariants_PricePassesThrough(t *testing.T) {
	g := models.Gadget{
		Price:    fptr(300),
		PriceGBP: fptr(250),
		Variants: []models.Variant{
			{Price: fptr(10), IsActive: false, StockQuantity: 1},
			{Price: fptr(20), IsActive: false, StockQuantity: 1},
		},
	}

	d := Aggregate(g)

	require.NotNil(t, d.Price)
	assert.Equal(t, 300.0, *d.Price)
	require.NotNil(t, d.PriceGBP)
	assert.Equal(t, 250.0, *d.PriceGBP)
	assert.False(t, d.HasActiveVariants)
}

func TestAggregate_NoVariants_AllPassesThrough(t *testing.T) {
	g := models.Gadget{Price: fptr(42), StockQuantity: 7, IsPreOrder: false}

	d := Aggregate(g)

	require.NotNil(t, d.Price)
	assert.Equal(t, 42.0, *d.Price)
	assert.Equal(t, 7, d.StockQuantity)
	assert.False(t, d.HasVariants)
	assert.False(t, d.IsPreOrder)
}

func TestAggregate_CurrencyFallbackPerField(t *testing.T) {
	// The chosen variant lacks MWK, so only that currency falls back to
	// the raw gadget value
	g := models.Gadget{
		Price:    fptr(500),
		PriceGBP: fptr(450),
		PriceMWK: fptr(900000),
		Variants: []models.Variant{
			{Price: fptr(100), PriceGBP: fptr(95), IsActive: true, StockQuantity: 1},
		},
	}

	d := Aggregate(g)

	assert.Equal(t, 100.0, *d.Price)
	assert.Equal(t, 95.0, *d.PriceGBP)
	assert.Equal(t, 900000.0, *d.PriceMWK)
}

func TestAggregate_ZeroStockForcesPreOrder(t *testing.T) {
	cases := []struct {
		name   string
		gadget models.Gadget
	}{
		{
			name:   "no variants, zero base stock",
			gadget: models.Gadget{StockQuantity: 0, IsPreOrder: false},
		},
		{
			name: "all variant stock zero",
			gadget: models.Gadget{
				StockQuantity: 50,
				IsPreOrder:    false,
				Variants: []models.Variant{
					{StockQuantity: 0, IsActive: true, Price: fptr(10)},
					{StockQuantity: 0, IsActive: false},
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Aggregate(tc.gadget)
			assert.Equal(t, 0, d.StockQuantity)
			assert.True(t, d.IsPreOrder)
		})
	}
}

func TestAggregate_PreOrderPreservedWithStock(t *testing.T) {
	// Backend-supplied pre-order flag survives when stock is nonzero
	g := models.Gadget{StockQuantity: 3, IsPreOrder: true}
	assert.True(t, Aggregate(g).IsPreOrder)

	g = models.Gadget{StockQuantity: 3, IsPreOrder: false}
	assert.False(t, Aggregate(g).IsPreOrder)
}

func TestAggregate_StableMinimumOnPriceTie(t *testing.T) {
	g := models.Gadget{
		Variants: []models.Variant{
			{ID: "first", Price: fptr(80), IsActive: true, StockQuantity: 1, PriceGBP: fptr(70)},
			{ID: "second", Price: fptr(80), IsActive: true, StockQuantity: 1, PriceGBP: fptr(60)},
		},
	}

	d := Aggregate(g)

	// First occurrence wins the tie, so its GBP price is carried
	require.NotNil(t, d.PriceGBP)
	assert.Equal(t, 70.0, *d.PriceGBP)
}

func TestAggregate_VariantsWithoutParseablePriceNeverChosen(t *testing.T) {
	g := models.Gadget{
		Price: fptr(150),
		Variants: []models.Variant{
			{IsActive: true, StockQuantity: 2}, // no price at all
		},
	}

	d := Aggregate(g)

	require.NotNil(t, d.Price)
	assert.Equal(t, 150.0, *d.Price)
	assert.Nil(t, d.LowestVariantPrice)
	assert.Equal(t, 2, d.StockQuantity)
}

func TestAggregate_ActiveVariantCountRequiresStock(t *testing.T) {
	g := models.Gadget{
		Variants: []models.Variant{
			{IsActive: true, StockQuantity: 0, Price: fptr(10)},
			{IsActive: true, StockQuantity: 4, Price: fptr(20)},
			{IsActive: false, StockQuantity: 9},
		},
	}

	d := Aggregate(g)

	assert.Equal(t, 3, d.VariantCount)
	assert.Equal(t, 1, d.ActiveVariantCount)
	assert.True(t, d.HasActiveVariants)
}

func TestAggregate_Idempotent(t *testing.T) {
	g := models.Gadget{
		Name:       "iPhone 13",
		Price:      fptr(600),
		IsPreOrder: false,
		Variants: []models.Variant{
			{Price: fptr(550), IsActive: true, StockQuantity: 2},
			{Price: fptr(500), IsActive: false, StockQuantity: 1},
		},
	}

	first := Aggregate(g)
	second := Aggregate(g)

	assert.Equal(t, first, second)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	variants := []models.Variant{
		{Price: fptr(100), IsActive: true, StockQuantity: 1},
	}
	g := models.Gadget{Price: fptr(900), StockQuantity: 5, Variants: variants}

	_ = Aggregate(g)

	assert.Equal(t, 900.0, *g.Price)
	assert.Equal(t, 5, g.StockQuantity)
	assert.Equal(t, 100.0, *variants[0].Price)
}
