package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/catalog"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/config"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main drives a live catalog session against the gadgets API from the
// command line. Usage: go run cmd/browse/main.go -category=phones -pages=2
// This is a standalone CLI tool, not part of the main application.
func main() {
	category := flag.String("category", "", "category filter")
	brand := flag.String("brand", "", "brand filter")
	condition := flag.String("condition", "", "condition filter")
	inStock := flag.String("instock", "", "true | false | empty for all-products mode")
	currency := flag.String("currency", "gbp", "gbp | mwk")
	sortKey := flag.String("sort", "", "price_low | price_high | newest | rating | condition")
	search := flag.String("search", "", "search query (uses the search endpoint)")
	pages := flag.Int("pages", 1, "number of pages to load")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("GADGETHUB - Catalog Browser")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	filters := models.FilterState{
		Currency: models.Currency(*currency),
		Sort:     *sortKey,
	}
	if *category != "" {
		filters.Category = category
	}
	if *brand != "" {
		filters.Brand = brand
	}
	if *condition != "" {
		filters.Condition = condition
	}
	switch *inStock {
	case "true":
		v := true
		filters.InStock = &v
	case "false":
		v := false
		filters.InStock = &v
	case "":
		// all-products mode: page 1 comes back randomized
	default:
		log.Fatalf("invalid -instock value %q", *inStock)
	}

	client := gadgetsapi.NewClient(config.GadgetsAPIURL(), config.GadgetsAPITimeout())
	session := catalog.NewSession(client, filters, config.ItemsPerPage())

	if *search != "" {
		session.SetSearch(*search)
		// let the debounce window elapse so the search actually dispatches
		time.Sleep(400 * time.Millisecond)
	}

	for page := 2; page <= *pages; page++ {
		session.AwaitIdle(15 * time.Second)
		session.NextPage()
	}

	snap := session.AwaitIdle(15 * time.Second)
	if snap.Error != "" {
		fmt.Println("❌", snap.Error)
		os.Exit(1)
	}

	fmt.Printf("page %d · %d of %d gadget(s)\n\n", snap.Page, len(snap.Items), snap.Total)
	for _, item := range snap.Items {
		printGadget(item, filters.Currency)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	ceiling := session.PriceCeiling(ctx)
	fmt.Printf("\nprice ceiling (%s): %.2f\n", ceiling.Currency, ceiling.Ceiling)
}

func printGadget(item models.DerivedGadget, currency models.Currency) {
	name := item.Name
	if name == "" {
		name = item.Title
	}

	price := "—"
	if p := item.PriceIn(currency); p != nil {
		price = fmt.Sprintf("%.2f", *p)
	}

	flags := ""
	if item.IsPreOrder {
		flags = " [pre-order]"
	}
	if item.HasVariants {
		flags += fmt.Sprintf(" [%d variant(s), %d active in stock]", item.VariantCount, item.ActiveVariantCount)
	}

	fmt.Printf("  %-40s %10s  stock=%d%s\n", name, price, item.StockQuantity, flags)
}
