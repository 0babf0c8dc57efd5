package catalog

import (
	"context"
	"sync"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// fakeSource is a scriptable gadgetsapi.Source recording every call.
type fakeSource struct {
	mu sync.Mutex

	listFn   func(filters models.FilterState, page, limit int) (*gadgetsapi.ListResult, error)
	searchFn func(query string) ([]models.Gadget, error)

	listCalls   []listCall
	searchCalls []string
}

type listCall struct {
	filters models.FilterState
	page    int
	limit   int
}

func (f *fakeSource) List(_ context.Context, filters models.FilterState, page, limit int) (*gadgetsapi.ListResult, error) {
	f.mu.Lock()
	f.listCalls = append(f.listCalls, listCall{filters: filters, page: page, limit: limit})
	fn := f.listFn
	f.mu.Unlock()

	if fn == nil {
		return &gadgetsapi.ListResult{}, nil
	}
	return fn(filters, page, limit)
}

func (f *fakeSource) Search(_ context.Context, query string) ([]models.Gadget, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	fn := f.searchFn
	f.mu.Unlock()

	if fn == nil {
		return nil, nil
	}
	return fn(query)
}

func (f *fakeSource) listCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listCalls)
}

func (f *fakeSource) searchCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.searchCalls)
}

func (f *fakeSource) lastListCall() listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls[len(f.listCalls)-1]
}

// gadgetsPriced builds simple priced gadgets for list responses.
func gadgetsPriced(prices ...float64) []models.Gadget {
	out := make([]models.Gadget, len(prices))
	for i, p := range prices {
		price := p
		out[i] = models.Gadget{
			Name:          "gadget",
			Price:         &price,
			StockQuantity: 1,
		}
	}
	return out
}
