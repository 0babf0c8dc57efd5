package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
)

// searchDebounce is how long live-search input must stay idle before the
// remote search is dispatched. A fresh keystroke restarts the window.
const searchDebounce = 300 * time.Millisecond

// Snapshot is the externally observable session state at one instant.
type Snapshot struct {
	Items       []models.DerivedGadget `json:"items"`
	Total       int                    `json:"total"`
	Page        int                    `json:"page"`
	Loading     bool                   `json:"loading"`
	Error       string                 `json:"error,omitempty"`
	SearchQuery string                 `json:"search_query,omitempty"`
}

// Session owns the state of one catalog view: the active filters, the
// cumulative item list, the page cursor, and the search box. All fetches
// run through it; a generation counter makes the most recent filter
// change authoritative, so a stale fetch that resolves late is discarded
// instead of overwriting newer state.
type Session struct {
	mu      sync.Mutex
	source  gadgetsapi.Source
	ceiling *CeilingResolver

	filters      models.FilterState
	itemsPerPage int

	items       []models.DerivedGadget
	total       int
	page        int
	searchQuery string
	loading     bool
	errMsg      string

	generation    uint64
	debounce      *time.Timer
	debounceDelay time.Duration
}

// NewSession creates a session and starts the initial page-1 fetch under
// the given filters.
func NewSession(source gadgetsapi.Source, filters models.FilterState, itemsPerPage int) *Session {
	if itemsPerPage < 1 {
		itemsPerPage = 12
	}

	s := &Session{
		source:        source,
		ceiling:       NewCeilingResolver(source),
		itemsPerPage:  itemsPerPage,
		debounceDelay: searchDebounce,
	}

	s.mu.Lock()
	s.filters = filters
	s.searchQuery = filters.Search
	s.resetAndFetchLocked()
	s.mu.Unlock()

	return s
}

// SetFilters replaces the filter context. A change that only touches the
// sort key while the user is still on page 1 is applied client-side;
// anything else clears the list, resets to page 1, and refetches. An
// in-flight fetch from the previous context can no longer land.
func (s *Session) SetFilters(filters models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sortOnly := filters.EqualExceptSort(s.filters) &&
		s.page == 1 &&
		strings.TrimSpace(s.searchQuery) == "" &&
		!s.loading

	if sortOnly {
		s.filters = filters
		// In all-products mode the page is randomized, not sorted, so a
		// nominal sort-key change leaves the order alone.
		if filters.InStock != nil {
			s.items = Sort(s.items, sortKeyOrDefault(filters.Sort))
		}
		return
	}

	s.stopDebounceLocked()
	s.filters = filters
	s.searchQuery = filters.Search
	s.resetAndFetchLocked()
}

// NextPage advances the cursor and fetches that page; results append to
// the cumulative list in server order.
func (s *Session) NextPage() {
	s.mu.Lock()
	s.page++
	target := s.page
	gen := s.generation
	s.loading = true
	s.mu.Unlock()

	go s.fetchList(gen, target, false)
}

// PrevPage retreats the cursor, truncating the cumulative list locally.
// No network call is made.
func (s *Session) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.page <= 1 {
		return
	}
	s.page--

	keep := s.page * s.itemsPerPage
	if len(s.items) > keep {
		s.items = s.items[:keep]
	}
}

// SetSearch records a live-search keystroke. The query is visible in the
// snapshot immediately, but the remote search only fires after the input
// has been idle for the debounce window. Clearing the query re-fetches
// the plain catalog immediately, without debouncing.
func (s *Session) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.searchQuery
	s.searchQuery = query

	if strings.TrimSpace(query) == "" {
		s.stopDebounceLocked()
		if strings.TrimSpace(previous) == "" {
			return
		}
		s.resetAndFetchLocked()
		return
	}

	s.stopDebounceLocked()
	s.debounce = time.AfterFunc(s.debounceDelay, func() {
		s.dispatchSearch(query)
	})
}

// ClearSearch drops the query and restores the filtered catalog.
func (s *Session) ClearSearch() {
	s.SetSearch("")
}

// Snapshot returns a copy of the observable state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items:       append([]models.DerivedGadget(nil), s.items...),
		Total:       s.total,
		Page:        s.page,
		Loading:     s.loading,
		Error:       s.errMsg,
		SearchQuery: s.searchQuery,
	}
}

// Filters returns the active filter context.
func (s *Session) Filters() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// PriceCeiling resolves the price-range ceiling for the active context
// and the currently loaded items.
func (s *Session) PriceCeiling(ctx context.Context) models.PriceCeilingData {
	s.mu.Lock()
	filters := s.filters
	page := append([]models.DerivedGadget(nil), s.items...)
	s.mu.Unlock()

	return models.PriceCeilingData{
		Currency: filters.Currency.OrDefault(),
		Ceiling:  s.ceiling.Resolve(ctx, filters, page),
	}
}

// AwaitIdle polls until no fetch is in flight or the timeout elapses,
// returning the latest snapshot either way. The HTTP facade uses it so
// callers see settled state; a still-loading snapshot is a legal result.
func (s *Session) AwaitIdle(timeout time.Duration) Snapshot {
	deadline := time.Now().Add(timeout)
	for {
		snap := s.Snapshot()
		if !snap.Loading || time.Now().After(deadline) {
			return snap
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// ── internals ────────────────────────────────────────────────────────────────

// resetAndFetchLocked clears the observable list state, bumps the fetch
// generation so older in-flight fetches are orphaned, and starts a fresh
// page-1 fetch. Caller holds the mutex.
func (s *Session) resetAndFetchLocked() {
	s.generation++
	gen := s.generation

	s.items = nil
	s.total = 0
	s.page = 1
	s.loading = true
	s.errMsg = ""

	go s.fetchList(gen, 1, true)
}

func (s *Session) stopDebounceLocked() {
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
}

// fetchList fetches one catalog page and folds it into session state,
// unless a newer generation has superseded this fetch by the time it
// resolves.
func (s *Session) fetchList(gen uint64, page int, fresh bool) {
	s.mu.Lock()
	filters := s.filters
	limit := s.itemsPerPage
	s.mu.Unlock()

	// Listing never carries the live-search text; search goes through
	// the dedicated endpoint.
	filters.Search = ""

	result, err := s.source.List(context.Background(), filters, page, limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return // superseded by a newer filter change
	}

	if err != nil {
		s.items = nil
		s.total = 0
		s.loading = false
		s.errMsg = "Failed to load gadgets. Please try again."
		return
	}

	derived := AggregateAll(result.Gadgets)

	if fresh || page == 1 {
		// Page 1 of a fresh context: randomize in all-products mode,
		// otherwise apply the active sort. Later pages append in server
		// order so already-seen items never visibly reorder.
		if filters.InStock == nil {
			derived = Shuffle(derived)
		} else {
			derived = Sort(derived, sortKeyOrDefault(filters.Sort))
		}
		s.items = derived
	} else {
		s.items = append(s.items, derived...)
	}

	s.total = result.Total
	s.loading = false
	s.errMsg = ""
}

// dispatchSearch runs the remote search for a query that survived the
// debounce window.
func (s *Session) dispatchSearch(query string) {
	s.mu.Lock()
	if s.searchQuery != query {
		s.mu.Unlock()
		return // a newer keystroke or a clear superseded this timer
	}

	s.generation++
	gen := s.generation
	s.items = nil
	s.total = 0
	s.page = 1
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	results, err := s.source.Search(context.Background(), query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	if err != nil {
		s.items = nil
		s.total = 0
		s.loading = false
		s.errMsg = "Search failed. Please try again."
		return
	}

	// Reconcile: keep only records that actually match the query, in
	// case the upstream search over-returns.
	matched := make([]models.DerivedGadget, 0, len(results))
	for _, d := range AggregateAll(results) {
		if Matches(d, query) {
			matched = append(matched, d)
		}
	}

	s.items = matched
	s.total = len(matched)
	s.loading = false
	s.errMsg = ""
}

func sortKeyOrDefault(key string) string {
	if key == "" {
		return SortNewest
	}
	return key
}
