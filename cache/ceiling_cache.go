package ceiling_cache

import (
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// ── Price-ceiling sample cache ───────────────────────────────────────────────
// Caches the maximum price found in the large background sample, keyed by
// the filter context (category|brand|inStock|condition|currency). Price
// bounds and search text are deliberately not part of the key: the
// ceiling must not chase the user's own slider.

type sampleEntry struct {
	max       float64
	fetchedAt time.Time
}

var (
	sampleMu    sync.RWMutex
	sampleCache = map[string]sampleEntry{}
)

func Get(key string) (float64, bool) {
	sampleMu.RLock()
	defer sampleMu.RUnlock()
	if entry, ok := sampleCache[key]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.max, true
	}
	return 0, false
}

func Set(key string, max float64) {
	sampleMu.Lock()
	defer sampleMu.Unlock()
	sampleCache[key] = sampleEntry{max: max, fetchedAt: time.Now()}
}

// ── Invalidate everything (used by tests and on upstream config change) ──────

func Invalidate() {
	sampleMu.Lock()
	sampleCache = map[string]sampleEntry{}
	sampleMu.Unlock()
}
