package insights_cache

import (
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// ── AI response cache ────────────────────────────────────────────────────────
// Generated insights and forecasts are cached per operation+period so a
// dashboard re-render within the TTL does not re-bill the provider quota.
// A manual refresh bypasses the cache and overwrites the entry.

type entry struct {
	text      string
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache = map[string]entry{}
)

func Get(key string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := cache[key]
	if ok && time.Since(e.fetchedAt) < TTL {
		return e.text, true
	}
	return "", false
}

func Set(key, text string) {
	mu.Lock()
	defer mu.Unlock()
	cache[key] = entry{text: text, fetchedAt: time.Now()}
}

// Invalidate drops every cached response (call when the entity snapshot
// changes materially).
func Invalidate() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[string]entry{}
}
