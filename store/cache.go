package store

import (
	"sync"
	"time"

	"github.com/Peter6188/tb-visualization-dashboard-V2/schema"
)

// memoCache holds filter results keyed by the canonical selection key. The
// source data never changes during the process lifetime, so entries are
// only ever replaced by identical values; the optional TTL exists to bound
// memory on long-running servers, not for correctness.
type memoCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]memoEntry
	now     func() time.Time
}

type memoEntry struct {
	rows      []schema.Observation
	expiresAt time.Time
}

func newMemoCache(ttl time.Duration) *memoCache {
	return &memoCache{
		ttl:     ttl,
		entries: make(map[string]memoEntry),
		now:     time.Now,
	}
}

func (c *memoCache) get(key string) ([]schema.Observation, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.rows, true
}

func (c *memoCache) put(key string, rows []schema.Observation) {
	entry := memoEntry{rows: rows}
	if c.ttl > 0 {
		entry.expiresAt = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}
