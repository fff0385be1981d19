// Package feedcache keeps rendered feed pages for a fixed TTL.
//
// Entries are never invalidated by writes: a page may be served up to TTL
// stale in exchange for cheap repeated reads. Keys carry the endpoint and
// the requested page number so distinct pages never collide.
package feedcache

import (
	"sync"
	"time"
)

type entry struct {
	body    []byte
	expires time.Time
}

type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// New builds a cache with the given TTL. now is the clock; pass nil for
// time.Now.
func New(ttl time.Duration, now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now, entries: make(map[string]entry)}
}

// Get returns the cached body for key if it has not expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.body, true
}

// Set stores body under key for one TTL from now. Concurrent writers race
// last-write-wins; recomputing a feed page is idempotent so the race is
// harmless. Each Set also sweeps expired entries, so keys that are written
// once and never read again cannot accumulate.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry{body: body, expires: now.Add(c.ttl)}
}

// Len reports the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
