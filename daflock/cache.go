package daflock

import "sync"

// cacheEntry pairs a memoized value with the version stamp it was
// computed against.
type cacheEntry struct {
	value interface{}
	stamp uint64
}

// Cache memoizes derived artifacts keyed by DataKey. Each entry is
// stamped with the version counter(s) it was computed against; Get
// reports a miss whenever the caller's current stamp has moved on,
// letting callers recompute lazily rather than proactively invalidate
// every related key on every mutation (spec §4.2, §9).
type Cache struct {
	mu      sync.Mutex
	entries map[DataKey]cacheEntry
}

// NewCache constructs an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[DataKey]cacheEntry)}
}

// Get returns the memoized value for key if present and still stamped
// with the given version, reporting a miss otherwise.
func (c *Cache) Get(key DataKey, stamp uint64) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || entry.stamp != stamp {
		return nil, false
	}

	return entry.value, true
}

// Set memoizes value for key under the given version stamp, replacing
// any prior entry.
func (c *Cache) Set(key DataKey, stamp uint64, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{value: value, stamp: stamp}
}

// Invalidate drops any memoized entry for key outright, for call sites
// that know a stamp comparison would be wasted work (e.g. deletion).
func (c *Cache) Invalidate(key DataKey) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}
