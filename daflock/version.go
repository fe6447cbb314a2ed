package daflock

import "sync"

// VersionCounters is the monotonic per-artifact version counter store
// backends use to invalidate Cache entries. On a cold open all counters
// start at 1 (spec §6): "not present yet" and "present at 1" are the same
// observable state, so Get never distinguishes them.
type VersionCounters struct {
	mu       sync.Mutex
	counters map[DataKey]uint32
}

// NewVersionCounters constructs a cold counter store (every key reads 1).
func NewVersionCounters() *VersionCounters {
	return &VersionCounters{counters: make(map[DataKey]uint32)}
}

// Get returns key's current counter value, 1 if it has never been
// incremented.
func (v *VersionCounters) Get(key DataKey) uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	if counter, ok := v.counters[key]; ok {
		return counter
	}

	return 1
}

// Increment bumps key's counter and returns the new value. Wraparound is
// defined (plain uint32 arithmetic) but not expected in practice (spec §3).
func (v *VersionCounters) Increment(key DataKey) uint32 {
	v.mu.Lock()
	defer v.mu.Unlock()

	counter, ok := v.counters[key]
	if !ok {
		counter = 1
	}
	counter++
	v.counters[key] = counter

	return counter
}
