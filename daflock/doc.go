// Package daflock provides the per-dataset reentrant readers-writer lock
// and the version-stamped derived-artifact cache every daf-go backend is
// built on (spec §4.2, §5).
//
// RWMutex behaves like a sync.RWMutex with two differences required by
// the storage contract: a thread already holding the write lock may nest
// further read or write acquisitions (reentrancy), and acquiring the
// write lock while holding only a read lock is a programming error that
// fails deterministically rather than deadlocking (upgrade is forbidden).
// Go has no stable task-local storage, so ownership is tracked by
// goroutine identity in a mutex-guarded record instead — the §9 design
// note's documented fallback for runtimes without task-static threading.
//
// Cache memoizes derived arrays keyed by DataKey, each entry stamped with
// the version counter(s) it was computed against; VersionCounters is the
// monotonic per-artifact counter store that drives that invalidation.
package daflock
