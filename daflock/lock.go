package daflock

import (
	"sync"

	"github.com/tanaylab/daf-go/daferr"
)

// RWMutex is a reentrant readers-writer lock (spec §4.2, §5).
//
//   - Multiple goroutines may simultaneously hold a read lock.
//   - Only one goroutine at a time may hold the write lock; while it does,
//     no other goroutine holds any lock.
//   - A goroutine holding the write lock may nest further write or read
//     acquisitions; depth is tracked per goroutine.
//   - Acquiring the write lock while the calling goroutine holds only a
//     read lock is a programming error (LockMisuse), not a deadlock.
//   - The underlying blocking primitive is released only when the
//     outermost nesting level drops to zero.
type RWMutex struct {
	mu         sync.Mutex
	cond       *sync.Cond
	writer     goroutineID
	writeDepth int
	readers    map[goroutineID]int
}

// NewRWMutex constructs an unlocked RWMutex.
func NewRWMutex() *RWMutex {
	l := &RWMutex{readers: make(map[goroutineID]int)}
	l.cond = sync.NewCond(&l.mu)

	return l
}

// Lock acquires the write lock, blocking until no other goroutine holds
// any lock. Nested acquisition by the current writer succeeds immediately.
// Acquiring while the caller holds only a read lock returns LockMisuse.
func (l *RWMutex) Lock() error {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == gid {
		l.writeDepth++
		return nil
	}
	if l.readers[gid] > 0 {
		return daferr.LockMisusef("attempted to acquire write lock while holding only a read lock")
	}
	for l.writer != 0 || len(l.readers) > 0 {
		l.cond.Wait()
	}
	l.writer = gid
	l.writeDepth = 1

	return nil
}

// Unlock releases one level of write-lock nesting. It panics if the
// calling goroutine does not hold the write lock — an unmatched unlock is
// a programming error, matching sync.Mutex's own panic-on-misuse policy.
func (l *RWMutex) Unlock() {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer != gid {
		panic(daferr.LockMisusef("Unlock called by a goroutine that does not hold the write lock"))
	}
	l.writeDepth--
	if l.writeDepth == 0 {
		l.writer = 0
		l.cond.Broadcast()
	}
}

// RLock acquires a read lock, blocking only while another goroutine holds
// the write lock. The write-lock holder may freely nest read locks on
// top of its own write lock.
func (l *RWMutex) RLock() error {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.writer == gid {
		l.readers[gid]++
		return nil
	}
	if l.readers[gid] > 0 {
		l.readers[gid]++
		return nil
	}
	for l.writer != 0 {
		l.cond.Wait()
	}
	l.readers[gid]++

	return nil
}

// RUnlock releases one level of read-lock nesting. It panics on an
// unmatched unlock, matching Unlock's policy.
func (l *RWMutex) RUnlock() {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.readers[gid] == 0 {
		panic(daferr.LockMisusef("RUnlock called by a goroutine that does not hold a read lock"))
	}
	l.readers[gid]--
	if l.readers[gid] == 0 {
		delete(l.readers, gid)
		if len(l.readers) == 0 {
			l.cond.Broadcast()
		}
	}
}

// HasWriteLock reports whether the calling goroutine currently holds the
// write lock, without blocking.
func (l *RWMutex) HasWriteLock() bool {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writer == gid
}

// HasReadLock reports whether the calling goroutine currently holds a
// read lock (including implicitly, via holding the write lock), without
// blocking.
func (l *RWMutex) HasReadLock() bool {
	gid := currentGoroutineID()

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.writer == gid || l.readers[gid] > 0
}

// WithReadLock runs f under a read lock, guaranteeing release on every
// exit path including a panic inside f.
func (l *RWMutex) WithReadLock(f func() error) error {
	if err := l.RLock(); err != nil {
		return err
	}
	defer l.RUnlock()

	return f()
}

// WithWriteLock runs f under the write lock, guaranteeing release on
// every exit path including a panic inside f.
func (l *RWMutex) WithWriteLock(f func() error) error {
	if err := l.Lock(); err != nil {
		return err
	}
	defer l.Unlock()

	return f()
}
