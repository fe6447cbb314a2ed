package daflock_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
)

// TestReentrantWriteLock covers invariant 7 (spec §8): N nested
// write_lock/write_unlock pairs balance, and after the outermost unlock
// another goroutine can acquire the write lock.
func TestReentrantWriteLock(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	const depth = 5

	for i := 0; i < depth; i++ {
		require.NoError(t, l.Lock())
	}
	require.True(t, l.HasWriteLock())

	for i := 0; i < depth; i++ {
		l.Unlock()
	}
	require.False(t, l.HasWriteLock())

	acquired := make(chan struct{})
	go func() {
		require.NoError(t, l.Lock())
		defer l.Unlock()
		close(acquired)
	}()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second goroutine never acquired the write lock")
	}
}

// TestForbiddenUpgrade covers invariant 8: acquiring a write lock while
// the current goroutine holds only a read lock fails deterministically.
func TestForbiddenUpgrade(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	require.NoError(t, l.RLock())
	defer l.RUnlock()

	err := l.Lock()
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrLockMisuse))
	require.False(t, l.HasWriteLock())
}

// TestWriterMayNestReads covers the write-lock holder nesting further
// read acquisitions on top of its own write lock (spec §4.2).
func TestWriterMayNestReads(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	require.NoError(t, l.Lock())
	defer l.Unlock()

	require.NoError(t, l.RLock())
	require.True(t, l.HasReadLock())
	l.RUnlock()

	require.True(t, l.HasWriteLock())
}

// TestConcurrentReaders covers multiple goroutines simultaneously holding
// a read lock.
func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	const readers = 20

	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.NoError(t, l.RLock())
			defer l.RUnlock()
			time.Sleep(time.Millisecond)
		}()
	}
	wg.Wait()
}

// TestWriteBlocksUntilReadersRelease covers spec §8 scenario 6: a writer
// blocks while a reader holds the lock, then proceeds once it releases,
// and the reader's subsequent read observes the writer's update.
func TestWriteBlocksUntilReadersRelease(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	shared := 0

	require.NoError(t, l.RLock())

	writerDone := make(chan struct{})
	go func() {
		require.NoError(t, l.Lock())
		shared = 1
		l.Unlock()
		close(writerDone)
	}()

	// Give the writer a chance to block on the still-held read lock.
	time.Sleep(10 * time.Millisecond)
	select {
	case <-writerDone:
		t.Fatal("writer proceeded while a reader still held the lock")
	default:
	}

	l.RUnlock()

	select {
	case <-writerDone:
	case <-time.After(time.Second):
		t.Fatal("writer never proceeded after the reader released")
	}

	require.NoError(t, l.RLock())
	defer l.RUnlock()
	require.Equal(t, 1, shared)
}

// TestWithLockHelpersReleaseOnPanic covers the with-lock helpers'
// guarantee of release on every exit path, including a panic inside f.
func TestWithLockHelpersReleaseOnPanic(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()

	require.Panics(t, func() {
		_ = l.WithWriteLock(func() error {
			panic("boom")
		})
	})
	require.False(t, l.HasWriteLock())

	require.Panics(t, func() {
		_ = l.WithReadLock(func() error {
			panic("boom")
		})
	})
	require.False(t, l.HasReadLock())
}

// TestUnmatchedUnlockPanics documents that releasing a lock never held is
// a programming error, matching sync.Mutex's own misuse policy.
func TestUnmatchedUnlockPanics(t *testing.T) {
	t.Parallel()

	l := daflock.NewRWMutex()
	require.Panics(t, func() { l.Unlock() })
	require.Panics(t, func() { l.RUnlock() })
}
