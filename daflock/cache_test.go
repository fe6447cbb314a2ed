package daflock_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/daflock"
)

func TestCacheHitMiss(t *testing.T) {
	t.Parallel()

	c := daflock.NewCache()
	key := daflock.VectorKey("cell", "age")

	_, ok := c.Get(key, 1)
	require.False(t, ok, "empty cache must miss")

	c.Set(key, 1, []int{0, 1, 2})
	value, ok := c.Get(key, 1)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2}, value)

	// A stale stamp (the artifact mutated since) is a miss even though an
	// entry exists.
	_, ok = c.Get(key, 2)
	require.False(t, ok, "stale stamp must miss")
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()

	c := daflock.NewCache()
	key := daflock.ScalarNamesKey()

	c.Set(key, 1, []string{"version"})
	c.Invalidate(key)

	_, ok := c.Get(key, 1)
	require.False(t, ok)
}
