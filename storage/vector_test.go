package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

func TestVectorRoundTrip(t *testing.T) {
	t.Parallel()

	v := storage.NewFloat64Vector([]float64{1, 2, 3})
	n, err := v.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	value, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, value)

	require.NoError(t, v.Set(1, 9.0))
	value, err = v.At(1)
	require.NoError(t, err)
	require.Equal(t, 9.0, value)
}

func TestVectorSetTypeMismatch(t *testing.T) {
	t.Parallel()

	v := storage.NewInt32Vector([]int32{1, 2, 3})
	err := v.Set(0, "not an int32")
	require.Error(t, err)
}

func TestVectorFloat64s(t *testing.T) {
	t.Parallel()

	v := storage.NewFloat64Vector([]float64{1, 2, 3})
	values, ok := v.Float64s()
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, values)

	strs := storage.NewStringVector([]string{"a"})
	_, ok = strs.Float64s()
	require.False(t, ok)
}

func TestVectorClone(t *testing.T) {
	t.Parallel()

	v := storage.NewFloat64Vector([]float64{1, 2, 3})
	clone, err := v.Clone()
	require.NoError(t, err)

	require.NoError(t, clone.Set(0, 100.0))
	original, err := v.At(0)
	require.NoError(t, err)
	require.Equal(t, 1.0, original)
}

func TestBroadcastVector(t *testing.T) {
	t.Parallel()

	v, err := storage.BroadcastVector(dtype.Bool, 4, true)
	require.NoError(t, err)
	n, err := v.Len()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		value, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, true, value)
	}
}
