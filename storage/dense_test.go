package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dtype"
)

func TestDenseMatrixMajorIndexing(t *testing.T) {
	t.Parallel()

	rowMajor := newDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	colMajor := newDenseMatrix(dtype.Float64, 2, 3, dtype.ColumnMajor)

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			value := float64(row*10 + col)
			require.NoError(t, rowMajor.Set(row, col, value))
			require.NoError(t, colMajor.Set(row, col, value))
		}
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			a, err := rowMajor.At(row, col)
			require.NoError(t, err)
			b, err := colMajor.At(row, col)
			require.NoError(t, err)
			require.Equal(t, a, b, "row-major and column-major matrices must agree on logical (row, col)")
		}
	}
}

func TestDenseMatrixRelayoutLaws(t *testing.T) {
	t.Parallel()

	m := newDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			require.NoError(t, m.Set(row, col, float64(row*10+col)))
		}
	}

	relayed := m.relayout()
	require.Equal(t, m.cols, relayed.rows)
	require.Equal(t, m.rows, relayed.cols)
	require.Equal(t, m.major.Flip(), relayed.major)

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			original, err := m.At(row, col)
			require.NoError(t, err)
			transposed, err := relayed.At(col, row)
			require.NoError(t, err)
			require.Equal(t, original, transposed)
		}
	}
}

func TestDenseMatrixGonumZeroCopyRowMajor(t *testing.T) {
	t.Parallel()

	m := newDenseMatrix(dtype.Float64, 2, 2, dtype.RowMajor)
	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(0, 1, 2.0))
	require.NoError(t, m.Set(1, 0, 3.0))
	require.NoError(t, m.Set(1, 1, 4.0))

	view, err := m.gonum()
	require.NoError(t, err)
	require.Equal(t, 1.0, view.At(0, 0))
	require.Equal(t, 2.0, view.At(0, 1))
	require.Equal(t, 4.0, view.At(1, 1))
}

func TestDenseMatrixGonumRejectsNonFloat64(t *testing.T) {
	t.Parallel()

	m := newDenseMatrix(dtype.Int32, 2, 2, dtype.RowMajor)
	_, err := m.gonum()
	require.Error(t, err)
}

func TestDenseMatrixClone(t *testing.T) {
	t.Parallel()

	m := newDenseMatrix(dtype.Float64, 2, 2, dtype.RowMajor)
	require.NoError(t, m.Set(0, 0, 5.0))

	clone := m.clone()
	require.NoError(t, clone.Set(0, 0, 9.0))

	original, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 5.0, original)
}
