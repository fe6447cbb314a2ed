package storage_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

func TestDenseMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))
	require.NoError(t, m.Set(1, 2, 5.0))

	value, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, value)

	value, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, value)
}

func TestMatrixRelayoutInvariants(t *testing.T) {
	t.Parallel()

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	require.NoError(t, err)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			require.NoError(t, m.Set(row, col, float64(row*10+col)))
		}
	}

	relayed := m.Relayout()

	require.Equal(t, m.Layout().Transpose(), relayed.Layout())

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			original, err := m.At(row, col)
			require.NoError(t, err)
			transposed, err := relayed.At(col, row)
			require.NoError(t, err)
			require.Equal(t, original, transposed, "relayout(M)[j,i] must equal M[i,j]")
		}
	}
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	t.Parallel()

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 2, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 99.0))

	original, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, original)
}

func TestMatrixRejectsStringKind(t *testing.T) {
	t.Parallel()

	_, err := storage.NewDenseMatrix(dtype.String, 2, 2, dtype.RowMajor)
	require.Error(t, err)
}

func TestMatrixSetOnSparseFails(t *testing.T) {
	t.Parallel()

	m, err := storage.NewSparseMatrix(dtype.Float64, 2, 2, dtype.RowMajor, dtype.IndexInt32, 0)
	require.NoError(t, err)

	err = m.Set(0, 0, 1.0)
	require.Error(t, err)
}

func TestSparseMatrixLayoutReportsDeclaredIndexKind(t *testing.T) {
	t.Parallel()

	m, err := storage.NewSparseMatrix(dtype.Float64, 2, 2, dtype.RowMajor, dtype.IndexInt32, 0)
	require.NoError(t, err)
	require.Equal(t, dtype.IndexInt32, m.Layout().Storage.Index)

	relayed := m.Relayout()
	require.Equal(t, dtype.IndexInt32, relayed.Layout().Storage.Index)
}

func TestMatrixGonumRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 2, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7.0))

	view, err := m.Gonum()
	require.NoError(t, err)
	require.Equal(t, 7.0, view.At(0, 1))
}
