package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dtype"
)

// buildTestSparse builds a 2x3 row-major sparse matrix with entries
// (0,0)=1, (0,2)=2, (1,1)=3, filled directly (bypassing the exported
// fill-in-place protocol, which is exercised at the Format level).
func buildTestSparse(t *testing.T) *sparseMatrix {
	t.Helper()
	s := newEmptySparseMatrix(dtype.Float64, 2, 3, dtype.RowMajor, dtype.IndexInt32, 3)
	s.ind = []int{0, 2, 1}
	s.data = []float64{1, 2, 3}
	s.indptr = []int{0, 2, 3}
	return s
}

func TestSparseMatrixAt(t *testing.T) {
	t.Parallel()

	s := buildTestSparse(t)

	value, err := s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, value)

	value, err = s.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, value)

	value, err = s.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 3.0, value)

	value, err = s.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, value)
}

func TestSparseMatrixCSRZeroCopy(t *testing.T) {
	t.Parallel()

	s := buildTestSparse(t)
	csr, err := s.csrFloat64()
	require.NoError(t, err)
	rows, cols := csr.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, 1.0, csr.At(0, 0))
}

func TestSparseMatrixRelayoutLaws(t *testing.T) {
	t.Parallel()

	s := buildTestSparse(t)
	relayed := s.relayout()

	require.Equal(t, s.cols, relayed.rows)
	require.Equal(t, s.rows, relayed.cols)
	require.Equal(t, s.major.Flip(), relayed.major)

	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			original, err := s.At(row, col)
			require.NoError(t, err)
			transposed, err := relayed.At(col, row)
			require.NoError(t, err)
			require.Equal(t, original, transposed)
		}
	}
}

func TestSparseMatrixClone(t *testing.T) {
	t.Parallel()

	s := buildTestSparse(t)
	clone := s.clone()
	clone.data.([]float64)[0] = 99

	original, err := s.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, original)
}
