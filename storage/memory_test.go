package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// TestScalarRoundTrip covers spec scenario 1: set/get/delete round-trip.
func TestScalarRoundTrip(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.False(t, ds.HasScalar("version"))

	require.NoError(t, ds.SetScalar("version", "1.0"))
	require.True(t, ds.HasScalar("version"))

	value, err := ds.GetScalar("version")
	require.NoError(t, err)
	require.Equal(t, "1.0", value)

	require.NoError(t, ds.DeleteScalar("version", false))
	require.False(t, ds.HasScalar("version"))

	_, err = ds.GetScalar("version")
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrNotFound))
}

func TestMissingScalarMessage(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	_, err := ds.GetScalar("version")
	require.EqualError(t, err, "missing scalar: version\nin the daf data: cells")
}

func TestAxisAndVectorRoundTrip(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2", "c3"}))

	n, err := ds.AxisLength("cell")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	entries, err := ds.AxisEntries("cell")
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c2", "c3"}, entries)

	v := storage.NewFloat64Vector([]float64{1, 2, 3})
	require.NoError(t, ds.SetVector("cell", "age", v))

	got, err := ds.GetVector("cell", "age")
	require.NoError(t, err)
	length, err := got.Len()
	require.NoError(t, err)
	require.Equal(t, 3, length)
}

// TestVectorLengthMismatchMessage covers spec scenario 2.
func TestVectorLengthMismatchMessage(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2", "c3"}))

	v := storage.NewFloat64Vector([]float64{1, 2})
	err := ds.SetVector("cell", "age", v)
	require.EqualError(t, err, "value length: 2 is different from axis: cell length: 3")
}

func TestMatrixRoundTripAndShapeMismatch(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}))
	require.NoError(t, ds.AddAxis("gene", []string{"g1", "g2", "g3"}))

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, ds.SetMatrix("cell", "gene", "umis", m))
	require.True(t, ds.HasMatrix("cell", "gene", "umis", false))

	bad, err := storage.NewDenseMatrix(dtype.Float64, 3, 3, dtype.RowMajor)
	require.NoError(t, err)
	err = ds.SetMatrix("cell", "gene", "bad", bad)
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrShapeMismatch))
}

func TestMatrixRelayoutViaFormat(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}))
	require.NoError(t, ds.AddAxis("gene", []string{"g1", "g2", "g3"}))

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7.0))
	require.NoError(t, ds.SetMatrix("cell", "gene", "umis", m))

	relayed, err := ds.Relayout("cell", "gene", "umis")
	require.NoError(t, err)
	require.Equal(t, m.Layout().Transpose(), relayed.Layout())

	value, err := relayed.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, value)
}

func TestDeleteAxisCascadesVectorsAndMatrices(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}))
	require.NoError(t, ds.AddAxis("gene", []string{"g1"}))

	v := storage.NewFloat64Vector([]float64{1, 2})
	require.NoError(t, ds.SetVector("cell", "age", v))

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 1, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, ds.SetMatrix("cell", "gene", "umis", m))

	require.NoError(t, ds.DeleteAxis("cell", false))
	require.False(t, ds.HasVector("cell", "age"))
	require.False(t, ds.HasMatrix("cell", "gene", "umis", false))
}

func TestVersionCountersStartAtOneAndIncrement(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	key := daflock.ScalarNamesKey()
	require.EqualValues(t, 1, ds.VersionCounter(key))

	require.NoError(t, ds.SetScalar("x", 1))
	require.Greater(t, ds.VersionCounter(key), uint32(1))
}

func TestPendingDenseVectorFillAndSeal(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2", "c3"}))

	pending, err := ds.GetEmptyDenseVector("cell", "age", dtype.Float64)
	require.NoError(t, err)
	require.NoError(t, pending.Set(0, 1.0))
	require.NoError(t, pending.Set(1, 2.0))
	require.NoError(t, pending.Set(2, 3.0))
	require.NoError(t, pending.Seal())

	got, err := ds.GetVector("cell", "age")
	require.NoError(t, err)
	value, err := got.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, value)
}

func TestPendingDenseMatrixFillAndSeal(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}))
	require.NoError(t, ds.AddAxis("gene", []string{"g1", "g2"}))

	pending, err := ds.GetEmptyDenseMatrix("cell", "gene", "umis", dtype.Float64, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, pending.Set(0, 0, 1.0))
	require.NoError(t, pending.Set(1, 1, 4.0))
	require.NoError(t, pending.Seal())

	got, err := ds.GetMatrix("cell", "gene", "umis")
	require.NoError(t, err)
	value, err := got.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, value)
}

func TestPendingSparseMatrixFillAndSealReportsDeclaredIndexKind(t *testing.T) {
	t.Parallel()

	ds := storage.NewMemoryDataset("cells")
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}))
	require.NoError(t, ds.AddAxis("gene", []string{"g1", "g2"}))

	pending, err := ds.GetEmptySparseMatrix("cell", "gene", "umis", dtype.Float64, dtype.RowMajor, 1, dtype.IndexInt32)
	require.NoError(t, err)
	require.NoError(t, pending.AppendToMajor(0, 1.0))
	require.NoError(t, pending.CloseMajor())
	require.NoError(t, pending.CloseMajor())
	require.NoError(t, pending.Seal())

	got, err := ds.GetMatrix("cell", "gene", "umis")
	require.NoError(t, err)
	require.Equal(t, dtype.IndexInt32, got.Layout().Storage.Index)
}
