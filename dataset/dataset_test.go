package dataset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dataset"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

func newTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.New(storage.NewMemoryDataset("cells"))
}

func TestSetScalarRejectsOverwriteWithoutFlag(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	require.NoError(t, ds.SetScalar("version", "1.0", false))

	err := ds.SetScalar("version", "2.0", false)
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrAlreadyExists))

	require.NoError(t, ds.SetScalar("version", "2.0", true))
	value, err := ds.GetScalar("version")
	require.NoError(t, err)
	require.Equal(t, "2.0", value)
}

func TestAddAxisRejectsEmptyName(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	err := ds.AddAxis("", []string{"c1"}, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrInvalidArgument))
}

func TestAddAxisRejectsEmptyEntry(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	err := ds.AddAxis("cell", []string{"c1", ""}, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrInvalidArgument))
}

func TestAddAxisRejectsDuplicateEntry(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	err := ds.AddAxis("cell", []string{"c1", "c2", "c1"}, false)
	require.Error(t, err)
	require.True(t, errors.Is(err, daferr.ErrInvalidArgument))
}

func TestReadOnlyForwardsReadsOnly(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}, false))
	require.NoError(t, ds.SetScalar("version", "1.0", false))

	ro := dataset.NewReadOnly(ds)
	require.True(t, ro.HasAxis("cell"))

	value, err := ro.GetScalar("version")
	require.NoError(t, err)
	require.Equal(t, "1.0", value)
}

func TestCopyReplicatesEverything(t *testing.T) {
	t.Parallel()

	src := newTestDataset(t)
	require.NoError(t, src.SetScalar("version", "1.0", false))
	require.NoError(t, src.AddAxis("cell", []string{"c1", "c2"}, false))
	require.NoError(t, src.SetVector("cell", "age", storage.NewFloat64Vector([]float64{1, 2}), false))

	dst := newTestDataset(t)
	require.NoError(t, dataset.Copy(dst, dataset.NewReadOnly(src), false))

	value, err := dst.GetScalar("version")
	require.NoError(t, err)
	require.Equal(t, "1.0", value)

	vector, err := dst.GetVector("cell", "age")
	require.NoError(t, err)
	at, err := vector.At(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, at)
}

func TestConcatAppendsAlongJoinAxis(t *testing.T) {
	t.Parallel()

	batch1 := newTestDataset(t)
	require.NoError(t, batch1.AddAxis("cell", []string{"c1", "c2"}, false))
	require.NoError(t, batch1.SetVector("cell", "age", storage.NewFloat64Vector([]float64{1, 2}), false))

	batch2 := newTestDataset(t)
	require.NoError(t, batch2.AddAxis("cell", []string{"c3"}, false))
	require.NoError(t, batch2.SetVector("cell", "age", storage.NewFloat64Vector([]float64{3}), false))

	dst := newTestDataset(t)
	err := dataset.Concat(dst, "cell", []dataset.Reader{dataset.NewReadOnly(batch1), dataset.NewReadOnly(batch2)}, false)
	require.NoError(t, err)

	entries, err := dst.AxisEntries("cell")
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c2", "c3"}, entries)

	vector, err := dst.GetVector("cell", "age")
	require.NoError(t, err)
	n, err := vector.Len()
	require.NoError(t, err)
	require.Equal(t, 3, n)
	at, err := vector.At(2)
	require.NoError(t, err)
	require.Equal(t, 3.0, at)
}

func TestRelayoutMatrixInstallsSwappedAxisPair(t *testing.T) {
	t.Parallel()

	ds := newTestDataset(t)
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2"}, false))
	require.NoError(t, ds.AddAxis("gene", []string{"g1", "g2", "g3"}, false))

	m, err := storage.NewDenseMatrix(dtype.Float64, 2, 3, dtype.RowMajor)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 9.0))
	require.NoError(t, ds.SetMatrix("cell", "gene", "umis", m, false))

	relayed, err := ds.RelayoutMatrix("cell", "gene", "umis", false)
	require.NoError(t, err)
	require.True(t, ds.HasMatrix("gene", "cell", "umis"))

	value, err := relayed.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, value)
}
