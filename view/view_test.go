package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dataset"
	"github.com/tanaylab/daf-go/storage"
	"github.com/tanaylab/daf-go/view"
)

func newSource(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(storage.NewMemoryDataset("cells"))
	require.NoError(t, ds.SetScalar("version", "1.0", false))
	require.NoError(t, ds.AddAxis("cell", []string{"c1", "c2", "c3"}, false))
	require.NoError(t, ds.SetVector("cell", "umis", storage.NewFloat64Vector([]float64{1, 2, 3}), false))
	return ds
}

func TestViewRenamesAxisAndVector(t *testing.T) {
	t.Parallel()

	source := newSource(t)
	v := view.NewBuilder().
		Axis("obs", "cell").
		Vector("count", "umis").
		New("projected", source)

	require.True(t, v.HasAxis("obs"))
	require.False(t, v.HasAxis("cell"))

	entries, err := v.AxisEntries("obs")
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c2", "c3"}, entries)

	vector, err := v.GetVector("obs", "count")
	require.NoError(t, err)
	values, ok := vector.Float64s()
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, values)
}

func TestViewUnknownAliasIsMissing(t *testing.T) {
	t.Parallel()

	source := newSource(t)
	v := view.NewBuilder().Axis("obs", "cell").New("projected", source)

	_, err := v.AxisEntries("nope")
	require.Error(t, err)
	require.Equal(t, "missing axis: nope\nin the daf data: projected", err.Error())
}

func TestViewScalarAlias(t *testing.T) {
	t.Parallel()

	source := newSource(t)
	v := view.NewBuilder().Scalar("schema_version", "version").New("projected", source)

	require.True(t, v.HasScalar("schema_version"))
	value, err := v.GetScalar("schema_version")
	require.NoError(t, err)
	require.Equal(t, "1.0", value)

	require.False(t, v.HasScalar("version"))
}

func TestViewDoesNotExposeMutation(t *testing.T) {
	t.Parallel()

	source := newSource(t)
	v := view.NewBuilder().Axis("obs", "cell").New("projected", source)

	// view.View has no Set*/Delete* methods at all; it only implements
	// dataset.Reader. This assertion documents that statically.
	var _ dataset.Reader = v
}
