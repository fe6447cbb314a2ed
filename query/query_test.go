package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tanaylab/daf-go/dataset"
	"github.com/tanaylab/daf-go/query"
	"github.com/tanaylab/daf-go/storage"
)

func newCellsDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds := dataset.New(storage.NewMemoryDataset("cells"))
	require.NoError(t, ds.AddAxis("cell", []string{"c0", "c1", "c2"}, false))
	require.NoError(t, ds.SetVector("cell", "signed", storage.NewFloat64Vector([]float64{-1, 2, -3}), false))
	require.NoError(t, ds.SetScalar("version", "1.0", false))
	return ds
}

func TestAbsEltwiseAppliesElementwise(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | Abs")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)

	vec, ok := result.(query.PipelineVector)
	require.True(t, ok)
	values, ok := vec.Vector.Float64s()
	require.True(t, ok)
	require.Equal(t, []float64{1, 2, 3}, values)
}

func registerIdentityFromOneSite() error {
	return query.RegisterEltwise("testOnlyIdentity", func(map[string]string) (query.EltwiseOp, error) {
		return nil, nil
	})
}

func TestReregistrationFromSameSiteIsNoop(t *testing.T) {
	t.Parallel()

	require.NoError(t, registerIdentityFromOneSite())
	require.NoError(t, registerIdentityFromOneSite())
}

func TestSumReducesVectorToScalar(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | Sum")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	require.Equal(t, -2.0, result)
}

func TestMeanReducesVectorToScalar(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | Mean")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	require.InDelta(t, -2.0/3.0, result.(float64), 1e-9)
}

func TestScalarSelector(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("scalar(version)")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	require.Equal(t, "1.0", result)
}

func TestProjectionSelectsOneEntry(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | @c1")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	require.Equal(t, 2.0, result)
}

func TestSliceByEntryNames(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | [c0, c2]")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	vec := result.(query.PipelineVector)
	values, ok := vec.Vector.Float64s()
	require.True(t, ok)
	require.Equal(t, []float64{-1, -3}, values)
}

func TestSliceByBooleanMask(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | [true, false, true]")
	require.NoError(t, err)

	result, err := query.Evaluate(q, ds)
	require.NoError(t, err)
	vec := result.(query.PipelineVector)
	values, ok := vec.Vector.Float64s()
	require.True(t, ok)
	require.Equal(t, []float64{-1, -3}, values)
}

func TestUnknownOperationFails(t *testing.T) {
	t.Parallel()

	ds := newCellsDataset(t)
	q, err := query.Parse("vec(cell, signed) | Nonexistent")
	require.NoError(t, err)

	_, err = query.Evaluate(q, ds)
	require.Error(t, err)
	require.Equal(t, "unknown pipeline operation: Nonexistent", err.Error())
}

func TestParseRejectsMalformedSelector(t *testing.T) {
	t.Parallel()

	_, err := query.Parse("vec(cell)")
	require.Error(t, err)
}

func TestConflictingRegistrationFromDifferentSite(t *testing.T) {
	t.Parallel()

	err := registerAbsFromHere()
	require.Error(t, err)
	require.Equal(t, "conflicting registrations for the eltwise operation: Abs", err.Error())
}

func registerAbsFromHere() error {
	return query.RegisterEltwise("Abs", func(map[string]string) (query.EltwiseOp, error) {
		return nil, nil
	})
}
