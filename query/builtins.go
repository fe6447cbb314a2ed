package query

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
)

func init() {
	mustRegisterEltwise("Abs", newAbs)
	mustRegisterReduction("Sum", newSum)
	mustRegisterReduction("Mean", newMean)
}

func mustRegisterEltwise(name string, ctor EltwiseConstructor) {
	if err := RegisterEltwise(name, ctor); err != nil {
		panic(err)
	}
}

func mustRegisterReduction(name string, ctor ReductionConstructor) {
	if err := RegisterReduction(name, ctor); err != nil {
		panic(err)
	}
}

// absOp implements the eltwise Abs operation: |x| element-wise,
// preserving vector/matrix shape and element kind (spec §8 scenario 5).
// ApplyMatrix writes into a clone of the input, so it works on dense
// matrices only; a sparse input returns an error.
type absOp struct{}

func newAbs(params map[string]string) (EltwiseOp, error) { return absOp{}, nil }

func (absOp) ApplyScalar(value interface{}) (interface{}, error) {
	f, err := toFloat64(value)
	if err != nil {
		return nil, err
	}
	return math.Abs(f), nil
}

func (absOp) ApplyVector(value PipelineVector) (PipelineVector, error) {
	n, err := value.Vector.Len()
	if err != nil {
		return PipelineVector{}, err
	}
	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		f, err := value.Vector.Float64At(i)
		if err != nil {
			return PipelineVector{}, err
		}
		boxed, err := fromFloat64(value.Vector.Kind, math.Abs(f))
		if err != nil {
			return PipelineVector{}, err
		}
		out[i] = boxed
	}
	built, err := buildVector(value.Vector.Kind, out)
	if err != nil {
		return PipelineVector{}, err
	}
	return PipelineVector{Axis: value.Axis, Vector: built}, nil
}

func (absOp) ApplyMatrix(value PipelineMatrix) (PipelineMatrix, error) {
	rows, cols := value.Matrix.Layout().Rows, value.Matrix.Layout().Cols
	out := value.Matrix.Clone()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f, err := out.Float64At(i, j)
			if err != nil {
				return PipelineMatrix{}, err
			}
			boxed, err := fromFloat64(value.Matrix.Layout().Kind, math.Abs(f))
			if err != nil {
				return PipelineMatrix{}, err
			}
			if err := out.Set(i, j, boxed); err != nil {
				return PipelineMatrix{}, err
			}
		}
	}
	return PipelineMatrix{RowsAxis: value.RowsAxis, ColsAxis: value.ColsAxis, Matrix: out}, nil
}

// sumOp reduces a vector to the sum of its elements via
// gonum.org/v1/gonum/floats, or a matrix to a vector of per-column sums.
type sumOp struct{}

func newSum(params map[string]string) (ReductionOp, error) { return sumOp{}, nil }

func (sumOp) ReduceVector(value PipelineVector) (interface{}, error) {
	values, ok := value.Vector.Float64s()
	if !ok {
		return nil, daferr.TypeMismatchf("Sum", value.Vector.Kind.String(), dtype.Float64.String())
	}
	return floats.Sum(values), nil
}

func (sumOp) ReduceMatrix(value PipelineMatrix) (PipelineVector, error) {
	return reduceMatrixColumns(value, floats.Sum)
}

// meanOp reduces a vector to its arithmetic mean via
// gonum.org/v1/gonum/stat, or a matrix to a vector of per-column means.
type meanOp struct{}

func newMean(params map[string]string) (ReductionOp, error) { return meanOp{}, nil }

func (meanOp) ReduceVector(value PipelineVector) (interface{}, error) {
	values, ok := value.Vector.Float64s()
	if !ok {
		return nil, daferr.TypeMismatchf("Mean", value.Vector.Kind.String(), dtype.Float64.String())
	}
	return stat.Mean(values, nil), nil
}

func (meanOp) ReduceMatrix(value PipelineMatrix) (PipelineVector, error) {
	return reduceMatrixColumns(value, func(values []float64) float64 { return stat.Mean(values, nil) })
}

func reduceMatrixColumns(value PipelineMatrix, fn func([]float64) float64) (PipelineVector, error) {
	layout := value.Matrix.Layout()
	column := make([]float64, layout.Rows)
	out := make([]float64, layout.Cols)
	for j := 0; j < layout.Cols; j++ {
		for i := 0; i < layout.Rows; i++ {
			f, err := value.Matrix.Float64At(i, j)
			if err != nil {
				return PipelineVector{}, err
			}
			column[i] = f
		}
		out[j] = fn(column)
	}
	return PipelineVector{Axis: value.ColsAxis, Vector: newFloat64VectorAlias(out)}, nil
}
