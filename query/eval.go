package query

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dataset"
)

// Evaluate resolves q's selector against source and applies every
// pipeline step in order, returning the final scalar, PipelineVector,
// or PipelineMatrix as an interface{}.
func Evaluate(q *Query, source dataset.Reader) (interface{}, error) {
	v, err := resolveSelector(q.source, q.selector, source)
	if err != nil {
		return nil, err
	}
	for _, s := range q.steps {
		v, err = applyStep(q.source, s, v, source)
		if err != nil {
			return nil, err
		}
	}
	return unwrap(v), nil
}

func resolveSelector(expr string, sel selector, source dataset.Reader) (value, error) {
	switch sel.kind {
	case selectScalar:
		scalar, err := source.GetScalar(sel.name)
		if err != nil {
			return value{}, err
		}
		return value{Kind: kindScalar, Scalar: scalar}, nil
	case selectVector:
		vec, err := source.GetVector(sel.axis, sel.name)
		if err != nil {
			return value{}, err
		}
		return value{Kind: kindVector, Vector: PipelineVector{Axis: sel.axis, Vector: vec}}, nil
	case selectMatrix:
		mat, err := source.GetMatrix(sel.rowsAxis, sel.colsAxis, sel.name)
		if err != nil {
			return value{}, err
		}
		return value{Kind: kindMatrix, Matrix: PipelineMatrix{RowsAxis: sel.rowsAxis, ColsAxis: sel.colsAxis, Matrix: mat}}, nil
	default:
		return value{}, daferr.QueryParseErrorf(expr, "unrecognized selector kind")
	}
}

func unwrap(v value) interface{} {
	switch v.Kind {
	case kindScalar:
		return v.Scalar
	case kindVector:
		return v.Vector
	case kindMatrix:
		return v.Matrix
	default:
		return nil
	}
}

func applyStep(expr string, s step, v value, source dataset.Reader) (value, error) {
	switch s.kind {
	case stepProjection:
		return applyProjection(expr, s, v, source)
	case stepSlice:
		return applySlice(expr, s, v, source)
	case stepOperation:
		return applyOperation(s, v)
	default:
		return value{}, daferr.QueryParseErrorf(expr, "unrecognized pipeline step")
	}
}

func applyProjection(expr string, s step, v value, source dataset.Reader) (value, error) {
	if v.Kind != kindVector {
		return value{}, daferr.TypeMismatchf("projection", "non-vector", "vector")
	}
	entries, err := source.AxisEntries(v.Vector.Axis)
	if err != nil {
		return value{}, err
	}
	index, ok := indexOf(entries, s.entry)
	if !ok {
		return value{}, daferr.NotFoundf("axis entry", v.Vector.Axis+"@"+s.entry, expr)
	}
	scalar, err := v.Vector.Vector.At(index)
	if err != nil {
		return value{}, err
	}
	return value{Kind: kindScalar, Scalar: scalar}, nil
}

func indexOf(entries []string, target string) (int, bool) {
	for i, e := range entries {
		if e == target {
			return i, true
		}
	}
	return 0, false
}

func applySlice(expr string, s step, v value, source dataset.Reader) (value, error) {
	if v.Kind != kindVector {
		return value{}, daferr.TypeMismatchf("slice", "non-vector", "vector")
	}
	length, err := v.Vector.Vector.Len()
	if err != nil {
		return value{}, err
	}

	var keep []int
	if s.byMask {
		if len(s.mask) != length {
			return value{}, daferr.VectorLengthMismatch(len(s.mask), v.Vector.Axis, length)
		}
		for i, on := range s.mask {
			if on {
				keep = append(keep, i)
			}
		}
	} else {
		entries, err := source.AxisEntries(v.Vector.Axis)
		if err != nil {
			return value{}, err
		}
		for _, name := range s.entries {
			index, ok := indexOf(entries, name)
			if !ok {
				return value{}, daferr.NotFoundf("axis entry", v.Vector.Axis+"@"+name, expr)
			}
			keep = append(keep, index)
		}
	}

	out := make([]interface{}, len(keep))
	for i, idx := range keep {
		elem, err := v.Vector.Vector.At(idx)
		if err != nil {
			return value{}, err
		}
		out[i] = elem
	}
	built, err := buildVector(v.Vector.Vector.Kind, out)
	if err != nil {
		return value{}, err
	}
	return value{Kind: kindVector, Vector: PipelineVector{Axis: v.Vector.Axis, Vector: built}}, nil
}

func applyOperation(s step, v value) (value, error) {
	if _, ok := Eltwise.lookup(s.name); ok {
		op, err := lookupEltwise(s.name, s.params)
		if err != nil {
			return value{}, err
		}
		switch v.Kind {
		case kindScalar:
			result, err := op.ApplyScalar(v.Scalar)
			if err != nil {
				return value{}, err
			}
			return value{Kind: kindScalar, Scalar: result}, nil
		case kindVector:
			result, err := op.ApplyVector(v.Vector)
			if err != nil {
				return value{}, err
			}
			return value{Kind: kindVector, Vector: result}, nil
		case kindMatrix:
			result, err := op.ApplyMatrix(v.Matrix)
			if err != nil {
				return value{}, err
			}
			return value{Kind: kindMatrix, Matrix: result}, nil
		}
	}

	if _, ok := Reduction.lookup(s.name); ok {
		op, err := lookupReduction(s.name, s.params)
		if err != nil {
			return value{}, err
		}
		switch v.Kind {
		case kindVector:
			result, err := op.ReduceVector(v.Vector)
			if err != nil {
				return value{}, err
			}
			return value{Kind: kindScalar, Scalar: result}, nil
		case kindMatrix:
			result, err := op.ReduceMatrix(v.Matrix)
			if err != nil {
				return value{}, err
			}
			return value{Kind: kindVector, Vector: result}, nil
		default:
			return value{}, daferr.TypeMismatchf("reduction", "scalar", "vector or matrix")
		}
	}

	return value{}, daferr.UnknownOperationf("pipeline", s.name)
}
