package query

import (
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// PipelineVector carries a vector alongside the axis it was read from,
// so projection and slice steps can resolve entry names to indices.
type PipelineVector struct {
	Axis   string
	Vector storage.Vector
}

// PipelineMatrix carries a matrix alongside the axes it was read from.
type PipelineMatrix struct {
	RowsAxis string
	ColsAxis string
	Matrix   storage.Matrix
}

// value is the pipeline's working value between steps: exactly one of
// Scalar, Vector, Matrix is meaningful, selected by Kind.
type value struct {
	Kind   valueKind
	Scalar interface{}
	Vector PipelineVector
	Matrix PipelineMatrix
}

type valueKind int

const (
	kindScalar valueKind = iota
	kindVector
	kindMatrix
)

// buildVector assembles a new Vector of kind from boxed elements,
// used by slice and eltwise steps that cannot mutate their input in
// place (spec §5's "shared resources" read-only contract).
func buildVector(kind dtype.ElementKind, elements []interface{}) (storage.Vector, error) {
	out := storage.NewEmptyVector(kind, len(elements))
	for i, elem := range elements {
		if err := out.Set(i, elem); err != nil {
			return storage.Vector{}, err
		}
	}
	return out, nil
}
