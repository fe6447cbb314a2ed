package query

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// toFloat64 converts a boxed scalar of any numeric kind to float64, for
// eltwise operations that compute in floating point regardless of the
// element's declared kind.
func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, daferr.TypeMismatchf("pipeline", "non-numeric", "numeric")
	}
}

// fromFloat64 converts a float64 back into kind's Go representation, for
// eltwise operations writing back into a kind-preserving result vector.
func fromFloat64(kind dtype.ElementKind, f float64) (interface{}, error) {
	switch kind {
	case dtype.Float64:
		return f, nil
	case dtype.Float32:
		return float32(f), nil
	case dtype.Int64:
		return int64(f), nil
	case dtype.Int32:
		return int32(f), nil
	case dtype.Int16:
		return int16(f), nil
	case dtype.Int8:
		return int8(f), nil
	case dtype.Uint64:
		return uint64(f), nil
	case dtype.Uint32:
		return uint32(f), nil
	case dtype.Uint16:
		return uint16(f), nil
	case dtype.Uint8:
		return uint8(f), nil
	default:
		return nil, daferr.TypeMismatchf("pipeline", kind.String(), "numeric")
	}
}

// newFloat64VectorAlias wraps values as a Float64 Vector without copying.
func newFloat64VectorAlias(values []float64) storage.Vector {
	return storage.NewFloat64Vector(values)
}
