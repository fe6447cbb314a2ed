package storage

import (
	"fmt"

	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
)

// elementLen returns the length of the typed slice data, failing if data
// is not a slice of the Go type kind declares. The exhaustive switch is
// the "small set of monomorphized kernels per kind" the element-kind
// design note calls for (spec §9), rather than reflection or a virtual
// per-element dispatch.
func elementLen(kind dtype.ElementKind, data interface{}) (int, error) {
	switch kind {
	case dtype.Int8:
		s, ok := data.([]int8)
		return assertLen(ok, len(s))
	case dtype.Int16:
		s, ok := data.([]int16)
		return assertLen(ok, len(s))
	case dtype.Int32:
		s, ok := data.([]int32)
		return assertLen(ok, len(s))
	case dtype.Int64:
		s, ok := data.([]int64)
		return assertLen(ok, len(s))
	case dtype.Uint8:
		s, ok := data.([]uint8)
		return assertLen(ok, len(s))
	case dtype.Uint16:
		s, ok := data.([]uint16)
		return assertLen(ok, len(s))
	case dtype.Uint32:
		s, ok := data.([]uint32)
		return assertLen(ok, len(s))
	case dtype.Uint64:
		s, ok := data.([]uint64)
		return assertLen(ok, len(s))
	case dtype.Float32:
		s, ok := data.([]float32)
		return assertLen(ok, len(s))
	case dtype.Float64:
		s, ok := data.([]float64)
		return assertLen(ok, len(s))
	case dtype.Bool:
		s, ok := data.([]bool)
		return assertLen(ok, len(s))
	case dtype.String:
		s, ok := data.([]string)
		return assertLen(ok, len(s))
	default:
		return 0, fmt.Errorf("storage: unknown element kind %s", kind)
	}
}

func assertLen(ok bool, n int) (int, error) {
	if !ok {
		return 0, daferr.TypeMismatchf("vector data", "mismatched slice type", "")
	}
	return n, nil
}

// elementAt returns the value at index i of the typed slice data as an
// interface{} boxing the concrete Go type kind declares.
func elementAt(kind dtype.ElementKind, data interface{}, i int) (interface{}, error) {
	switch kind {
	case dtype.Int8:
		return data.([]int8)[i], nil
	case dtype.Int16:
		return data.([]int16)[i], nil
	case dtype.Int32:
		return data.([]int32)[i], nil
	case dtype.Int64:
		return data.([]int64)[i], nil
	case dtype.Uint8:
		return data.([]uint8)[i], nil
	case dtype.Uint16:
		return data.([]uint16)[i], nil
	case dtype.Uint32:
		return data.([]uint32)[i], nil
	case dtype.Uint64:
		return data.([]uint64)[i], nil
	case dtype.Float32:
		return data.([]float32)[i], nil
	case dtype.Float64:
		return data.([]float64)[i], nil
	case dtype.Bool:
		return data.([]bool)[i], nil
	case dtype.String:
		return data.([]string)[i], nil
	default:
		return nil, fmt.Errorf("storage: unknown element kind %s", kind)
	}
}

// elementFloat64At converts the value at index i to float64 (Bool reads
// as 1 or 0), failing for String.
func elementFloat64At(kind dtype.ElementKind, data interface{}, i int) (float64, error) {
	switch kind {
	case dtype.Int8:
		return float64(data.([]int8)[i]), nil
	case dtype.Int16:
		return float64(data.([]int16)[i]), nil
	case dtype.Int32:
		return float64(data.([]int32)[i]), nil
	case dtype.Int64:
		return float64(data.([]int64)[i]), nil
	case dtype.Uint8:
		return float64(data.([]uint8)[i]), nil
	case dtype.Uint16:
		return float64(data.([]uint16)[i]), nil
	case dtype.Uint32:
		return float64(data.([]uint32)[i]), nil
	case dtype.Uint64:
		return float64(data.([]uint64)[i]), nil
	case dtype.Float32:
		return float64(data.([]float32)[i]), nil
	case dtype.Float64:
		return data.([]float64)[i], nil
	case dtype.Bool:
		if data.([]bool)[i] {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, daferr.TypeMismatchf("numeric conversion", kind.String(), "a numeric kind")
	}
}

// cloneElementSlice returns an independent copy of a typed slice data.
func cloneElementSlice(kind dtype.ElementKind, data interface{}) interface{} {
	switch kind {
	case dtype.Int8:
		return append([]int8(nil), data.([]int8)...)
	case dtype.Int16:
		return append([]int16(nil), data.([]int16)...)
	case dtype.Int32:
		return append([]int32(nil), data.([]int32)...)
	case dtype.Int64:
		return append([]int64(nil), data.([]int64)...)
	case dtype.Uint8:
		return append([]uint8(nil), data.([]uint8)...)
	case dtype.Uint16:
		return append([]uint16(nil), data.([]uint16)...)
	case dtype.Uint32:
		return append([]uint32(nil), data.([]uint32)...)
	case dtype.Uint64:
		return append([]uint64(nil), data.([]uint64)...)
	case dtype.Float32:
		return append([]float32(nil), data.([]float32)...)
	case dtype.Float64:
		return append([]float64(nil), data.([]float64)...)
	case dtype.Bool:
		return append([]bool(nil), data.([]bool)...)
	case dtype.String:
		return append([]string(nil), data.([]string)...)
	default:
		return nil
	}
}

// makeElementSlice allocates a zero-valued typed slice of length n for kind.
func makeElementSlice(kind dtype.ElementKind, n int) interface{} {
	switch kind {
	case dtype.Int8:
		return make([]int8, n)
	case dtype.Int16:
		return make([]int16, n)
	case dtype.Int32:
		return make([]int32, n)
	case dtype.Int64:
		return make([]int64, n)
	case dtype.Uint8:
		return make([]uint8, n)
	case dtype.Uint16:
		return make([]uint16, n)
	case dtype.Uint32:
		return make([]uint32, n)
	case dtype.Uint64:
		return make([]uint64, n)
	case dtype.Float32:
		return make([]float32, n)
	case dtype.Float64:
		return make([]float64, n)
	case dtype.Bool:
		return make([]bool, n)
	case dtype.String:
		return make([]string, n)
	default:
		return nil
	}
}

// setElementAt assigns value (boxed as interface{}) at index i of the
// typed slice data, failing if value's dynamic type disagrees with kind.
func setElementAt(kind dtype.ElementKind, data interface{}, i int, value interface{}) error {
	switch kind {
	case dtype.Int8:
		v, ok := value.(int8)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]int8)[i] = v
	case dtype.Int16:
		v, ok := value.(int16)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]int16)[i] = v
	case dtype.Int32:
		v, ok := value.(int32)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]int32)[i] = v
	case dtype.Int64:
		v, ok := value.(int64)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]int64)[i] = v
	case dtype.Uint8:
		v, ok := value.(uint8)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]uint8)[i] = v
	case dtype.Uint16:
		v, ok := value.(uint16)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]uint16)[i] = v
	case dtype.Uint32:
		v, ok := value.(uint32)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]uint32)[i] = v
	case dtype.Uint64:
		v, ok := value.(uint64)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]uint64)[i] = v
	case dtype.Float32:
		v, ok := value.(float32)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]float32)[i] = v
	case dtype.Float64:
		v, ok := value.(float64)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]float64)[i] = v
	case dtype.Bool:
		v, ok := value.(bool)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]bool)[i] = v
	case dtype.String:
		v, ok := value.(string)
		if !ok {
			return daferr.TypeMismatchf("vector element", fmt.Sprintf("%T", value), kind.String())
		}
		data.([]string)[i] = v
	default:
		return fmt.Errorf("storage: unknown element kind %s", kind)
	}
	return nil
}
