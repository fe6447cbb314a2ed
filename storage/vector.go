package storage

import "github.com/tanaylab/daf-go/dtype"

// Vector is a length-matched sequence of a single element kind (spec §3).
// data is always a slice of the concrete Go type Kind declares.
type Vector struct {
	Kind dtype.ElementKind
	data interface{}
}

// NewVector wraps an existing typed slice (one of the twelve ElementKind
// Go types) as a Vector. It is the caller's responsibility to pass a
// slice whose element type matches kind; Len and At validate this lazily.
func NewVector(kind dtype.ElementKind, data interface{}) Vector {
	return Vector{Kind: kind, data: data}
}

// NewFloat64Vector builds a Float64 Vector.
func NewFloat64Vector(values []float64) Vector { return Vector{Kind: dtype.Float64, data: values} }

// NewFloat32Vector builds a Float32 Vector.
func NewFloat32Vector(values []float32) Vector { return Vector{Kind: dtype.Float32, data: values} }

// NewInt64Vector builds an Int64 Vector.
func NewInt64Vector(values []int64) Vector { return Vector{Kind: dtype.Int64, data: values} }

// NewInt32Vector builds an Int32 Vector.
func NewInt32Vector(values []int32) Vector { return Vector{Kind: dtype.Int32, data: values} }

// NewBoolVector builds a Bool Vector.
func NewBoolVector(values []bool) Vector { return Vector{Kind: dtype.Bool, data: values} }

// NewStringVector builds a String Vector.
func NewStringVector(values []string) Vector { return Vector{Kind: dtype.String, data: values} }

// Len returns the vector's length, or an error if the backing data does
// not match Kind.
func (v Vector) Len() (int, error) {
	return elementLen(v.Kind, v.data)
}

// At returns the boxed element at index i.
func (v Vector) At(i int) (interface{}, error) {
	if _, err := v.Len(); err != nil {
		return nil, err
	}
	return elementAt(v.Kind, v.data, i)
}

// Float64At returns the element at index i converted to float64, failing
// for String vectors.
func (v Vector) Float64At(i int) (float64, error) {
	return elementFloat64At(v.Kind, v.data, i)
}

// Set assigns value at index i, failing if value's dynamic type disagrees
// with Kind.
func (v Vector) Set(i int, value interface{}) error {
	return setElementAt(v.Kind, v.data, i, value)
}

// Raw returns the underlying typed slice, for callers (e.g. query
// reductions) that want to operate on it directly via type assertion.
func (v Vector) Raw() interface{} {
	return v.data
}

// Float64s returns the backing slice as []float64, succeeding only for
// Float64 vectors. Callers wire the result directly into
// gonum.org/v1/gonum/floats and gonum.org/v1/gonum/stat without copying.
func (v Vector) Float64s() ([]float64, bool) {
	s, ok := v.data.([]float64)
	return s, ok
}

// Clone returns a Vector with its own copy of the backing slice.
func (v Vector) Clone() (Vector, error) {
	n, err := v.Len()
	if err != nil {
		return Vector{}, err
	}
	out := makeElementSlice(v.Kind, n)
	for i := 0; i < n; i++ {
		value, err := v.At(i)
		if err != nil {
			return Vector{}, err
		}
		if err := setElementAt(v.Kind, out, i, value); err != nil {
			return Vector{}, err
		}
	}
	return Vector{Kind: v.Kind, data: out}, nil
}

// NewEmptyVector allocates a zero-valued Vector of length n and kind.
func NewEmptyVector(kind dtype.ElementKind, n int) Vector {
	return Vector{Kind: kind, data: makeElementSlice(kind, n)}
}

// BroadcastVector fills a length-n Vector of kind with a single repeated
// scalar value (spec §4.3's "set(value|scalar-broadcast)").
func BroadcastVector(kind dtype.ElementKind, n int, value interface{}) (Vector, error) {
	v := NewEmptyVector(kind, n)
	for i := 0; i < n; i++ {
		if err := v.Set(i, value); err != nil {
			return Vector{}, err
		}
	}
	return v, nil
}
