package storage

import (
	"github.com/tanaylab/daf-go/daflock"
	"github.com/tanaylab/daf-go/dtype"
)

// VersionKey identifies one version-counted artifact (spec §4.2).
type VersionKey = daflock.DataKey

// Format is the backend contract every daf-go dataset implements (spec
// §4.3). Every mutating method is atomic under the backend's own write
// lock; every method may be called concurrently with any number of
// read-only callers (spec §5).
type Format interface {
	// Name returns the dataset's name, used in error message context
	// ("in the daf data: <name>").
	Name() string

	// Scalars.
	HasScalar(name string) bool
	GetScalar(name string) (interface{}, error)
	SetScalar(name string, value interface{}) error
	DeleteScalar(name string, forSet bool) error
	ScalarNames() []string

	// Axes. forChange signals the caller intends to mutate the axis;
	// some backends (e.g. a chain's non-tail member) refuse it.
	HasAxis(name string, forChange bool) bool
	AddAxis(name string, entries []string) error
	DeleteAxis(name string, forSet bool) error
	AxisLength(name string) (int, error)
	AxisEntries(name string) ([]string, error)
	AxisNames() []string

	// Vectors.
	HasVector(axis, name string) bool
	GetVector(axis, name string) (Vector, error)
	SetVector(axis, name string, value Vector) error
	DeleteVector(axis, name string, forSet bool) error
	VectorNames(axis string) ([]string, error)
	GetEmptyDenseVector(axis, name string, kind dtype.ElementKind) (PendingVector, error)
	GetEmptySparseVector(axis, name string, kind dtype.ElementKind, nnz int, index dtype.IndexKind) (PendingSparseVector, error)

	// Matrices. forRelayout on HasMatrix asks whether the matrix exists
	// in some layout convertible to the requested one.
	HasMatrix(rowsAxis, colsAxis, name string, forRelayout bool) bool
	GetMatrix(rowsAxis, colsAxis, name string) (Matrix, error)
	SetMatrix(rowsAxis, colsAxis, name string, value Matrix) error
	DeleteMatrix(rowsAxis, colsAxis, name string, forSet bool) error
	MatrixNames(rowsAxis, colsAxis string) ([]string, error)
	GetEmptyDenseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major) (PendingMatrix, error)
	GetEmptySparseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major, nnz int, index dtype.IndexKind) (PendingSparseMatrix, error)
	Relayout(rowsAxis, colsAxis, name string) (Matrix, error)

	// Meta.
	DescriptionHeader() string
	DescriptionFooter() string
	VersionCounter(key daflock.DataKey) uint32
	IncrementVersionCounter(key daflock.DataKey) uint32
}
