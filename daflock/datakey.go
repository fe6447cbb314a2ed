package daflock

import "github.com/tanaylab/daf-go/dtype"

// DataKeyKind discriminates the shape of a DataKey.
type DataKeyKind int

const (
	KeyScalarNames DataKeyKind = iota
	KeyAxisNames
	KeyAxisEntries
	KeyVectorNames
	KeyVector
	KeyMatrixNames
	KeyMatrix
)

// DataKey identifies one derived or cacheable artifact: a name set, an
// axis's entries, a vector, or a matrix in a specific layout (spec §4.2).
// It is a plain comparable struct so it can be used directly as a map key
// by both Cache and VersionCounters.
type DataKey struct {
	Kind     DataKeyKind
	Axis     string // AxisEntries, VectorNames, Vector, MatrixNames, Matrix (rows axis)
	ColsAxis string // MatrixNames, Matrix
	Name     string // Vector, Matrix
	Major    dtype.Major
}

// ScalarNamesKey is the key for the set of scalar names.
func ScalarNamesKey() DataKey { return DataKey{Kind: KeyScalarNames} }

// AxisNamesKey is the key for the set of axis names.
func AxisNamesKey() DataKey { return DataKey{Kind: KeyAxisNames} }

// AxisEntriesKey is the key for one axis's entry sequence.
func AxisEntriesKey(axis string) DataKey { return DataKey{Kind: KeyAxisEntries, Axis: axis} }

// VectorNamesKey is the key for the set of vector names on an axis.
func VectorNamesKey(axis string) DataKey { return DataKey{Kind: KeyVectorNames, Axis: axis} }

// VectorKey is the key for one (axis, name) vector.
func VectorKey(axis, name string) DataKey { return DataKey{Kind: KeyVector, Axis: axis, Name: name} }

// MatrixNamesKey is the key for the set of matrix names on an axis pair.
func MatrixNamesKey(rowsAxis, colsAxis string) DataKey {
	return DataKey{Kind: KeyMatrixNames, Axis: rowsAxis, ColsAxis: colsAxis}
}

// MatrixKey is the key for one (rowsAxis, colsAxis, name) matrix in a
// specific major-axis layout.
func MatrixKey(rowsAxis, colsAxis, name string, major dtype.Major) DataKey {
	return DataKey{Kind: KeyMatrix, Axis: rowsAxis, ColsAxis: colsAxis, Name: name, Major: major}
}
