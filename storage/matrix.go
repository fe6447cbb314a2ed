package storage

import (
	"github.com/james-bowman/sparse"
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense or sparse, axis-pair-indexed artifact of a single
// non-string element kind (spec §3). Its Layout is always consistent with
// its backing store; callers never infer shape or major axis from the
// backing array directly.
type Matrix struct {
	dense  *denseMatrix
	sparse *sparseMatrix
}

// NewDenseMatrix allocates a zero-valued dense Matrix of the given shape
// and major axis.
func NewDenseMatrix(kind dtype.ElementKind, rows, cols int, major dtype.Major) (Matrix, error) {
	if !kind.ValidForMatrix() {
		return Matrix{}, daferr.TypeMismatchf("matrix element kind", kind.String(), "a non-string kind")
	}
	return Matrix{dense: newDenseMatrix(kind, rows, cols, major)}, nil
}

// NewSparseMatrix allocates an empty sparse Matrix skeleton ready for the
// fill-in-place protocol (spec §4.3's empty allocator).
func NewSparseMatrix(kind dtype.ElementKind, rows, cols int, major dtype.Major, index dtype.IndexKind, nnz int) (Matrix, error) {
	if !kind.ValidForMatrix() {
		return Matrix{}, daferr.TypeMismatchf("matrix element kind", kind.String(), "a non-string kind")
	}
	return Matrix{sparse: newEmptySparseMatrix(kind, rows, cols, major, index, nnz)}, nil
}

// Layout reports the matrix's element kind, shape, major axis, and
// storage discipline (dtype.MatrixLayout is the sole source of truth,
// spec §4.1).
func (m Matrix) Layout() dtype.MatrixLayout {
	if m.dense != nil {
		return dtype.NewDenseLayout(m.dense.kind, m.dense.rows, m.dense.cols, m.dense.major)
	}
	return dtype.NewSparseLayout(m.sparse.kind, m.sparse.rows, m.sparse.cols, m.sparse.major,
		m.sparse.index, m.sparse.nnz)
}

// At returns the boxed element at logical (row, col).
func (m Matrix) At(row, col int) (interface{}, error) {
	if m.dense != nil {
		return m.dense.At(row, col)
	}
	return m.sparse.At(row, col)
}

// Float64At returns the element at logical (row, col) converted to
// float64 (Bool reads as 1 or 0), failing for String.
func (m Matrix) Float64At(row, col int) (float64, error) {
	if m.dense != nil {
		return m.dense.Float64At(row, col)
	}
	value, err := m.sparse.At(row, col)
	if err != nil {
		return 0, err
	}
	return elementFloat64At(m.sparse.kind, wrapSingleton(m.sparse.kind, value), 0)
}

// wrapSingleton boxes a single already-typed value back into a
// length-1 typed slice so it can be run back through the elementFloat64At
// kernel without a second exhaustive switch.
func wrapSingleton(kind dtype.ElementKind, value interface{}) interface{} {
	s := makeElementSlice(kind, 1)
	_ = setElementAt(kind, s, 0, value)
	return s
}

// Set assigns value at logical (row, col). Only valid for dense matrices;
// sparse matrices are filled once via the empty-allocator protocol and
// then sealed (spec §4.3).
func (m Matrix) Set(row, col int, value interface{}) error {
	if m.dense == nil {
		return daferr.LockMisusef("cannot Set into a sealed sparse matrix; build it via the fill-in-place protocol")
	}
	return m.dense.Set(row, col, value)
}

// IsDense reports whether the matrix is backed by dense storage.
func (m Matrix) IsDense() bool { return m.dense != nil }

// IsSparse reports whether the matrix is backed by sparse storage.
func (m Matrix) IsSparse() bool { return m.sparse != nil }

// Relayout materializes the transpose of m: Relayout(m).Layout() equals
// m.Layout().Transpose(), and Relayout(m)[j, i] == m[i, j] for every
// (i, j) (spec §8 invariant 9). dtype.MatrixLayout.Transpose() is the
// matching metadata-only descriptor of the value this method actually
// builds; Transpose never touches a backing array, Relayout always does.
func (m Matrix) Relayout() Matrix {
	if m.dense != nil {
		return Matrix{dense: m.dense.relayout()}
	}
	return Matrix{sparse: m.sparse.relayout()}
}

// Clone returns a Matrix with its own copy of the backing storage.
func (m Matrix) Clone() Matrix {
	if m.dense != nil {
		return Matrix{dense: m.dense.clone()}
	}
	return Matrix{sparse: m.sparse.clone()}
}

// Gonum returns a zero-copy gonum mat.Matrix view, valid only for dense,
// Float64 matrices.
func (m Matrix) Gonum() (mat.Matrix, error) {
	if m.dense == nil {
		return nil, daferr.TypeMismatchf("matrix gonum view", "sparse", "dense")
	}
	return m.dense.gonum()
}

// CSR returns a zero-copy *sparse.CSR view, valid only for sparse,
// Float64, row-major matrices.
func (m Matrix) CSR() (*sparse.CSR, error) {
	if m.sparse == nil {
		return nil, daferr.TypeMismatchf("matrix CSR view", "dense", "sparse")
	}
	return m.sparse.csrFloat64()
}

// CSC returns a zero-copy *sparse.CSC view, valid only for sparse,
// Float64, column-major matrices.
func (m Matrix) CSC() (*sparse.CSC, error) {
	if m.sparse == nil {
		return nil, daferr.TypeMismatchf("matrix CSC view", "dense", "sparse")
	}
	return m.sparse.cscFloat64()
}
