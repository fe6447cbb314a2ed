package storage

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
)

// sealer receives a finished artifact and installs it into the owning
// backend. It runs under the backend's write lock, which the Pending*
// handle is understood to hold until Seal returns (spec §4.3).
type sealer func(value interface{}) error

// PendingVector is a writable handle into an unfilled dense vector,
// returned by Format.GetEmptyDenseVector. The caller fills it element by
// element via Set, then calls Seal once.
type PendingVector struct {
	vector Vector
	seal   sealer
	sealed bool
}

// NewPendingVector wraps an already-allocated empty Vector with the
// backend's install callback. Backends call this; callers of Format only
// ever receive the result.
func NewPendingVector(vector Vector, seal sealer) PendingVector {
	return PendingVector{vector: vector, seal: seal}
}

// Len returns the vector's length.
func (p *PendingVector) Len() (int, error) { return p.vector.Len() }

// Set assigns value at index i of the pending vector.
func (p *PendingVector) Set(i int, value interface{}) error {
	if p.sealed {
		return daferr.LockMisusef("cannot write to a sealed pending vector")
	}
	return p.vector.Set(i, value)
}

// Seal installs the filled vector into the backend, exactly once.
func (p *PendingVector) Seal() error {
	if p.sealed {
		return daferr.LockMisusef("pending vector already sealed")
	}
	p.sealed = true
	return p.seal(p.vector)
}

// PendingSparseVector is a writable handle into an unfilled sparse vector.
// The caller appends (index, value) pairs in increasing index order, then
// calls Seal.
type PendingSparseVector struct {
	kind   dtype.ElementKind
	length int
	index  []int
	data   interface{}
	seal   sealer
	sealed bool
}

// NewPendingSparseVector allocates a pending sparse vector skeleton.
func NewPendingSparseVector(kind dtype.ElementKind, length, nnz int, seal sealer) PendingSparseVector {
	return PendingSparseVector{
		kind: kind, length: length,
		index: make([]int, 0, nnz), data: makeElementSlice(kind, 0),
		seal: seal,
	}
}

// Append adds one (index, value) entry; the caller is responsible for
// increasing-index order.
func (p *PendingSparseVector) Append(index int, value interface{}) error {
	if p.sealed {
		return daferr.LockMisusef("cannot write to a sealed pending sparse vector")
	}
	if err := setElementAt(p.kind, makeElementSlice(p.kind, 1), 0, value); err != nil {
		return err
	}
	p.index = append(p.index, index)
	p.data = appendElement(p.kind, p.data, value)
	return nil
}

// Seal installs the filled sparse vector into the backend.
func (p *PendingSparseVector) Seal() error {
	if p.sealed {
		return daferr.LockMisusef("pending sparse vector already sealed")
	}
	p.sealed = true
	return p.seal(sparseVectorPayload{kind: p.kind, length: p.length, index: p.index, data: p.data})
}

// sparseVectorPayload is the value a PendingSparseVector's Seal hands to
// the backend's install callback.
type sparseVectorPayload struct {
	kind   dtype.ElementKind
	length int
	index  []int
	data   interface{}
}

// PendingMatrix is a writable handle into an unfilled dense matrix.
type PendingMatrix struct {
	matrix Matrix
	seal   sealer
	sealed bool
}

// NewPendingMatrix wraps an already-allocated empty Matrix with the
// backend's install callback.
func NewPendingMatrix(matrix Matrix, seal sealer) PendingMatrix {
	return PendingMatrix{matrix: matrix, seal: seal}
}

// Set assigns value at logical (row, col) of the pending matrix.
func (p *PendingMatrix) Set(row, col int, value interface{}) error {
	if p.sealed {
		return daferr.LockMisusef("cannot write to a sealed pending matrix")
	}
	return p.matrix.Set(row, col, value)
}

// Seal installs the filled matrix into the backend.
func (p *PendingMatrix) Seal() error {
	if p.sealed {
		return daferr.LockMisusef("pending matrix already sealed")
	}
	p.sealed = true
	return p.seal(p.matrix)
}

// PendingSparseMatrix is a writable handle into an unfilled sparse matrix,
// filled one major slice at a time via AppendToMajor, in the order
// dictated by its declared major axis.
type PendingSparseMatrix struct {
	kind   dtype.ElementKind
	rows   int
	cols   int
	major  dtype.Major
	index  dtype.IndexKind
	indptr []int
	ind    []int
	data   interface{}
	filled int // number of major slices closed so far
	seal   sealer
	sealed bool
}

// NewPendingSparseMatrix allocates a pending sparse matrix skeleton.
func NewPendingSparseMatrix(kind dtype.ElementKind, rows, cols int, major dtype.Major, index dtype.IndexKind, nnz int, seal sealer) PendingSparseMatrix {
	majorDim := rows
	if major == dtype.ColumnMajor {
		majorDim = cols
	}
	return PendingSparseMatrix{
		kind: kind, rows: rows, cols: cols, major: major, index: index,
		indptr: make([]int, 1, majorDim+1),
		ind:    make([]int, 0, nnz), data: makeElementSlice(kind, 0),
		seal: seal,
	}
}

// AppendToMajor appends one (minorIndex, value) entry to the major slice
// currently being filled.
func (p *PendingSparseMatrix) AppendToMajor(minorIndex int, value interface{}) error {
	if p.sealed {
		return daferr.LockMisusef("cannot write to a sealed pending sparse matrix")
	}
	p.ind = append(p.ind, minorIndex)
	p.data = appendElement(p.kind, p.data, value)
	return nil
}

// CloseMajor finalizes the major slice currently being filled, recording
// its end offset in indptr, and advances to the next major slice.
func (p *PendingSparseMatrix) CloseMajor() error {
	if p.sealed {
		return daferr.LockMisusef("cannot write to a sealed pending sparse matrix")
	}
	p.indptr = append(p.indptr, len(p.ind))
	p.filled++
	return nil
}

// Seal installs the filled sparse matrix into the backend.
func (p *PendingSparseMatrix) Seal() error {
	if p.sealed {
		return daferr.LockMisusef("pending sparse matrix already sealed")
	}
	p.sealed = true
	s := &sparseMatrix{
		kind: p.kind, rows: p.rows, cols: p.cols, major: p.major, index: p.index,
		indptr: p.indptr, ind: p.ind, data: p.data, nnz: len(p.ind),
	}
	return p.seal(Matrix{sparse: s})
}
