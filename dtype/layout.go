// Package dtype: matrix layout and storage descriptors.
package dtype

import "fmt"

// Major is a matrix's declared major axis.
type Major int

const (
	RowMajor Major = iota
	ColumnMajor
)

// String renders the major axis's name ("row_major"/"column_major"),
// matching the external on-disk attribute vocabulary named in spec §6.
func (m Major) String() string {
	if m == ColumnMajor {
		return "column_major"
	}
	return "row_major"
}

// Flip returns the opposite major axis.
func (m Major) Flip() Major {
	if m == ColumnMajor {
		return RowMajor
	}
	return ColumnMajor
}

// StorageKind distinguishes a dense matrix from a sparse one.
type StorageKind int

const (
	Dense StorageKind = iota
	Sparse
)

// Storage describes a matrix artifact's storage discipline: Dense carries
// no further data, Sparse additionally records its index element type and
// declared nonzero count.
type Storage struct {
	Kind  StorageKind
	Index IndexKind // meaningful only when Kind == Sparse
	NNZ   int       // meaningful only when Kind == Sparse
}

// DenseStorage is the zero-value Dense storage descriptor.
func DenseStorage() Storage { return Storage{Kind: Dense} }

// SparseStorage builds a Sparse storage descriptor with the given index
// kind and declared nonzero count.
func SparseStorage(index IndexKind, nnz int) Storage {
	return Storage{Kind: Sparse, Index: index, NNZ: nnz}
}

// String renders the storage descriptor for diagnostics.
func (s Storage) String() string {
	if s.Kind == Dense {
		return "dense"
	}
	return fmt.Sprintf("sparse(%s, nnz=%d)", s.Index, s.NNZ)
}

// MatrixLayout is the sole source of truth for a matrix artifact's
// element type, shape, major axis, and storage discipline. Callers must
// never infer layout from how a backing array happens to be addressed
// (spec §4.1).
type MatrixLayout struct {
	Kind    ElementKind
	Rows    int
	Cols    int
	Major   Major
	Storage Storage
}

// NewDenseLayout builds a dense row-major-by-default layout descriptor.
func NewDenseLayout(kind ElementKind, rows, cols int, major Major) MatrixLayout {
	return MatrixLayout{Kind: kind, Rows: rows, Cols: cols, Major: major, Storage: DenseStorage()}
}

// NewSparseLayout builds a sparse layout descriptor.
func NewSparseLayout(kind ElementKind, rows, cols int, major Major, index IndexKind, nnz int) MatrixLayout {
	return MatrixLayout{Kind: kind, Rows: rows, Cols: cols, Major: major, Storage: SparseStorage(index, nnz)}
}

// Transpose returns a new descriptor with Rows/Cols swapped and Major
// flipped, without touching any backing array — a read-only relabelling,
// not a copy (spec §4.1, §8 invariant 9).
func (l MatrixLayout) Transpose() MatrixLayout {
	return MatrixLayout{
		Kind:    l.Kind,
		Rows:    l.Cols,
		Cols:    l.Rows,
		Major:   l.Major.Flip(),
		Storage: l.Storage,
	}
}

// IsDense reports whether the layout describes a dense matrix.
func (l MatrixLayout) IsDense() bool { return l.Storage.Kind == Dense }

// IsSparse reports whether the layout describes a sparse matrix.
func (l MatrixLayout) IsSparse() bool { return l.Storage.Kind == Sparse }

// String renders the layout for diagnostics.
func (l MatrixLayout) String() string {
	return fmt.Sprintf("MatrixLayout{%s, %dx%d, %s, %s}", l.Kind, l.Rows, l.Cols, l.Major, l.Storage)
}
