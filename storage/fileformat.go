package storage

// This file names, without implementing, the vocabulary the three
// external on-disk collaborators from spec.md §6 would need. Concrete
// codecs (an HDF5-like block layout, a directory-of-files manifest,
// wrapping of externally authored annotated-data files) are an explicit
// Non-goal of the core.

// LayoutAttr constants are the on-disk attribute values a block-layout
// codec would record alongside a matrix's bytes, matching
// dtype.Major.String().
const (
	LayoutAttrRowMajor    = "row_major"
	LayoutAttrColumnMajor = "column_major"
)

// Sparse sibling-dataset names a directory-of-files codec would lay a
// sparse matrix out as: three sibling arrays plus a declared-count
// attribute, mirroring the indptr/ind/data triple this package already
// uses in memory.
const (
	SparseSiblingIndices = "indices"
	SparseSiblingIndptr  = "indptr"
	SparseSiblingData    = "data"
	SparseAttrNNZ        = "nnz"
)

// Fixed axis names an annotated-data-file wrapper (AnnData-shaped) binds
// its two dimensions to.
const (
	AnnotatedAxisObs = "obs"
	AnnotatedAxisVar = "var"
)
