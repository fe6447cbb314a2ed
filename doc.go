// Package daf implements a backend-agnostic, axis-oriented data store:
// scalars, named axes, per-axis vectors, and per-axis-pair matrices,
// behind a single backend contract every storage implementation
// satisfies.
//
// Package layout:
//
//	dtype/    — element kinds, index kinds, matrix layout descriptors
//	daferr/   — the fixed error vocabulary every package returns
//	daflock/  — reentrant readers-writer lock, per-artifact version counters
//	storage/  — the Format backend contract and its in-memory implementation
//	dataset/  — the mutable façade over a Format, read-only projection, bulk copy/concat
//	chain/    — ordered last-writer-wins overlay of Format backends
//	view/     — renamed, read-only reprojection of a dataset.Reader
//	query/    — pipeline expression language and the operation registry it draws from
//
// A caller builds a Format (storage.NewMemoryDataset, or any backend
// satisfying storage.Format), wraps it in a dataset.Dataset for
// overwrite-checked mutation, and optionally layers chain.Chain
// overlays or view.View renamings on top. Every mutating path is
// atomic under the backend's own lock; read-only callers never block
// each other.
package daf
