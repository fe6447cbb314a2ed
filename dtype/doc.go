// Package dtype defines the closed set of element kinds and the matrix
// layout/storage descriptors shared by every daf-go backend.
//
// ElementKind is a monomorphized tagged union rather than a virtual
// interface: a handful of kernels switch over it per operation instead of
// dispatching through a method on every element, per the per-element-type
// performance note the rest of the pack's matrix code follows (dense,
// flat-slice loops over a known numeric type).
//
// MatrixLayout is the sole source of truth for a matrix's shape and major
// axis; callers must never infer layout from how a backing array happens
// to be addressed. Transpose() on a layout is a read-only relabelling —
// it never touches a backing array.
package dtype
