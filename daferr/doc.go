// Package daferr defines the typed error kinds shared by every daf-go
// layer (storage, dataset, chain, view, query) and the fixed message
// templates the on-disk and in-memory contract relies on.
//
// Every constructor here returns an *Error that satisfies errors.Is
// against the package-level Kind sentinels (ErrNotFound, ErrShapeMismatch,
// ...) so callers can branch on failure class without string matching,
// while Error() still renders the exact wording the rest of the system
// (and its tests) depend on.
package daferr
