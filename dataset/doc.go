// Package dataset provides the validating reader/writer façade (spec
// §4.4) over any storage.Format backend, a static read-only wrapper
// (spec §4.5's design note on enforcing read-only by construction), and
// whole-dataset copy/concat helpers.
package dataset
