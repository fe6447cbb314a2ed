// Package view exposes a renamed, read-only reprojection of a
// dataset.Reader: axis names and artifact names are remapped through
// alias tables, and every read delegates to the source under the
// source's own locking (spec §4.6).
package view
