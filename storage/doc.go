// Package storage defines the backend contract every daf-go dataset
// implements (Format, spec §4.3) and ships the one concrete backend the
// core provides: MemoryDataset.
//
// Concrete on-disk codecs (an HDF5-like block layout, a directory-of-files
// manifest, wrapping of externally authored annotated-data files) are an
// explicit Non-goal of the core (spec §1); fileformat.go names the
// vocabulary those external collaborators would need (attribute names,
// sibling-dataset names, fixed axis names) without implementing them.
package storage
