package dataset

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// Dataset is a thin validating facade over a storage.Format backend: it
// formats every spec-defined error template with dataset-name context
// and enforces overwrite semantics before delegating to the backend
// (spec §4.4). It never bypasses the backend's own locking.
type Dataset struct {
	format storage.Format
}

// New wraps format as a validating Dataset.
func New(format storage.Format) *Dataset {
	return &Dataset{format: format}
}

// Name returns the underlying backend's name.
func (d *Dataset) Name() string { return d.format.Name() }

// Format exposes the underlying backend, for callers (chain, view) that
// need to compose at the Format level.
func (d *Dataset) Format() storage.Format { return d.format }

// HasScalar reports whether scalar name exists.
func (d *Dataset) HasScalar(name string) bool { return d.format.HasScalar(name) }

// GetScalar returns scalar name's value.
func (d *Dataset) GetScalar(name string) (interface{}, error) { return d.format.GetScalar(name) }

// SetScalar creates scalar name, or overwrites it when overwrite is true.
// Overwriting without the flag fails with AlreadyExists (spec §4.4).
func (d *Dataset) SetScalar(name string, value interface{}, overwrite bool) error {
	if d.format.HasScalar(name) {
		if !overwrite {
			return daferr.AlreadyExistsf("scalar", name, d.format.Name())
		}
		if err := d.format.DeleteScalar(name, true); err != nil {
			return err
		}
	}
	return d.format.SetScalar(name, value)
}

// DeleteScalar removes scalar name.
func (d *Dataset) DeleteScalar(name string) error {
	return d.format.DeleteScalar(name, false)
}

// ScalarNames returns every scalar name.
func (d *Dataset) ScalarNames() []string { return d.format.ScalarNames() }

// HasAxis reports whether axis name exists.
func (d *Dataset) HasAxis(name string) bool { return d.format.HasAxis(name, false) }

// AddAxis creates axis name with the given entries, or overwrites it
// (and every vector/matrix indexed by it) when overwrite is true. name
// must be nonempty and entries must be unique, nonempty strings (spec §3
// invariants 1-2); a chain's axis-consistency check and every vector's
// index-by-entry lookup both depend on this holding.
func (d *Dataset) AddAxis(name string, entries []string, overwrite bool) error {
	if err := validateAxis(name, entries, d.format.Name()); err != nil {
		return err
	}
	if d.format.HasAxis(name, true) {
		if !overwrite {
			return daferr.AlreadyExistsf("axis", name, d.format.Name())
		}
		if err := d.format.DeleteAxis(name, true); err != nil {
			return err
		}
	}
	return d.format.AddAxis(name, entries)
}

// validateAxis enforces spec §3 invariants 1-2 ahead of installing a new
// axis: a nonempty name, and entries that are themselves nonempty and
// pairwise unique.
func validateAxis(name string, entries []string, dataset string) error {
	if name == "" {
		return daferr.InvalidNamef("axis", dataset)
	}
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry == "" {
			return daferr.InvalidAxisEntriesf(name, "entries must not be empty strings", dataset)
		}
		if _, ok := seen[entry]; ok {
			return daferr.InvalidAxisEntriesf(name, "duplicate entry: "+entry, dataset)
		}
		seen[entry] = struct{}{}
	}
	return nil
}

// DeleteAxis removes axis name and every vector/matrix indexed by it.
func (d *Dataset) DeleteAxis(name string) error {
	return d.format.DeleteAxis(name, false)
}

// AxisLength returns axis name's entry count.
func (d *Dataset) AxisLength(name string) (int, error) { return d.format.AxisLength(name) }

// AxisEntries returns axis name's ordered entry sequence.
func (d *Dataset) AxisEntries(name string) ([]string, error) { return d.format.AxisEntries(name) }

// AxisNames returns every axis name.
func (d *Dataset) AxisNames() []string { return d.format.AxisNames() }

// HasVector reports whether vector (axis, name) exists.
func (d *Dataset) HasVector(axis, name string) bool { return d.format.HasVector(axis, name) }

// GetVector returns vector (axis, name).
func (d *Dataset) GetVector(axis, name string) (storage.Vector, error) {
	return d.format.GetVector(axis, name)
}

// SetVector creates vector (axis, name), or overwrites it when overwrite
// is true. The backend itself enforces the length-matches-axis invariant
// ("value length: N is different from axis: A length: M").
func (d *Dataset) SetVector(axis, name string, value storage.Vector, overwrite bool) error {
	if d.format.HasVector(axis, name) {
		if !overwrite {
			return daferr.AlreadyExistsf("vector", axis+":"+name, d.format.Name())
		}
		if err := d.format.DeleteVector(axis, name, true); err != nil {
			return err
		}
	}
	return d.format.SetVector(axis, name, value)
}

// DeleteVector removes vector (axis, name).
func (d *Dataset) DeleteVector(axis, name string) error {
	return d.format.DeleteVector(axis, name, false)
}

// VectorNames returns every vector name on axis.
func (d *Dataset) VectorNames(axis string) ([]string, error) { return d.format.VectorNames(axis) }

// HasMatrix reports whether matrix (rowsAxis, colsAxis, name) exists.
func (d *Dataset) HasMatrix(rowsAxis, colsAxis, name string) bool {
	return d.format.HasMatrix(rowsAxis, colsAxis, name, false)
}

// GetMatrix returns matrix (rowsAxis, colsAxis, name).
func (d *Dataset) GetMatrix(rowsAxis, colsAxis, name string) (storage.Matrix, error) {
	return d.format.GetMatrix(rowsAxis, colsAxis, name)
}

// SetMatrix creates matrix (rowsAxis, colsAxis, name), or overwrites it
// when overwrite is true. The stored layout is taken from value's own
// dense/sparse discipline and major axis (spec §4.4); the backend
// enforces shape-matches-axes.
func (d *Dataset) SetMatrix(rowsAxis, colsAxis, name string, value storage.Matrix, overwrite bool) error {
	if d.format.HasMatrix(rowsAxis, colsAxis, name, false) {
		if !overwrite {
			return daferr.AlreadyExistsf("matrix", rowsAxis+","+colsAxis+":"+name, d.format.Name())
		}
		if err := d.format.DeleteMatrix(rowsAxis, colsAxis, name, true); err != nil {
			return err
		}
	}
	return d.format.SetMatrix(rowsAxis, colsAxis, name, value)
}

// DeleteMatrix removes matrix (rowsAxis, colsAxis, name).
func (d *Dataset) DeleteMatrix(rowsAxis, colsAxis, name string) error {
	return d.format.DeleteMatrix(rowsAxis, colsAxis, name, false)
}

// MatrixNames returns every matrix name declared over (rowsAxis, colsAxis).
func (d *Dataset) MatrixNames(rowsAxis, colsAxis string) ([]string, error) {
	return d.format.MatrixNames(rowsAxis, colsAxis)
}

// RelayoutMatrix materializes the transpose of matrix (rowsAxis,
// colsAxis, name) and installs it under the swapped axis pair, so the
// stored shape always agrees with its axes (spec §4.4).
func (d *Dataset) RelayoutMatrix(rowsAxis, colsAxis, name string, overwrite bool) (storage.Matrix, error) {
	relayed, err := d.format.Relayout(rowsAxis, colsAxis, name)
	if err != nil {
		return storage.Matrix{}, err
	}
	if err := d.SetMatrix(colsAxis, rowsAxis, name, relayed, overwrite); err != nil {
		return storage.Matrix{}, err
	}
	return relayed, nil
}

// GetEmptyDenseVector allocates axis's length worth of zero-valued kind
// storage for a subsequent fill-in-place write.
func (d *Dataset) GetEmptyDenseVector(axis, name string, kind dtype.ElementKind) (storage.PendingVector, error) {
	return d.format.GetEmptyDenseVector(axis, name, kind)
}

// GetEmptyDenseMatrix allocates a zero-valued dense matrix for a
// subsequent fill-in-place write.
func (d *Dataset) GetEmptyDenseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major) (storage.PendingMatrix, error) {
	return d.format.GetEmptyDenseMatrix(rowsAxis, colsAxis, name, kind, major)
}

// DescriptionHeader returns the backend's free-text header.
func (d *Dataset) DescriptionHeader() string { return d.format.DescriptionHeader() }

// DescriptionFooter returns the backend's free-text footer.
func (d *Dataset) DescriptionFooter() string { return d.format.DescriptionFooter() }
