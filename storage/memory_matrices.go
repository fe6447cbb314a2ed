package storage

import (
	"sort"

	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
	"github.com/tanaylab/daf-go/dtype"
)

// HasMatrix reports whether matrix (rowsAxis, colsAxis, name) exists.
// forRelayout asks whether it exists in some layout convertible to the
// requested one; a MemoryDataset always stores a matrix in exactly one
// layout but Relayout can materialize the other, so forRelayout makes no
// difference to existence here (spec §4.3).
func (m *MemoryDataset) HasMatrix(rowsAxis, colsAxis, name string, forRelayout bool) bool {
	_ = forRelayout
	var ok bool
	_ = m.lock.WithReadLock(func() error {
		_, ok = m.matrices[matrixKey{rowsAxis, colsAxis, name}]
		return nil
	})
	return ok
}

// GetMatrix returns matrix (rowsAxis, colsAxis, name), failing with
// NotFound if absent.
func (m *MemoryDataset) GetMatrix(rowsAxis, colsAxis, name string) (Matrix, error) {
	var result Matrix
	err := m.lock.WithReadLock(func() error {
		value, ok := m.matrices[matrixKey{rowsAxis, colsAxis, name}]
		if !ok {
			return m.notFound("matrix", rowsAxis+","+colsAxis+":"+name)
		}
		result = value
		return nil
	})
	return result, err
}

// SetMatrix creates or overwrites matrix (rowsAxis, colsAxis, name),
// validating its shape against the two axes' lengths (spec §4.4). The
// stored layout is taken from value, whichever major axis and
// dense/sparse discipline the caller already built it with.
func (m *MemoryDataset) SetMatrix(rowsAxis, colsAxis, name string, value Matrix) error {
	return m.lock.WithWriteLock(func() error {
		rows, ok := m.axes[rowsAxis]
		if !ok {
			return m.notFound("axis", rowsAxis)
		}
		cols, ok := m.axes[colsAxis]
		if !ok {
			return m.notFound("axis", colsAxis)
		}
		layout := value.Layout()
		if layout.Rows != len(rows.entries) || layout.Cols != len(cols.entries) {
			return daferr.MatrixShapeMismatch(layout.Rows, layout.Cols, rowsAxis, len(rows.entries), colsAxis, len(cols.entries))
		}
		key := matrixKey{rowsAxis, colsAxis, name}
		m.matrices[key] = value
		m.versions.Increment(daflock.MatrixNamesKey(rowsAxis, colsAxis))
		m.versions.Increment(daflock.MatrixKey(rowsAxis, colsAxis, name, layout.Major))
		return nil
	})
}

// DeleteMatrix removes matrix (rowsAxis, colsAxis, name). forSet has no
// effect on a non-chain backend (spec §4.5 applies only to chains).
func (m *MemoryDataset) DeleteMatrix(rowsAxis, colsAxis, name string, forSet bool) error {
	_ = forSet
	return m.lock.WithWriteLock(func() error {
		key := matrixKey{rowsAxis, colsAxis, name}
		if _, ok := m.matrices[key]; !ok {
			return m.notFound("matrix", rowsAxis+","+colsAxis+":"+name)
		}
		delete(m.matrices, key)
		m.versions.Increment(daflock.MatrixNamesKey(rowsAxis, colsAxis))
		return nil
	})
}

// MatrixNames returns every matrix name declared over (rowsAxis,
// colsAxis), sorted.
func (m *MemoryDataset) MatrixNames(rowsAxis, colsAxis string) ([]string, error) {
	var names []string
	err := m.lock.WithReadLock(func() error {
		if _, ok := m.axes[rowsAxis]; !ok {
			return m.notFound("axis", rowsAxis)
		}
		if _, ok := m.axes[colsAxis]; !ok {
			return m.notFound("axis", colsAxis)
		}
		for key := range m.matrices {
			if key.rowsAxis == rowsAxis && key.colsAxis == colsAxis {
				names = append(names, key.name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// GetEmptyDenseMatrix allocates a zero-valued dense matrix of the two
// axes' lengths and returns a handle the caller fills then seals.
func (m *MemoryDataset) GetEmptyDenseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major) (PendingMatrix, error) {
	if err := m.lock.Lock(); err != nil {
		return PendingMatrix{}, err
	}
	rows, ok := m.axes[rowsAxis]
	if !ok {
		m.lock.Unlock()
		return PendingMatrix{}, m.notFound("axis", rowsAxis)
	}
	cols, ok := m.axes[colsAxis]
	if !ok {
		m.lock.Unlock()
		return PendingMatrix{}, m.notFound("axis", colsAxis)
	}
	empty, err := NewDenseMatrix(kind, len(rows.entries), len(cols.entries), major)
	if err != nil {
		m.lock.Unlock()
		return PendingMatrix{}, err
	}
	return NewPendingMatrix(empty, func(value interface{}) error {
		defer m.lock.Unlock()
		return m.SetMatrix(rowsAxis, colsAxis, name, value.(Matrix))
	}), nil
}

// GetEmptySparseMatrix allocates a pending sparse matrix of the two axes'
// lengths, filled one major slice at a time and sealed into storage.
func (m *MemoryDataset) GetEmptySparseMatrix(rowsAxis, colsAxis, name string, kind dtype.ElementKind, major dtype.Major, nnz int, index dtype.IndexKind) (PendingSparseMatrix, error) {
	if err := m.lock.Lock(); err != nil {
		return PendingSparseMatrix{}, err
	}
	rows, ok := m.axes[rowsAxis]
	if !ok {
		m.lock.Unlock()
		return PendingSparseMatrix{}, m.notFound("axis", rowsAxis)
	}
	cols, ok := m.axes[colsAxis]
	if !ok {
		m.lock.Unlock()
		return PendingSparseMatrix{}, m.notFound("axis", colsAxis)
	}
	return NewPendingSparseMatrix(kind, len(rows.entries), len(cols.entries), major, index, nnz, func(value interface{}) error {
		defer m.lock.Unlock()
		return m.SetMatrix(rowsAxis, colsAxis, name, value.(Matrix))
	}), nil
}

// Relayout returns the materialized transpose of matrix (rowsAxis,
// colsAxis, name) — it does not overwrite the stored copy (spec §4.4:
// "relayout produces the transposed stored copy", left to the caller to
// install via SetMatrix under the axis pair swapped to match the new
// shape).
func (m *MemoryDataset) Relayout(rowsAxis, colsAxis, name string) (Matrix, error) {
	value, err := m.GetMatrix(rowsAxis, colsAxis, name)
	if err != nil {
		return Matrix{}, err
	}
	return value.Relayout(), nil
}
