package storage

import (
	"sort"

	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
	"github.com/tanaylab/daf-go/dtype"
)

// HasVector reports whether a vector named name exists on axis.
func (m *MemoryDataset) HasVector(axis, name string) bool {
	var ok bool
	_ = m.lock.WithReadLock(func() error {
		byName, present := m.vectors[axis]
		if !present {
			return nil
		}
		_, ok = byName[name]
		return nil
	})
	return ok
}

// GetVector returns vector (axis, name), failing with NotFound if absent.
func (m *MemoryDataset) GetVector(axis, name string) (Vector, error) {
	var result Vector
	err := m.lock.WithReadLock(func() error {
		byName, present := m.vectors[axis]
		if !present {
			return m.notFound("axis", axis)
		}
		v, ok := byName[name]
		if !ok {
			return m.notFound("vector", axis+":"+name)
		}
		result = v
		return nil
	})
	return result, err
}

// SetVector creates or overwrites vector (axis, name), validating its
// length against axis's length ("value length: N is different from axis:
// A length: M", spec §4.4).
func (m *MemoryDataset) SetVector(axis, name string, value Vector) error {
	return m.lock.WithWriteLock(func() error {
		axisData, ok := m.axes[axis]
		if !ok {
			return m.notFound("axis", axis)
		}
		n, err := value.Len()
		if err != nil {
			return err
		}
		if n != len(axisData.entries) {
			return daferr.VectorLengthMismatch(n, axis, len(axisData.entries))
		}
		if m.vectors[axis] == nil {
			m.vectors[axis] = make(map[string]Vector)
		}
		m.vectors[axis][name] = value
		m.versions.Increment(daflock.VectorNamesKey(axis))
		m.versions.Increment(daflock.VectorKey(axis, name))
		return nil
	})
}

// DeleteVector removes vector (axis, name). forSet has no effect on a
// non-chain backend (spec §4.5 applies only to chains).
func (m *MemoryDataset) DeleteVector(axis, name string, forSet bool) error {
	_ = forSet
	return m.lock.WithWriteLock(func() error {
		byName, present := m.vectors[axis]
		if !present {
			return m.notFound("axis", axis)
		}
		if _, ok := byName[name]; !ok {
			return m.notFound("vector", axis+":"+name)
		}
		delete(byName, name)
		m.versions.Increment(daflock.VectorNamesKey(axis))
		return nil
	})
}

// VectorNames returns every vector name on axis, sorted.
func (m *MemoryDataset) VectorNames(axis string) ([]string, error) {
	var names []string
	err := m.lock.WithReadLock(func() error {
		byName, ok := m.vectors[axis]
		if !ok {
			return m.notFound("axis", axis)
		}
		names = make([]string, 0, len(byName))
		for name := range byName {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// GetEmptyDenseVector allocates axis's length worth of zero-valued
// storage of kind and returns a handle the caller fills then seals
// (spec §4.3's "empty allocator" pattern; avoids a double-copy for large
// vectors).
func (m *MemoryDataset) GetEmptyDenseVector(axis, name string, kind dtype.ElementKind) (PendingVector, error) {
	if err := m.lock.Lock(); err != nil {
		return PendingVector{}, err
	}
	axisData, ok := m.axes[axis]
	if !ok {
		m.lock.Unlock()
		return PendingVector{}, m.notFound("axis", axis)
	}
	empty := NewEmptyVector(kind, len(axisData.entries))
	return NewPendingVector(empty, func(value interface{}) error {
		defer m.lock.Unlock()
		return m.SetVector(axis, name, value.(Vector))
	}), nil
}

// GetEmptySparseVector allocates a pending sparse vector of the axis's
// length, sealed into a dense Vector on Seal (spec §4.3's sparse vector
// allocator; in-memory vectors are always dense-backed, a deliberate
// simplification since the domain stack's sparse wiring targets matrices,
// spec §5).
func (m *MemoryDataset) GetEmptySparseVector(axis, name string, kind dtype.ElementKind, nnz int, index dtype.IndexKind) (PendingSparseVector, error) {
	_ = index
	if err := m.lock.Lock(); err != nil {
		return PendingSparseVector{}, err
	}
	axisData, ok := m.axes[axis]
	if !ok {
		m.lock.Unlock()
		return PendingSparseVector{}, m.notFound("axis", axis)
	}
	return NewPendingSparseVector(kind, len(axisData.entries), nnz, func(raw interface{}) error {
		defer m.lock.Unlock()
		payload := raw.(sparseVectorPayload)
		dense := NewEmptyVector(payload.kind, payload.length)
		for k, idx := range payload.index {
			value, err := elementAt(payload.kind, payload.data, k)
			if err != nil {
				return err
			}
			if err := dense.Set(idx, value); err != nil {
				return err
			}
		}
		return m.SetVector(axis, name, dense)
	}), nil
}
