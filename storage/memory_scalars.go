package storage

import (
	"sort"

	"github.com/tanaylab/daf-go/daflock"
)

// HasScalar reports whether a scalar named name exists.
func (m *MemoryDataset) HasScalar(name string) bool {
	var ok bool
	_ = m.lock.WithReadLock(func() error {
		_, ok = m.scalars[name]
		return nil
	})
	return ok
}

// GetScalar returns the value of scalar name, failing with NotFound if absent.
func (m *MemoryDataset) GetScalar(name string) (interface{}, error) {
	var value interface{}
	err := m.lock.WithReadLock(func() error {
		v, ok := m.scalars[name]
		if !ok {
			return m.notFound("scalar", name)
		}
		value = v
		return nil
	})
	return value, err
}

// SetScalar creates or overwrites scalar name with value.
func (m *MemoryDataset) SetScalar(name string, value interface{}) error {
	return m.lock.WithWriteLock(func() error {
		m.scalars[name] = value
		m.versions.Increment(daflock.ScalarNamesKey())
		return nil
	})
}

// DeleteScalar removes scalar name. forSet (a set-over-existing shadow
// overwrite) and a plain delete behave identically on a non-chain
// backend: there is no earlier member to protect (spec §4.5).
func (m *MemoryDataset) DeleteScalar(name string, forSet bool) error {
	_ = forSet
	return m.lock.WithWriteLock(func() error {
		if _, ok := m.scalars[name]; !ok {
			return m.notFound("scalar", name)
		}
		delete(m.scalars, name)
		m.versions.Increment(daflock.ScalarNamesKey())
		return nil
	})
}

// ScalarNames returns every scalar name, sorted for deterministic output.
func (m *MemoryDataset) ScalarNames() []string {
	var names []string
	_ = m.lock.WithReadLock(func() error {
		names = make([]string, 0, len(m.scalars))
		for name := range m.scalars {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)
	return names
}
