package storage

import (
	"sort"

	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/daflock"
)

// HasAxis reports whether axis name exists. forChange is accepted for
// Format-contract symmetry; a plain in-memory dataset never refuses a
// mutation intent the way a chain's non-tail member does (spec §4.3).
func (m *MemoryDataset) HasAxis(name string, forChange bool) bool {
	_ = forChange
	var ok bool
	_ = m.lock.WithReadLock(func() error {
		_, ok = m.axes[name]
		return nil
	})
	return ok
}

// AddAxis creates axis name with the given ordered entries. Format
// implementations trust the caller for name/entry validity (spec §3
// invariants 1-2); dataset.Dataset enforces them before a call reaches here.
func (m *MemoryDataset) AddAxis(name string, entries []string) error {
	return m.lock.WithWriteLock(func() error {
		if _, ok := m.axes[name]; ok {
			return daferr.AlreadyExistsf("axis", name, m.name)
		}
		m.axes[name] = newAxisData(append([]string(nil), entries...))
		m.vectors[name] = make(map[string]Vector)
		m.versions.Increment(daflock.AxisNamesKey())
		m.versions.Increment(daflock.AxisEntriesKey(name))
		return nil
	})
}

// DeleteAxis removes axis name and every vector/matrix indexed by it.
// forSet has no effect on a non-chain backend (see HasAxis).
func (m *MemoryDataset) DeleteAxis(name string, forSet bool) error {
	_ = forSet
	return m.lock.WithWriteLock(func() error {
		if _, ok := m.axes[name]; !ok {
			return m.notFound("axis", name)
		}
		delete(m.axes, name)
		delete(m.vectors, name)
		for key := range m.matrices {
			if key.rowsAxis == name || key.colsAxis == name {
				delete(m.matrices, key)
			}
		}
		m.versions.Increment(daflock.AxisNamesKey())
		return nil
	})
}

// AxisLength returns axis name's entry count.
func (m *MemoryDataset) AxisLength(name string) (int, error) {
	var n int
	err := m.lock.WithReadLock(func() error {
		axis, ok := m.axes[name]
		if !ok {
			return m.notFound("axis", name)
		}
		n = len(axis.entries)
		return nil
	})
	return n, err
}

// AxisEntries returns axis name's ordered entry sequence.
func (m *MemoryDataset) AxisEntries(name string) ([]string, error) {
	var entries []string
	err := m.lock.WithReadLock(func() error {
		axis, ok := m.axes[name]
		if !ok {
			return m.notFound("axis", name)
		}
		entries = append([]string(nil), axis.entries...)
		return nil
	})
	return entries, err
}

// AxisNames returns every axis name, sorted for deterministic output.
func (m *MemoryDataset) AxisNames() []string {
	var names []string
	_ = m.lock.WithReadLock(func() error {
		names = make([]string, 0, len(m.axes))
		for name := range m.axes {
			names = append(names, name)
		}
		return nil
	})
	sort.Strings(names)
	return names
}
