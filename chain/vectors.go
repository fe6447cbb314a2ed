package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/dtype"
	"github.com/tanaylab/daf-go/storage"
)

// HasVector reports whether any member has vector (axis, name).
func (c *Chain) HasVector(axis, name string) bool {
	for _, member := range c.members {
		if member.HasVector(axis, name) {
			return true
		}
	}
	return false
}

// GetVector traverses members in reverse and returns the first one that
// has vector (axis, name).
func (c *Chain) GetVector(axis, name string) (storage.Vector, error) {
	for i := len(c.members) - 1; i >= 0; i-- {
		if c.members[i].HasVector(axis, name) {
			return c.members[i].GetVector(axis, name)
		}
	}
	return storage.Vector{}, daferr.NotFoundf("vector", axis+":"+name, c.name)
}

// SetVector writes vector (axis, name) to the tail member, implicitly
// adding axis to the tail if it lacks it but the chain already resolves
// it unambiguously (spec §4.5).
func (c *Chain) SetVector(axis, name string, value storage.Vector) error {
	if err := c.ensureTailAxis(axis); err != nil {
		return err
	}
	return c.tail().SetVector(axis, name, value)
}

// ensureTailAxis adds axis to the tail member using the chain's resolved
// entries if the tail doesn't yet carry it but some other member does.
func (c *Chain) ensureTailAxis(axis string) error {
	if c.tail().HasAxis(axis, true) {
		return nil
	}
	entries, err := c.AxisEntries(axis)
	if err != nil {
		return err
	}
	return c.tail().AddAxis(axis, entries)
}

// DeleteVector removes vector (axis, name) from the tail member, subject
// to earlier-member protection (spec §4.5).
func (c *Chain) DeleteVector(axis, name string, forSet bool) error {
	earlier := c.earlierHolders(func(m storage.Format) bool { return m.HasVector(axis, name) })
	if !forSet && len(earlier) > 0 {
		return daferr.ForbiddenDeletef("vector", axis+":"+name, earlier[0].Name())
	}
	if c.tail().HasVector(axis, name) {
		return c.tail().DeleteVector(axis, name, forSet)
	}
	if !forSet {
		return daferr.NotFoundf("vector", axis+":"+name, c.name)
	}
	return nil
}

// VectorNames returns the union of vector names on axis across every
// member that carries axis at all.
func (c *Chain) VectorNames(axis string) ([]string, error) {
	var lists [][]string
	found := false
	for _, member := range c.members {
		if !member.HasAxis(axis, false) {
			continue
		}
		found = true
		names, err := member.VectorNames(axis)
		if err != nil {
			return nil, err
		}
		lists = append(lists, names)
	}
	if !found {
		return nil, daferr.NotFoundf("axis", axis, c.name)
	}
	return unionSorted(lists...), nil
}

// GetEmptyDenseVector allocates a pending vector on the tail member.
func (c *Chain) GetEmptyDenseVector(axis, name string, kind dtype.ElementKind) (storage.PendingVector, error) {
	if err := c.ensureTailAxis(axis); err != nil {
		return storage.PendingVector{}, err
	}
	return c.tail().GetEmptyDenseVector(axis, name, kind)
}

// GetEmptySparseVector allocates a pending sparse vector on the tail member.
func (c *Chain) GetEmptySparseVector(axis, name string, kind dtype.ElementKind, nnz int, index dtype.IndexKind) (storage.PendingSparseVector, error) {
	if err := c.ensureTailAxis(axis); err != nil {
		return storage.PendingSparseVector{}, err
	}
	return c.tail().GetEmptySparseVector(axis, name, kind, nnz, index)
}
