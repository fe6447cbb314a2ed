package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/storage"
)

// HasScalar reports whether any member has scalar name.
func (c *Chain) HasScalar(name string) bool {
	for _, member := range c.members {
		if member.HasScalar(name) {
			return true
		}
	}
	return false
}

// GetScalar traverses members in reverse and returns the first one that
// has scalar name ("last writer wins", spec §4.5).
func (c *Chain) GetScalar(name string) (interface{}, error) {
	for i := len(c.members) - 1; i >= 0; i-- {
		if c.members[i].HasScalar(name) {
			return c.members[i].GetScalar(name)
		}
	}
	return nil, daferr.NotFoundf("scalar", name, c.name)
}

// SetScalar writes scalar name to the tail member.
func (c *Chain) SetScalar(name string, value interface{}) error {
	return c.tail().SetScalar(name, value)
}

// DeleteScalar removes scalar name from the tail member. Unless forSet,
// it fails with ForbiddenDelete if any earlier member still holds the
// scalar ("because it exists in the earlier: <name>", spec §4.5); forSet
// is the internal set-over-existing path, where the earlier value is
// shadowed rather than removed.
func (c *Chain) DeleteScalar(name string, forSet bool) error {
	earlier := c.earlierHolders(func(m storage.Format) bool { return m.HasScalar(name) })
	if !forSet && len(earlier) > 0 {
		return daferr.ForbiddenDeletef("scalar", name, earlier[0].Name())
	}
	if c.tail().HasScalar(name) {
		return c.tail().DeleteScalar(name, forSet)
	}
	if !forSet {
		return daferr.NotFoundf("scalar", name, c.name)
	}
	return nil
}

// ScalarNames returns the union of scalar names across every member.
func (c *Chain) ScalarNames() []string {
	lists := make([][]string, len(c.members))
	for i, member := range c.members {
		lists[i] = member.ScalarNames()
	}
	return unionSorted(lists...)
}
