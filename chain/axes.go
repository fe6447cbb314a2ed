package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/storage"
)

// HasAxis reports whether any member has axis name. forChange is
// forwarded to the tail member only: earlier members are never mutated
// directly, so their willingness to change is irrelevant.
func (c *Chain) HasAxis(name string, forChange bool) bool {
	if forChange {
		return c.tail().HasAxis(name, true) || c.hasAxisAnywhere(name)
	}
	return c.hasAxisAnywhere(name)
}

func (c *Chain) hasAxisAnywhere(name string) bool {
	for _, member := range c.members {
		if member.HasAxis(name, false) {
			return true
		}
	}
	return false
}

// AddAxis adds axis name to the tail member. Because construction already
// validated that any axis shared across members agrees (invariant 5),
// this is never used to reconcile divergent entries — only to introduce
// a new axis, or one the tail doesn't yet carry but an earlier member
// does (in which case entries must match the chain's resolved entries,
// spec §4.5's "implicit add" rule for writes).
func (c *Chain) AddAxis(name string, entries []string) error {
	return c.tail().AddAxis(name, entries)
}

// DeleteAxis removes axis name from the tail member, subject to the same
// earlier-member protection as any other artifact.
func (c *Chain) DeleteAxis(name string, forSet bool) error {
	earlier := c.earlierHolders(func(m storage.Format) bool { return m.HasAxis(name, false) })
	if !forSet && len(earlier) > 0 {
		return daferr.ForbiddenDeletef("axis", name, earlier[0].Name())
	}
	if c.tail().HasAxis(name, false) {
		return c.tail().DeleteAxis(name, forSet)
	}
	if !forSet && len(earlier) == 0 {
		return daferr.NotFoundf("axis", name, c.name)
	}
	return nil
}

// AxisLength resolves axis name's length by reading its entries, which
// are guaranteed identical across every member that declares it
// (invariant 5).
func (c *Chain) AxisLength(name string) (int, error) {
	entries, err := c.AxisEntries(name)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// AxisEntries returns axis name's entries from whichever member declares
// it first (they are validated identical across every member that does).
func (c *Chain) AxisEntries(name string) ([]string, error) {
	for _, member := range c.members {
		if member.HasAxis(name, false) {
			return member.AxisEntries(name)
		}
	}
	return nil, daferr.NotFoundf("axis", name, c.name)
}

// AxisNames returns the union of axis names across every member.
func (c *Chain) AxisNames() []string {
	lists := make([][]string, len(c.members))
	for i, member := range c.members {
		lists[i] = member.AxisNames()
	}
	return unionSorted(lists...)
}
