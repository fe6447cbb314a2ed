package chain

import (
	"github.com/tanaylab/daf-go/daferr"
	"github.com/tanaylab/daf-go/storage"
)

var _ storage.Format = (*Chain)(nil)

// Chain is an ordered sequence of storage.Format members d[0], …,
// d[n-1]. Reads traverse members in reverse ("last writer wins"); writes
// always target d[n-1]; deletion is blocked when an earlier member still
// holds the artifact (spec §4.5).
type Chain struct {
	name    string
	members []storage.Format
}

// New constructs a Chain over members in order, validating axis
// consistency across them: for every axis name appearing in more than
// one member, all members' entry sequences for that axis must be equal
// (spec §3 invariant 5, §4.5). Construction fails before any other chain
// operation becomes usable.
func New(name string, members ...storage.Format) (*Chain, error) {
	if len(members) == 0 {
		return nil, daferr.EmptyChain()
	}
	if err := validateAxisConsistency(members); err != nil {
		return nil, err
	}
	return &Chain{name: name, members: append([]storage.Format(nil), members...)}, nil
}

// validateAxisConsistency checks that every axis name shared by more
// than one member has identical entries everywhere it appears.
func validateAxisConsistency(members []storage.Format) error {
	seenOn := map[string]storage.Format{}
	seenEntries := map[string][]string{}
	for _, member := range members {
		for _, axis := range member.AxisNames() {
			entries, err := member.AxisEntries(axis)
			if err != nil {
				return err
			}
			if previous, ok := seenOn[axis]; ok {
				if !equalStrings(seenEntries[axis], entries) {
					return daferr.InconsistentAxisEntries(axis, previous.Name(), member.Name())
				}
				continue
			}
			seenOn[axis] = member
			seenEntries[axis] = entries
		}
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// tail returns the chain's writable member, d[n-1].
func (c *Chain) tail() storage.Format { return c.members[len(c.members)-1] }

// Name returns the chain's own name, used in error message context.
func (c *Chain) Name() string { return c.name }

// earlierHolders returns, in order, the members before the tail that
// currently hold the artifact checked by has(member).
func (c *Chain) earlierHolders(has func(storage.Format) bool) []storage.Format {
	var holders []storage.Format
	for _, member := range c.members[:len(c.members)-1] {
		if has(member) {
			holders = append(holders, member)
		}
	}
	return holders
}
