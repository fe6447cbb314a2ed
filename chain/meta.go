package chain

import "github.com/tanaylab/daf-go/daflock"

// DescriptionHeader returns the tail member's header.
func (c *Chain) DescriptionHeader() string { return c.tail().DescriptionHeader() }

// DescriptionFooter returns the tail member's footer.
func (c *Chain) DescriptionFooter() string { return c.tail().DescriptionFooter() }

// VersionCounter returns the sum of every member's counter for key, so
// any change anywhere invalidates caches built against the chain as a
// whole (spec §4.5).
func (c *Chain) VersionCounter(key daflock.DataKey) uint32 {
	var sum uint32
	for _, member := range c.members {
		sum += member.VersionCounter(key)
	}
	return sum
}

// IncrementVersionCounter bumps the tail member's counter for key and
// returns the chain's new summed total.
func (c *Chain) IncrementVersionCounter(key daflock.DataKey) uint32 {
	c.tail().IncrementVersionCounter(key)
	return c.VersionCounter(key)
}
