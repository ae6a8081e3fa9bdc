package searcher

// NodeCounter counts nodes entered during search, one increment per node
// including terminal ones. It is scoped to a single top-level call unless
// the caller supplies it to several evaluators to accumulate. Not safe for
// concurrent increment: simultaneous searches need private counters.
type NodeCounter struct {
	nodes int
}

func (c *NodeCounter) increment() {
	c.nodes++
}

// Count returns the number of nodes visited so far.
func (c *NodeCounter) Count() int {
	return c.nodes
}
