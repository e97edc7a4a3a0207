package tree

// Stats describes the shape of a tree.
type Stats struct {
	Entries  int // entries stored
	Nodes    int // materialized nodes
	Leaves   int // leaf nodes
	Internal int // internal nodes
	Depth    int // depth of the deepest node
	Overfull int // leaves at MaxDepth holding more than Capacity entries
}

// Stats walks the subtree and reports its shape.
func (n *Node[K]) Stats() Stats {
	s := Stats{Entries: n.count}
	n.Walk(func(c *Node[K]) bool {
		s.Nodes++
		if c.depth > s.Depth {
			s.Depth = c.depth
		}
		if c.internal {
			s.Internal++
			return true
		}
		s.Leaves++
		if len(c.entries) > c.cfg.Capacity {
			s.Overfull++
		}
		return true
	})
	return s
}
