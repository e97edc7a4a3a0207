package tree

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/ntree/geom"
)

// Insert adds e to the subtree. e.Point must lie inside the node's region.
func (n *Node[K]) Insert(e Entry[K]) {
	n.count++
	if n.internal {
		n.childOrCreate(n.region.Classify(e.Point)).Insert(e)
		return
	}
	n.entries = append(n.entries, e)
	if len(n.entries) > n.cfg.Capacity && n.depth < n.cfg.MaxDepth {
		n.split()
	}
}

// split turns an overflowing leaf into an internal node and routes its
// entries into children one level down.
func (n *Node[K]) split() {
	entries := n.entries
	n.entries = nil
	n.internal = true
	n.occupied = roaring.New()
	n.cfg.Hook.OnSplit(n.region, n.depth, n.count)

	for _, e := range entries {
		n.childOrCreate(n.region.Classify(e.Point)).Insert(e)
	}
}

// Delete removes the entry carrying e.Payload. e.Point is used for routing
// only and must be the point the entry is stored at. It reports whether an
// entry was removed.
func (n *Node[K]) Delete(e Entry[K]) bool {
	if !n.internal {
		for i := range n.entries {
			if n.entries[i].matches(e.Payload) {
				last := len(n.entries) - 1
				copy(n.entries[i:], n.entries[i+1:])
				n.entries[last] = Entry[K]{}
				n.entries = n.entries[:last]
				n.count--
				return true
			}
		}
		return false
	}

	c := n.Child(n.region.Classify(e.Point))
	if c == nil || !c.Delete(e) {
		return false
	}
	n.count--
	if n.count <= n.cfg.Capacity {
		n.collapse()
	}
	return true
}

// collapse folds an internal node back into a leaf holding every entry of
// its subtree.
func (n *Node[K]) collapse() {
	entries := n.AppendEntries(make([]Entry[K], 0, n.count))
	n.internal = false
	n.occupied = nil
	n.children = nil
	n.entries = entries
	n.cfg.Hook.OnCollapse(n.region, n.depth, n.count)
}

// Move relocates the entry carrying e.Payload from e.Point to to. Both points
// must lie inside the node's region. It reports whether the entry was found.
func (n *Node[K]) Move(e Entry[K], to geom.Vector) bool {
	if !n.internal {
		for i := range n.entries {
			if n.entries[i].matches(e.Payload) {
				n.entries[i].Point = to
				return true
			}
		}
		return false
	}

	from := n.region.Classify(e.Point)
	dst := n.region.Classify(to)
	c := n.Child(from)
	if c == nil {
		return false
	}
	if from == dst {
		return c.Move(e, to)
	}
	if !c.Delete(e) {
		return false
	}
	n.childOrCreate(dst).Insert(Entry[K]{Point: to, Payload: e.Payload})
	return true
}
