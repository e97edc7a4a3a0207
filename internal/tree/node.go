package tree

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/ntree/geom"
)

// Node is a leaf or an internal node of the tree. Each node is owned by
// exactly one parent.
type Node[K comparable] struct {
	cfg      *Config
	region   geom.Region
	depth    int
	count    int
	internal bool

	// leaf state
	entries []Entry[K]

	// internal state: children ordered by direction code, occupied holds the
	// codes present so that a child's slot is its rank in occupied.
	occupied *roaring.Bitmap
	children []*Node[K]
}

// New creates an empty root leaf covering region.
func New[K comparable](region geom.Region, cfg *Config) *Node[K] {
	return &Node[K]{
		cfg:    cfg.OrDefault(),
		region: region,
	}
}

// Region returns the region covered by the node.
func (n *Node[K]) Region() geom.Region { return n.region }

// Depth returns the distance from the root, which has depth 0.
func (n *Node[K]) Depth() int { return n.depth }

// Count returns the number of entries stored in the subtree.
func (n *Node[K]) Count() int { return n.count }

// IsLeaf reports whether the node holds entries directly.
func (n *Node[K]) IsLeaf() bool { return !n.internal }

// Entries returns the entries held by a leaf. It is empty for internal nodes.
func (n *Node[K]) Entries() []Entry[K] { return n.entries }

// Children returns the materialized children ordered by direction code.
func (n *Node[K]) Children() []*Node[K] { return n.children }

// Child returns the child for direction d, or nil if none was created.
func (n *Node[K]) Child(d geom.Direction) *Node[K] {
	if n.occupied == nil || !n.occupied.Contains(uint32(d)) {
		return nil
	}
	return n.children[n.occupied.Rank(uint32(d))-1]
}

func (n *Node[K]) childOrCreate(d geom.Direction) *Node[K] {
	if c := n.Child(d); c != nil {
		return c
	}
	c := &Node[K]{
		cfg:    n.cfg,
		region: n.region.Child(d),
		depth:  n.depth + 1,
	}
	slot := int(n.occupied.Rank(uint32(d)))
	n.children = slices.Insert(n.children, slot, c)
	n.occupied.Add(uint32(d))
	return c
}

// AppendEntries appends every entry of the subtree to dst.
func (n *Node[K]) AppendEntries(dst []Entry[K]) []Entry[K] {
	if !n.internal {
		return append(dst, n.entries...)
	}
	for _, c := range n.children {
		dst = c.AppendEntries(dst)
	}
	return dst
}

// AppendRegions appends the region of every node of the subtree to dst,
// parents before children.
func (n *Node[K]) AppendRegions(dst []geom.Region) []geom.Region {
	dst = append(dst, n.region)
	for _, c := range n.children {
		dst = c.AppendRegions(dst)
	}
	return dst
}

// Walk calls fn for every node of the subtree, parents before children. A
// false return skips the node's children.
func (n *Node[K]) Walk(fn func(*Node[K]) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node[K]) String() string {
	return fmt.Sprintf("N[leaf=%t;count=%d;entries=%d;children=%d;depth=%d;%s]",
		!n.internal, n.count, len(n.entries), len(n.children), n.depth, n.region)
}
