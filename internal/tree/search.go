package tree

import (
	"math"

	"github.com/hupe1980/ntree/geom"
	"github.com/hupe1980/ntree/internal/queue"
)

// Neighbor is an entry found by a nearest search with its distance to the
// query point.
type Neighbor[K comparable] struct {
	Entry[K]
	Distance float64
}

// NewCandidates returns an empty accumulator for a k-nearest search over at
// most count entries: a max-heap keyed by squared distance whose top is the
// worst accepted entry.
func NewCandidates[K comparable](k, count int) *queue.PriorityQueue[Entry[K]] {
	return queue.NewMax[Entry[K]](max(min(k, count), 0))
}

// KNN returns the k entries closest to p in ascending distance, or all
// entries when the subtree holds fewer than k.
func (n *Node[K]) KNN(p geom.Vector, k int) []Neighbor[K] {
	acc := NewCandidates[K](k, n.count)
	n.Nearest(p, k, acc)

	items := acc.Drain()
	out := make([]Neighbor[K], len(items))
	for i, item := range items {
		out[i] = Neighbor[K]{Entry: item.Value, Distance: math.Sqrt(item.Distance)}
	}
	return out
}

// Nearest runs a branch-and-bound search for the k entries closest to p,
// accumulating them into acc.
//
// The child containing p is searched first since it is the most likely to
// tighten the bound. A sibling is skipped only when acc is full and the
// sibling's region provably holds nothing closer than the worst accepted
// entry.
func (n *Node[K]) Nearest(p geom.Vector, k int, acc *queue.PriorityQueue[Entry[K]]) {
	n.cfg.Hook.OnVisit(n.region, n.depth)
	if !n.internal {
		for _, e := range n.entries {
			acc.PushItemBounded(queue.Item[Entry[K]]{Value: e, Distance: e.Point.SquaredDistance(p)}, k)
		}
		return
	}

	var first *Node[K]
	if n.region.Contains(p) {
		if first = n.Child(n.region.Classify(p)); first != nil {
			first.Nearest(p, k, acc)
		}
	}
	for _, c := range n.children {
		if c == first {
			continue
		}
		if acc.Len() >= k {
			worst, _ := acc.TopItem()
			if c.region.ExcludesRadius(p, math.Sqrt(worst.Distance)) {
				n.cfg.Hook.OnPrune(c.region, c.depth)
				continue
			}
		}
		c.Nearest(p, k, acc)
	}
}

// AppendInRadius appends to dst every entry whose distance to p is at most
// radius.
func (n *Node[K]) AppendInRadius(dst []Entry[K], p geom.Vector, radius float64) []Entry[K] {
	if n.region.ExcludesRadius(p, radius) {
		n.cfg.Hook.OnPrune(n.region, n.depth)
		return dst
	}
	n.cfg.Hook.OnVisit(n.region, n.depth)
	if !n.internal {
		for _, e := range n.entries {
			if e.Point.Distance(p) <= radius {
				dst = append(dst, e)
			}
		}
		return dst
	}
	for _, c := range n.children {
		dst = c.AppendInRadius(dst, p, radius)
	}
	return dst
}
