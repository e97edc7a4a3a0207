// Package ntree implements an in-memory spatial index over a bounded
// region of D-dimensional space.
//
// The index is a 2^D-ary partitioning tree: a quadtree in two dimensions,
// an octree in three. Every node covers a half-open box and every internal
// node divides its box at the midpoint of each axis, so a child is named by
// one bit per axis recording which side of the midpoint it covers. Children
// are created only when a point lands in them.
//
// Payloads are opaque comparable keys. Each payload is stored at most once;
// the index remembers its point so Remove and Move need only the key.
//
//	idx, err := ntree.New[string](2, []float64{0, 0}, []float64{1, 1})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = idx.Add([]float64{0.25, 0.75}, "a")
//	nearest, _ := idx.Nearest([]float64{0.3, 0.7}, 1)
//
// A leaf holding more than its capacity (WithCapacity) splits once; an
// internal node whose subtree falls back to its capacity collapses into a
// leaf. Splitting stops at WithMaxDepth so that many identical points
// cannot recurse forever; such leaves simply hold more than capacity.
//
// Queries may run concurrently with each other but not with mutations.
package ntree
