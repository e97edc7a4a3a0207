// Package geom provides the geometric primitives of the index: fixed-length
// vectors, per-axis direction codes and half-open axis-aligned regions.
//
// A Region splits into 2^D children around its midpoint. The child a point
// belongs to is identified by a Direction whose bit n is set when the point
// lies in the high half of axis n:
//
//	r := geom.NewRegion(geom.Vector{0, 0}, geom.Vector{1, 1})
//	d := r.Classify(geom.Vector{0.7, 0.3}) // 0b01: high on x, low on y
//	child := r.Child(d)                    // ([0.5,0])-([1,0.5])
//
// Membership is half-open: the max corner of a region never belongs to it.
package geom
