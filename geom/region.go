package geom

import "math"

// Region is an axis-aligned box with half-open membership: min is inside,
// max is not.
type Region struct {
	min Vector
	mid Vector
	max Vector
}

// NewRegion returns the region spanned by two opposite corners given in any
// order.
func NewRegion(p1, p2 Vector) Region {
	mustMatch(len(p1), len(p2))
	r := Region{
		min: make(Vector, len(p1)),
		max: make(Vector, len(p1)),
	}
	for i := range p1 {
		r.min[i] = math.Min(p1[i], p2[i])
		r.max[i] = math.Max(p1[i], p2[i])
	}
	r.mid = r.min.Midpoint(r.max)
	for i := range r.mid {
		r.mid[i] = math.Min(math.Max(r.mid[i], r.min[i]), r.max[i])
	}
	return r
}

// Dim returns the dimension of the region.
func (r Region) Dim() int { return len(r.min) }

// Min returns the inclusive lower corner.
func (r Region) Min() Vector { return r.min }

// Max returns the exclusive upper corner.
func (r Region) Max() Vector { return r.max }

// Mid returns the split point of the region.
func (r Region) Mid() Vector { return r.mid }

// IsEmpty reports whether no point can be a member, which is the case when
// some axis has zero extent.
func (r Region) IsEmpty() bool {
	for i := range r.min {
		if !(r.min[i] < r.max[i]) {
			return true
		}
	}
	return false
}

// Contains reports whether min[i] <= p[i] < max[i] on every axis.
func (r Region) Contains(p Vector) bool {
	mustMatch(len(r.min), len(p))
	for i, c := range p {
		if !(c >= r.min[i]) || !(c < r.max[i]) {
			return false
		}
	}
	return true
}

// Classify returns the direction of the child holding p. It panics with
// ErrOutsideRegion when p is not a member of r.
func (r Region) Classify(p Vector) Direction {
	if !r.Contains(p) {
		panic(ErrOutsideRegion)
	}
	var d Direction
	for n, c := range p {
		if c >= r.mid[n] {
			d |= 1 << uint(n)
		}
	}
	return d
}

// Child returns the sub-region selected by d: per axis either [min, mid) or
// [mid, max).
func (r Region) Child(d Direction) Region {
	return NewRegion(d.Choose(r.min, r.max), r.mid)
}

// ExcludesRadius reports whether no point of r can lie within radius of p.
// A false result is inconclusive.
func (r Region) ExcludesRadius(p Vector, radius float64) bool {
	mustMatch(len(r.min), len(p))
	for i, c := range p {
		if r.min[i] > c+radius || r.max[i] < c-radius {
			return true
		}
	}
	return false
}

// MaxDistance returns the distance from p to the farthest corner of r.
func (r Region) MaxDistance(p Vector) float64 {
	mustMatch(len(r.min), len(p))
	far := make(Vector, len(p))
	for i, c := range p {
		if c < r.mid[i] {
			far[i] = r.max[i]
		} else {
			far[i] = r.min[i]
		}
	}
	return far.Distance(p)
}

func (r Region) String() string {
	return "(" + r.min.String() + ")-(" + r.max.String() + ")"
}
