package geom

// MaxDimension is the largest supported dimension. A Direction carries one
// bit per axis.
const MaxDimension = 32

// Direction selects, per axis, the low (bit clear) or high (bit set) half of
// a region.
type Direction uint32

// Bit reports whether axis n selects the high half.
func (d Direction) Bit(n int) bool {
	return d&(1<<uint(n)) != 0
}

// Choose builds a vector taking hi[n] where bit n is set and lo[n] otherwise.
func (d Direction) Choose(lo, hi Vector) Vector {
	mustMatch(len(lo), len(hi))
	out := make(Vector, len(lo))
	for n := range lo {
		if d.Bit(n) {
			out[n] = hi[n]
		} else {
			out[n] = lo[n]
		}
	}
	return out
}

// Directions returns the number of distinct directions in dimension dim.
func Directions(dim int) uint64 {
	return 1 << uint(dim)
}
