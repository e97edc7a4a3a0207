package geom

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is an ordered tuple of coordinates. Vectors handed to the index are
// treated as immutable.
type Vector []float64

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v) }

// At returns the i-th coordinate.
func (v Vector) At(i int) float64 { return v[i] }

// Clone returns a copy of v that shares no memory with it.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Equal reports whether v and o have the same length and coordinates.
func (v Vector) Equal(o Vector) bool {
	return floats.Equal(v, o)
}

// IsFinite reports whether every coordinate is neither NaN nor infinite.
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Midpoint returns the elementwise average of v and o. Each coordinate is
// halved before summing, so corners near ±MaxFloat64 do not overflow.
func (v Vector) Midpoint(o Vector) Vector {
	mustMatch(len(v), len(o))
	mid := make(Vector, len(v))
	floats.ScaleTo(mid, 0.5, v)
	floats.AddScaled(mid, 0.5, o)
	return mid
}

// SquaredDistance returns the squared Euclidean distance between v and o.
func (v Vector) SquaredDistance(o Vector) float64 {
	mustMatch(len(v), len(o))
	var d float64
	for i := range v {
		diff := v[i] - o[i]
		d += diff * diff
	}
	return d
}

// Distance returns the Euclidean distance between v and o.
func (v Vector) Distance(o Vector) float64 {
	mustMatch(len(v), len(o))
	return floats.Distance(v, o, 2)
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, c := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
