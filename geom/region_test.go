package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	unit := NewRegion(Vector{1, 1}, Vector{0, 0})

	t.Run("Corners", func(t *testing.T) {
		assert.Equal(t, Vector{0, 0}, unit.Min())
		assert.Equal(t, Vector{1, 1}, unit.Max())
		assert.Equal(t, Vector{0.5, 0.5}, unit.Mid())
		assert.Equal(t, 2, unit.Dim())
		assert.False(t, unit.IsEmpty())
		assert.True(t, NewRegion(Vector{0, 1}, Vector{1, 1}).IsEmpty())
	})

	t.Run("ExtremeCorners", func(t *testing.T) {
		r := NewRegion(Vector{1e308, -math.MaxFloat64}, Vector{1.7e308, math.MaxFloat64})
		for i := range r.Dim() {
			assert.LessOrEqual(t, r.Min()[i], r.Mid()[i])
			assert.LessOrEqual(t, r.Mid()[i], r.Max()[i])
		}
		assert.True(t, r.Mid().IsFinite())

		p := Vector{1.6e308, 1}
		assert.Equal(t, Direction(0b11), r.Classify(p))
		assert.True(t, r.Child(r.Classify(p)).Contains(p))
	})

	t.Run("Contains", func(t *testing.T) {
		tests := []struct {
			name string
			p    Vector
			want bool
		}{
			{"MinCorner", Vector{0, 0}, true},
			{"Inside", Vector{0.3, 0.9}, true},
			{"MaxCorner", Vector{1, 1}, false},
			{"MaxOnOneAxis", Vector{0.5, 1}, false},
			{"Below", Vector{-0.1, 0.5}, false},
			{"NaN", Vector{math.NaN(), 0.5}, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, unit.Contains(tt.p))
			})
		}
	})

	t.Run("Classify", func(t *testing.T) {
		assert.Equal(t, Direction(0), unit.Classify(Vector{0.3, 0.3}))
		assert.Equal(t, Direction(1), unit.Classify(Vector{0.7, 0.3}))
		assert.Equal(t, Direction(2), unit.Classify(Vector{0.3, 0.7}))
		assert.Equal(t, Direction(3), unit.Classify(Vector{0.5, 0.5}))
		assert.PanicsWithValue(t, ErrOutsideRegion, func() {
			unit.Classify(Vector{1, 0.5})
		})
	})

	t.Run("Child", func(t *testing.T) {
		for d := Direction(0); d < 4; d++ {
			child := unit.Child(d)
			// The midpoint of every child classifies back to the child's direction.
			assert.Equal(t, d, unit.Classify(child.Mid()))
			assert.True(t, unit.Contains(child.Min()))
		}

		high := unit.Child(3)
		assert.Equal(t, Vector{0.5, 0.5}, high.Min())
		assert.Equal(t, Vector{1, 1}, high.Max())
		assert.Equal(t, "([0.5,0.5])-([1,1])", high.String())
	})

	t.Run("ExcludesRadius", func(t *testing.T) {
		r := NewRegion(Vector{0.5, 0.5}, Vector{1, 1})
		assert.True(t, r.ExcludesRadius(Vector{0, 0.75}, 0.4))
		assert.False(t, r.ExcludesRadius(Vector{0, 0.75}, 0.5))
		assert.True(t, r.ExcludesRadius(Vector{0.75, 1.5}, 0.4))
		// Inconclusive at the corner: the box test passes though the
		// corner lies farther than the radius.
		assert.False(t, r.ExcludesRadius(Vector{0.1, 0.1}, 0.41))
		assert.Greater(t, Vector{0.1, 0.1}.Distance(r.Min()), 0.41)
	})

	t.Run("MaxDistance", func(t *testing.T) {
		assert.InDelta(t, math.Sqrt2, unit.MaxDistance(Vector{0, 0}), 1e-12)
		assert.InDelta(t, math.Sqrt(0.5), unit.MaxDistance(Vector{0.5, 0.5}), 1e-12)
	})
}
