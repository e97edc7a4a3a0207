package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityQueue(t *testing.T) {
	t.Run("MaxHeap", func(t *testing.T) {
		pq := NewMax[string](4)
		pq.PushItem(Item[string]{Value: "a", Distance: 1})
		pq.PushItem(Item[string]{Value: "c", Distance: 3})
		pq.PushItem(Item[string]{Value: "b", Distance: 2})

		top, ok := pq.TopItem()
		require.True(t, ok)
		assert.Equal(t, "c", top.Value)

		var got []string
		for pq.Len() > 0 {
			item, _ := pq.PopItem()
			got = append(got, item.Value)
		}
		assert.Equal(t, []string{"c", "b", "a"}, got)

		_, ok = pq.PopItem()
		assert.False(t, ok)
		_, ok = pq.TopItem()
		assert.False(t, ok)
	})

	t.Run("MaxHeapBounded", func(t *testing.T) {
		pq := NewMax[int](3)
		for i, d := range []float64{5, 1, 4, 2, 3, 0.5} {
			pq.PushItemBounded(Item[int]{Value: i, Distance: d}, 3)
		}
		require.Equal(t, 3, pq.Len())

		top, _ := pq.TopItem()
		assert.Equal(t, 2.0, top.Distance)

		items := pq.Drain()
		require.Len(t, items, 3)
		assert.Equal(t, []float64{0.5, 1, 2}, []float64{items[0].Distance, items[1].Distance, items[2].Distance})
		assert.Equal(t, 0, pq.Len())
	})

	t.Run("BoundedRejectsTies", func(t *testing.T) {
		pq := NewMax[string](1)
		assert.True(t, pq.PushItemBounded(Item[string]{Value: "first", Distance: 1}, 1))
		assert.False(t, pq.PushItemBounded(Item[string]{Value: "tie", Distance: 1}, 1))
		assert.False(t, pq.PushItemBounded(Item[string]{Value: "worse", Distance: 2}, 1))

		top, _ := pq.TopItem()
		assert.Equal(t, "first", top.Value)
	})

	t.Run("BoundedBeyondCapacityHint", func(t *testing.T) {
		pq := NewMax[int](1)
		for i, d := range []float64{3, 1, 2} {
			assert.True(t, pq.PushItemBounded(Item[int]{Value: i, Distance: d}, 10))
		}
		items := pq.Drain()
		assert.Equal(t, []float64{1, 2, 3}, []float64{items[0].Distance, items[1].Distance, items[2].Distance})
	})
}
