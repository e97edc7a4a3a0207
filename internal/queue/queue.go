// Package queue implements the bounded priority queue that accumulates
// nearest-neighbor candidates during a tree search.
package queue

// Item is a queued value with its priority.
type Item[T any] struct {
	Value    T
	Distance float64
}

// PriorityQueue is a binary max-heap of Items ordered by Distance: the top is
// the farthest item.
// Value-based storage; it does NOT implement container/heap to avoid interface overhead.
type PriorityQueue[T any] struct {
	items []Item[T]
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make([]Item[T], 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// TopItem returns the top element of the heap.
func (pq *PriorityQueue[T]) TopItem() (Item[T], bool) {
	if len(pq.items) == 0 {
		return Item[T]{}, false
	}
	return pq.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PushItem(item Item[T]) {
	pq.items = append(pq.items, item)
	pq.siftUp(len(pq.items) - 1)
}

// PushItemBounded inserts an item into a heap holding at most capacity items.
// When the heap is full the item replaces the top only if it is strictly
// closer. It reports whether the item was kept.
func (pq *PriorityQueue[T]) PushItemBounded(item Item[T], capacity int) bool {
	if len(pq.items) < capacity {
		pq.PushItem(item)
		return true
	}
	if len(pq.items) == 0 {
		return false
	}

	if !(item.Distance < pq.items[0].Distance) {
		return false
	}
	pq.items[0] = item
	pq.siftDown(0)
	return true
}

// PopItem removes and returns the top element while maintaining the heap invariant.
func (pq *PriorityQueue[T]) PopItem() (Item[T], bool) {
	n := len(pq.items)
	if n == 0 {
		return Item[T]{}, false
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = Item[T]{}
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root, true
}

// Drain empties the queue and returns its items in ascending distance.
func (pq *PriorityQueue[T]) Drain() []Item[T] {
	out := make([]Item[T], len(pq.items))
	for i := len(out) - 1; i >= 0; i-- {
		out[i], _ = pq.PopItem()
	}
	return out
}

// less orders the heap so that the larger distance rises to the top.
func (pq *PriorityQueue[T]) less(i, j int) bool {
	return pq.items[i].Distance > pq.items[j].Distance
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
