// Package queue provides a value-based binary heap keyed by distance, used by
// tree traversal and result merging.
package queue

// Item represents an item in the priority queue.
type Item[P any] struct {
	Payload  P       // Payload is the value of the item, which can be arbitrary.
	Distance float64 // Distance is the priority of the item in the queue.
}

// Queue is a binary heap over Items. Value-based storage keeps the hot loops
// free of pointer chasing and allocations.
type Queue[P any] struct {
	isMaxHeap bool // true = max heap, false = min heap
	items     []Item[P]
}

// NewMin initializes a new priority queue with minimum priority on top.
func NewMin[P any](capacity int) *Queue[P] {
	return &Queue[P]{
		isMaxHeap: false,
		items:     make([]Item[P], 0, capacity),
	}
}

// NewMax initializes a new priority queue with maximum priority on top.
func NewMax[P any](capacity int) *Queue[P] {
	return &Queue[P]{
		isMaxHeap: true,
		items:     make([]Item[P], 0, capacity),
	}
}

// Len returns the number of items in the queue.
func (q *Queue[P]) Len() int {
	return len(q.items)
}

// TopItem returns the top element of the heap.
func (q *Queue[P]) TopItem() (Item[P], bool) {
	if len(q.items) == 0 {
		return Item[P]{}, false
	}
	return q.items[0], true
}

// PushItem inserts an item while maintaining the heap invariant.
func (q *Queue[P]) PushItem(item Item[P]) {
	q.items = append(q.items, item)
	q.siftUp(len(q.items) - 1)
}

// PopItem removes and returns the top element while maintaining the heap
// invariant.
func (q *Queue[P]) PopItem() (Item[P], bool) {
	n := len(q.items)
	if n == 0 {
		return Item[P]{}, false
	}
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item[P]{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root, true
}

func (q *Queue[P]) less(i, j int) bool {
	if q.isMaxHeap {
		return q.items[i].Distance > q.items[j].Distance
	}
	return q.items[i].Distance < q.items[j].Distance
}

func (q *Queue[P]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Queue[P]) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		r := l + 1
		if r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}
