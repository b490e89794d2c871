// Package linear provides the vector-backed reference container backend.
//
// Every operation is a full scan, O(n). The backend is the correctness
// baseline for the tree backends and the better choice for small sets or very
// low dimensionality, where scan beats tree bookkeeping.
package linear

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/internal/queue"
	"github.com/hupe1980/paretogo/point"
)

// Compile-time check to ensure Linear satisfies the container contract.
var _ container.Container[float64, any] = (*Linear[float64, any])(nil)

// Options contains configuration options for the linear backend.
type Options struct {
	// Dimension is the fixed key dimensionality for this container.
	// It must be > 0 and is fixed at creation time.
	Dimension int
}

// DefaultOptions contains the default configuration options for the linear
// backend.
var DefaultOptions = Options{
	Dimension: 0,
}

// compactionThreshold is the minimum number of tombstones before a slot
// compaction is considered.
const compactionThreshold = 64

// Linear is a flat container backend. Entries live in an append-only slice;
// erased slots are tombstoned in a roaring bitmap and reclaimed in bulk once
// tombstones outnumber live entries.
type Linear[T point.Number, V any] struct {
	opts    Options
	entries []container.Entry[T, V]
	deleted *roaring.Bitmap // slot indexes of tombstoned entries
}

// New creates a new linear backend. Dimension is required and must be set at
// creation time.
func New[T point.Number, V any](optFns ...func(o *Options)) (*Linear[T, V], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := container.ValidateDimension(opts.Dimension); err != nil {
		return nil, err
	}

	return &Linear[T, V]{
		opts:    opts,
		deleted: roaring.New(),
	}, nil
}

// Dimensions returns the fixed key dimensionality.
func (l *Linear[T, V]) Dimensions() int {
	return l.opts.Dimension
}

// Len returns the number of live entries.
func (l *Linear[T, V]) Len() int {
	return len(l.entries) - int(l.deleted.GetCardinality())
}

// Insert stores the entry, rejecting exact duplicate keys.
func (l *Linear[T, V]) Insert(p point.Point[T], value V) bool {
	if p.Dimensions() != l.opts.Dimension {
		return false
	}
	if _, ok := l.slotOf(p); ok {
		return false
	}

	l.entries = append(l.entries, container.Entry[T, V]{Point: p.Clone(), Value: value})

	return true
}

// Erase removes the entry with the exact-matching key.
func (l *Linear[T, V]) Erase(p point.Point[T]) bool {
	slot, ok := l.slotOf(p)
	if !ok {
		return false
	}

	var zero container.Entry[T, V]
	l.entries[slot] = zero
	l.deleted.Add(uint32(slot))
	l.maybeCompact()

	return true
}

// Find returns the value stored under the exact-matching key.
func (l *Linear[T, V]) Find(p point.Point[T]) (V, bool) {
	if slot, ok := l.slotOf(p); ok {
		return l.entries[slot].Value, true
	}

	var zero V
	return zero, false
}

// Query returns all entries whose key satisfies the predicate, in slot order.
func (l *Linear[T, V]) Query(pred container.Predicate[T]) []container.Entry[T, V] {
	var out []container.Entry[T, V]
	for slot, e := range l.entries {
		if l.deleted.Contains(uint32(slot)) {
			continue
		}
		if pred.Matches(e.Point) {
			out = append(out, e)
		}
	}
	return out
}

// Nearest returns the k entries closest to q, nearest first. Distance ties
// keep the earlier-inserted entry.
func (l *Linear[T, V]) Nearest(q point.Point[T], k int) []container.Entry[T, V] {
	if k <= 0 {
		return nil
	}

	// Max-heap of the k best candidates seen so far.
	best := queue.NewMax[int](k)
	for slot, e := range l.entries {
		if l.deleted.Contains(uint32(slot)) {
			continue
		}
		d := q.Distance(e.Point)
		if best.Len() < k {
			best.PushItem(queue.Item[int]{Payload: slot, Distance: d})
			continue
		}
		if top, _ := best.TopItem(); d < top.Distance {
			best.PopItem()
			best.PushItem(queue.Item[int]{Payload: slot, Distance: d})
		}
	}

	out := make([]container.Entry[T, V], best.Len())
	for i := best.Len() - 1; i >= 0; i-- {
		item, _ := best.PopItem()
		out[i] = l.entries[item.Payload]
	}
	return out
}

// All iterates over every live entry in slot order.
func (l *Linear[T, V]) All() iter.Seq[container.Entry[T, V]] {
	return func(yield func(container.Entry[T, V]) bool) {
		for slot, e := range l.entries {
			if l.deleted.Contains(uint32(slot)) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// slotOf returns the slot of the entry with an exactly equal key.
func (l *Linear[T, V]) slotOf(p point.Point[T]) (int, bool) {
	for slot, e := range l.entries {
		if l.deleted.Contains(uint32(slot)) {
			continue
		}
		if e.Point.Equal(p) {
			return slot, true
		}
	}
	return 0, false
}

// maybeCompact reclaims tombstoned slots once they outnumber live entries.
func (l *Linear[T, V]) maybeCompact() {
	dead := int(l.deleted.GetCardinality())
	if dead < compactionThreshold || dead*2 < len(l.entries) {
		return
	}

	live := l.entries[:0]
	for slot, e := range l.entries {
		if !l.deleted.Contains(uint32(slot)) {
			live = append(live, e)
		}
	}
	// Zero the tail so dropped values do not linger.
	var zero container.Entry[T, V]
	for i := len(live); i < len(l.entries); i++ {
		l.entries[i] = zero
	}
	l.entries = live
	l.deleted.Clear()
}
