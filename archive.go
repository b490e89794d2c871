package paretogo

import (
	"iter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/internal/queue"
	"github.com/hupe1980/paretogo/point"
)

// ArchiveOptions contains configuration options for an Archive.
type ArchiveOptions struct {
	// Directions is the per-dimension optimization direction. Nil means
	// minimize-all. When non-nil its length must match the container
	// dimensionality.
	Directions point.Directions

	// Capacity bounds the total number of stored points across all ranks.
	// Zero means unbounded. When exceeded, members of the lowest rank are
	// evicted first.
	Capacity int

	// Logger receives structured operation logs. Nil disables logging.
	Logger *Logger

	// Metrics receives operational metrics. Nil disables collection.
	Metrics MetricsCollector
}

// Archive partitions a point population into dominance-ranked fronts. Rank 0
// holds the non-dominated subset of the whole population; rank k holds the
// non-dominated subset of what remains after ranks 0..k-1 are removed.
//
// Invariant: each point belongs to exactly one rank; within a rank all points
// are mutually non-dominated.
type Archive[T point.Number, V any] struct {
	newContainer func() (container.Container[T, V], error)
	fronts       []*Front[T, V]
	directions   point.Directions
	dimensions   int
	capacity     int
	size         int
	logger       *Logger
	metrics      MetricsCollector

	// spare is a pre-built empty container consumed by the next new rank.
	spare container.Container[T, V]
}

// NewArchive creates an Archive. newContainer builds one empty backend per
// rank; it is called once immediately to fix the dimensionality.
func NewArchive[T point.Number, V any](newContainer func() (container.Container[T, V], error), optFns ...func(o *ArchiveOptions)) (*Archive[T, V], error) {
	opts := ArchiveOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	probe, err := newContainer()
	if err != nil {
		return nil, translateError(err)
	}

	if !opts.Directions.Valid(probe.Dimensions()) {
		return nil, &ErrInvalidDirections{Directions: len(opts.Directions), Dimension: probe.Dimensions()}
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Archive[T, V]{
		newContainer: newContainer,
		directions:   opts.Directions,
		dimensions:   probe.Dimensions(),
		capacity:     opts.Capacity,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
		spare:        probe,
	}, nil
}

// Dimensions returns the point dimensionality of the archive.
func (a *Archive[T, V]) Dimensions() int {
	return a.dimensions
}

// Len returns the total number of stored points across all ranks.
func (a *Archive[T, V]) Len() int {
	return a.size
}

// Ranks returns the number of fronts currently held.
func (a *Archive[T, V]) Ranks() int {
	return len(a.fronts)
}

// FrontAt returns the front at the given rank, 0 being the best.
func (a *Archive[T, V]) FrontAt(rank int) *Front[T, V] {
	return a.fronts[rank]
}

// Insert places the point at the best rank the layering rule allows. Members
// displaced by the new point cascade to deeper ranks, so no point is lost.
// An exact duplicate anywhere in the archive is rejected. It reports whether
// the point was inserted.
func (a *Archive[T, V]) Insert(p point.Point[T], value V) bool {
	start := time.Now()
	accepted := a.insert(p, value)
	a.metrics.RecordInsert(time.Since(start), accepted)
	a.logger.LogInsert(accepted, 0)
	return accepted
}

func (a *Archive[T, V]) insert(p point.Point[T], value V) bool {
	if p.Dimensions() != a.dimensions {
		return false
	}
	if _, ok := a.Rank(p); ok {
		return false
	}
	if !a.insertAt(0, p, value) {
		return false
	}
	a.size++
	a.enforceCapacity()
	return true
}

// insertAt walks ranks from the given one looking for the first front where p
// is not dominated. Members of that front dominated by p are displaced one
// rank deeper, recursively.
func (a *Archive[T, V]) insertAt(rank int, p point.Point[T], value V) bool {
	for k := rank; k < len(a.fronts); k++ {
		fr := a.fronts[k]
		if len(fr.Dominating(p)) > 0 {
			continue
		}

		displaced := fr.DominatedBy(p)
		for _, e := range displaced {
			fr.Remove(e.Point)
		}
		fr.Insert(p, value)
		for _, e := range displaced {
			a.insertAt(k+1, e.Point, e.Value)
		}
		return true
	}

	fr, err := a.appendFront()
	if err != nil {
		return false
	}
	return fr.Insert(p, value)
}

func (a *Archive[T, V]) appendFront() (*Front[T, V], error) {
	c := a.spare
	a.spare = nil
	if c == nil {
		var err error
		c, err = a.newContainer()
		if err != nil {
			return nil, translateError(err)
		}
	}

	fr, err := NewFront(c, func(o *FrontOptions) {
		o.Directions = a.directions
		o.Logger = a.logger.WithRank(len(a.fronts))
		o.Metrics = NoopMetricsCollector{} // archive-level metrics only
	})
	if err != nil {
		return nil, err
	}

	a.fronts = append(a.fronts, fr)
	return fr, nil
}

// enforceCapacity evicts members of the lowest rank until the archive fits
// its configured capacity.
func (a *Archive[T, V]) enforceCapacity() {
	if a.capacity <= 0 {
		return
	}
	for a.size > a.capacity {
		last := len(a.fronts) - 1
		fr := a.fronts[last]
		if victim, ok := a.victim(fr); ok {
			fr.Remove(victim)
			a.size--
			a.logger.LogEviction(last, a.size)
		}
		a.trimEmpty()
	}
}

// victim picks the member of a front farthest from its ideal point, the
// least central solution and the cheapest to lose.
func (a *Archive[T, V]) victim(fr *Front[T, V]) (point.Point[T], bool) {
	ideal, ok := fr.Ideal()
	if !ok {
		return point.Point[T]{}, false
	}

	var out point.Point[T]
	worst := -1.0
	for e := range fr.All() {
		if d := ideal.Distance(e.Point); d > worst {
			worst = d
			out = e.Point
		}
	}
	return out, true
}

// trimEmpty drops empty trailing fronts.
func (a *Archive[T, V]) trimEmpty() {
	for len(a.fronts) > 0 && a.fronts[len(a.fronts)-1].Len() == 0 {
		a.fronts = a.fronts[:len(a.fronts)-1]
	}
}

// Remove deletes the point from whichever rank holds it. Deeper ranks are
// not re-promoted; call Rebuild for an explicit re-layering. It reports
// whether a point was removed.
func (a *Archive[T, V]) Remove(p point.Point[T]) bool {
	start := time.Now()
	removed := a.remove(p)
	a.metrics.RecordRemove(time.Since(start), removed)
	a.logger.LogRemove(removed)
	return removed
}

func (a *Archive[T, V]) remove(p point.Point[T]) bool {
	for _, fr := range a.fronts {
		if fr.Remove(p) {
			a.size--
			a.trimEmpty()
			return true
		}
	}
	return false
}

// Rank returns the rank currently holding an exactly equal point.
func (a *Archive[T, V]) Rank(p point.Point[T]) (int, bool) {
	for k, fr := range a.fronts {
		if fr.Contains(p) {
			return k, true
		}
	}
	return 0, false
}

// Find returns the value stored under the exact matching point, searching
// all ranks.
func (a *Archive[T, V]) Find(p point.Point[T]) (V, bool) {
	for _, fr := range a.fronts {
		if v, ok := fr.Find(p); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// All iterates over every stored entry with its rank, best ranks first.
func (a *Archive[T, V]) All() iter.Seq2[int, container.Entry[T, V]] {
	return func(yield func(int, container.Entry[T, V]) bool) {
		for k, fr := range a.fronts {
			for e := range fr.All() {
				if !yield(k, e) {
					return
				}
			}
		}
	}
}

// Rebuild re-layers the whole population from scratch. Use it after removals
// left deeper ranks un-promoted.
func (a *Archive[T, V]) Rebuild() error {
	var entries []container.Entry[T, V]
	for _, e := range a.All() {
		entries = append(entries, e)
	}

	a.fronts = nil
	a.size = 0
	if a.spare == nil {
		c, err := a.newContainer()
		if err != nil {
			return translateError(err)
		}
		a.spare = c
	}

	for _, e := range entries {
		a.insert(e.Point, e.Value)
	}

	a.logger.LogRebuild(len(a.fronts), a.size)
	return nil
}

// Nearest returns the k entries closest to q across all ranks, nearest
// first. Every rank is queried concurrently; results are merged on a heap.
func (a *Archive[T, V]) Nearest(q point.Point[T], k int) []container.Entry[T, V] {
	if k <= 0 || len(a.fronts) == 0 || q.Dimensions() != a.dimensions {
		return nil
	}

	start := time.Now()

	perRank := make([][]container.Entry[T, V], len(a.fronts))
	g := new(errgroup.Group)
	for i, fr := range a.fronts {
		g.Go(func() error {
			perRank[i] = fr.Nearest(q, k)
			return nil
		})
	}
	_ = g.Wait() // nothing fails; the group only fans out

	best := queue.NewMax[container.Entry[T, V]](k)
	for _, rs := range perRank {
		for _, e := range rs {
			d := q.Distance(e.Point)
			if best.Len() < k {
				best.PushItem(queue.Item[container.Entry[T, V]]{Payload: e, Distance: d})
				continue
			}
			if top, _ := best.TopItem(); d < top.Distance {
				best.PopItem()
				best.PushItem(queue.Item[container.Entry[T, V]]{Payload: e, Distance: d})
			}
		}
	}

	out := make([]container.Entry[T, V], best.Len())
	for i := best.Len() - 1; i >= 0; i-- {
		item, _ := best.PopItem()
		out[i] = item.Payload
	}

	a.metrics.RecordNearest(k, time.Since(start))
	return out
}
