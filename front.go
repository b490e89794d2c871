package paretogo

import (
	"iter"
	"time"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/point"
)

// FrontOptions contains configuration options for a Front.
type FrontOptions struct {
	// Directions is the per-dimension optimization direction. Nil means
	// minimize-all. When non-nil its length must match the container
	// dimensionality.
	Directions point.Directions

	// Logger receives structured operation logs. Nil disables logging.
	Logger *Logger

	// Metrics receives operational metrics. Nil disables collection.
	Metrics MetricsCollector
}

// Front is a set of mutually non-dominated points backed by a single spatial
// container.
//
// Invariant: for every pair of distinct stored points x and y, neither
// dominates the other under the configured directions. Insert maintains the
// invariant atomically by pruning newly dominated members.
//
// A Front is not safe for concurrent mutation; see the container contract.
type Front[T point.Number, V any] struct {
	container  container.Container[T, V]
	directions point.Directions
	logger     *Logger
	metrics    MetricsCollector
}

// NewFront creates a Front over the given container. The container must be
// empty; the Front takes exclusive ownership of it.
func NewFront[T point.Number, V any](c container.Container[T, V], optFns ...func(o *FrontOptions)) (*Front[T, V], error) {
	opts := FrontOptions{}

	for _, fn := range optFns {
		fn(&opts)
	}

	if !opts.Directions.Valid(c.Dimensions()) {
		return nil, &ErrInvalidDirections{Directions: len(opts.Directions), Dimension: c.Dimensions()}
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	if opts.Metrics == nil {
		opts.Metrics = NoopMetricsCollector{}
	}

	return &Front[T, V]{
		container:  c,
		directions: opts.Directions,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
	}, nil
}

// Dimensions returns the point dimensionality of the front.
func (f *Front[T, V]) Dimensions() int {
	return f.container.Dimensions()
}

// Directions returns the configured optimization directions. Nil means
// minimize-all.
func (f *Front[T, V]) Directions() point.Directions {
	return f.directions
}

// Len returns the number of stored points.
func (f *Front[T, V]) Len() int {
	return f.container.Len()
}

// Insert adds the point to the front if no current member dominates it and no
// equal point is stored. Every member the new point dominates is removed
// first, so the mutual non-domination invariant holds afterwards. It reports
// whether the point was inserted.
func (f *Front[T, V]) Insert(p point.Point[T], value V) bool {
	start := time.Now()
	accepted, evicted := f.insert(p, value)
	f.metrics.RecordInsert(time.Since(start), accepted)
	f.logger.LogInsert(accepted, evicted)
	return accepted
}

func (f *Front[T, V]) insert(p point.Point[T], value V) (bool, int) {
	if p.Dimensions() != f.container.Dimensions() {
		return false, 0
	}
	if _, ok := f.container.Find(p); ok {
		return false, 0
	}
	if len(f.container.Query(container.Dominating(p, f.directions))) > 0 {
		return false, 0
	}

	dominated := f.container.Query(container.DominatedBy(p, f.directions))
	for _, e := range dominated {
		f.container.Erase(e.Point)
	}

	return f.container.Insert(p, value), len(dominated)
}

// Remove deletes the exact matching stored point. It reports whether a point
// was removed.
func (f *Front[T, V]) Remove(p point.Point[T]) bool {
	start := time.Now()
	removed := f.container.Erase(p)
	f.metrics.RecordRemove(time.Since(start), removed)
	f.logger.LogRemove(removed)
	return removed
}

// Find returns the value stored under the exact matching point.
func (f *Front[T, V]) Find(p point.Point[T]) (V, bool) {
	return f.container.Find(p)
}

// Contains reports whether an exactly equal point is stored.
func (f *Front[T, V]) Contains(p point.Point[T]) bool {
	_, ok := f.container.Find(p)
	return ok
}

// DominatedBy returns the stored entries that p dominates.
func (f *Front[T, V]) DominatedBy(p point.Point[T]) []container.Entry[T, V] {
	start := time.Now()
	out := f.container.Query(container.DominatedBy(p, f.directions))
	f.metrics.RecordQuery(time.Since(start), len(out))
	return out
}

// Dominating returns the stored entries that dominate p. For stored members
// the result is always empty by the front invariant.
func (f *Front[T, V]) Dominating(p point.Point[T]) []container.Entry[T, V] {
	start := time.Now()
	out := f.container.Query(container.Dominating(p, f.directions))
	f.metrics.RecordQuery(time.Since(start), len(out))
	return out
}

// Query returns the stored entries satisfying an arbitrary predicate.
func (f *Front[T, V]) Query(pred container.Predicate[T]) []container.Entry[T, V] {
	start := time.Now()
	out := f.container.Query(pred)
	f.metrics.RecordQuery(time.Since(start), len(out))
	return out
}

// Nearest returns the k stored entries closest to q, nearest first.
func (f *Front[T, V]) Nearest(q point.Point[T], k int) []container.Entry[T, V] {
	start := time.Now()
	out := f.container.Nearest(q, k)
	f.metrics.RecordNearest(k, time.Since(start))
	return out
}

// All iterates over every member in container order. No dominance ordering
// is implied.
func (f *Front[T, V]) All() iter.Seq[container.Entry[T, V]] {
	return f.container.All()
}

// Ideal returns the coordinatewise best value across all members per the
// configured directions. The second result is false for an empty front.
func (f *Front[T, V]) Ideal() (point.Point[T], bool) {
	return f.corner(true)
}

// Nadir returns the coordinatewise worst value across all members per the
// configured directions. The second result is false for an empty front.
func (f *Front[T, V]) Nadir() (point.Point[T], bool) {
	return f.corner(false)
}

func (f *Front[T, V]) corner(best bool) (point.Point[T], bool) {
	var out point.Point[T]
	first := true
	for e := range f.container.All() {
		if first {
			out = e.Point.Clone()
			first = false
			continue
		}
		for i := 0; i < out.Dimensions(); i++ {
			improves := e.Point.Get(i) < out.Get(i)
			if f.directions.Minimizes(i) != best {
				improves = e.Point.Get(i) > out.Get(i)
			}
			if improves {
				out.Set(i, e.Point.Get(i))
			}
		}
	}
	return out, !first
}
