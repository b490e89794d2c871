// Package paretogo provides functionalities for Pareto front and archive
// maintenance.
//
// This file implements backend-specific fluent builder APIs for creating and
// configuring fronts and archives. Builders are immutable - each method
// returns a new builder with the updated configuration.
package paretogo

import (
	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/container/linear"
	"github.com/hupe1980/paretogo/container/rtree"
	"github.com/hupe1980/paretogo/point"
)

// Linear creates a builder backed by the linear container, the O(n) scan
// backend. Prefer it for small fronts or very low dimensionality.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	front, err := paretogo.Linear[float64, string](2).
//	    MinimizeAll().
//	    BuildFront()
func Linear[T point.Number, V any](dimension int) Builder[T, V] {
	return Builder[T, V]{
		kind:       container.KindLinear,
		dimension:  dimension,
		minEntries: rtree.DefaultOptions.MinEntries,
		maxEntries: rtree.DefaultOptions.MaxEntries,
	}
}

// RTree creates a builder backed by the bounding-rectangle tree container,
// which answers range and nearest queries in sub-linear expected time.
//
// Example:
//
//	archive, err := paretogo.RTree[float64, int](3).
//	    Fanout(2, 16).
//	    Capacity(1000).
//	    BuildArchive()
func RTree[T point.Number, V any](dimension int) Builder[T, V] {
	return Builder[T, V]{
		kind:       container.KindRTree,
		dimension:  dimension,
		minEntries: rtree.DefaultOptions.MinEntries,
		maxEntries: rtree.DefaultOptions.MaxEntries,
	}
}

// Builder is an immutable fluent builder for creating fronts and archives.
// Each method returns a new builder with the updated configuration.
type Builder[T point.Number, V any] struct {
	kind       container.Kind
	dimension  int
	directions point.Directions
	minEntries int
	maxEntries int
	capacity   int
	logger     *Logger
	metrics    MetricsCollector
}

// MinimizeAll sets every dimension to be minimized. This is the default.
func (b Builder[T, V]) MinimizeAll() Builder[T, V] {
	b.directions = point.MinimizeAll(b.dimension)
	return b
}

// MaximizeAll sets every dimension to be maximized.
func (b Builder[T, V]) MaximizeAll() Builder[T, V] {
	b.directions = point.MaximizeAll(b.dimension)
	return b
}

// Directions sets the per-dimension optimization directions, true meaning
// minimize.
func (b Builder[T, V]) Directions(directions ...bool) Builder[T, V] {
	b.directions = point.Directions(directions)
	return b
}

// Fanout sets the minimum and maximum entries per tree node. It has no
// effect on the linear backend.
// Default: 2, 8.
func (b Builder[T, V]) Fanout(min, max int) Builder[T, V] {
	b.minEntries = min
	b.maxEntries = max
	return b
}

// Capacity bounds the total archive size; zero means unbounded. It has no
// effect on fronts.
func (b Builder[T, V]) Capacity(capacity int) Builder[T, V] {
	b.capacity = capacity
	return b
}

// Logger sets the logger for operation logging.
func (b Builder[T, V]) Logger(logger *Logger) Builder[T, V] {
	b.logger = logger
	return b
}

// Metrics sets the metrics collector.
func (b Builder[T, V]) Metrics(metrics MetricsCollector) Builder[T, V] {
	b.metrics = metrics
	return b
}

// NewContainer builds one empty container with the configured backend. It is
// also the factory handed to archives for per-rank containers.
func (b Builder[T, V]) NewContainer() (container.Container[T, V], error) {
	switch b.kind {
	case container.KindRTree:
		c, err := rtree.New[T, V](func(o *rtree.Options) {
			o.Dimension = b.dimension
			o.MinEntries = b.minEntries
			o.MaxEntries = b.maxEntries
		})
		if err != nil {
			return nil, translateError(err)
		}
		return c, nil
	default:
		c, err := linear.New[T, V](func(o *linear.Options) {
			o.Dimension = b.dimension
		})
		if err != nil {
			return nil, translateError(err)
		}
		return c, nil
	}
}

// BuildFront creates the configured Front.
func (b Builder[T, V]) BuildFront() (*Front[T, V], error) {
	c, err := b.NewContainer()
	if err != nil {
		return nil, err
	}

	return NewFront(c, func(o *FrontOptions) {
		o.Directions = b.directions
		o.Logger = b.logger
		o.Metrics = b.metrics
	})
}

// BuildArchive creates the configured Archive.
func (b Builder[T, V]) BuildArchive() (*Archive[T, V], error) {
	return NewArchive(b.NewContainer, func(o *ArchiveOptions) {
		o.Directions = b.directions
		o.Capacity = b.capacity
		o.Logger = b.logger
		o.Metrics = b.metrics
	})
}
