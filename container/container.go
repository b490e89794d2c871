// Package container defines the capability contract shared by all spatial
// container backends.
//
// A Container stores (point, value) entries keyed by exact coordinatewise
// equality and answers exact lookups, predicate range queries, and k-nearest
// queries over its keys. Backends are interchangeable: the linear backend is
// the O(n) correctness baseline, the rtree backend answers queries in
// sub-linear expected time.
package container

import (
	"fmt"
	"iter"

	"github.com/hupe1980/paretogo/point"
)

// ErrInvalidDimension indicates an invalid configured dimension.
type ErrInvalidDimension struct {
	Dimension int // Configured dimensions
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidFanout indicates an invalid tree fanout configuration.
type ErrInvalidFanout struct {
	Min int // Minimum entries per node
	Max int // Maximum entries per node
}

// Error returns the error message for an invalid fanout.
func (e *ErrInvalidFanout) Error() string {
	return fmt.Sprintf("invalid fanout: min %d, max %d", e.Min, e.Max)
}

// ValidateDimension checks a configured dimension shared by all backends.
func ValidateDimension(dimension int) error {
	if dimension <= 0 {
		return &ErrInvalidDimension{Dimension: dimension}
	}
	return nil
}

// Entry is a stored (point, value) pair.
type Entry[T point.Number, V any] struct {
	// Point is the spatial key of the entry.
	Point point.Point[T]

	// Value is the opaque payload associated with the key.
	Value V
}

// Kind selects a container backend.
type Kind int

// Constants representing the available container backends.
const (
	KindLinear Kind = iota
	KindRTree
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "Linear"
	case KindRTree:
		return "RTree"
	default:
		return "Unknown"
	}
}

// Container is the capability set every spatial backend satisfies.
//
// Containers exclusively own their entries: keys are cloned on insert and all
// returned points are safe to retain. A Container is safe for concurrent
// read-only access, but mutation requires external single-writer discipline
// and invalidates outstanding iterators and query results.
type Container[T point.Number, V any] interface {
	// Insert stores the entry. It returns false without mutating the
	// container when an entry with an equal key already exists.
	Insert(p point.Point[T], value V) bool

	// Erase removes the entry with the exact-matching key. It returns false
	// when no such entry exists.
	Erase(p point.Point[T]) bool

	// Find returns the value stored under the exact-matching key.
	Find(p point.Point[T]) (V, bool)

	// Query returns all entries whose key satisfies the predicate.
	Query(pred Predicate[T]) []Entry[T, V]

	// Nearest returns the k stored entries closest to q by Euclidean
	// distance, nearest first. Ties are broken in backend-defined order.
	Nearest(q point.Point[T], k int) []Entry[T, V]

	// All iterates over every stored entry in backend-defined order.
	All() iter.Seq[Entry[T, V]]

	// Len returns the number of stored entries.
	Len() int

	// Dimensions returns the fixed key dimensionality.
	Dimensions() int
}
