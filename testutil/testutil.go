// Package testutil provides testing utilities for paretogo.
//
// This package is intended for use in tests and benchmarks only. It provides
// helpers for generating random points and brute-force oracles for dominance
// filtering and nearest-neighbor search.
package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/point"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a uniform value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoint returns a point with coordinates uniform in [0, 1).
func (r *RNG) UniformPoint(dimensions int) point.Point[float64] {
	p := point.New[float64](dimensions)
	for i := 0; i < dimensions; i++ {
		p.Set(i, r.Float64())
	}
	return p
}

// UniformPoints returns n points with coordinates uniform in [0, 1).
func (r *RNG) UniformPoints(n, dimensions int) []point.Point[float64] {
	out := make([]point.Point[float64], n)
	for i := range out {
		out[i] = r.UniformPoint(dimensions)
	}
	return out
}

// NonDominated returns the subset of points no other point dominates, the
// brute-force O(n^2) front oracle.
func NonDominated[T point.Number](points []point.Point[T], directions point.Directions) []point.Point[T] {
	var out []point.Point[T]
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i != j && q.Dominates(p, directions) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out
}

// ExactNearest returns the k entries closest to q by exhaustive scan, the
// ground-truth oracle for Nearest. The sort is stable, so distance ties keep
// input order.
func ExactNearest[T point.Number, V any](q point.Point[T], entries []container.Entry[T, V], k int) []container.Entry[T, V] {
	out := make([]container.Entry[T, V], len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return q.Distance(out[i].Point) < q.Distance(out[j].Point)
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

// Collect drains an entry iterator into a slice.
func Collect[T point.Number, V any](c container.Container[T, V]) []container.Entry[T, V] {
	var out []container.Entry[T, V]
	for e := range c.All() {
		out = append(out, e)
	}
	return out
}
