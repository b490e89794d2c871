// Package paretogo provides an embedded engine for maintaining sets of
// multi-dimensional points under Pareto dominance.
//
// Multi-objective optimizers need to keep the non-dominated subset of a
// population current while points arrive and leave one at a time. Paretogo
// supports this with:
//
//   - A generic point type with the full dominance algebra (weak, strong,
//     non-domination), elementwise arithmetic, Euclidean distance, and
//     quadrant encoding
//   - Interchangeable spatial container backends: Linear (exact O(n) scan)
//     and RTree (bounding-rectangle tree with pruned sub-linear queries)
//   - Fronts that atomically prune dominated members on insert, preserving
//     mutual non-domination
//   - Archives that layer a whole population into dominance ranks, with
//     cascading demotion, optional capacity bounds, and cross-rank nearest
//     queries
//
// # Backend Selection
//
// Choose the right backend for your workload:
//   - Linear: small fronts or 1-2 dimensions, zero tree overhead
//   - RTree: larger fronts, pruned range and nearest queries
//
// # Quick Start
//
// Create a two-objective front with the fluent builder:
//
//	front, err := paretogo.RTree[float64, string](2).
//	    MinimizeAll().
//	    BuildFront()
//	if err != nil {
//	    panic(err)
//	}
//
//	front.Insert(point.Of(1.0, 4.0), "a")
//	front.Insert(point.Of(2.0, 2.0), "b")
//	front.Insert(point.Of(5.0, 5.0), "c") // rejected: dominated by (2, 2)
//
//	for e := range front.All() {
//	    fmt.Println(e.Point, e.Value)
//	}
//
// Layer a population into ranked fronts:
//
//	archive, err := paretogo.Linear[float64, int](2).
//	    Capacity(100).
//	    BuildArchive()
//
// # Concurrency
//
// All operations are synchronous and CPU-bound. Fronts, archives, and
// containers perform no internal locking: concurrent read-only access is
// safe while no writer is active, but mutation requires external
// single-writer discipline. Any mutating call may invalidate outstanding
// iterators and previously returned query results.
package paretogo
