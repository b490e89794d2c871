// Package point provides the multi-dimensional point type and its Pareto
// dominance algebra.
package point

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Number is the constraint for point coordinate types. All coordinates of a
// point share one numeric type; integer coordinates are promoted to float64
// only for distance calculations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Point is an ordered sequence of numeric coordinates, one per optimization
// objective. The zero value is the zero-dimensional point.
//
// Assigning a Point copies the slice header, not the coordinates; use Clone
// when independent storage is required. Containers clone keys on insert, so
// stored points are never aliased by the caller.
type Point[T Number] struct {
	values []T
}

// New creates a point with the given number of dimensions, all coordinates
// zero-valued.
func New[T Number](dimensions int) Point[T] {
	return Point[T]{values: make([]T, dimensions)}
}

// Fill creates a point with the given number of dimensions, every coordinate
// set to value.
func Fill[T Number](dimensions int, value T) Point[T] {
	p := Point[T]{values: make([]T, dimensions)}
	for i := range p.values {
		p.values[i] = value
	}
	return p
}

// Of creates a point from a literal list of coordinates.
func Of[T Number](values ...T) Point[T] {
	return FromSlice(values)
}

// FromSlice creates a point by copying the given coordinates.
func FromSlice[T Number](values []T) Point[T] {
	p := Point[T]{values: make([]T, len(values))}
	copy(p.values, values)
	return p
}

// Clone returns a deep copy of the point with independent coordinate storage.
func (p Point[T]) Clone() Point[T] {
	return FromSlice(p.values)
}

// Dimensions returns the number of coordinates.
func (p Point[T]) Dimensions() int {
	return len(p.values)
}

// Get returns the coordinate at index i.
func (p Point[T]) Get(i int) T {
	return p.values[i]
}

// Set replaces the coordinate at index i.
func (p *Point[T]) Set(i int, value T) {
	p.values[i] = value
}

// Append adds a coordinate at the end, growing the point by one dimension.
// Points must not be resized once stored in a container.
func (p *Point[T]) Append(value T) {
	p.values = append(p.values, value)
}

// Clear removes all coordinates.
func (p *Point[T]) Clear() {
	p.values = p.values[:0]
}

// Coords iterates over the coordinates in index order.
func (p Point[T]) Coords() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the coordinates.
func (p Point[T]) Slice() []T {
	out := make([]T, len(p.values))
	copy(out, p.values)
	return out
}

// Dominates reports whether p Pareto-dominates q under the given directions:
// p is never worse than q in any dimension and strictly better in at least
// one. Equal points never dominate each other. A nil directions vector means
// minimize-all.
//
// Both points must have equal dimensionality; this is a precondition, not a
// checked error.
func (p Point[T]) Dominates(q Point[T], directions Directions) bool {
	betterAtAny := false
	for i, v := range p.values {
		if directions.Minimizes(i) {
			if v > q.values[i] {
				return false
			}
			if v < q.values[i] {
				betterAtAny = true
			}
		} else {
			if v < q.values[i] {
				return false
			}
			if v > q.values[i] {
				betterAtAny = true
			}
		}
	}
	return betterAtAny
}

// StronglyDominates reports whether p is strictly better than q in every
// dimension under the given directions. A nil directions vector means
// minimize-all.
func (p Point[T]) StronglyDominates(q Point[T], directions Directions) bool {
	for i, v := range p.values {
		if directions.Minimizes(i) {
			if v >= q.values[i] {
				return false
			}
		} else {
			if v <= q.values[i] {
				return false
			}
		}
	}
	return len(p.values) > 0
}

// NonDominates reports whether neither point dominates the other under the
// given directions. The relation is symmetric and true for equal points.
func (p Point[T]) NonDominates(q Point[T], directions Directions) bool {
	return !p.Dominates(q, directions) && !q.Dominates(p, directions)
}

// Equal reports exact coordinatewise equality.
func (p Point[T]) Equal(q Point[T]) bool {
	if len(p.values) != len(q.values) {
		return false
	}
	for i, v := range p.values {
		if v != q.values[i] {
			return false
		}
	}
	return true
}

// Less reports whether p dominates q under minimize-all directions.
func (p Point[T]) Less(q Point[T]) bool {
	return p.Dominates(q, nil)
}

// Greater reports whether q dominates p under minimize-all directions.
func (p Point[T]) Greater(q Point[T]) bool {
	return q.Dominates(p, nil)
}

// LessEqual reports p.Dominates(q) || !q.Dominates(p) under minimize-all
// directions.
//
// Together with GreaterEqual this does not form a total order: two mutually
// non-dominated, unequal points can satisfy both comparisons. The formulas
// are kept as-is for compatibility; do not use them as a sort key without an
// explicit tie-break.
func (p Point[T]) LessEqual(q Point[T]) bool {
	return p.Dominates(q, nil) || !q.Dominates(p, nil)
}

// GreaterEqual reports q.Dominates(p) || !p.NonDominates(q) under
// minimize-all directions. See LessEqual for the total-order caveat.
func (p Point[T]) GreaterEqual(q Point[T]) bool {
	return q.Dominates(p, nil) || !p.NonDominates(q, nil)
}

// AddAssign adds q elementwise in place.
func (p *Point[T]) AddAssign(q Point[T]) {
	for i := range p.values {
		p.values[i] += q.values[i]
	}
}

// Add returns the elementwise sum of p and q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	c := p.Clone()
	c.AddAssign(q)
	return c
}

// SubAssign subtracts q elementwise in place.
func (p *Point[T]) SubAssign(q Point[T]) {
	for i := range p.values {
		p.values[i] -= q.values[i]
	}
}

// Sub returns the elementwise difference of p and q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	c := p.Clone()
	c.SubAssign(q)
	return c
}

// MulAssign multiplies by q elementwise in place.
func (p *Point[T]) MulAssign(q Point[T]) {
	for i := range p.values {
		p.values[i] *= q.values[i]
	}
}

// Mul returns the elementwise product of p and q.
func (p Point[T]) Mul(q Point[T]) Point[T] {
	c := p.Clone()
	c.MulAssign(q)
	return c
}

// DivAssign divides by q elementwise in place. Division by zero follows the
// coordinate type's native semantics.
func (p *Point[T]) DivAssign(q Point[T]) {
	for i := range p.values {
		p.values[i] /= q.values[i]
	}
}

// Div returns the elementwise quotient of p and q.
func (p Point[T]) Div(q Point[T]) Point[T] {
	c := p.Clone()
	c.DivAssign(q)
	return c
}

// AddScalarAssign adds s to every coordinate in place.
func (p *Point[T]) AddScalarAssign(s T) {
	for i := range p.values {
		p.values[i] += s
	}
}

// AddScalar returns a point with s added to every coordinate.
func (p Point[T]) AddScalar(s T) Point[T] {
	c := p.Clone()
	c.AddScalarAssign(s)
	return c
}

// SubScalarAssign subtracts s from every coordinate in place.
func (p *Point[T]) SubScalarAssign(s T) {
	for i := range p.values {
		p.values[i] -= s
	}
}

// SubScalar returns a point with s subtracted from every coordinate.
func (p Point[T]) SubScalar(s T) Point[T] {
	c := p.Clone()
	c.SubScalarAssign(s)
	return c
}

// MulScalarAssign multiplies every coordinate by s in place.
func (p *Point[T]) MulScalarAssign(s T) {
	for i := range p.values {
		p.values[i] *= s
	}
}

// MulScalar returns a point with every coordinate multiplied by s.
func (p Point[T]) MulScalar(s T) Point[T] {
	c := p.Clone()
	c.MulScalarAssign(s)
	return c
}

// DivScalarAssign divides every coordinate by s in place. Division by zero
// follows the coordinate type's native semantics.
func (p *Point[T]) DivScalarAssign(s T) {
	for i := range p.values {
		p.values[i] /= s
	}
}

// DivScalar returns a point with every coordinate divided by s.
func (p Point[T]) DivScalar(s T) Point[T] {
	c := p.Clone()
	c.DivScalarAssign(s)
	return c
}

// Distance returns the Euclidean distance to q. The result is float64
// regardless of the coordinate type.
func (p Point[T]) Distance(q Point[T]) float64 {
	if len(p.values) == 1 {
		// 1-D fast path: plain absolute difference.
		return math.Abs(float64(p.values[0]) - float64(q.values[0]))
	}
	var sum float64
	for i := range p.values {
		d := float64(p.values[i]) - float64(q.values[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// DistanceToDominatedBox returns the Euclidean distance from p to the
// boundary of the hyper-region weakly dominated by q under the given
// directions: per dimension the directional difference, clamped at zero,
// squared and summed. Spatial pruning uses it to bound how far p is from
// being dominated by q.
func (p Point[T]) DistanceToDominatedBox(q Point[T], directions Directions) float64 {
	var sum float64
	for i := range p.values {
		var term float64
		if directions.Minimizes(i) {
			term = float64(p.values[i]) - float64(q.values[i])
		} else {
			term = float64(q.values[i]) - float64(p.values[i])
		}
		if term < 0 {
			term = 0
		}
		sum += term * term
	}
	return math.Sqrt(sum)
}

// Quadrant returns a bitmask locating q relative to p as pivot: bit k is set
// iff q's coordinate k is less than or equal to p's. This attributes an index
// to each of the 2^d quadrants around p; quadtree-style backends bucket
// points with it. Dimensionality above 64 is a precondition violation.
func (p Point[T]) Quadrant(q Point[T]) uint64 {
	var quad uint64
	for i := range p.values {
		if q.values[i] <= p.values[i] {
			quad |= 1 << uint(i)
		}
	}
	return quad
}

// String renders the point in the canonical "(v0, v1, ...)" form. The
// zero-dimensional point renders as "( )".
func (p Point[T]) String() string {
	if len(p.values) == 0 {
		return "( )"
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(')')
	return sb.String()
}
