package container

import "github.com/hupe1980/paretogo/point"

// Predicate is a spatial predicate over stored keys. Besides the membership
// test itself it exposes a bounding-box test so tree backends can prune whole
// subtrees whose bounding rectangle cannot contain a match.
type Predicate[T point.Number] interface {
	// Matches reports whether the key satisfies the predicate.
	Matches(p point.Point[T]) bool

	// IntersectsBox reports whether any point inside the axis-aligned box
	// [min, max] could satisfy the predicate. False positives are allowed;
	// false negatives are not.
	IntersectsBox(min, max point.Point[T]) bool
}

// WithinBox returns a predicate matching keys inside the closed axis-aligned
// box [min, max].
func WithinBox[T point.Number](min, max point.Point[T]) Predicate[T] {
	return &boxPredicate[T]{min: min, max: max}
}

type boxPredicate[T point.Number] struct {
	min, max point.Point[T]
}

func (b *boxPredicate[T]) Matches(p point.Point[T]) bool {
	for i := 0; i < p.Dimensions(); i++ {
		if p.Get(i) < b.min.Get(i) || p.Get(i) > b.max.Get(i) {
			return false
		}
	}
	return true
}

func (b *boxPredicate[T]) IntersectsBox(min, max point.Point[T]) bool {
	for i := 0; i < min.Dimensions(); i++ {
		if max.Get(i) < b.min.Get(i) || min.Get(i) > b.max.Get(i) {
			return false
		}
	}
	return true
}

// DominatedBy returns a predicate matching keys that p dominates under the
// given directions.
func DominatedBy[T point.Number](p point.Point[T], directions point.Directions) Predicate[T] {
	return &dominatedByPredicate[T]{pivot: p, directions: directions}
}

type dominatedByPredicate[T point.Number] struct {
	pivot      point.Point[T]
	directions point.Directions
}

func (d *dominatedByPredicate[T]) Matches(p point.Point[T]) bool {
	return d.pivot.Dominates(p, d.directions)
}

func (d *dominatedByPredicate[T]) IntersectsBox(min, max point.Point[T]) bool {
	// Dominated keys are weakly worse than the pivot in every dimension.
	// Prune boxes that lie strictly better than the pivot along any axis.
	for i := 0; i < min.Dimensions(); i++ {
		if d.directions.Minimizes(i) {
			if max.Get(i) < d.pivot.Get(i) {
				return false
			}
		} else {
			if min.Get(i) > d.pivot.Get(i) {
				return false
			}
		}
	}
	return true
}

// Dominating returns a predicate matching keys that dominate p under the
// given directions.
func Dominating[T point.Number](p point.Point[T], directions point.Directions) Predicate[T] {
	return &dominatingPredicate[T]{pivot: p, directions: directions}
}

type dominatingPredicate[T point.Number] struct {
	pivot      point.Point[T]
	directions point.Directions
}

func (d *dominatingPredicate[T]) Matches(p point.Point[T]) bool {
	return p.Dominates(d.pivot, d.directions)
}

func (d *dominatingPredicate[T]) IntersectsBox(min, max point.Point[T]) bool {
	// A dominating key is at least as good as the pivot in every dimension.
	for i := 0; i < min.Dimensions(); i++ {
		if d.directions.Minimizes(i) {
			if min.Get(i) > d.pivot.Get(i) {
				return false
			}
		} else {
			if max.Get(i) < d.pivot.Get(i) {
				return false
			}
		}
	}
	return true
}

// Satisfies wraps an opaque membership function as a predicate. Tree backends
// cannot prune for it, so every subtree is visited.
func Satisfies[T point.Number](fn func(p point.Point[T]) bool) Predicate[T] {
	return &funcPredicate[T]{fn: fn}
}

type funcPredicate[T point.Number] struct {
	fn func(p point.Point[T]) bool
}

func (f *funcPredicate[T]) Matches(p point.Point[T]) bool {
	return f.fn(p)
}

func (f *funcPredicate[T]) IntersectsBox(min, max point.Point[T]) bool {
	return true
}
