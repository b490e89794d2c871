package rtree

import (
	"math"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/point"
)

// node is a tree node. Leaves hold entries, internal nodes hold children;
// min/max is the minimal axis-aligned bounding rectangle over the contents.
type node[T point.Number, V any] struct {
	leaf     bool
	min, max point.Point[T]
	children []*node[T, V]
	entries  []container.Entry[T, V]
}

func newLeaf[T point.Number, V any](dimension int) *node[T, V] {
	return &node[T, V]{
		leaf: true,
		min:  point.New[T](dimension),
		max:  point.New[T](dimension),
	}
}

func newInternal[T point.Number, V any](dimension int) *node[T, V] {
	return &node[T, V]{
		min: point.New[T](dimension),
		max: point.New[T](dimension),
	}
}

// recompute rebuilds the bounding rectangle from the node contents.
func (n *node[T, V]) recompute() {
	if n.leaf {
		for i, e := range n.entries {
			if i == 0 {
				copyInto(&n.min, e.Point)
				copyInto(&n.max, e.Point)
				continue
			}
			extendByPoint(&n.min, &n.max, e.Point)
		}
		return
	}
	for i, c := range n.children {
		if i == 0 {
			copyInto(&n.min, c.min)
			copyInto(&n.max, c.max)
			continue
		}
		extendByRect(&n.min, &n.max, c.min, c.max)
	}
}

func copyInto[T point.Number](dst *point.Point[T], src point.Point[T]) {
	for i := 0; i < src.Dimensions(); i++ {
		dst.Set(i, src.Get(i))
	}
}

func extendByPoint[T point.Number](min, max *point.Point[T], p point.Point[T]) {
	for i := 0; i < p.Dimensions(); i++ {
		if p.Get(i) < min.Get(i) {
			min.Set(i, p.Get(i))
		}
		if p.Get(i) > max.Get(i) {
			max.Set(i, p.Get(i))
		}
	}
}

func extendByRect[T point.Number](min, max *point.Point[T], omin, omax point.Point[T]) {
	for i := 0; i < omin.Dimensions(); i++ {
		if omin.Get(i) < min.Get(i) {
			min.Set(i, omin.Get(i))
		}
		if omax.Get(i) > max.Get(i) {
			max.Set(i, omax.Get(i))
		}
	}
}

func rectContains[T point.Number](min, max, p point.Point[T]) bool {
	for i := 0; i < p.Dimensions(); i++ {
		if p.Get(i) < min.Get(i) || p.Get(i) > max.Get(i) {
			return false
		}
	}
	return true
}

// rectArea is the hyper-volume of the rectangle, computed in float64 so
// unsigned coordinate types cannot underflow.
func rectArea[T point.Number](min, max point.Point[T]) float64 {
	area := 1.0
	for i := 0; i < min.Dimensions(); i++ {
		area *= float64(max.Get(i)) - float64(min.Get(i))
	}
	return area
}

// enlargement is the area growth of the rectangle needed to cover p.
func enlargement[T point.Number](min, max, p point.Point[T]) float64 {
	before := 1.0
	after := 1.0
	for i := 0; i < min.Dimensions(); i++ {
		lo := float64(min.Get(i))
		hi := float64(max.Get(i))
		before *= hi - lo
		v := float64(p.Get(i))
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
		after *= hi - lo
	}
	return after - before
}

// pairCoverArea is the area of the minimal rectangle covering both rects.
func pairCoverArea[T point.Number](amin, amax, bmin, bmax point.Point[T]) float64 {
	area := 1.0
	for i := 0; i < amin.Dimensions(); i++ {
		lo := math.Min(float64(amin.Get(i)), float64(bmin.Get(i)))
		hi := math.Max(float64(amax.Get(i)), float64(bmax.Get(i)))
		area *= hi - lo
	}
	return area
}

// minDist is the smallest possible Euclidean distance between q and any
// point inside the rectangle. Zero when q is inside.
func minDist[T point.Number](q, min, max point.Point[T]) float64 {
	var sum float64
	for i := 0; i < q.Dimensions(); i++ {
		v := float64(q.Get(i))
		var d float64
		if lo := float64(min.Get(i)); v < lo {
			d = lo - v
		} else if hi := float64(max.Get(i)); v > hi {
			d = v - hi
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}
