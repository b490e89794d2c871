// Package rtree provides a hierarchical bounding-rectangle container backend.
//
// The tree is an R-tree with quadratic node splitting: insertion descends
// along the child whose rectangle needs the least enlargement; overflowing
// nodes split into two groups seeded by the most wasteful pair; underflowing
// nodes are condensed and their entries re-inserted. Range and nearest
// queries prune subtrees by bounding rectangle, which gives sub-linear
// expected-case performance over the linear backend.
package rtree

import (
	"iter"
	"math"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/internal/queue"
	"github.com/hupe1980/paretogo/point"
)

// Compile-time check to ensure RTree satisfies the container contract.
var _ container.Container[float64, any] = (*RTree[float64, any])(nil)

// Options contains configuration options for the rtree backend.
type Options struct {
	// Dimension is the fixed key dimensionality for this container.
	// It must be > 0 and is fixed at creation time.
	Dimension int

	// MinEntries is the minimum number of entries or children per node.
	// Nodes falling below it are condensed into their siblings.
	MinEntries int

	// MaxEntries is the maximum number of entries or children per node.
	// Nodes exceeding it are split. Must be at least 2*MinEntries.
	MaxEntries int
}

// DefaultOptions contains the default configuration options for the rtree
// backend.
var DefaultOptions = Options{
	Dimension:  0,
	MinEntries: 2,
	MaxEntries: 8,
}

// RTree is a bounding-rectangle tree container backend.
type RTree[T point.Number, V any] struct {
	opts Options
	root *node[T, V]
	size int
}

// New creates a new rtree backend. Dimension is required and must be set at
// creation time.
func New[T point.Number, V any](optFns ...func(o *Options)) (*RTree[T, V], error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := container.ValidateDimension(opts.Dimension); err != nil {
		return nil, err
	}

	if opts.MinEntries < 1 || opts.MaxEntries < 2*opts.MinEntries {
		return nil, &container.ErrInvalidFanout{Min: opts.MinEntries, Max: opts.MaxEntries}
	}

	return &RTree[T, V]{opts: opts}, nil
}

// Dimensions returns the fixed key dimensionality.
func (t *RTree[T, V]) Dimensions() int {
	return t.opts.Dimension
}

// Len returns the number of stored entries.
func (t *RTree[T, V]) Len() int {
	return t.size
}

// Insert stores the entry, rejecting exact duplicate keys.
func (t *RTree[T, V]) Insert(p point.Point[T], value V) bool {
	if p.Dimensions() != t.opts.Dimension {
		return false
	}
	if t.root != nil {
		if _, ok := t.findIn(t.root, p); ok {
			return false
		}
	}

	t.place(container.Entry[T, V]{Point: p.Clone(), Value: value})
	t.size++

	return true
}

// place routes an entry into the tree, growing the root on overflow.
func (t *RTree[T, V]) place(e container.Entry[T, V]) {
	if t.root == nil {
		leaf := newLeaf[T, V](t.opts.Dimension)
		leaf.entries = append(leaf.entries, e)
		leaf.recompute()
		t.root = leaf
		return
	}

	if split := t.insert(t.root, e); split != nil {
		root := newInternal[T, V](t.opts.Dimension)
		root.children = append(root.children, t.root, split)
		root.recompute()
		t.root = root
	}
}

// insert descends to a leaf and returns the sibling produced by a split, if
// any, for the caller to adopt.
func (t *RTree[T, V]) insert(n *node[T, V], e container.Entry[T, V]) *node[T, V] {
	if n.leaf {
		n.entries = append(n.entries, e)
		n.recompute()
		if len(n.entries) > t.opts.MaxEntries {
			return t.splitLeaf(n)
		}
		return nil
	}

	child := t.chooseChild(n, e.Point)
	if split := t.insert(child, e); split != nil {
		n.children = append(n.children, split)
	}
	n.recompute()
	if len(n.children) > t.opts.MaxEntries {
		return t.splitInternal(n)
	}
	return nil
}

// chooseChild picks the child needing the least bounding-rectangle
// enlargement to cover p, breaking ties by smaller area.
func (t *RTree[T, V]) chooseChild(n *node[T, V], p point.Point[T]) *node[T, V] {
	best := n.children[0]
	bestEnlargement := enlargement(best.min, best.max, p)
	bestArea := rectArea(best.min, best.max)
	for _, c := range n.children[1:] {
		e := enlargement(c.min, c.max, p)
		a := rectArea(c.min, c.max)
		if e < bestEnlargement || (e == bestEnlargement && a < bestArea) {
			best, bestEnlargement, bestArea = c, e, a
		}
	}
	return best
}

// splitLeaf redistributes an overflowing leaf into two groups and returns the
// new sibling. Seeds are the pair of entries whose cover is largest; the rest
// go to the group needing less enlargement, with MinEntries enforced.
func (t *RTree[T, V]) splitLeaf(n *node[T, V]) *node[T, V] {
	entries := n.entries

	s1, s2 := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			waste := pairCoverArea(entries[i].Point, entries[i].Point, entries[j].Point, entries[j].Point)
			if waste > worst {
				worst, s1, s2 = waste, i, j
			}
		}
	}

	rest := make([]container.Entry[T, V], 0, len(entries)-2)
	for i, e := range entries {
		if i != s1 && i != s2 {
			rest = append(rest, e)
		}
	}

	n.entries = []container.Entry[T, V]{entries[s1]}
	n.recompute()
	other := newLeaf[T, V](t.opts.Dimension)
	other.entries = append(other.entries, entries[s2])
	other.recompute()

	for i, e := range rest {
		remaining := len(rest) - i
		if len(n.entries)+remaining <= t.opts.MinEntries {
			n.entries = append(n.entries, rest[i:]...)
			break
		}
		if len(other.entries)+remaining <= t.opts.MinEntries {
			other.entries = append(other.entries, rest[i:]...)
			break
		}
		da := enlargement(n.min, n.max, e.Point)
		db := enlargement(other.min, other.max, e.Point)
		if da < db || (da == db && len(n.entries) <= len(other.entries)) {
			n.entries = append(n.entries, e)
			extendByPoint(&n.min, &n.max, e.Point)
		} else {
			other.entries = append(other.entries, e)
			extendByPoint(&other.min, &other.max, e.Point)
		}
	}

	n.recompute()
	other.recompute()
	return other
}

// splitInternal is splitLeaf for internal nodes, grouping children by their
// rectangles instead of point keys.
func (t *RTree[T, V]) splitInternal(n *node[T, V]) *node[T, V] {
	children := n.children

	s1, s2 := 0, 1
	worst := math.Inf(-1)
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			ci, cj := children[i], children[j]
			waste := pairCoverArea(ci.min, ci.max, cj.min, cj.max) -
				rectArea(ci.min, ci.max) - rectArea(cj.min, cj.max)
			if waste > worst {
				worst, s1, s2 = waste, i, j
			}
		}
	}

	rest := make([]*node[T, V], 0, len(children)-2)
	for i, c := range children {
		if i != s1 && i != s2 {
			rest = append(rest, c)
		}
	}

	n.children = []*node[T, V]{children[s1]}
	n.recompute()
	other := newInternal[T, V](t.opts.Dimension)
	other.children = append(other.children, children[s2])
	other.recompute()

	for i, c := range rest {
		remaining := len(rest) - i
		if len(n.children)+remaining <= t.opts.MinEntries {
			n.children = append(n.children, rest[i:]...)
			break
		}
		if len(other.children)+remaining <= t.opts.MinEntries {
			other.children = append(other.children, rest[i:]...)
			break
		}
		da := pairCoverArea(n.min, n.max, c.min, c.max) - rectArea(n.min, n.max)
		db := pairCoverArea(other.min, other.max, c.min, c.max) - rectArea(other.min, other.max)
		if da < db || (da == db && len(n.children) <= len(other.children)) {
			n.children = append(n.children, c)
			extendByRect(&n.min, &n.max, c.min, c.max)
		} else {
			other.children = append(other.children, c)
			extendByRect(&other.min, &other.max, c.min, c.max)
		}
	}

	n.recompute()
	other.recompute()
	return other
}

// Erase removes the entry with the exact-matching key, condensing underfull
// nodes and re-inserting their orphaned entries.
func (t *RTree[T, V]) Erase(p point.Point[T]) bool {
	if t.root == nil || p.Dimensions() != t.opts.Dimension {
		return false
	}

	var orphans []container.Entry[T, V]
	if !t.erase(t.root, p, &orphans) {
		return false
	}
	t.size--

	for !t.root.leaf && len(t.root.children) == 1 {
		t.root = t.root.children[0]
	}
	if t.root.leaf && len(t.root.entries) == 0 {
		t.root = nil
	}

	for _, e := range orphans {
		t.place(e)
	}

	return true
}

func (t *RTree[T, V]) erase(n *node[T, V], p point.Point[T], orphans *[]container.Entry[T, V]) bool {
	if n.leaf {
		for i, e := range n.entries {
			if e.Point.Equal(p) {
				n.entries = append(n.entries[:i], n.entries[i+1:]...)
				n.recompute()
				return true
			}
		}
		return false
	}

	for i, c := range n.children {
		if !rectContains(c.min, c.max, p) {
			continue
		}
		if !t.erase(c, p, orphans) {
			continue
		}
		if t.underfull(c) {
			n.children = append(n.children[:i], n.children[i+1:]...)
			collectEntries(c, orphans)
		}
		n.recompute()
		return true
	}
	return false
}

func (t *RTree[T, V]) underfull(n *node[T, V]) bool {
	if n.leaf {
		return len(n.entries) < t.opts.MinEntries
	}
	return len(n.children) < t.opts.MinEntries
}

// collectEntries gathers every entry below n for re-insertion.
func collectEntries[T point.Number, V any](n *node[T, V], out *[]container.Entry[T, V]) {
	if n.leaf {
		*out = append(*out, n.entries...)
		return
	}
	for _, c := range n.children {
		collectEntries(c, out)
	}
}

// Find returns the value stored under the exact-matching key.
func (t *RTree[T, V]) Find(p point.Point[T]) (V, bool) {
	if t.root == nil || p.Dimensions() != t.opts.Dimension {
		var zero V
		return zero, false
	}
	return t.findIn(t.root, p)
}

func (t *RTree[T, V]) findIn(n *node[T, V], p point.Point[T]) (V, bool) {
	if !rectContains(n.min, n.max, p) {
		var zero V
		return zero, false
	}
	if n.leaf {
		for _, e := range n.entries {
			if e.Point.Equal(p) {
				return e.Value, true
			}
		}
		var zero V
		return zero, false
	}
	for _, c := range n.children {
		if v, ok := t.findIn(c, p); ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}

// Query returns all entries whose key satisfies the predicate, pruning
// subtrees whose bounding rectangle cannot contain a match.
func (t *RTree[T, V]) Query(pred container.Predicate[T]) []container.Entry[T, V] {
	if t.root == nil {
		return nil
	}
	var out []container.Entry[T, V]
	t.query(t.root, pred, &out)
	return out
}

func (t *RTree[T, V]) query(n *node[T, V], pred container.Predicate[T], out *[]container.Entry[T, V]) {
	if !pred.IntersectsBox(n.min, n.max) {
		return
	}
	if n.leaf {
		for _, e := range n.entries {
			if pred.Matches(e.Point) {
				*out = append(*out, e)
			}
		}
		return
	}
	for _, c := range n.children {
		t.query(c, pred, out)
	}
}

// nearestCandidate is a frontier item of the best-first nearest search:
// either a node keyed by its rectangle's minimum distance, or a concrete
// entry keyed by its exact distance.
type nearestCandidate[T point.Number, V any] struct {
	node    *node[T, V]
	entry   container.Entry[T, V]
	isEntry bool
}

// Nearest returns the k entries closest to q using best-first traversal:
// subtrees are expanded in minimum-distance order, so a popped entry is
// guaranteed to be no farther than anything still on the frontier.
func (t *RTree[T, V]) Nearest(q point.Point[T], k int) []container.Entry[T, V] {
	if t.root == nil || k <= 0 || q.Dimensions() != t.opts.Dimension {
		return nil
	}

	frontier := queue.NewMin[nearestCandidate[T, V]](t.opts.MaxEntries * 2)
	frontier.PushItem(queue.Item[nearestCandidate[T, V]]{
		Payload:  nearestCandidate[T, V]{node: t.root},
		Distance: minDist(q, t.root.min, t.root.max),
	})

	out := make([]container.Entry[T, V], 0, k)
	for frontier.Len() > 0 && len(out) < k {
		item, _ := frontier.PopItem()
		cand := item.Payload

		if cand.isEntry {
			out = append(out, cand.entry)
			continue
		}

		n := cand.node
		if n.leaf {
			for _, e := range n.entries {
				frontier.PushItem(queue.Item[nearestCandidate[T, V]]{
					Payload:  nearestCandidate[T, V]{entry: e, isEntry: true},
					Distance: q.Distance(e.Point),
				})
			}
			continue
		}
		for _, c := range n.children {
			frontier.PushItem(queue.Item[nearestCandidate[T, V]]{
				Payload:  nearestCandidate[T, V]{node: c},
				Distance: minDist(q, c.min, c.max),
			})
		}
	}
	return out
}

// All iterates over every stored entry in depth-first order.
func (t *RTree[T, V]) All() iter.Seq[container.Entry[T, V]] {
	return func(yield func(container.Entry[T, V]) bool) {
		if t.root != nil {
			walk(t.root, yield)
		}
	}
}

func walk[T point.Number, V any](n *node[T, V], yield func(container.Entry[T, V]) bool) bool {
	if n.leaf {
		for _, e := range n.entries {
			if !yield(e) {
				return false
			}
		}
		return true
	}
	for _, c := range n.children {
		if !walk(c, yield) {
			return false
		}
	}
	return true
}
