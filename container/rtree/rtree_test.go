package rtree

import (
	"fmt"
	"testing"

	"github.com/hupe1980/paretogo/container"
	"github.com/hupe1980/paretogo/container/linear"
	"github.com/hupe1980/paretogo/point"
	"github.com/hupe1980/paretogo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRTree(t *testing.T, dimension int, optFns ...func(o *Options)) *RTree[float64, string] {
	t.Helper()

	tr, err := New[float64, string](append([]func(o *Options){func(o *Options) {
		o.Dimension = dimension
	}}, optFns...)...)
	require.NoError(t, err)

	return tr
}

func TestNew(t *testing.T) {
	t.Run("requires a dimension", func(t *testing.T) {
		_, err := New[float64, string]()
		require.Error(t, err)
		assert.IsType(t, &container.ErrInvalidDimension{}, err)
	})

	t.Run("rejects invalid fanout", func(t *testing.T) {
		_, err := New[float64, string](func(o *Options) {
			o.Dimension = 2
			o.MinEntries = 3
			o.MaxEntries = 4
		})
		require.Error(t, err)
		assert.IsType(t, &container.ErrInvalidFanout{}, err)
	})
}

func TestBasicOperations(t *testing.T) {
	tr := newRTree(t, 2)

	assert.True(t, tr.Insert(point.Of(1.0, 2.0), "a"))
	assert.False(t, tr.Insert(point.Of(1.0, 2.0), "b"), "duplicate key")
	assert.True(t, tr.Insert(point.Of(3.0, 4.0), "c"))
	assert.Equal(t, 2, tr.Len())

	v, ok := tr.Find(point.Of(3.0, 4.0))
	require.True(t, ok)
	assert.Equal(t, "c", v)

	_, ok = tr.Find(point.Of(9.0, 9.0))
	assert.False(t, ok)

	assert.True(t, tr.Erase(point.Of(1.0, 2.0)))
	assert.False(t, tr.Erase(point.Of(1.0, 2.0)))
	assert.Equal(t, 1, tr.Len())
}

func TestSplitAndCondense(t *testing.T) {
	// Small fanout forces deep trees quickly.
	tr := newRTree(t, 2, func(o *Options) {
		o.MinEntries = 2
		o.MaxEntries = 4
	})

	rng := testutil.NewRNG(3)
	points := rng.UniformPoints(500, 2)
	for i, p := range points {
		require.True(t, tr.Insert(p, fmt.Sprintf("v%d", i)))
	}
	require.Equal(t, 500, tr.Len())

	// Every key stays findable through splits.
	for i, p := range points {
		v, ok := tr.Find(p)
		require.True(t, ok, "lost point %d", i)
		require.Equal(t, fmt.Sprintf("v%d", i), v)
	}

	// Deleting most entries exercises condensing and re-insertion.
	for _, p := range points[:400] {
		require.True(t, tr.Erase(p))
	}
	require.Equal(t, 100, tr.Len())
	for _, p := range points[400:] {
		_, ok := tr.Find(p)
		require.True(t, ok)
	}

	for _, p := range points[400:] {
		require.True(t, tr.Erase(p))
	}
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, testutil.Collect[float64, string](tr))
}

func TestQueryMatchesLinear(t *testing.T) {
	tr := newRTree(t, 3, func(o *Options) {
		o.MaxEntries = 4
	})
	oracle, err := linear.New[float64, string](func(o *linear.Options) {
		o.Dimension = 3
	})
	require.NoError(t, err)

	rng := testutil.NewRNG(5)
	for _, p := range rng.UniformPoints(300, 3) {
		require.Equal(t, oracle.Insert(p, ""), tr.Insert(p, ""))
	}

	preds := []container.Predicate[float64]{
		container.DominatedBy(point.Of(0.3, 0.3, 0.3), nil),
		container.Dominating(point.Of(0.7, 0.7, 0.7), nil),
		container.Dominating(point.Of(0.2, 0.8, 0.5), point.Directions{true, false, true}),
		container.WithinBox(point.Of(0.2, 0.2, 0.2), point.Of(0.6, 0.6, 0.6)),
	}
	for i, pred := range preds {
		want := oracle.Query(pred)
		got := tr.Query(pred)
		require.Len(t, got, len(want), "predicate %d", i)

		seen := make(map[string]bool, len(got))
		for _, e := range got {
			seen[e.Point.String()] = true
		}
		for _, e := range want {
			require.True(t, seen[e.Point.String()], "predicate %d missing %s", i, e.Point)
		}
	}
}

func TestNearestMatchesExact(t *testing.T) {
	tr := newRTree(t, 2, func(o *Options) {
		o.MaxEntries = 6
	})

	rng := testutil.NewRNG(9)
	for _, p := range rng.UniformPoints(400, 2) {
		require.True(t, tr.Insert(p, ""))
	}

	entries := testutil.Collect[float64, string](tr)
	for trial := 0; trial < 20; trial++ {
		q := rng.UniformPoint(2)
		got := tr.Nearest(q, 10)
		want := testutil.ExactNearest(q, entries, 10)

		require.Len(t, got, 10)
		for i := range got {
			// Compare by distance: ties may legitimately reorder.
			require.InDelta(t, q.Distance(want[i].Point), q.Distance(got[i].Point), 1e-12)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tr := newRTree(t, 2)
	rng := testutil.NewRNG(13)
	for _, p := range rng.UniformPoints(150, 2) {
		require.True(t, tr.Insert(p, ""))
	}

	fresh := newRTree(t, 2)
	for e := range tr.All() {
		require.True(t, fresh.Insert(e.Point, e.Value))
	}
	require.Equal(t, tr.Len(), fresh.Len())
	for e := range fresh.All() {
		_, ok := tr.Find(e.Point)
		require.True(t, ok)
	}
}

func TestStats(t *testing.T) {
	tr := newRTree(t, 2, func(o *Options) {
		o.MinEntries = 2
		o.MaxEntries = 4
	})
	rng := testutil.NewRNG(17)
	for _, p := range rng.UniformPoints(100, 2) {
		require.True(t, tr.Insert(p, ""))
	}

	tr.Stats()

	require.GreaterOrEqual(t, tr.height(tr.root), 2, "100 points at fanout 4 must split")
	internals, leaves := 0, 0
	tr.count(tr.root, &internals, &leaves)
	assert.Positive(t, internals)
	assert.GreaterOrEqual(t, leaves, 100/tr.opts.MaxEntries)
}

func BenchmarkInsert(b *testing.B) {
	tr, err := New[float64, string](func(o *Options) {
		o.Dimension = 2
	})
	if err != nil {
		b.Fatal(err)
	}

	rng := testutil.NewRNG(1)
	points := rng.UniformPoints(b.N, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(points[i], "")
	}
}

func BenchmarkNearest(b *testing.B) {
	tr, err := New[float64, string](func(o *Options) {
		o.Dimension = 2
	})
	if err != nil {
		b.Fatal(err)
	}

	rng := testutil.NewRNG(1)
	for _, p := range rng.UniformPoints(10000, 2) {
		tr.Insert(p, "")
	}
	queries := rng.UniformPoints(b.N, 2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Nearest(queries[i], 10)
	}
}
