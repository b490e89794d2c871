package point

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		p := New[float64](3)
		assert.Equal(t, 3, p.Dimensions())
		for v := range p.Coords() {
			assert.Equal(t, 0.0, v)
		}
	})

	t.Run("Fill", func(t *testing.T) {
		p := Fill(4, 7)
		assert.Equal(t, 4, p.Dimensions())
		assert.Equal(t, []int{7, 7, 7, 7}, p.Slice())
	})

	t.Run("Of", func(t *testing.T) {
		p := Of(1.0, 2.0, 3.0)
		assert.Equal(t, 3, p.Dimensions())
		assert.Equal(t, 2.0, p.Get(1))
	})

	t.Run("FromSlice copies", func(t *testing.T) {
		src := []float64{1, 2}
		p := FromSlice(src)
		src[0] = 99
		assert.Equal(t, 1.0, p.Get(0))
	})

	t.Run("Clone is independent", func(t *testing.T) {
		p := Of(1.0, 2.0)
		c := p.Clone()
		c.Set(0, 42)
		assert.Equal(t, 1.0, p.Get(0))
		assert.Equal(t, 42.0, c.Get(0))
	})

	t.Run("Append and Clear", func(t *testing.T) {
		var p Point[int]
		p.Append(1)
		p.Append(2)
		assert.Equal(t, 2, p.Dimensions())
		p.Clear()
		assert.Equal(t, 0, p.Dimensions())
	})
}

func TestDominates(t *testing.T) {
	t.Run("minimization default", func(t *testing.T) {
		a := Of(1.0, 2.0)
		b := Of(2.0, 3.0)
		assert.True(t, a.Dominates(b, nil))
		assert.False(t, b.Dominates(a, nil))
	})

	t.Run("tie in one dimension still dominates", func(t *testing.T) {
		a := Of(1.0, 2.0)
		b := Of(1.0, 3.0)
		assert.True(t, a.Dominates(b, nil))
	})

	t.Run("equal points never dominate", func(t *testing.T) {
		a := Of(1.0, 2.0)
		assert.False(t, a.Dominates(a, nil))
		assert.False(t, a.Dominates(a.Clone(), nil))
	})

	t.Run("incomparable points", func(t *testing.T) {
		a := Of(1.0, 3.0)
		b := Of(3.0, 1.0)
		assert.False(t, a.Dominates(b, nil))
		assert.False(t, b.Dominates(a, nil))
		assert.True(t, a.NonDominates(b, nil))
	})

	t.Run("maximization flips the relation", func(t *testing.T) {
		a := Of(1.0, 2.0)
		b := Of(2.0, 3.0)
		dirs := MaximizeAll(2)
		assert.False(t, a.Dominates(b, dirs))
		assert.True(t, b.Dominates(a, dirs))
	})

	t.Run("mixed directions", func(t *testing.T) {
		// minimize dim 0, maximize dim 1
		dirs := Directions{true, false}
		a := Of(1.0, 5.0)
		b := Of(2.0, 4.0)
		assert.True(t, a.Dominates(b, dirs))
		assert.False(t, b.Dominates(a, dirs))
	})
}

func TestStronglyDominates(t *testing.T) {
	a := Of(1.0, 2.0)
	b := Of(2.0, 3.0)
	c := Of(1.0, 3.0)

	assert.True(t, a.StronglyDominates(b, nil))
	assert.False(t, a.StronglyDominates(c, nil), "tie in dim 0")
	assert.True(t, a.Dominates(c, nil))
	assert.False(t, b.StronglyDominates(a, nil))
}

func TestDominanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	randPoint := func(dims int) Point[float64] {
		p := New[float64](dims)
		for i := 0; i < dims; i++ {
			// Small integer grid to make ties and dominance likely.
			p.Set(i, float64(rng.Intn(4)))
		}
		return p
	}
	randDirs := func(dims int) Directions {
		if rng.Intn(3) == 0 {
			return nil
		}
		d := make(Directions, dims)
		for i := range d {
			d[i] = rng.Intn(2) == 0
		}
		return d
	}

	for trial := 0; trial < 1000; trial++ {
		dims := 1 + rng.Intn(4)
		a, b := randPoint(dims), randPoint(dims)
		dirs := randDirs(dims)

		// Irreflexivity.
		require.False(t, a.Dominates(a, dirs))

		// Asymmetry.
		require.False(t, a.Dominates(b, dirs) && b.Dominates(a, dirs))

		// Symmetry of non-domination.
		require.Equal(t, a.NonDominates(b, dirs), b.NonDominates(a, dirs))

		// Strong dominance implies weak dominance.
		if a.StronglyDominates(b, dirs) {
			require.True(t, a.Dominates(b, dirs))
		}

		// Distance axioms.
		require.Equal(t, 0.0, a.Distance(a))
		require.InDelta(t, a.Distance(b), b.Distance(a), 1e-12)
	}
}

func TestComparisons(t *testing.T) {
	a := Of(1.0, 2.0)
	b := Of(2.0, 3.0)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Greater(a))
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(b))

	t.Run("LessEqual and GreaterEqual keep the historical formulas", func(t *testing.T) {
		// Mutually non-dominated, unequal points: both comparisons hold in
		// one direction, which is exactly why these are not a total order.
		x := Of(1.0, 3.0)
		y := Of(3.0, 1.0)
		assert.True(t, x.LessEqual(y))
		assert.True(t, y.LessEqual(x))
		assert.False(t, x.GreaterEqual(y))

		assert.True(t, a.LessEqual(b))
		assert.False(t, b.LessEqual(a))
		assert.True(t, b.GreaterEqual(a))
	})
}

func TestArithmetic(t *testing.T) {
	t.Run("pointwise", func(t *testing.T) {
		a := Of(1.0, 2.0)
		b := Of(3.0, 4.0)

		assert.Equal(t, []float64{4, 6}, a.Add(b).Slice())
		assert.Equal(t, []float64{-2, -2}, a.Sub(b).Slice())
		assert.Equal(t, []float64{3, 8}, a.Mul(b).Slice())
		assert.Equal(t, []float64{3, 2}, b.Div(a).Slice())

		// Operands are untouched.
		assert.Equal(t, []float64{1, 2}, a.Slice())
	})

	t.Run("scalar broadcast", func(t *testing.T) {
		a := Of(1.0, 2.0)

		assert.Equal(t, []float64{3, 4}, a.AddScalar(2).Slice())
		assert.Equal(t, []float64{-1, 0}, a.SubScalar(2).Slice())
		assert.Equal(t, []float64{2, 4}, a.MulScalar(2).Slice())
		assert.Equal(t, []float64{0.5, 1}, a.DivScalar(2).Slice())
	})

	t.Run("in place", func(t *testing.T) {
		a := Of(1.0, 2.0)
		a.AddAssign(Of(1.0, 1.0))
		a.MulScalarAssign(2)
		assert.Equal(t, []float64{4, 6}, a.Slice())
	})

	t.Run("float division by zero", func(t *testing.T) {
		a := Of(1.0)
		q := a.DivScalar(0)
		assert.True(t, math.IsInf(q.Get(0), 1))
	})
}

func TestDistance(t *testing.T) {
	t.Run("euclidean", func(t *testing.T) {
		a := Of(0.0, 0.0)
		b := Of(3.0, 4.0)
		assert.Equal(t, 5.0, a.Distance(b))
	})

	t.Run("one dimensional fast path", func(t *testing.T) {
		a := Of(2.0)
		b := Of(7.5)
		assert.Equal(t, 5.5, a.Distance(b))
		assert.Equal(t, 5.5, b.Distance(a))
	})

	t.Run("integer coordinates promote", func(t *testing.T) {
		a := Of(0, 0)
		b := Of(1, 1)
		assert.InDelta(t, math.Sqrt2, a.Distance(b), 1e-12)
	})
}

func TestDistanceToDominatedBox(t *testing.T) {
	p := Of(1.0, 1.0)

	t.Run("better in every dimension yields zero", func(t *testing.T) {
		// Negative directional differences clamp to zero.
		assert.Equal(t, 0.0, p.DistanceToDominatedBox(Of(3.0, 4.0), nil))
	})

	t.Run("worse contributions accumulate", func(t *testing.T) {
		assert.InDelta(t, math.Sqrt2, p.DistanceToDominatedBox(Of(0.0, 0.0), nil), 1e-12)
	})

	t.Run("mixed clamps per dimension", func(t *testing.T) {
		// Dim 0 clamps (1 < 3), dim 1 contributes 1-0.
		assert.Equal(t, 1.0, p.DistanceToDominatedBox(Of(3.0, 0.0), nil))
	})

	t.Run("maximization flips the differences", func(t *testing.T) {
		dirs := MaximizeAll(2)
		assert.InDelta(t, math.Sqrt(13), p.DistanceToDominatedBox(Of(3.0, 4.0), dirs), 1e-12)
		assert.InDelta(t, math.Sqrt2, Of(3.0, 4.0).DistanceToDominatedBox(Of(4.0, 5.0), dirs), 1e-12)
	})
}

func TestQuadrant(t *testing.T) {
	pivot := Of(0.0, 0.0, 0.0)

	t.Run("self has every bit set", func(t *testing.T) {
		assert.Equal(t, uint64(7), pivot.Quadrant(pivot))
	})

	t.Run("per dimension bits", func(t *testing.T) {
		assert.Equal(t, uint64(0), pivot.Quadrant(Of(1.0, 1.0, 1.0)))
		assert.Equal(t, uint64(1), pivot.Quadrant(Of(-1.0, 1.0, 1.0)))
		assert.Equal(t, uint64(6), pivot.Quadrant(Of(1.0, -1.0, 0.0)))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 4)", Of(1.0, 4.0).String())
	assert.Equal(t, "(1.5, -2)", Of(1.5, -2.0).String())
	assert.Equal(t, "(7)", Of(7).String())
	assert.Equal(t, "( )", New[float64](0).String())
}

func TestDirections(t *testing.T) {
	assert.True(t, Directions(nil).Minimizes(3))
	assert.True(t, MinimizeAll(2).Minimizes(1))
	assert.False(t, MaximizeAll(2).Minimizes(1))

	assert.True(t, Directions(nil).Valid(5))
	assert.True(t, MinimizeAll(5).Valid(5))
	assert.False(t, MinimizeAll(4).Valid(5))
}
