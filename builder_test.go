package paretogo

import (
	"errors"
	"testing"

	"github.com/hupe1980/paretogo/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("builders are immutable", func(t *testing.T) {
		base := Linear[float64, string](2)
		maximized := base.MaximizeAll()

		fr, err := base.BuildFront()
		require.NoError(t, err)
		assert.Nil(t, fr.Directions())

		fr2, err := maximized.BuildFront()
		require.NoError(t, err)
		assert.Equal(t, point.MaximizeAll(2), fr2.Directions())
	})

	t.Run("invalid dimension", func(t *testing.T) {
		_, err := Linear[float64, string](0).BuildFront()
		require.Error(t, err)

		var e *ErrInvalidDimension
		require.True(t, errors.As(err, &e))
		assert.Equal(t, 0, e.Dimension)
	})

	t.Run("invalid fanout", func(t *testing.T) {
		_, err := RTree[float64, string](2).Fanout(5, 6).BuildFront()
		require.Error(t, err)

		var e *ErrInvalidFanout
		require.True(t, errors.As(err, &e))
		assert.Equal(t, 5, e.Min)
	})

	t.Run("fanout has no effect on linear", func(t *testing.T) {
		_, err := Linear[float64, string](2).Fanout(5, 6).BuildFront()
		assert.NoError(t, err)
	})

	t.Run("per dimension directions", func(t *testing.T) {
		fr, err := RTree[float64, int](2).Directions(true, false).BuildFront()
		require.NoError(t, err)

		require.True(t, fr.Insert(point.Of(1.0, 5.0), 1))
		assert.True(t, fr.Insert(point.Of(0.5, 6.0), 2), "better in both")
		assert.Equal(t, 1, fr.Len())
	})

	t.Run("archive with capacity", func(t *testing.T) {
		a, err := Linear[float64, int](2).Capacity(10).BuildArchive()
		require.NoError(t, err)
		assert.Equal(t, 2, a.Dimensions())
	})

	t.Run("integer coordinate type", func(t *testing.T) {
		fr, err := Linear[int, string](2).BuildFront()
		require.NoError(t, err)

		require.True(t, fr.Insert(point.Of(1, 4), "a"))
		require.True(t, fr.Insert(point.Of(4, 1), "b"))
		assert.False(t, fr.Insert(point.Of(4, 4), "c"))
	})
}
