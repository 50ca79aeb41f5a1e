package slope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircle_Branches(t *testing.T) {
	c := Circle{X: 0, Y: 10, R: 5}
	require.NoError(t, c.Validate())

	y, ok := c.YLower(0)
	require.True(t, ok)
	require.InDelta(t, 5.0, y, 1e-12)

	y, ok = c.YUpper(0)
	require.True(t, ok)
	require.InDelta(t, 15.0, y, 1e-12)

	y, ok = c.YLower(3)
	require.True(t, ok)
	require.InDelta(t, 6.0, y, 1e-12)

	_, ok = c.YLower(6)
	require.False(t, ok)

	require.ErrorIs(t, Circle{R: 0}.Validate(), ErrParameter)
	require.ErrorIs(t, Circle{R: -2}.Validate(), ErrParameter)
}

func TestCircle_BaseAngle_Convention(t *testing.T) {
	c := Circle{X: 0, Y: 10, R: 10}

	// Ascending terrain: crest side is x > xc, sin(α) > 0 there.
	a, err := c.BaseAngle(5, 1)
	require.NoError(t, err)
	require.InDelta(t, math.Asin(0.5), a, 1e-12)

	a, err = c.BaseAngle(-5, 1)
	require.NoError(t, err)
	require.InDelta(t, -math.Asin(0.5), a, 1e-12)

	// Descending terrain flips the convention.
	a, err = c.BaseAngle(5, -1)
	require.NoError(t, err)
	require.InDelta(t, -math.Asin(0.5), a, 1e-12)

	_, err = c.BaseAngle(11, 1)
	require.ErrorIs(t, err, ErrParameter)
}

func TestCircle_ArcLength(t *testing.T) {
	c := Circle{X: 0, Y: 0, R: 4}

	// Full lower branch is half the circumference.
	require.InDelta(t, math.Pi*4, c.ArcLength(-4, 4), 1e-9)

	// A symmetric chord near the bottom is close to its flat width.
	flat := c.ArcLength(-0.1, 0.1)
	require.InDelta(t, 0.2, flat, 1e-3)

	// Arc length always exceeds the chord width off-center.
	require.Greater(t, c.ArcLength(2, 3), 1.0)
}
