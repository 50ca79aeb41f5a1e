package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslope/internal/slope"
)

func TestPresetFor(t *testing.T) {
	require.Equal(t, "gentle", PresetFor(10).Name)
	require.Equal(t, "moderate", PresetFor(25).Name)
	require.Equal(t, "steep", PresetFor(40).Name)
	require.Equal(t, "very steep", PresetFor(60).Name)
}

func TestDerive(t *testing.T) {
	terrain, err := slope.NewSimpleSlope(8, 35, 0)
	require.NoError(t, err)

	b, err := Derive(terrain)
	require.NoError(t, err)

	require.InDelta(t, 8.0, b.SlopeHeight, 1e-9)
	require.Less(t, b.CenterXMin, terrain.XMin())
	require.Greater(t, b.CenterXMax, terrain.XMax())
	// Centers sit above the crest so the lower branch cuts the slope.
	require.Greater(t, b.CenterYMin, terrain.YMax())
	require.Greater(t, b.CenterYMax, b.CenterYMin)
	require.Greater(t, b.RadiusMin, 0.0)
	require.Greater(t, b.RadiusMax, b.RadiusMin)
}

func TestDerive_DegenerateTerrain(t *testing.T) {
	flat, err := slope.NewTerrainProfile([]slope.Point{{X: 0, Y: 5}, {X: 10, Y: 5}})
	require.NoError(t, err)
	_, err = Derive(flat)
	require.ErrorIs(t, err, slope.ErrParameter)
}

func TestValidateAndCorrect_NoViolations(t *testing.T) {
	b := Bounds{
		CenterXMin: 0, CenterXMax: 10,
		CenterYMin: 10, CenterYMax: 20,
		RadiusMin: 5, RadiusMax: 15,
	}
	inside := slope.Circle{X: 5, Y: 15, R: 10}

	ok, violations, corrected := ValidateAndCorrect(inside, b, false)
	require.True(t, ok)
	require.Empty(t, violations)
	require.Nil(t, corrected)

	// A clean circle never produces a corrected value, with or without
	// auto-correct.
	ok, violations, corrected = ValidateAndCorrect(inside, b, true)
	require.True(t, ok)
	require.Empty(t, violations)
	require.Nil(t, corrected)

	require.True(t, b.Contains(inside))
}

func TestValidateAndCorrect_ReportOnly(t *testing.T) {
	b := Bounds{
		CenterXMin: 0, CenterXMax: 10,
		CenterYMin: 10, CenterYMax: 20,
		RadiusMin: 5, RadiusMax: 15,
	}
	outside := slope.Circle{X: -3, Y: 25, R: 50}

	ok, violations, corrected := ValidateAndCorrect(outside, b, false)
	require.False(t, ok)
	require.Nil(t, corrected)
	require.Len(t, violations, 3)

	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.Bound
	}
	require.ElementsMatch(t, []string{"center_x_min", "center_y_max", "radius_max"}, names)
}

func TestValidateAndCorrect_Clamp(t *testing.T) {
	b := Bounds{
		CenterXMin: 0, CenterXMax: 10,
		CenterYMin: 10, CenterYMax: 20,
		RadiusMin: 5, RadiusMax: 15,
	}
	outside := slope.Circle{X: -3, Y: 25, R: 50}

	ok, violations, corrected := ValidateAndCorrect(outside, b, true)
	require.False(t, ok)
	require.NotEmpty(t, violations)
	require.NotNil(t, corrected)

	require.Equal(t, slope.Circle{X: 0, Y: 20, R: 15}, *corrected)
	require.True(t, b.Contains(*corrected))
}

func TestValidateAndCorrect_PartialClamp(t *testing.T) {
	b := Bounds{
		CenterXMin: 0, CenterXMax: 10,
		CenterYMin: 10, CenterYMax: 20,
		RadiusMin: 5, RadiusMax: 15,
	}
	// Only the radius violates; the center passes through untouched.
	c := slope.Circle{X: 5, Y: 15, R: 2}

	ok, violations, corrected := ValidateAndCorrect(c, b, true)
	require.False(t, ok)
	require.Len(t, violations, 1)
	require.Equal(t, "radius_min", violations[0].Bound)
	require.Equal(t, slope.Circle{X: 5, Y: 15, R: 5}, *corrected)
}
