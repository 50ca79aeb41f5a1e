package stability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslope/internal/slope"
)

func referenceCase(t *testing.T) (*slope.TerrainProfile, *slope.SoilProfile, slope.Circle) {
	t.Helper()
	terrain, err := slope.NewTerrainProfile([]slope.Point{{X: 0, Y: 12}, {X: 25, Y: 8}, {X: 40, Y: 0}})
	require.NoError(t, err)
	soils, err := slope.NewHomogeneousSoil(15, 20, 19)
	require.NoError(t, err)
	return terrain, soils, slope.Circle{X: 22, Y: 2.67, R: 13}
}

func referenceSlices(t *testing.T) (slope.Circle, []slope.Slice) {
	t.Helper()
	terrain, soils, circle := referenceCase(t)
	slices, err := slope.BuildSlices(circle, terrain, soils, nil, 10)
	require.NoError(t, err)
	return circle, slices
}

// syntheticSlices builds a hand-made slice set with the given base
// angle, bypassing the discretizer.
func syntheticSlices(n int, alpha float64) []slope.Slice {
	slices := make([]slope.Slice, n)
	for i := range slices {
		slices[i] = slope.Slice{
			Index:         i,
			XCenter:       float64(i),
			Width:         1,
			Height:        4,
			Alpha:         alpha,
			ArcLength:     1 / math.Cos(alpha),
			Weight:        76, // 4 m of soil at 19 kN/m³
			Cohesion:      15,
			FrictionAngle: 20,
		}
	}
	return slices
}

func TestFellenius_ReferenceCase(t *testing.T) {
	circle, slices := referenceSlices(t)

	res, err := Fellenius(circle, slices)
	require.NoError(t, err)

	require.Greater(t, res.FactorOfSafety, 0.0)
	require.False(t, math.IsNaN(res.FactorOfSafety))
	require.False(t, math.IsInf(res.FactorOfSafety, 0))
	require.Greater(t, res.ResistingMoment, 0.0)
	require.Greater(t, res.DrivingMoment, 0.0)
	require.InDelta(t, res.FactorOfSafety, res.ResistingMoment/res.DrivingMoment, 1e-9)
	require.Len(t, res.ResistingForces, len(slices))
	require.Len(t, res.DrivingForces, len(slices))
}

func TestFellenius_HandComputed(t *testing.T) {
	// Uniform slices at α=30°: each contributes
	//   resisting = c'·ΔL + W·cos(α)·tan(φ')
	//   driving   = W·sin(α)
	alpha := 30 * math.Pi / 180
	slices := syntheticSlices(6, alpha)

	res, err := Fellenius(slope.Circle{X: 0, Y: 10, R: 10}, slices)
	require.NoError(t, err)

	resisting := 15*(1/math.Cos(alpha)) + 76*math.Cos(alpha)*math.Tan(20*math.Pi/180)
	driving := 76 * math.Sin(alpha)
	require.InDelta(t, resisting/driving, res.FactorOfSafety, 1e-9)
}

func TestFellenius_InvalidSlipSurface(t *testing.T) {
	// A negative base angle everywhere drives the sum below zero.
	slices := syntheticSlices(6, -0.3)

	_, err := Fellenius(slope.Circle{X: 0, Y: 10, R: 10}, slices)
	require.ErrorIs(t, err, slope.ErrInvalidSlipSurface)
}

func TestFellenius_TensionSlices(t *testing.T) {
	alpha := 30 * math.Pi / 180
	slices := syntheticSlices(6, alpha)
	// Pore pressure high enough to push N' negative on one slice.
	slices[2].PorePressure = 100

	res, err := Fellenius(slope.Circle{X: 0, Y: 10, R: 10}, slices)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.TensionSlices)
	require.NotEmpty(t, res.Warnings)

	// The tension slice keeps its cohesive resistance only.
	require.InDelta(t, 15*slices[2].ArcLength, res.ResistingForces[2], 1e-9)
}

func TestFellenius_TooFewSlices(t *testing.T) {
	_, err := Fellenius(slope.Circle{X: 0, Y: 10, R: 10}, syntheticSlices(3, 0.3))
	require.ErrorIs(t, err, slope.ErrGeometry)
}
