package stability

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslope/internal/slope"
)

func TestBishop_Converges(t *testing.T) {
	circle, slices := referenceSlices(t)

	res, err := Bishop(circle, slices, BishopOptions{})
	require.NoError(t, err)

	require.Greater(t, res.FactorOfSafety, 0.0)
	require.False(t, math.IsNaN(res.FactorOfSafety))
	require.GreaterOrEqual(t, res.Iterations, 1)
	require.LessOrEqual(t, res.Iterations, slope.DefaultBishopMaxIterations)
	require.Less(t, res.Residual, slope.DefaultBishopTolerance)

	// History carries the seed plus one entry per iteration.
	require.Len(t, res.History, res.Iterations+1)
	require.InDelta(t, res.FactorOfSafety, res.History[len(res.History)-1], 1e-12)

	require.Len(t, res.MAlpha, len(slices))
	for _, m := range res.MAlpha {
		require.Greater(t, m, 0.0)
	}
}

func TestBishop_SeedIndependence(t *testing.T) {
	circle, slices := referenceSlices(t)

	a, err := Bishop(circle, slices, BishopOptions{InitialFS: 0.6})
	require.NoError(t, err)
	b, err := Bishop(circle, slices, BishopOptions{InitialFS: 3.0})
	require.NoError(t, err)

	// The fixed point does not depend on the seed.
	require.InDelta(t, a.FactorOfSafety, b.FactorOfSafety, 2*slope.DefaultBishopTolerance)
}

func TestBishop_ConvergenceError(t *testing.T) {
	circle, slices := referenceSlices(t)

	_, err := Bishop(circle, slices, BishopOptions{Tolerance: 1e-15, MaxIterations: 1})
	require.Error(t, err)
	require.ErrorIs(t, err, slope.ErrConvergence)

	var conv *slope.ConvergenceError
	require.True(t, errors.As(err, &conv))
	require.Equal(t, 1, conv.Iterations)
	require.Greater(t, conv.LastFS, 0.0)
	require.Equal(t, 1e-15, conv.Tolerance)
}

func TestBishop_NonPositiveMAlpha(t *testing.T) {
	slices := syntheticSlices(6, 30*math.Pi/180)
	// A steep counter-dipping slice in strong friction soil makes
	// m_α = cos(α) + sin(α)·tan(φ')/FS negative at the unit seed.
	slices[5].Alpha = -75 * math.Pi / 180
	slices[5].FrictionAngle = 40

	_, err := Bishop(slope.Circle{X: 0, Y: 10, R: 10}, slices, BishopOptions{InitialFS: 1.0})
	require.ErrorIs(t, err, slope.ErrInvalidGeometry)

	var malpha *slope.MAlphaError
	require.True(t, errors.As(err, &malpha))
	require.Equal(t, 5, malpha.SliceIndex)
	require.Equal(t, slices[5].XCenter, malpha.XCenter)
	require.InDelta(t, 1.0, malpha.FS, 1e-12)

	expect := math.Cos(slices[5].Alpha) + math.Sin(slices[5].Alpha)*math.Tan(40*math.Pi/180)
	require.InDelta(t, expect, malpha.MAlpha, 1e-9)
	require.Less(t, malpha.MAlpha, 0.0)
}

func TestBishop_InvalidSlipSurface(t *testing.T) {
	circle := slope.Circle{X: 0, Y: 10, R: 10}
	_, err := Bishop(circle, syntheticSlices(6, -0.3), BishopOptions{})
	require.ErrorIs(t, err, slope.ErrInvalidSlipSurface)
}

func TestBishop_HandComputedFixedPoint(t *testing.T) {
	// Uniform slices at α=30°: verify the converged value satisfies
	// FS = Σ[(c'·Δx + W·tanφ')/m_α] / Σ[W·sinα] with
	// m_α = cosα + sinα·tanφ'/FS.
	alpha := 30 * math.Pi / 180
	slices := syntheticSlices(6, alpha)

	res, err := Bishop(slope.Circle{X: 0, Y: 10, R: 10}, slices, BishopOptions{})
	require.NoError(t, err)

	fs := res.FactorOfSafety
	tanPhi := math.Tan(20 * math.Pi / 180)
	m := math.Cos(alpha) + math.Sin(alpha)*tanPhi/fs
	expect := (15*1 + 76*tanPhi) / m / (76 * math.Sin(alpha))
	require.InDelta(t, expect, fs, 10*slope.DefaultBishopTolerance)
}
