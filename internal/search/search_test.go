package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslope/internal/constraint"
	"github.com/alexiusacademia/goslope/internal/slope"
)

// stableSlope is an 8 m slope at 35° in c'=25 kPa, φ'=28° soil — a
// configuration the literature places in the marginally-to-fully stable
// range.
func stableSlope(t *testing.T) (*slope.TerrainProfile, *slope.SoilProfile, constraint.Bounds) {
	t.Helper()
	terrain, err := slope.NewSimpleSlope(8, 35, 0)
	require.NoError(t, err)
	soils, err := slope.NewHomogeneousSoil(25, 28, 19)
	require.NoError(t, err)
	bounds, err := constraint.Derive(terrain)
	require.NoError(t, err)
	return terrain, soils, bounds
}

func TestRun_GridFindsRealisticFS(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	res, err := Run(context.Background(), terrain, soils, nil, bounds, Config{
		Strategy: StrategyGrid,
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Greater(t, res.Evaluated, 0)

	// A marginally-to-fully stable slope: never unbounded, never > 10.
	require.GreaterOrEqual(t, res.FS, 0.8)
	require.LessOrEqual(t, res.FS, 5.0)
	require.True(t, bounds.Contains(res.Circle))
}

func TestRun_RandomWithinBand(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	res, err := Run(context.Background(), terrain, soils, nil, bounds, Config{
		Strategy: StrategyRandom,
		Samples:  300,
		Seed:     7,
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 300, res.Evaluated)
	require.GreaterOrEqual(t, res.FS, 0.8)
	require.LessOrEqual(t, res.FS, 10.0)
}

func TestRun_GeneticDeterministicPerSeed(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	cfg := Config{
		Strategy:    StrategyGenetic,
		Population:  20,
		Generations: 8,
		Seed:        42,
	}
	a, err := Run(context.Background(), terrain, soils, nil, bounds, cfg)
	require.NoError(t, err)
	b, err := Run(context.Background(), terrain, soils, nil, bounds, cfg)
	require.NoError(t, err)

	require.True(t, a.Found)
	require.True(t, b.Found)
	require.Equal(t, a.Evaluated, b.Evaluated)
	require.InDelta(t, a.FS, b.FS, 1e-12)
	require.InDelta(t, a.Circle.X, b.Circle.X, 1e-12)
	require.InDelta(t, a.Circle.Y, b.Circle.Y, 1e-12)
	require.InDelta(t, a.Circle.R, b.Circle.R, 1e-12)
}

func TestRun_HybridFinds(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	res, err := Run(context.Background(), terrain, soils, nil, bounds, Config{
		Strategy:      StrategyHybrid,
		GridDivisions: 4,
		Population:    15,
		Generations:   5,
		Seed:          3,
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.GreaterOrEqual(t, res.FS, 0.8)
	require.LessOrEqual(t, res.FS, 5.0)
}

func TestRun_Cancellation(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, terrain, soils, nil, bounds, Config{Strategy: StrategyRandom, Samples: 5000})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	// A cancelled run still reports what it managed to evaluate.
	require.LessOrEqual(t, res.Evaluated, 5000)
}

func TestRun_NoValidCircle(t *testing.T) {
	terrain, soils, _ := stableSlope(t)

	// Tiny circles far above the slope never touch ground.
	bounds := constraint.Bounds{
		CenterXMin: 0, CenterXMax: 5,
		CenterYMin: 100, CenterYMax: 110,
		RadiusMin: 1, RadiusMax: 2,
	}
	res, err := Run(context.Background(), terrain, soils, nil, bounds, Config{
		Strategy: StrategyRandom,
		Samples:  50,
	})
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, res.Evaluated, res.Rejected)
}

func TestRun_ProgressCallback(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	var improvements int
	res, err := Run(context.Background(), terrain, soils, nil, bounds, Config{
		Strategy: StrategyRandom,
		Samples:  200,
		Seed:     1,
		Progress: func(bestFS float64, evaluated int) {
			improvements++
			require.Greater(t, bestFS, 0.0)
			require.Greater(t, evaluated, 0)
		},
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Greater(t, improvements, 0)
}

func TestRun_ParameterChecks(t *testing.T) {
	terrain, soils, bounds := stableSlope(t)

	_, err := Run(context.Background(), nil, soils, nil, bounds, Config{})
	require.ErrorIs(t, err, slope.ErrParameter)

	_, err = Run(context.Background(), terrain, nil, nil, bounds, Config{})
	require.ErrorIs(t, err, slope.ErrParameter)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, StrategyGrid, s)

	s, err = ParseStrategy("genetic")
	require.NoError(t, err)
	require.Equal(t, StrategyGenetic, s)

	_, err = ParseStrategy("annealing")
	require.ErrorIs(t, err, slope.ErrParameter)
}
