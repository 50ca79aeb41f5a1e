// Package search finds the critical slip circle: the circle minimizing
// the factor of safety over a bounded center/radius space. Strategies
// share one candidate evaluator (discretize + solve); every engine error
// during evaluation rejects that candidate instead of aborting the
// search, because large parts of the space are geometrically infeasible.
package search

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/alexiusacademia/goslope/internal/constraint"
	"github.com/alexiusacademia/goslope/internal/slope"
	"github.com/alexiusacademia/goslope/internal/stability"
)

// Strategy selects the search algorithm.
type Strategy string

const (
	StrategyGrid    Strategy = "grid"
	StrategyRandom  Strategy = "random"
	StrategyGenetic Strategy = "genetic"
	StrategyHybrid  Strategy = "hybrid"
)

// ParseStrategy maps a user-facing strategy name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyGrid, StrategyRandom, StrategyGenetic, StrategyHybrid:
		return Strategy(s), nil
	case "":
		return StrategyGrid, nil
	}
	return "", fmt.Errorf("%w: unknown strategy %q (grid, random, genetic, hybrid)", slope.ErrParameter, s)
}

// Config tunes a search run. Zero values select the defaults.
type Config struct {
	Strategy Strategy
	Method   stability.Method // evaluator method, Bishop by default
	Slices   int

	// Grid strategy.
	GridDivisions   int // coarse divisions per axis
	RefineDivisions int // fine divisions per axis around the best cell

	// Random strategy.
	Samples int

	// Genetic strategy.
	Population     int
	Generations    int
	CrossoverRate  float64
	MutationRate   float64
	MutationScale  float64 // perturbation as a fraction of each bound range
	TournamentSize int
	EliteCount     int

	// SeedCircle optionally biases the genetic/hybrid population with a
	// known-good candidate. It is a hint, never the only source.
	SeedCircle *slope.Circle

	Workers int   // parallel candidate evaluations; defaults to GOMAXPROCS
	Seed    int64 // RNG seed for reproducible runs

	// Progress, when set, receives the best factor of safety so far and
	// the number of candidates evaluated. Called under the collector
	// lock; keep it cheap.
	Progress func(bestFS float64, evaluated int)
}

func (c Config) withDefaults() Config {
	if c.Strategy == "" {
		c.Strategy = StrategyGrid
	}
	if c.Method == "" {
		c.Method = stability.MethodBishop
	}
	if c.Slices == 0 {
		c.Slices = slope.DefaultSliceCount
	}
	if c.GridDivisions <= 0 {
		c.GridDivisions = 8
	}
	if c.RefineDivisions <= 0 {
		c.RefineDivisions = 6
	}
	if c.Samples <= 0 {
		c.Samples = 500
	}
	if c.Population <= 0 {
		c.Population = 40
	}
	if c.Generations <= 0 {
		c.Generations = 30
	}
	if c.CrossoverRate <= 0 {
		c.CrossoverRate = 0.8
	}
	if c.MutationRate <= 0 {
		c.MutationRate = 0.15
	}
	if c.MutationScale <= 0 {
		c.MutationScale = 0.1
	}
	if c.TournamentSize <= 0 {
		c.TournamentSize = 3
	}
	if c.EliteCount <= 0 {
		c.EliteCount = c.Population / 10
		if c.EliteCount < 1 {
			c.EliteCount = 1
		}
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c
}

// Result reports the outcome of a search. Found is false when no
// candidate in the budget produced a valid slice set and solver result;
// that outcome is a completed search, not an error.
type Result struct {
	Found     bool
	Circle    slope.Circle
	FS        float64
	Strategy  Strategy
	Evaluated int
	Rejected  int
}

type searcher struct {
	terrain *slope.TerrainProfile
	soils   *slope.SoilProfile
	water   *slope.WaterTable
	bounds  constraint.Bounds
	cfg     Config
	rng     *rand.Rand

	mu        sync.Mutex
	bestFS    float64
	best      *slope.Circle
	evaluated int
	rejected  int
}

// Run executes a critical-circle search inside bounds. Cancellation is
// cooperative: ctx is consulted between candidate evaluations, and a
// cancelled run returns the best result so far with ctx's error.
func Run(ctx context.Context, terrain *slope.TerrainProfile, soils *slope.SoilProfile,
	water *slope.WaterTable, bounds constraint.Bounds, cfg Config) (*Result, error) {

	if terrain == nil || soils == nil {
		return nil, fmt.Errorf("%w: terrain and soil profiles are required", slope.ErrParameter)
	}
	cfg = cfg.withDefaults()

	s := &searcher{
		terrain: terrain,
		soils:   soils,
		water:   water,
		bounds:  bounds,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}

	var err error
	switch cfg.Strategy {
	case StrategyGrid:
		err = s.runGrid(ctx)
	case StrategyRandom:
		err = s.runRandom(ctx)
	case StrategyGenetic:
		err = s.runGenetic(ctx, cfg.SeedCircle)
	case StrategyHybrid:
		err = s.runHybrid(ctx)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", slope.ErrParameter, cfg.Strategy)
	}

	res := s.result()
	if err != nil {
		return res, err
	}
	return res, nil
}

func (s *searcher) result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := &Result{
		Strategy:  s.cfg.Strategy,
		Evaluated: s.evaluated,
		Rejected:  s.rejected,
	}
	if s.best != nil {
		res.Found = true
		res.Circle = *s.best
		res.FS = s.bestFS
	}
	return res
}

// evaluate runs one candidate through the discretizer and the selected
// solver. Any engine failure maps to a rejected candidate.
func (s *searcher) evaluate(c slope.Circle) (float64, bool) {
	res, err := stability.Analyze(stability.Request{
		Circle:  c,
		Terrain: s.terrain,
		Soils:   s.soils,
		Water:   s.water,
		Slices:  s.cfg.Slices,
		Method:  s.cfg.Method,
	})
	if err != nil {
		return 0, false
	}
	switch s.cfg.Method {
	case stability.MethodFellenius:
		return res.Fellenius.FactorOfSafety, true
	default:
		return res.Bishop.FactorOfSafety, true
	}
}

// record folds one evaluation into the shared best-so-far accumulator.
func (s *searcher) record(c slope.Circle, fs float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluated++
	if !ok {
		s.rejected++
		return
	}
	if s.best == nil || fs < s.bestFS {
		cc := c
		s.best = &cc
		s.bestFS = fs
		if s.cfg.Progress != nil {
			s.cfg.Progress(s.bestFS, s.evaluated)
		}
	}
}

// evalBatch evaluates candidates across the worker pool. The returned
// slices are index-aligned with the input; the shared accumulator is
// updated as results arrive. Returns ctx's error when cancelled.
func (s *searcher) evalBatch(ctx context.Context, candidates []slope.Circle) ([]float64, []bool, error) {
	fs := make([]float64, len(candidates))
	ok := make([]bool, len(candidates))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fs[i], ok[i] = s.evaluate(candidates[i])
				s.record(candidates[i], fs[i], ok[i])
			}
		}()
	}

	var cancelled bool
feed:
	for i := range candidates {
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		return fs, ok, ctx.Err()
	}
	return fs, ok, nil
}

// uniformCircle draws a candidate uniformly within bounds.
func (s *searcher) uniformCircle() slope.Circle {
	return slope.Circle{
		X: s.bounds.CenterXMin + s.rng.Float64()*(s.bounds.CenterXMax-s.bounds.CenterXMin),
		Y: s.bounds.CenterYMin + s.rng.Float64()*(s.bounds.CenterYMax-s.bounds.CenterYMin),
		R: s.bounds.RadiusMin + s.rng.Float64()*(s.bounds.RadiusMax-s.bounds.RadiusMin),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
