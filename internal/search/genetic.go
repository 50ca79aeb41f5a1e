package search

import (
	"context"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// invalidFitness ranks rejected candidates below every valid one.
const invalidFitness = -1e9

// runGenetic evolves a population of circles within bounds. Fitness is
// 1/FS for valid candidates, a large penalty otherwise, so selection
// pressure points toward the lowest factor of safety. The best-ever
// candidate survives in the shared accumulator independent of the
// current population.
func (s *searcher) runGenetic(ctx context.Context, seed *slope.Circle) error {
	cfg := s.cfg
	b := s.bounds

	population := make([]slope.Circle, 0, cfg.Population)
	if seed != nil {
		population = append(population, slope.Circle{
			X: clamp(seed.X, b.CenterXMin, b.CenterXMax),
			Y: clamp(seed.Y, b.CenterYMin, b.CenterYMax),
			R: clamp(seed.R, b.RadiusMin, b.RadiusMax),
		})
	}
	for len(population) < cfg.Population {
		population = append(population, s.uniformCircle())
	}

	for gen := 0; gen < cfg.Generations; gen++ {
		fs, ok, err := s.evalBatch(ctx, population)
		if err != nil {
			return err
		}

		fitness := make([]float64, len(population))
		for i := range population {
			if ok[i] && fs[i] > 0 {
				fitness[i] = 1 / fs[i]
			} else {
				fitness[i] = invalidFitness
			}
		}

		next := make([]slope.Circle, 0, cfg.Population)
		for _, i := range topIndices(fitness, cfg.EliteCount) {
			next = append(next, population[i])
		}
		for len(next) < cfg.Population {
			p1 := population[s.tournament(fitness)]
			p2 := population[s.tournament(fitness)]

			child := p1
			if s.rng.Float64() < cfg.CrossoverRate {
				child = s.crossover(p1, p2)
			}
			if s.rng.Float64() < cfg.MutationRate {
				child = s.mutate(child)
			}
			next = append(next, child)
		}
		population = next
	}
	return nil
}

// tournament picks the fittest of TournamentSize random competitors.
func (s *searcher) tournament(fitness []float64) int {
	best := s.rng.Intn(len(fitness))
	for i := 1; i < s.cfg.TournamentSize; i++ {
		c := s.rng.Intn(len(fitness))
		if fitness[c] > fitness[best] {
			best = c
		}
	}
	return best
}

// crossover blends two parents' coordinates with a random weight.
func (s *searcher) crossover(a, b slope.Circle) slope.Circle {
	t := s.rng.Float64()
	return slope.Circle{
		X: t*a.X + (1-t)*b.X,
		Y: t*a.Y + (1-t)*b.Y,
		R: t*a.R + (1-t)*b.R,
	}
}

// mutate perturbs each coordinate by a bounded gaussian step scaled to
// the bound ranges, clamping back into bounds.
func (s *searcher) mutate(c slope.Circle) slope.Circle {
	b := s.bounds
	scale := s.cfg.MutationScale
	return slope.Circle{
		X: clamp(c.X+s.rng.NormFloat64()*scale*(b.CenterXMax-b.CenterXMin), b.CenterXMin, b.CenterXMax),
		Y: clamp(c.Y+s.rng.NormFloat64()*scale*(b.CenterYMax-b.CenterYMin), b.CenterYMin, b.CenterYMax),
		R: clamp(c.R+s.rng.NormFloat64()*scale*(b.RadiusMax-b.RadiusMin), b.RadiusMin, b.RadiusMax),
	}
}

// topIndices returns the indices of the n largest fitness values.
func topIndices(fitness []float64, n int) []int {
	if n > len(fitness) {
		n = len(fitness)
	}
	idx := make([]int, len(fitness))
	for i := range idx {
		idx[i] = i
	}
	// Partial selection sort; populations are small.
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < len(idx); j++ {
			if fitness[idx[j]] > fitness[idx[best]] {
				best = j
			}
		}
		idx[i], idx[best] = idx[best], idx[i]
	}
	return idx[:n]
}

// runHybrid seeds a genetic search with the best point of a coarse grid.
func (s *searcher) runHybrid(ctx context.Context) error {
	b := s.bounds
	coarse := gridCandidates(
		b.CenterXMin, b.CenterXMax,
		b.CenterYMin, b.CenterYMax,
		b.RadiusMin, b.RadiusMax,
		s.cfg.GridDivisions,
	)
	if _, _, err := s.evalBatch(ctx, coarse); err != nil {
		return err
	}

	s.mu.Lock()
	seed := s.best
	s.mu.Unlock()
	if seed == nil {
		seed = s.cfg.SeedCircle
	}
	return s.runGenetic(ctx, seed)
}
