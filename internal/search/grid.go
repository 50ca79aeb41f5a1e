package search

import (
	"context"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// runGrid evaluates a coarse grid over (center_x, center_y, radius)
// within bounds, then refines with a finer grid centered on the best
// coarse point.
func (s *searcher) runGrid(ctx context.Context) error {
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
	best := s.best
	s.mu.Unlock()
	if best == nil {
		// Nothing valid on the coarse grid; refining has no anchor.
		return nil
	}

	// Refine one coarse step around the best point, clamped to bounds.
	stepX := (b.CenterXMax - b.CenterXMin) / float64(s.cfg.GridDivisions)
	stepY := (b.CenterYMax - b.CenterYMin) / float64(s.cfg.GridDivisions)
	stepR := (b.RadiusMax - b.RadiusMin) / float64(s.cfg.GridDivisions)

	fine := gridCandidates(
		clamp(best.X-stepX, b.CenterXMin, b.CenterXMax), clamp(best.X+stepX, b.CenterXMin, b.CenterXMax),
		clamp(best.Y-stepY, b.CenterYMin, b.CenterYMax), clamp(best.Y+stepY, b.CenterYMin, b.CenterYMax),
		clamp(best.R-stepR, b.RadiusMin, b.RadiusMax), clamp(best.R+stepR, b.RadiusMin, b.RadiusMax),
		s.cfg.RefineDivisions,
	)
	_, _, err := s.evalBatch(ctx, fine)
	return err
}

// gridCandidates enumerates divisions+1 samples per axis, inclusive of
// both ends.
func gridCandidates(x0, x1, y0, y1, r0, r1 float64, divisions int) []slope.Circle {
	step := func(lo, hi float64, i int) float64 {
		if divisions == 0 {
			return lo
		}
		return lo + (hi-lo)*float64(i)/float64(divisions)
	}
	out := make([]slope.Circle, 0, (divisions+1)*(divisions+1)*(divisions+1))
	for i := 0; i <= divisions; i++ {
		for j := 0; j <= divisions; j++ {
			for k := 0; k <= divisions; k++ {
				out = append(out, slope.Circle{
					X: step(x0, x1, i),
					Y: step(y0, y1, j),
					R: step(r0, r1, k),
				})
			}
		}
	}
	return out
}

// runRandom evaluates uniform samples within bounds.
func (s *searcher) runRandom(ctx context.Context) error {
	candidates := make([]slope.Circle, s.cfg.Samples)
	for i := range candidates {
		candidates[i] = s.uniformCircle()
	}
	_, _, err := s.evalBatch(ctx, candidates)
	return err
}
