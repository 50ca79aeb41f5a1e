package stability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// BishopOptions configures the modified Bishop iteration. Zero values
// select the package defaults.
type BishopOptions struct {
	InitialFS     float64 // seed estimate; the Fellenius result is the recommended seed
	Tolerance     float64 // convergence tolerance on successive FS iterates
	MaxIterations int
}

func (o BishopOptions) withDefaults() BishopOptions {
	if o.InitialFS <= 0 {
		o.InitialFS = 1.0
	}
	if o.Tolerance <= 0 {
		o.Tolerance = slope.DefaultBishopTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = slope.DefaultBishopMaxIterations
	}
	return o
}

// BishopResult holds the outcome of a converged modified Bishop run.
type BishopResult struct {
	FactorOfSafety float64
	Iterations     int
	Residual       float64 // |FS_new − FS_old| at convergence

	ResistingMoment float64 // kN·m
	DrivingMoment   float64 // kN·m

	ResistingForces []float64 // per-slice, kN
	DrivingForces   []float64 // per-slice, kN
	MAlpha          []float64 // per-slice m_α at the final FS

	History       []float64 // FS iterates, seed first
	Slices        []slope.Slice
	TensionSlices []int
	Warnings      []string
}

// mAlpha returns cos(α) + sin(α)·tan(φ')/FS for one slice, failing when
// the factor is not positive: the assumed FS makes the slice base
// orientation incompatible with the method.
func mAlpha(s slope.Slice, index int, fs float64) (float64, error) {
	m := s.CosAlpha() + s.SinAlpha()*s.TanPhi()/fs
	if m <= 0 {
		return 0, &slope.MAlphaError{SliceIndex: index, XCenter: s.XCenter, MAlpha: m, FS: fs}
	}
	return m, nil
}

// bishopIteration evaluates one fixed-point step, returning the new FS
// and the per-slice terms at the current estimate.
func bishopIteration(slices []slope.Slice, fs float64) (float64, []float64, []float64, []float64, error) {
	resisting := make([]float64, len(slices))
	driving := make([]float64, len(slices))
	factors := make([]float64, len(slices))

	var sumR, sumD float64
	for i, s := range slices {
		m, err := mAlpha(s, i, fs)
		if err != nil {
			return 0, nil, nil, nil, err
		}
		factors[i] = m

		normal := s.Weight - s.PorePressure*s.Width
		if normal < 0 {
			normal = 0
		}
		r := (s.Cohesion*s.Width + normal*s.TanPhi()) / m
		d := s.Weight * s.SinAlpha()
		resisting[i] = r
		driving[i] = d
		sumR += r
		sumD += d
	}
	if sumD <= 0 {
		return 0, nil, nil, nil, fmt.Errorf("%w: Σ W·sin(α) = %.3f kN", slope.ErrInvalidSlipSurface, sumD)
	}
	return sumR / sumD, resisting, driving, factors, nil
}

// Bishop computes the factor of safety of a slice set by the modified
// Bishop method. Each invocation is a self-contained iteration loop over
// explicit locals; no state is carried between calls.
func Bishop(circle slope.Circle, slices []slope.Slice, opts BishopOptions) (*BishopResult, error) {
	if len(slices) < slope.MinSliceCount {
		return nil, fmt.Errorf("%w: slice set has %d slices (minimum %d)",
			slope.ErrGeometry, len(slices), slope.MinSliceCount)
	}
	opts = opts.withDefaults()

	fs := opts.InitialFS
	history := []float64{fs}
	var (
		resisting, driving, factors []float64
		residual                    float64
		converged                   bool
		iterations                  int
	)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		iterations = iter + 1

		next, r, d, m, err := bishopIteration(slices, fs)
		if err != nil {
			return nil, err
		}
		residual = math.Abs(next - fs)
		fs = next
		history = append(history, fs)
		resisting, driving, factors = r, d, m

		if residual < opts.Tolerance {
			converged = true
			break
		}
	}
	if !converged {
		return nil, &slope.ConvergenceError{
			Iterations: iterations,
			LastFS:     fs,
			Residual:   residual,
			Tolerance:  opts.Tolerance,
		}
	}

	res := &BishopResult{
		FactorOfSafety:  fs,
		Iterations:      iterations,
		Residual:        residual,
		ResistingForces: resisting,
		DrivingForces:   driving,
		MAlpha:          factors,
		History:         history,
		Slices:          slices,
	}

	var sumR, sumD float64
	for i := range resisting {
		sumR += resisting[i]
		sumD += driving[i]
	}
	res.ResistingMoment = sumR * circle.R
	res.DrivingMoment = sumD * circle.R

	for i, s := range slices {
		if s.InTension() {
			res.TensionSlices = append(res.TensionSlices, i)
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("slice %d (x=%.2f) in tension: N'=%.1f kN", i, s.XCenter, s.EffectiveNormal()))
		}
		if factors[i] < 0.1 {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("slice %d has low m_α=%.3f", i, factors[i]))
		}
	}
	if n := len(history); n >= 4 && iterations > 5 {
		last3 := history[n-3:]
		if maxOf(last3)-minOf(last3) > 0.5 {
			res.Warnings = append(res.Warnings, "oscillating iterates near convergence")
		}
	}
	if fs < 0.5 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("factor of safety %.3f is very low, check input data", fs))
	}
	return res, nil
}

func maxOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(v []float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
