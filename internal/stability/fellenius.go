// Package stability implements the limit-equilibrium factor-of-safety
// solvers for circular slip surfaces: the ordinary (Fellenius) method and
// the modified Bishop method.
package stability

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// FelleniusResult holds the outcome of the ordinary method of slices.
type FelleniusResult struct {
	FactorOfSafety float64

	// Moment equilibrium about the circle center.
	ResistingMoment float64 // kN·m
	DrivingMoment   float64 // kN·m

	// Per-slice force contributions, index-aligned with Slices.
	ResistingForces []float64 // kN
	DrivingForces   []float64 // kN

	Slices        []slope.Slice
	TensionSlices []int // indices of slices with N' < 0
	Warnings      []string
}

// sliceResistanceFellenius returns the resisting shear force of one
// slice: c'·ΔL + max(0, W·cos(α) − u·ΔL)·tan(φ'). A slice in tension
// loses its frictional term; cohesion still contributes.
func sliceResistanceFellenius(s slope.Slice) float64 {
	cohesive := s.Cohesion * s.ArcLength
	normal := s.EffectiveNormal()
	if normal < 0 {
		normal = 0
	}
	return cohesive + normal*s.TanPhi()
}

// Fellenius computes the factor of safety of a slice set by the ordinary
// method. It is closed-form: no iteration, no internal state.
func Fellenius(circle slope.Circle, slices []slope.Slice) (*FelleniusResult, error) {
	if len(slices) < slope.MinSliceCount {
		return nil, fmt.Errorf("%w: slice set has %d slices (minimum %d)",
			slope.ErrGeometry, len(slices), slope.MinSliceCount)
	}

	res := &FelleniusResult{
		ResistingForces: make([]float64, len(slices)),
		DrivingForces:   make([]float64, len(slices)),
		Slices:          slices,
	}

	var resisting, driving float64
	for i, s := range slices {
		r := sliceResistanceFellenius(s)
		d := s.Weight * s.SinAlpha()
		res.ResistingForces[i] = r
		res.DrivingForces[i] = d
		resisting += r
		driving += d
		if s.InTension() {
			res.TensionSlices = append(res.TensionSlices, i)
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("slice %d (x=%.2f) in tension: N'=%.1f kN", i, s.XCenter, s.EffectiveNormal()))
		}
	}

	if driving <= 0 {
		return nil, fmt.Errorf("%w: Σ W·sin(α) = %.3f kN for circle (%.2f, %.2f, r=%.2f)",
			slope.ErrInvalidSlipSurface, driving, circle.X, circle.Y, circle.R)
	}

	res.FactorOfSafety = resisting / driving
	res.ResistingMoment = resisting * circle.R
	res.DrivingMoment = driving * circle.R

	if math.IsNaN(res.FactorOfSafety) || math.IsInf(res.FactorOfSafety, 0) {
		return nil, fmt.Errorf("%w: non-finite factor of safety", slope.ErrInvalidSlipSurface)
	}
	if res.FactorOfSafety < 0.5 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("factor of safety %.3f is very low, check input data", res.FactorOfSafety))
	}
	if len(res.TensionSlices) > len(slices)/2 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("%d of %d slices in tension", len(res.TensionSlices), len(slices)))
	}
	return res, nil
}
