package slope

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis failure taxonomy. Callers match them
// with errors.Is; the wrapped messages carry the offending values.
var (
	// ErrParameter reports soil or geometry inputs outside physically
	// plausible ranges, detected before discretization.
	ErrParameter = errors.New("parameter out of physical range")

	// ErrGeometry reports a circle that does not intersect the terrain
	// enough to produce a minimum viable slice count.
	ErrGeometry = errors.New("insufficient circle-terrain intersection")

	// ErrInvalidSlipSurface reports a slice set whose driving-direction
	// sum Σ W·sin(α) is not positive. The circle is not a legitimate
	// slip surface for the terrain.
	ErrInvalidSlipSurface = errors.New("non-positive driving force sum")

	// ErrInvalidGeometry reports a slice whose m_α factor becomes
	// non-positive during Bishop iteration.
	ErrInvalidGeometry = errors.New("slice base incompatible with method")

	// ErrConvergence reports a Bishop iteration that exhausted its
	// budget without meeting tolerance.
	ErrConvergence = errors.New("iteration did not converge")
)

// ConvergenceError carries the state of a failed Bishop iteration so the
// caller can report how close the method came.
type ConvergenceError struct {
	Iterations int
	LastFS     float64
	Residual   float64
	Tolerance  float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v after %d iterations: last Fs=%.4f, residual=%.6f, tolerance=%.6f",
		ErrConvergence, e.Iterations, e.LastFS, e.Residual, e.Tolerance)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// MAlphaError identifies the slice whose base orientation made m_α
// non-positive for the current factor-of-safety estimate.
type MAlphaError struct {
	SliceIndex int
	XCenter    float64
	MAlpha     float64
	FS         float64
}

func (e *MAlphaError) Error() string {
	return fmt.Sprintf("%v: slice %d (x=%.2f) has m_α=%.4f at Fs=%.3f",
		ErrInvalidGeometry, e.SliceIndex, e.XCenter, e.MAlpha, e.FS)
}

func (e *MAlphaError) Unwrap() error { return ErrInvalidGeometry }
