package slope

import (
	"fmt"
	"math"
)

// Circle is a candidate circular slip surface. It is a pure value:
// searches create and discard many, never mutating one in place.
type Circle struct {
	X float64 // center x (m)
	Y float64 // center y (m)
	R float64 // radius (m)
}

// Validate checks the radius.
func (c Circle) Validate() error {
	if c.R <= 0 {
		return fmt.Errorf("%w: circle radius must be > 0, got %.3f", ErrParameter, c.R)
	}
	return nil
}

// XMin returns the left extent of the circle.
func (c Circle) XMin() float64 { return c.X - c.R }

// XMax returns the right extent of the circle.
func (c Circle) XMax() float64 { return c.X + c.R }

// YLower returns the lower branch of the circle at x, the branch acting
// as a slip surface. ok is false when x lies outside the circle.
func (c Circle) YLower(x float64) (float64, bool) {
	d := c.R*c.R - (x-c.X)*(x-c.X)
	if d < 0 {
		return 0, false
	}
	return c.Y - math.Sqrt(d), true
}

// YUpper returns the upper branch of the circle at x.
func (c Circle) YUpper(x float64) (float64, bool) {
	d := c.R*c.R - (x-c.X)*(x-c.X)
	if d < 0 {
		return 0, false
	}
	return c.Y + math.Sqrt(d), true
}

// BaseAngle returns the inclination α of the slip surface tangent at x,
// signed so that crest-side slices give sin(α) > 0. orientation is the
// terrain's OrientationSign. The angle follows analytically from the
// circle equation: sin(α) = orientation·(x − xc)/r.
func (c Circle) BaseAngle(x, orientation float64) (float64, error) {
	s := (x - c.X) / c.R
	if s < -1 || s > 1 {
		return 0, fmt.Errorf("%w: x=%.3f outside circle (xc=%.3f, r=%.3f)", ErrParameter, x, c.X, c.R)
	}
	return math.Asin(orientation * s), nil
}

// ArcLength returns the length of the lower arc between x1 and x2.
// Orientation does not affect it.
func (c Circle) ArcLength(x1, x2 float64) float64 {
	s1 := clampUnit((x1 - c.X) / c.R)
	s2 := clampUnit((x2 - c.X) / c.R)
	return c.R * math.Abs(math.Asin(s2)-math.Asin(s1))
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
