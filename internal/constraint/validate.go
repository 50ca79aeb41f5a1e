package constraint

import (
	"fmt"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// Violation names one exceeded bound with the offending and limiting
// values, so a caller can explain the failure to an end user.
type Violation struct {
	Bound string  // "center_x_min", "radius_max", ...
	Value float64 // the circle's value
	Limit float64 // the bound it crossed
}

func (v Violation) String() string {
	return fmt.Sprintf("%s violated: %.3f vs limit %.3f", v.Bound, v.Value, v.Limit)
}

// ValidateAndCorrect checks a circle against bounds. With autoCorrect
// false it only reports violations and the corrected circle is always
// nil — never a half-initialized value. With autoCorrect true each
// violated dimension is clamped independently to its nearest bound and
// the clamped circle is returned alongside the violations that triggered
// the clamping. Pure function, no state between calls.
func ValidateAndCorrect(c slope.Circle, b Bounds, autoCorrect bool) (bool, []Violation, *slope.Circle) {
	var violations []Violation
	corrected := c

	check := func(name string, value, lo, hi float64) float64 {
		if value < lo {
			violations = append(violations, Violation{Bound: name + "_min", Value: value, Limit: lo})
			return lo
		}
		if value > hi {
			violations = append(violations, Violation{Bound: name + "_max", Value: value, Limit: hi})
			return hi
		}
		return value
	}

	corrected.X = check("center_x", c.X, b.CenterXMin, b.CenterXMax)
	corrected.Y = check("center_y", c.Y, b.CenterYMin, b.CenterYMax)
	corrected.R = check("radius", c.R, b.RadiusMin, b.RadiusMax)

	if len(violations) == 0 {
		return true, nil, nil
	}
	if !autoCorrect {
		return false, violations, nil
	}
	return false, violations, &corrected
}
