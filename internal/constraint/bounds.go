// Package constraint derives admissible center and radius ranges for
// candidate slip circles from the terrain geometry, and validates or
// corrects a given circle against them.
package constraint

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// Bounds is the admissible box for slip-circle search: any circle inside
// it plausibly intersects the slope between the toe region and the crest
// region. Immutable per terrain configuration.
type Bounds struct {
	CenterXMin float64
	CenterXMax float64
	CenterYMin float64
	CenterYMax float64
	RadiusMin  float64
	RadiusMax  float64

	// Terrain descriptors the bounds were derived from.
	SlopeHeight float64
	SlopeWidth  float64
	SlopeAngle  float64 // degrees
}

// Preset scales the bounds as fractions of the slope height. The values
// come from the tuned factor tables for each slope steepness class.
type Preset struct {
	Name            string
	LateralMargin   float64 // center-x margin beyond the terrain extent
	CenterYMinShift float64 // lowest center height above the crest
	CenterYMaxShift float64 // highest center height above the crest
	RadiusMinFactor float64
	RadiusMaxFactor float64
}

// Presets by slope steepness.
var (
	PresetGentle = Preset{
		Name: "gentle", LateralMargin: 0.8,
		CenterYMinShift: 0.3, CenterYMaxShift: 2.0,
		RadiusMinFactor: 0.8, RadiusMaxFactor: 2.0,
	}
	PresetModerate = Preset{
		Name: "moderate", LateralMargin: 0.5,
		CenterYMinShift: 0.3, CenterYMaxShift: 2.5,
		RadiusMinFactor: 0.8, RadiusMaxFactor: 1.8,
	}
	PresetSteep = Preset{
		Name: "steep", LateralMargin: 0.3,
		CenterYMinShift: 0.3, CenterYMaxShift: 2.0,
		RadiusMinFactor: 0.8, RadiusMaxFactor: 1.5,
	}
	PresetVerySteep = Preset{
		Name: "very steep", LateralMargin: 0.2,
		CenterYMinShift: 0.3, CenterYMaxShift: 1.5,
		RadiusMinFactor: 0.8, RadiusMaxFactor: 1.2,
	}
)

// PresetFor classifies a slope by its mean inclination.
func PresetFor(angleDeg float64) Preset {
	switch {
	case angleDeg <= 15:
		return PresetGentle
	case angleDeg <= 30:
		return PresetModerate
	case angleDeg <= 50:
		return PresetSteep
	default:
		return PresetVerySteep
	}
}

// Derive computes search bounds for a terrain, picking the preset from
// the slope's mean inclination.
func Derive(terrain *slope.TerrainProfile) (Bounds, error) {
	height := terrain.Height()
	width := terrain.XMax() - terrain.XMin()
	if height <= 0 || width <= 0 {
		return Bounds{}, fmt.Errorf("%w: degenerate terrain (height=%.3f, width=%.3f)",
			slope.ErrParameter, height, width)
	}
	angle := math.Atan(height/width) * 180 / math.Pi
	return DeriveWithPreset(terrain, PresetFor(angle))
}

// DeriveWithPreset computes search bounds using an explicit preset.
func DeriveWithPreset(terrain *slope.TerrainProfile, p Preset) (Bounds, error) {
	height := terrain.Height()
	width := terrain.XMax() - terrain.XMin()
	if height <= 0 || width <= 0 {
		return Bounds{}, fmt.Errorf("%w: degenerate terrain (height=%.3f, width=%.3f)",
			slope.ErrParameter, height, width)
	}
	margin := height * p.LateralMargin
	yMax := terrain.YMax()
	return Bounds{
		CenterXMin:  terrain.XMin() - margin,
		CenterXMax:  terrain.XMax() + margin,
		CenterYMin:  yMax + height*p.CenterYMinShift,
		CenterYMax:  yMax + height*p.CenterYMaxShift,
		RadiusMin:   height * p.RadiusMinFactor,
		RadiusMax:   height * p.RadiusMaxFactor,
		SlopeHeight: height,
		SlopeWidth:  width,
		SlopeAngle:  math.Atan(height/width) * 180 / math.Pi,
	}, nil
}

// Contains reports whether a circle satisfies every bound.
func (b Bounds) Contains(c slope.Circle) bool {
	ok, _, _ := ValidateAndCorrect(c, b, false)
	return ok
}
