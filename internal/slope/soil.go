package slope

import (
	"fmt"
	"math"
)

// SoilLayer holds the effective-stress strength parameters of one
// stratum. TopElevation positions the layer inside a multi-layer stack;
// it is ignored for a single homogeneous layer.
type SoilLayer struct {
	Name          string
	Cohesion      float64 // c' (kPa)
	FrictionAngle float64 // φ' (degrees)
	UnitWeight    float64 // γ (kN/m³)
	SatUnitWeight float64 // γsat (kN/m³) used below the water table; 0 falls back to γ
	TopElevation  float64 // y of the layer top in a stack (m)
}

// Validate checks the layer against physically plausible ranges.
func (l SoilLayer) Validate() error {
	if l.Cohesion < 0 {
		return fmt.Errorf("%w: cohesion must be ≥ 0, got %.3f kPa", ErrParameter, l.Cohesion)
	}
	if l.FrictionAngle < MinFrictionAngle || l.FrictionAngle > MaxFrictionAngle {
		return fmt.Errorf("%w: friction angle must be in [%.0f°, %.0f°], got %.1f°",
			ErrParameter, MinFrictionAngle, MaxFrictionAngle, l.FrictionAngle)
	}
	if l.UnitWeight <= 0 {
		return fmt.Errorf("%w: unit weight must be > 0, got %.3f kN/m³", ErrParameter, l.UnitWeight)
	}
	if l.SatUnitWeight != 0 && l.SatUnitWeight < l.UnitWeight {
		return fmt.Errorf("%w: saturated unit weight %.3f below natural %.3f kN/m³",
			ErrParameter, l.SatUnitWeight, l.UnitWeight)
	}
	return nil
}

// PhiRadians returns φ' in radians.
func (l SoilLayer) PhiRadians() float64 { return l.FrictionAngle * math.Pi / 180 }

// TanPhi returns tan(φ').
func (l SoilLayer) TanPhi() float64 { return math.Tan(l.PhiRadians()) }

// SoilProfile is an immutable stack of layers ordered top-down. Layer i
// extends from its top elevation down to the top of layer i+1; the last
// layer extends indefinitely. The ground surface caps the first layer.
type SoilProfile struct {
	layers []SoilLayer
}

// NewSoilProfile validates a layer stack. A single layer forms a
// homogeneous profile regardless of its TopElevation.
func NewSoilProfile(layers ...SoilLayer) (*SoilProfile, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: soil profile needs at least one layer", ErrParameter)
	}
	for i, l := range layers {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Name, err)
		}
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].TopElevation >= layers[i-1].TopElevation {
			return nil, fmt.Errorf("%w: layer %d top %.3f must lie below layer %d top %.3f",
				ErrParameter, i, layers[i].TopElevation, i-1, layers[i-1].TopElevation)
		}
	}
	cp := make([]SoilLayer, len(layers))
	copy(cp, layers)
	return &SoilProfile{layers: cp}, nil
}

// NewHomogeneousSoil builds a single-layer profile.
func NewHomogeneousSoil(cohesion, frictionAngle, unitWeight float64) (*SoilProfile, error) {
	return NewSoilProfile(SoilLayer{
		Name:          "homogeneous",
		Cohesion:      cohesion,
		FrictionAngle: frictionAngle,
		UnitWeight:    unitWeight,
	})
}

// Layers returns a copy of the stack.
func (s *SoilProfile) Layers() []SoilLayer {
	cp := make([]SoilLayer, len(s.layers))
	copy(cp, s.layers)
	return cp
}

// LayerAt returns the layer containing elevation y. Elevations above the
// first layer's top map to the first layer, below the last top to the
// last layer.
func (s *SoilProfile) LayerAt(y float64) SoilLayer {
	for i := 1; i < len(s.layers); i++ {
		if y >= s.layers[i].TopElevation {
			return s.layers[i-1]
		}
	}
	return s.layers[len(s.layers)-1]
}

// ColumnWeight integrates the weight of a dry soil column of width dx
// between base and surface elevations, summing the bands each layer
// contributes (kN per unit thickness).
func (s *SoilProfile) ColumnWeight(yBase, ySurface, dx float64) float64 {
	return s.bandWeight(yBase, ySurface, dx, false)
}

// ColumnWeightSubmerged integrates the weight of a column whose part
// below the piezometric elevation waterY uses the saturated unit weight.
// Layers without γsat fall back to their natural unit weight.
func (s *SoilProfile) ColumnWeightSubmerged(yBase, ySurface, waterY, dx float64) float64 {
	if waterY <= yBase {
		return s.bandWeight(yBase, ySurface, dx, false)
	}
	if waterY >= ySurface {
		return s.bandWeight(yBase, ySurface, dx, true)
	}
	return s.bandWeight(waterY, ySurface, dx, false) + s.bandWeight(yBase, waterY, dx, true)
}

func (l SoilLayer) unitWeight(saturated bool) float64 {
	if saturated && l.SatUnitWeight > 0 {
		return l.SatUnitWeight
	}
	return l.UnitWeight
}

func (s *SoilProfile) bandWeight(yBase, ySurface, dx float64, saturated bool) float64 {
	if ySurface <= yBase {
		return 0
	}
	if len(s.layers) == 1 {
		return s.layers[0].unitWeight(saturated) * (ySurface - yBase) * dx
	}
	total := 0.0
	for i, l := range s.layers {
		top := ySurface
		if i > 0 && l.TopElevation < top {
			top = l.TopElevation
		}
		bottom := yBase
		if i < len(s.layers)-1 && s.layers[i+1].TopElevation > bottom {
			bottom = s.layers[i+1].TopElevation
		}
		if top > bottom {
			total += l.unitWeight(saturated) * (top - bottom) * dx
		}
	}
	return total
}
