package slope

import (
	"fmt"
	"math"
)

// Slice is one vertical column of the sliding mass, bounded by the slip
// circle below and the terrain above. Slices are produced fresh per
// (circle, terrain, soil, water) combination and never mutated.
type Slice struct {
	Index   int
	XLeft   float64
	XRight  float64
	XCenter float64
	Width   float64 // Δx (m)

	YBase    float64 // lower circle branch at XCenter (m)
	YSurface float64 // interpolated terrain at XCenter (m)
	Height   float64 // YSurface − YBase (m), > 0 for a valid slice

	Alpha     float64 // base inclination α (radians), driving convention
	ArcLength float64 // ΔL of the base segment (m)

	Weight       float64 // W (kN per unit thickness)
	PorePressure float64 // u at the base (kPa)

	// Strength at the base, taken from the layer containing YBase.
	Cohesion      float64 // c' (kPa)
	FrictionAngle float64 // φ' (degrees)
}

// SinAlpha returns sin(α).
func (s Slice) SinAlpha() float64 { return math.Sin(s.Alpha) }

// CosAlpha returns cos(α).
func (s Slice) CosAlpha() float64 { return math.Cos(s.Alpha) }

// TanPhi returns tan(φ') for the base material.
func (s Slice) TanPhi() float64 { return math.Tan(s.FrictionAngle * math.Pi / 180) }

// EffectiveNormal returns N' = W·cos(α) − u·ΔL, the effective normal
// force on the base under the ordinary-method assumption.
func (s Slice) EffectiveNormal() float64 {
	return s.Weight*s.CosAlpha() - s.PorePressure*s.ArcLength
}

// InTension reports whether the effective normal force is negative.
func (s Slice) InTension() bool { return s.EffectiveNormal() < 0 }

// BuildSlices discretizes the intersection of a slip circle with the
// terrain into n equal-width columns and returns the valid ones, ordered
// by increasing x. Columns whose height is not positive, or whose base
// angle exceeds MaxBaseAngle, are excluded rather than clamped. Fewer
// than MinSliceCount surviving columns is a geometry failure.
//
// The function is pure: identical inputs produce identical slice sets.
func BuildSlices(circle Circle, terrain *TerrainProfile, soils *SoilProfile, water *WaterTable, n int) ([]Slice, error) {
	if err := circle.Validate(); err != nil {
		return nil, err
	}
	if n < MinSliceCount {
		return nil, fmt.Errorf("%w: slice count must be ≥ %d, got %d", ErrParameter, MinSliceCount, n)
	}

	xMin := math.Max(circle.XMin(), terrain.XMin())
	xMax := math.Min(circle.XMax(), terrain.XMax())
	if xMax-xMin <= 0 {
		return nil, fmt.Errorf("%w: circle [%.2f, %.2f] does not overlap terrain [%.2f, %.2f]",
			ErrGeometry, circle.XMin(), circle.XMax(), terrain.XMin(), terrain.XMax())
	}

	orientation := terrain.OrientationSign()
	width := (xMax - xMin) / float64(n)
	maxAlpha := MaxBaseAngle * math.Pi / 180

	slices := make([]Slice, 0, n)
	for i := 0; i < n; i++ {
		xl := xMin + float64(i)*width
		xr := xl + width
		xc := xl + width/2

		yBase, ok := circle.YLower(xc)
		if !ok {
			continue
		}
		ySurface, err := terrain.ElevationAt(xc)
		if err != nil {
			continue
		}
		height := ySurface - yBase
		if height <= 0 {
			// The circle does not pass below ground in this column.
			continue
		}
		alpha, err := circle.BaseAngle(xc, orientation)
		if err != nil || math.Abs(alpha) > maxAlpha {
			continue
		}

		weight := soils.ColumnWeight(yBase, ySurface, width)
		if water != nil {
			if yw, ok := water.ElevationAt(xc); ok && yw > yBase {
				weight = soils.ColumnWeightSubmerged(yBase, ySurface, yw, width)
			}
		}

		base := soils.LayerAt(yBase)
		slices = append(slices, Slice{
			Index:         len(slices),
			XLeft:         xl,
			XRight:        xr,
			XCenter:       xc,
			Width:         width,
			YBase:         yBase,
			YSurface:      ySurface,
			Height:        height,
			Alpha:         alpha,
			ArcLength:     circle.ArcLength(xl, xr),
			Weight:        weight,
			PorePressure:  porePressure(xc, yBase, water),
			Cohesion:      base.Cohesion,
			FrictionAngle: base.FrictionAngle,
		})
	}

	if len(slices) < MinSliceCount {
		return nil, fmt.Errorf("%w: only %d of %d columns are valid (minimum %d)",
			ErrGeometry, len(slices), n, MinSliceCount)
	}
	return slices, nil
}

// porePressure returns u = γw·(piezometric elevation − base elevation)
// at the slice base, clipped at zero when the base sits above the table.
func porePressure(x, yBase float64, water *WaterTable) float64 {
	if water == nil {
		return 0
	}
	yw, ok := water.ElevationAt(x)
	if !ok || yw <= yBase {
		return 0
	}
	return WaterUnitWeight * (yw - yBase)
}

// DrivingSum returns Σ W·sin(α) over a slice set.
func DrivingSum(slices []Slice) float64 {
	sum := 0.0
	for _, s := range slices {
		sum += s.Weight * s.SinAlpha()
	}
	return sum
}
