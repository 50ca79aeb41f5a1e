package slope

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate on a terrain or piezometric profile (m).
type Point struct {
	X float64
	Y float64
}

// TerrainProfile is an ordered ground-surface polyline with strictly
// increasing x. It is immutable once constructed; benches (non-monotonic
// y) are allowed.
type TerrainProfile struct {
	points []Point
}

// NewTerrainProfile validates and wraps a ground-surface polyline.
func NewTerrainProfile(points []Point) (*TerrainProfile, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: terrain profile needs at least 2 points, got %d", ErrParameter, len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].X <= points[i-1].X {
			return nil, fmt.Errorf("%w: terrain x must be strictly increasing, point %d (x=%.3f) after x=%.3f",
				ErrParameter, i, points[i].X, points[i-1].X)
		}
	}
	cp := make([]Point, len(points))
	copy(cp, points)
	return &TerrainProfile{points: cp}, nil
}

// NewSimpleSlope builds a bench-toe-crest profile for a slope of the
// given height (m) and inclination (degrees). baseLength is the
// horizontal run of the inclined face; pass 0 to derive it from the
// angle. Flat extensions of half the run are added before the toe and
// after the crest.
func NewSimpleSlope(height, angleDeg, baseLength float64) (*TerrainProfile, error) {
	if height <= 0 {
		return nil, fmt.Errorf("%w: slope height must be > 0, got %.3f", ErrParameter, height)
	}
	if angleDeg <= 0 || angleDeg >= 90 {
		return nil, fmt.Errorf("%w: slope angle must be in (0°, 90°), got %.1f°", ErrParameter, angleDeg)
	}
	if baseLength <= 0 {
		baseLength = height / math.Tan(angleDeg*math.Pi/180)
	}
	ext := baseLength * 0.5
	return NewTerrainProfile([]Point{
		{X: -ext, Y: 0},
		{X: 0, Y: 0},
		{X: baseLength, Y: height},
		{X: baseLength + ext, Y: height},
	})
}

// Points returns a copy of the profile polyline.
func (t *TerrainProfile) Points() []Point {
	cp := make([]Point, len(t.points))
	copy(cp, t.points)
	return cp
}

// XMin returns the leftmost x of the profile.
func (t *TerrainProfile) XMin() float64 { return t.points[0].X }

// XMax returns the rightmost x of the profile.
func (t *TerrainProfile) XMax() float64 { return t.points[len(t.points)-1].X }

// YMin returns the lowest elevation on the profile.
func (t *TerrainProfile) YMin() float64 {
	min := t.points[0].Y
	for _, p := range t.points[1:] {
		if p.Y < min {
			min = p.Y
		}
	}
	return min
}

// YMax returns the highest elevation on the profile.
func (t *TerrainProfile) YMax() float64 {
	max := t.points[0].Y
	for _, p := range t.points[1:] {
		if p.Y > max {
			max = p.Y
		}
	}
	return max
}

// Height returns the total relief of the profile.
func (t *TerrainProfile) Height() float64 { return t.YMax() - t.YMin() }

// ElevationAt linearly interpolates the ground elevation at x.
func (t *TerrainProfile) ElevationAt(x float64) (float64, error) {
	if x < t.XMin() || x > t.XMax() {
		return 0, fmt.Errorf("%w: x=%.3f outside terrain range [%.3f, %.3f]",
			ErrParameter, x, t.XMin(), t.XMax())
	}
	for i := 0; i < len(t.points)-1; i++ {
		p1, p2 := t.points[i], t.points[i+1]
		if x <= p2.X {
			f := (x - p1.X) / (p2.X - p1.X)
			return p1.Y + f*(p2.Y-p1.Y), nil
		}
	}
	return t.points[len(t.points)-1].Y, nil
}

// OrientationSign fixes the driving-direction convention for slice base
// angles from the terrain geometry alone: +1 when the slope ascends with
// x (crest on the right), -1 when it descends. Under this convention the
// crest-side slices of a slip circle contribute positive W·sin(α).
func (t *TerrainProfile) OrientationSign() float64 {
	if t.points[len(t.points)-1].Y >= t.points[0].Y {
		return 1
	}
	return -1
}

// WaterTable is a piezometric surface with the same shape as a terrain
// profile. It is consulted only to derive pore pressures.
type WaterTable struct {
	profile *TerrainProfile
}

// NewWaterTable wraps a piezometric polyline.
func NewWaterTable(points []Point) (*WaterTable, error) {
	p, err := NewTerrainProfile(points)
	if err != nil {
		return nil, fmt.Errorf("water table: %w", err)
	}
	return &WaterTable{profile: p}, nil
}

// NewHorizontalWaterTable builds a flat water table at the given
// elevation spanning the terrain's x-range.
func NewHorizontalWaterTable(t *TerrainProfile, elevation float64) *WaterTable {
	wt, _ := NewWaterTable([]Point{
		{X: t.XMin(), Y: elevation},
		{X: t.XMax(), Y: elevation},
	})
	return wt
}

// ElevationAt returns the piezometric elevation at x and whether x lies
// within the table's extent.
func (w *WaterTable) ElevationAt(x float64) (float64, bool) {
	y, err := w.profile.ElevationAt(x)
	if err != nil {
		return 0, false
	}
	return y, true
}

// Points returns a copy of the piezometric polyline.
func (w *WaterTable) Points() []Point { return w.profile.Points() }
