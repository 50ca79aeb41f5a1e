package scenario

import (
	"fmt"
	"sort"
)

// catalog holds built-in cases usable as starting points. Parameters are
// adapted from classical worked examples; treat them as seeds for your
// own input, not as verification targets.
var catalog = map[string]Scenario{
	"homogeneous-dry": {
		Name:        "homogeneous-dry",
		Description: "Homogeneous dry slope, 10 m high at 30°",
		Slope:       &SlopeSpec{Height: 10, AngleDeg: 30},
		Layers: []LayerSpec{
			{Name: "clayey sand", Cohesion: 15, FrictionAngle: 25, UnitWeight: 18},
		},
	},
	"homogeneous-wet": {
		Name:        "homogeneous-wet",
		Description: "Homogeneous slope with a water table at mid-height",
		Slope:       &SlopeSpec{Height: 10, AngleDeg: 30},
		Layers: []LayerSpec{
			{Name: "clayey sand", Cohesion: 15, FrictionAngle: 25, UnitWeight: 18, SatUnitWeight: 20},
		},
		WaterLevel: floatPtr(5),
	},
	"soft-clay": {
		Name:        "soft-clay",
		Description: "Soft saturated clay cut, short-term undrained strength",
		Slope:       &SlopeSpec{Height: 8, AngleDeg: 26.6},
		Layers: []LayerSpec{
			{Name: "soft clay", Cohesion: 30, FrictionAngle: 0, UnitWeight: 17},
		},
	},
	"steep-granular": {
		Name:        "steep-granular",
		Description: "Steep compacted fill, friction dominated",
		Slope:       &SlopeSpec{Height: 6, AngleDeg: 45},
		Layers: []LayerSpec{
			{Name: "compacted fill", Cohesion: 5, FrictionAngle: 38, UnitWeight: 20},
		},
	},
	"two-layer": {
		Name:        "two-layer",
		Description: "Fill over a weaker foundation clay",
		Slope:       &SlopeSpec{Height: 8, AngleDeg: 35},
		Layers: []LayerSpec{
			{Name: "fill", Cohesion: 10, FrictionAngle: 30, UnitWeight: 19, TopElevation: 8},
			{Name: "foundation clay", Cohesion: 25, FrictionAngle: 15, UnitWeight: 17, TopElevation: 2},
		},
	},
}

// Builtin returns a copy of a built-in case by name.
func Builtin(name string) (*Scenario, error) {
	sc, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown built-in scenario %q (try: %v)", name, BuiltinNames())
	}
	return &sc, nil
}

// BuiltinNames lists the built-in cases in stable order.
func BuiltinNames() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func floatPtr(v float64) *float64 { return &v }
