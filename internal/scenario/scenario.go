// Package scenario loads and saves analysis cases as YAML files, so a
// full slope definition travels as one document instead of a flag list.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// Scenario is one analysis case: geometry, soils, water, and optionally
// a trial circle and search settings.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Geometry: either a simple slope or an explicit polyline.
	Slope   *SlopeSpec  `yaml:"slope,omitempty"`
	Terrain []PointSpec `yaml:"terrain,omitempty"`

	Layers []LayerSpec `yaml:"layers"`

	// Water: either a horizontal level or an explicit polyline.
	WaterLevel *float64    `yaml:"water_level,omitempty"`
	Water      []PointSpec `yaml:"water,omitempty"`

	Circle *CircleSpec `yaml:"circle,omitempty"`
	Slices int         `yaml:"slices,omitempty"`
	Method string      `yaml:"method,omitempty"`

	Search *SearchSpec `yaml:"search,omitempty"`
}

// SlopeSpec describes a bench-toe-crest slope by height and inclination.
type SlopeSpec struct {
	Height     float64 `yaml:"height"`
	AngleDeg   float64 `yaml:"angle"`
	BaseLength float64 `yaml:"base_length,omitempty"`
}

// PointSpec is one polyline vertex.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LayerSpec describes one soil stratum.
type LayerSpec struct {
	Name          string  `yaml:"name,omitempty"`
	Cohesion      float64 `yaml:"cohesion"`
	FrictionAngle float64 `yaml:"friction_angle"`
	UnitWeight    float64 `yaml:"unit_weight"`
	SatUnitWeight float64 `yaml:"sat_unit_weight,omitempty"`
	TopElevation  float64 `yaml:"top_elevation,omitempty"`
}

// CircleSpec is a trial slip circle.
type CircleSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	R float64 `yaml:"r"`
}

// SearchSpec tunes a critical-circle search.
type SearchSpec struct {
	Strategy    string `yaml:"strategy,omitempty"`
	Samples     int    `yaml:"samples,omitempty"`
	Divisions   int    `yaml:"divisions,omitempty"`
	Population  int    `yaml:"population,omitempty"`
	Generations int    `yaml:"generations,omitempty"`
	Seed        int64  `yaml:"seed,omitempty"`
}

// Load reads a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Save writes the scenario as YAML.
func (sc *Scenario) Save(path string) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// BuildTerrain materializes the geometry section.
func (sc *Scenario) BuildTerrain() (*slope.TerrainProfile, error) {
	switch {
	case sc.Slope != nil && len(sc.Terrain) > 0:
		return nil, fmt.Errorf("%w: scenario %q defines both slope and terrain", slope.ErrParameter, sc.Name)
	case sc.Slope != nil:
		return slope.NewSimpleSlope(sc.Slope.Height, sc.Slope.AngleDeg, sc.Slope.BaseLength)
	case len(sc.Terrain) > 0:
		return slope.NewTerrainProfile(points(sc.Terrain))
	}
	return nil, fmt.Errorf("%w: scenario %q has no geometry", slope.ErrParameter, sc.Name)
}

// BuildSoils materializes the layer stack.
func (sc *Scenario) BuildSoils() (*slope.SoilProfile, error) {
	if len(sc.Layers) == 0 {
		return nil, fmt.Errorf("%w: scenario %q has no soil layers", slope.ErrParameter, sc.Name)
	}
	layers := make([]slope.SoilLayer, len(sc.Layers))
	for i, l := range sc.Layers {
		layers[i] = slope.SoilLayer{
			Name:          l.Name,
			Cohesion:      l.Cohesion,
			FrictionAngle: l.FrictionAngle,
			UnitWeight:    l.UnitWeight,
			SatUnitWeight: l.SatUnitWeight,
			TopElevation:  l.TopElevation,
		}
	}
	return slope.NewSoilProfile(layers...)
}

// BuildWater materializes the water table; nil when the scenario is dry.
func (sc *Scenario) BuildWater(terrain *slope.TerrainProfile) (*slope.WaterTable, error) {
	switch {
	case sc.WaterLevel != nil && len(sc.Water) > 0:
		return nil, fmt.Errorf("%w: scenario %q defines both water_level and water", slope.ErrParameter, sc.Name)
	case sc.WaterLevel != nil:
		return slope.NewHorizontalWaterTable(terrain, *sc.WaterLevel), nil
	case len(sc.Water) > 0:
		return slope.NewWaterTable(points(sc.Water))
	}
	return nil, nil
}

// BuildCircle returns the trial circle, when the scenario carries one.
func (sc *Scenario) BuildCircle() (*slope.Circle, error) {
	if sc.Circle == nil {
		return nil, nil
	}
	c := slope.Circle{X: sc.Circle.X, Y: sc.Circle.Y, R: sc.Circle.R}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func points(specs []PointSpec) []slope.Point {
	pts := make([]slope.Point, len(specs))
	for i, p := range specs {
		pts[i] = slope.Point{X: p.X, Y: p.Y}
	}
	return pts
}
