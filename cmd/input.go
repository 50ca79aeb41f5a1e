package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslope/internal/scenario"
	"github.com/alexiusacademia/goslope/internal/slope"
)

// modelInputs are the geometry/soil/water flags shared by the analysis
// and search commands. A scenario file or built-in case overrides the
// individual flags.
type modelInputs struct {
	caseFile string
	builtin  string

	slopeHeight float64
	slopeAngle  float64
	baseLength  float64

	cohesion float64
	phi      float64
	gamma    float64
	gammaSat float64

	waterLevel float64
}

// register wires the shared flags onto a command.
func (in *modelInputs) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.caseFile, "case", "", "Scenario YAML file (overrides geometry/soil flags)")
	cmd.Flags().StringVar(&in.builtin, "builtin", "", "Built-in scenario name (see 'goslope cases')")

	cmd.Flags().Float64Var(&in.slopeHeight, "height", 0, "Slope height (m)")
	cmd.Flags().Float64Var(&in.slopeAngle, "angle", 0, "Slope inclination (degrees)")
	cmd.Flags().Float64Var(&in.baseLength, "base-length", 0, "Horizontal run of the slope face (m), derived from angle when 0")

	cmd.Flags().Float64VarP(&in.cohesion, "cohesion", "c", 0, "Effective cohesion c' (kPa)")
	cmd.Flags().Float64Var(&in.phi, "phi", 0, "Effective friction angle φ' (degrees)")
	cmd.Flags().Float64Var(&in.gamma, "gamma", 18, "Unit weight γ (kN/m³)")
	cmd.Flags().Float64Var(&in.gammaSat, "gamma-sat", 0, "Saturated unit weight γsat (kN/m³)")

	cmd.Flags().Float64Var(&in.waterLevel, "water-level", 0, "Horizontal water table elevation (m)")
}

// build materializes the model from a scenario file, a built-in case, or
// the individual flags, in that priority order.
func (in *modelInputs) build(cmd *cobra.Command) (*slope.TerrainProfile, *slope.SoilProfile, *slope.WaterTable, *scenario.Scenario, error) {
	var sc *scenario.Scenario
	var err error
	switch {
	case in.caseFile != "":
		sc, err = scenario.Load(in.caseFile)
	case in.builtin != "":
		sc, err = scenario.Builtin(in.builtin)
	}
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if sc != nil {
		terrain, err := sc.BuildTerrain()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		soils, err := sc.BuildSoils()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		water, err := sc.BuildWater(terrain)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return terrain, soils, water, sc, nil
	}

	if in.slopeHeight <= 0 || in.slopeAngle <= 0 {
		return nil, nil, nil, nil, fmt.Errorf("geometry required: --height and --angle, or --case/--builtin")
	}
	terrain, err := slope.NewSimpleSlope(in.slopeHeight, in.slopeAngle, in.baseLength)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	soils, err := slope.NewSoilProfile(slope.SoilLayer{
		Name:          "soil",
		Cohesion:      in.cohesion,
		FrictionAngle: in.phi,
		UnitWeight:    in.gamma,
		SatUnitWeight: in.gammaSat,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}
	var water *slope.WaterTable
	if cmd.Flags().Changed("water-level") {
		water = slope.NewHorizontalWaterTable(terrain, in.waterLevel)
	}
	return terrain, soils, water, nil, nil
}
