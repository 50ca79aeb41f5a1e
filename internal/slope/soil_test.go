package slope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSoilLayer_Validate(t *testing.T) {
	good := SoilLayer{Cohesion: 15, FrictionAngle: 25, UnitWeight: 19}
	require.NoError(t, good.Validate())

	cases := []SoilLayer{
		{Cohesion: -1, FrictionAngle: 25, UnitWeight: 19},
		{Cohesion: 15, FrictionAngle: -5, UnitWeight: 19},
		{Cohesion: 15, FrictionAngle: 50, UnitWeight: 19},
		{Cohesion: 15, FrictionAngle: 25, UnitWeight: 0},
		{Cohesion: 15, FrictionAngle: 25, UnitWeight: 19, SatUnitWeight: 17},
	}
	for _, l := range cases {
		require.ErrorIs(t, l.Validate(), ErrParameter)
	}
}

func TestSoilProfile_LayerAt(t *testing.T) {
	fill := SoilLayer{Name: "fill", Cohesion: 10, FrictionAngle: 30, UnitWeight: 19, TopElevation: 8}
	clay := SoilLayer{Name: "clay", Cohesion: 25, FrictionAngle: 15, UnitWeight: 17, TopElevation: 2}

	sp, err := NewSoilProfile(fill, clay)
	require.NoError(t, err)

	require.Equal(t, "fill", sp.LayerAt(5).Name)
	require.Equal(t, "fill", sp.LayerAt(9).Name)
	require.Equal(t, "clay", sp.LayerAt(1).Name)
	require.Equal(t, "clay", sp.LayerAt(-10).Name)

	// Tops must strictly descend.
	_, err = NewSoilProfile(clay, fill)
	require.ErrorIs(t, err, ErrParameter)

	_, err = NewSoilProfile()
	require.ErrorIs(t, err, ErrParameter)
}

func TestSoilProfile_ColumnWeight(t *testing.T) {
	homo, err := NewHomogeneousSoil(15, 20, 19)
	require.NoError(t, err)
	require.InDelta(t, 19*6*2.0, homo.ColumnWeight(0, 6, 2.0), 1e-9)
	require.Equal(t, 0.0, homo.ColumnWeight(6, 6, 2.0))

	fill := SoilLayer{Name: "fill", Cohesion: 10, FrictionAngle: 30, UnitWeight: 19, TopElevation: 8}
	clay := SoilLayer{Name: "clay", Cohesion: 25, FrictionAngle: 15, UnitWeight: 17, TopElevation: 2}
	sp, err := NewSoilProfile(fill, clay)
	require.NoError(t, err)

	// 6 m of fill (8→2) over 2 m of clay (2→0), unit width.
	require.InDelta(t, 19*6+17*2, sp.ColumnWeight(0, 8, 1.0), 1e-9)
	// Column entirely inside the clay.
	require.InDelta(t, 17*1.5, sp.ColumnWeight(0, 1.5, 1.0), 1e-9)
}

func TestSoilProfile_ColumnWeightSubmerged(t *testing.T) {
	sand := SoilLayer{Name: "sand", Cohesion: 5, FrictionAngle: 30, UnitWeight: 18, SatUnitWeight: 20}
	sp, err := NewSoilProfile(sand)
	require.NoError(t, err)

	// 4 m moist above the table, 2 m saturated below.
	require.InDelta(t, 18*4+20*2, sp.ColumnWeightSubmerged(0, 6, 2, 1.0), 1e-9)
	// Table below the base: entirely moist.
	require.InDelta(t, 18*6, sp.ColumnWeightSubmerged(0, 6, -1, 1.0), 1e-9)
	// Table above the surface: entirely saturated.
	require.InDelta(t, 20*6, sp.ColumnWeightSubmerged(0, 6, 8, 1.0), 1e-9)

	// γsat unspecified falls back to γ.
	homo, err := NewHomogeneousSoil(15, 20, 19)
	require.NoError(t, err)
	require.InDelta(t, homo.ColumnWeight(0, 6, 1.0), homo.ColumnWeightSubmerged(0, 6, 3, 1.0), 1e-9)

	// Two layers with the table inside the upper one: moist fill above,
	// saturated fill then saturated clay below.
	fill := SoilLayer{Name: "fill", Cohesion: 10, FrictionAngle: 30, UnitWeight: 19, SatUnitWeight: 21, TopElevation: 8}
	clay := SoilLayer{Name: "clay", Cohesion: 25, FrictionAngle: 15, UnitWeight: 17, SatUnitWeight: 19, TopElevation: 2}
	layered, err := NewSoilProfile(fill, clay)
	require.NoError(t, err)
	require.InDelta(t, 19*3+21*3+19*2, layered.ColumnWeightSubmerged(0, 8, 5, 1.0), 1e-9)
}
