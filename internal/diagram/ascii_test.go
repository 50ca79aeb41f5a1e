package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslope/internal/slope"
)

func testData(t *testing.T) CrossSectionData {
	t.Helper()
	terrain, err := slope.NewTerrainProfile([]slope.Point{{X: 0, Y: 12}, {X: 25, Y: 8}, {X: 40, Y: 0}})
	require.NoError(t, err)
	soils, err := slope.NewHomogeneousSoil(15, 20, 19)
	require.NoError(t, err)
	circle := slope.Circle{X: 22, Y: 2.67, R: 13}
	slices, err := slope.BuildSlices(circle, terrain, soils, nil, 10)
	require.NoError(t, err)
	return CrossSectionData{
		Terrain:     terrain,
		Circle:      circle,
		Slices:      slices,
		FelleniusFS: 1.234,
	}
}

func TestDrawASCIICrossSection(t *testing.T) {
	out := DrawASCIICrossSection(testData(t))

	require.Contains(t, out, "SLOPE CROSS SECTION")
	require.Contains(t, out, "Legend:")
	require.Contains(t, out, "─")
	require.Contains(t, out, "░")
	require.Contains(t, out, "Fs (Fellenius) = 1.234")
	require.NotContains(t, out, "~~~", "dry section must not show a water legend")

	// Every grid row carries the frame.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  │") {
			require.True(t, strings.HasSuffix(line, "│"))
		}
	}
}

func TestDrawConvergenceChart(t *testing.T) {
	require.Empty(t, DrawConvergenceChart(nil))
	require.Empty(t, DrawConvergenceChart([]float64{1.0}))

	out := DrawConvergenceChart([]float64{1.0, 1.4, 1.52, 1.55, 1.551})
	require.Contains(t, out, "Bishop Fs per iteration (4 iterations)")
}

func TestDrawSliceTable(t *testing.T) {
	data := testData(t)
	out := DrawSliceTable(data.Slices)

	require.Contains(t, out, "Slice")
	require.Contains(t, out, "W(kN)")
	require.Equal(t, len(data.Slices)+2, strings.Count(out, "\n")-1)
}
