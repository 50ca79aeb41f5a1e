package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goslope/internal/slope"
)

// CrossSectionData holds everything needed to draw a slope cross section
// with its slip surface.
type CrossSectionData struct {
	Terrain *slope.TerrainProfile
	Water   *slope.WaterTable // optional
	Circle  slope.Circle
	Slices  []slope.Slice

	FelleniusFS float64 // 0 when not computed
	BishopFS    float64 // 0 when not computed
}

// DrawASCIICrossSection renders the terrain, the slip arc and the
// sliding mass as a character grid for terminal output.
func DrawASCIICrossSection(data CrossSectionData) string {
	const (
		widthChars  = 64
		heightChars = 20
	)

	xMin, xMax := data.Terrain.XMin(), data.Terrain.XMax()
	yMax := data.Terrain.YMax()
	yMin := data.Terrain.YMin()
	for _, s := range data.Slices {
		if s.YBase < yMin {
			yMin = s.YBase
		}
	}
	span := yMax - yMin
	if span <= 0 {
		span = 1
	}
	// Margin keeps the crest line off the frame.
	yMax += span * 0.05
	yMin -= span * 0.05
	span = yMax - yMin

	grid := make([][]rune, heightChars)
	for r := range grid {
		grid[r] = make([]rune, widthChars)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	row := func(y float64) int {
		r := int((yMax - y) / span * float64(heightChars-1))
		if r < 0 {
			r = 0
		}
		if r >= heightChars {
			r = heightChars - 1
		}
		return r
	}

	sliceAt := func(x float64) (slope.Slice, bool) {
		for _, s := range data.Slices {
			if x >= s.XLeft && x <= s.XRight {
				return s, true
			}
		}
		return slope.Slice{}, false
	}

	for c := 0; c < widthChars; c++ {
		x := xMin + (xMax-xMin)*float64(c)/float64(widthChars-1)
		ySurf, err := data.Terrain.ElevationAt(x)
		if err != nil {
			continue
		}

		// Sliding mass fill between slip surface and ground.
		if s, ok := sliceAt(x); ok {
			top, bottom := row(ySurf), row(s.YBase)
			for r := top + 1; r < bottom; r++ {
				grid[r][c] = '░'
			}
			grid[bottom][c] = '·'
		}
		grid[row(ySurf)][c] = '─'

		if data.Water != nil {
			if yw, ok := data.Water.ElevationAt(x); ok && yw <= ySurf {
				if r := row(yw); grid[r][c] == ' ' {
					grid[r][c] = '~'
				}
			}
		}
	}

	// Circle center marker, when it falls inside the frame.
	if data.Circle.X >= xMin && data.Circle.X <= xMax &&
		data.Circle.Y <= yMax && data.Circle.Y >= yMin {
		c := int((data.Circle.X - xMin) / (xMax - xMin) * float64(widthChars-1))
		grid[row(data.Circle.Y)][c] = '+'
	}

	var sb strings.Builder
	sb.WriteString("\n  SLOPE CROSS SECTION\n")
	sb.WriteString("  ───────────────────\n")
	for _, r := range grid {
		sb.WriteString("  │")
		sb.WriteString(string(r))
		sb.WriteString("│\n")
	}
	sb.WriteString("  └" + strings.Repeat("─", widthChars) + "┘\n")
	sb.WriteString(fmt.Sprintf("   x: [%.1f, %.1f] m   y: [%.1f, %.1f] m\n", xMin, xMax, yMin, yMax))

	sb.WriteString("\n  Legend:\n")
	sb.WriteString("  ─── = ground surface\n")
	sb.WriteString("  ░░░ = sliding mass\n")
	sb.WriteString("  ··· = slip surface\n")
	if data.Water != nil {
		sb.WriteString("  ~~~ = water table\n")
	}
	sb.WriteString(fmt.Sprintf("   +  = circle center (%.1f, %.1f), r = %.1f m\n",
		data.Circle.X, data.Circle.Y, data.Circle.R))
	if data.FelleniusFS > 0 {
		sb.WriteString(fmt.Sprintf("  Fs (Fellenius) = %.3f\n", data.FelleniusFS))
	}
	if data.BishopFS > 0 {
		sb.WriteString(fmt.Sprintf("  Fs (Bishop)    = %.3f\n", data.BishopFS))
	}
	return sb.String()
}

// DrawConvergenceChart renders the Bishop factor-of-safety iterates as a
// terminal chart.
func DrawConvergenceChart(history []float64) string {
	if len(history) < 2 {
		return ""
	}
	chart := asciigraph.Plot(history,
		asciigraph.Height(8),
		asciigraph.Width(48),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("Bishop Fs per iteration (%d iterations)", len(history)-1)),
	)
	return "\n" + chart + "\n"
}

// DrawSliceTable renders a compact per-slice diagnostic table.
func DrawSliceTable(slices []slope.Slice) string {
	var sb strings.Builder
	sb.WriteString("\n  Slice |   X    | Width | Height |  α(°)  |  W(kN)  | u(kPa)\n")
	sb.WriteString("  ------|--------|-------|--------|--------|---------|-------\n")
	for _, s := range slices {
		sb.WriteString(fmt.Sprintf("  %5d | %6.2f | %5.2f | %6.2f | %6.1f | %7.1f | %6.1f\n",
			s.Index+1, s.XCenter, s.Width, s.Height, s.Alpha*180/math.Pi, s.Weight, s.PorePressure))
	}
	return sb.String()
}
