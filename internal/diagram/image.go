package diagram

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportCrossSection exports the slope cross section with the slip
// circle and slice outlines to an image file (.png, .pdf, .svg by
// extension).
func ExportCrossSection(data CrossSectionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Slope Stability Analysis"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Elevation (m)"

	// Ground surface.
	terrainPts := data.Terrain.Points()
	ground := make(plotter.XYs, len(terrainPts))
	for i, pt := range terrainPts {
		ground[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	groundLine, err := plotter.NewLine(ground)
	if err != nil {
		return err
	}
	groundLine.LineStyle.Width = vg.Points(2)
	groundLine.LineStyle.Color = color.RGBA{R: 101, G: 67, B: 33, A: 255}
	p.Add(groundLine)
	p.Legend.Add("ground", groundLine)

	// Water table, dashed blue.
	if data.Water != nil {
		wtPts := data.Water.Points()
		wt := make(plotter.XYs, len(wtPts))
		for i, pt := range wtPts {
			wt[i] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		wtLine, err := plotter.NewLine(wt)
		if err != nil {
			return err
		}
		wtLine.LineStyle.Width = vg.Points(1.5)
		wtLine.LineStyle.Color = color.RGBA{R: 30, G: 100, B: 220, A: 255}
		wtLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(wtLine)
		p.Legend.Add("water table", wtLine)
	}

	// Slip arc sampled across the slice range.
	if len(data.Slices) > 0 {
		x0 := data.Slices[0].XLeft
		x1 := data.Slices[len(data.Slices)-1].XRight
		const samples = 120
		arc := make(plotter.XYs, 0, samples+1)
		for i := 0; i <= samples; i++ {
			x := x0 + (x1-x0)*float64(i)/samples
			if y, ok := data.Circle.YLower(x); ok {
				arc = append(arc, plotter.XY{X: x, Y: y})
			}
		}
		arcLine, err := plotter.NewLine(arc)
		if err != nil {
			return err
		}
		arcLine.LineStyle.Width = vg.Points(2)
		arcLine.LineStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
		p.Add(arcLine)
		p.Legend.Add("slip surface", arcLine)
	}

	// Slice outlines: vertical edges from base to surface.
	for _, s := range data.Slices {
		for _, x := range []float64{s.XLeft, s.XRight} {
			yb, ok := data.Circle.YLower(x)
			if !ok {
				yb = s.YBase
			}
			ys, err := data.Terrain.ElevationAt(x)
			if err != nil {
				ys = s.YSurface
			}
			if ys <= yb {
				continue
			}
			edge, err := plotter.NewLine(plotter.XYs{{X: x, Y: yb}, {X: x, Y: ys}})
			if err != nil {
				return err
			}
			edge.LineStyle.Width = vg.Points(0.5)
			edge.LineStyle.Color = color.RGBA{R: 120, G: 120, B: 120, A: 255}
			p.Add(edge)
		}
	}

	// Circle center.
	center, err := plotter.NewScatter(plotter.XYs{{X: data.Circle.X, Y: data.Circle.Y}})
	if err != nil {
		return err
	}
	center.GlyphStyle.Shape = draw.CrossGlyph{}
	center.GlyphStyle.Radius = vg.Points(5)
	center.GlyphStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	p.Add(center)

	if data.BishopFS > 0 || data.FelleniusFS > 0 {
		fs := data.BishopFS
		label := "Bishop"
		if fs == 0 {
			fs = data.FelleniusFS
			label = "Fellenius"
		}
		p.Title.Text = fmt.Sprintf("Slope Stability Analysis — Fs (%s) = %.3f", label, fs)
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		filename += ".png"
	}

	// Keep the drawing roughly to scale.
	width := 10 * vg.Inch
	aspect := (data.Terrain.YMax() - data.Terrain.YMin()) / (data.Terrain.XMax() - data.Terrain.XMin())
	height := vg.Length(math.Max(3, math.Min(8, 10*aspect*2))) * vg.Inch
	return p.Save(width, height, filename)
}
