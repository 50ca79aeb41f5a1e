// Package report exports analysis results as PDF and spreadsheet files.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goslope/internal/slope"
	"github.com/alexiusacademia/goslope/internal/stability"
)

// Data is the material of one report: project metadata plus the analysis
// outcome. Fellenius and Bishop may each be nil when not computed.
type Data struct {
	Project string
	Author  string
	Title   string
	Notes   string

	Circle slope.Circle
	Slices []slope.Slice

	Fellenius *stability.FelleniusResult
	Bishop    *stability.BishopResult
}

func (d Data) title() string {
	if d.Title != "" {
		return d.Title
	}
	return "Slope Stability Analysis"
}

// WritePDF renders the report to an A4 portrait PDF file.
func WritePDF(d Data, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, d.title())
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if d.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", d.Project))
		pdf.Ln(6)
	}
	if d.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", d.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Slip Circle")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Center: (%.2f, %.2f) m    Radius: %.2f m    Slices: %d",
		d.Circle.X, d.Circle.Y, d.Circle.R, len(d.Slices)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Factor of Safety")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if d.Fellenius != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Fellenius (ordinary method): Fs = %.3f", d.Fellenius.FactorOfSafety))
		pdf.Ln(6)
	}
	if d.Bishop != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Bishop (modified): Fs = %.3f  (%d iterations, residual %.5f)",
			d.Bishop.FactorOfSafety, d.Bishop.Iterations, d.Bishop.Residual))
		pdf.Ln(6)
	}
	if d.Fellenius != nil && d.Bishop != nil {
		cmp := stability.Compare(d.Fellenius, d.Bishop)
		pdf.Cell(0, 6, fmt.Sprintf("Method spread: %+.1f%%  (more conservative: %s)",
			cmp.SpreadPercent, cmp.MoreConservative))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(d.Slices) > 0 {
		writeSliceTable(pdf, d.Slices)
	}

	for _, w := range collectWarnings(d) {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, "Warning: "+w, "", "L", false)
	}

	if d.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, d.Notes, "", "L", false)
	}

	return pdf.OutputFileAndClose(filename)
}

func writeSliceTable(pdf *gofpdf.Fpdf, slices []slope.Slice) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Slices")
	pdf.Ln(8)

	headers := []string{"#", "x (m)", "Width (m)", "Height (m)", "Alpha (deg)", "W (kN)", "u (kPa)"}
	widths := []float64{10, 25, 25, 25, 25, 30, 25}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range slices {
		cells := []string{
			fmt.Sprintf("%d", s.Index+1),
			fmt.Sprintf("%.2f", s.XCenter),
			fmt.Sprintf("%.2f", s.Width),
			fmt.Sprintf("%.2f", s.Height),
			fmt.Sprintf("%.1f", s.Alpha*180/math.Pi),
			fmt.Sprintf("%.1f", s.Weight),
			fmt.Sprintf("%.1f", s.PorePressure),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func collectWarnings(d Data) []string {
	var out []string
	if d.Fellenius != nil {
		out = append(out, d.Fellenius.Warnings...)
	}
	if d.Bishop != nil {
		out = append(out, d.Bishop.Warnings...)
	}
	return out
}
