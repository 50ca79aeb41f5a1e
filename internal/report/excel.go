package report

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/goslope/internal/stability"
)

// WriteXLSX writes a two-sheet workbook: a summary sheet and a per-slice
// table usable for independent hand checks.
func WriteXLSX(d Data, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	set := func(sheet, cell string, value interface{}) {
		_ = f.SetCellValue(sheet, cell, value)
	}

	set(summary, "A1", d.title())
	set(summary, "A3", "Project")
	set(summary, "B3", d.Project)
	set(summary, "A4", "Author")
	set(summary, "B4", d.Author)

	set(summary, "A6", "Circle center x (m)")
	set(summary, "B6", d.Circle.X)
	set(summary, "A7", "Circle center y (m)")
	set(summary, "B7", d.Circle.Y)
	set(summary, "A8", "Radius (m)")
	set(summary, "B8", d.Circle.R)
	set(summary, "A9", "Slices")
	set(summary, "B9", len(d.Slices))

	row := 11
	if d.Fellenius != nil {
		set(summary, fmt.Sprintf("A%d", row), "Fs (Fellenius)")
		set(summary, fmt.Sprintf("B%d", row), d.Fellenius.FactorOfSafety)
		row++
	}
	if d.Bishop != nil {
		set(summary, fmt.Sprintf("A%d", row), "Fs (Bishop)")
		set(summary, fmt.Sprintf("B%d", row), d.Bishop.FactorOfSafety)
		row++
		set(summary, fmt.Sprintf("A%d", row), "Bishop iterations")
		set(summary, fmt.Sprintf("B%d", row), d.Bishop.Iterations)
		row++
	}
	if d.Fellenius != nil && d.Bishop != nil {
		cmp := stability.Compare(d.Fellenius, d.Bishop)
		set(summary, fmt.Sprintf("A%d", row), "Method spread (%)")
		set(summary, fmt.Sprintf("B%d", row), cmp.SpreadPercent)
		row++
	}
	for i, w := range collectWarnings(d) {
		set(summary, fmt.Sprintf("A%d", row+1+i), "Warning")
		set(summary, fmt.Sprintf("B%d", row+1+i), w)
	}

	const sheet = "Slices"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Slice", "x (m)", "Width (m)", "Height (m)", "Alpha (deg)",
		"Weight (kN)", "u (kPa)", "Arc length (m)", "c' (kPa)", "phi' (deg)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		set(sheet, cell, h)
	}
	for r, s := range d.Slices {
		values := []interface{}{
			s.Index + 1, s.XCenter, s.Width, s.Height, s.Alpha * 180 / math.Pi,
			s.Weight, s.PorePressure, s.ArcLength, s.Cohesion, s.FrictionAngle,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			set(sheet, cell, v)
		}
	}

	return f.SaveAs(filename)
}
