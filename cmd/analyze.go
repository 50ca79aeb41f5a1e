package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslope/internal/diagram"
	"github.com/alexiusacademia/goslope/internal/report"
	"github.com/alexiusacademia/goslope/internal/slope"
	"github.com/alexiusacademia/goslope/internal/stability"
)

var (
	analyzeInputs modelInputs

	// Slip circle
	analyzeCX     float64
	analyzeCY     float64
	analyzeRadius float64

	// Discretization and method
	analyzeSlices int
	analyzeMethod string

	// Output options
	analyzeDiagram     bool
	analyzeSliceTable  bool
	analyzeConvergence bool
	analyzePlotFile    string
	analyzePDFFile     string
	analyzeXLSXFile    string
	analyzeProject     string
	analyzeAuthor      string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the factor of safety for a given slip circle",
	Long: `Compute the factor of safety of a circular slip surface by the
method of slices.

The sliding mass between the ground surface and the lower branch of
the slip circle is cut into vertical slices; the factor of safety is
the ratio of resisting to driving moments about the circle center.

Methods:
  fellenius  ordinary method, closed form
  bishop     modified Bishop, iterative
  both       run both and compare (default)

Examples:
  # Homogeneous 8 m slope at 35°, trial circle behind the crest
  goslope analyze --height 8 --angle 35 -c 20 --phi 25 --gamma 19 \
      --cx 8 --cy 16 --radius 14

  # From a scenario file, Bishop only, with the terminal diagram
  goslope analyze --case slope.yaml --method bishop --diagram

  # Built-in case with PDF and spreadsheet reports
  goslope analyze --builtin homogeneous-dry --cx 6 --cy 14 --radius 12 \
      --export-pdf report.pdf --export-xlsx slices.xlsx`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeInputs.register(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeCX, "cx", 0, "Circle center x (m)")
	analyzeCmd.Flags().Float64Var(&analyzeCY, "cy", 0, "Circle center y (m)")
	analyzeCmd.Flags().Float64VarP(&analyzeRadius, "radius", "r", 0, "Circle radius (m)")

	analyzeCmd.Flags().IntVarP(&analyzeSlices, "slices", "n", slope.DefaultSliceCount, "Number of slices")
	analyzeCmd.Flags().StringVarP(&analyzeMethod, "method", "m", "both", "Solver method (fellenius, bishop, both)")

	analyzeCmd.Flags().BoolVar(&analyzeDiagram, "diagram", false, "Draw the cross section in the terminal")
	analyzeCmd.Flags().BoolVar(&analyzeSliceTable, "slice-table", false, "Print the per-slice table")
	analyzeCmd.Flags().BoolVar(&analyzeConvergence, "convergence", false, "Chart the Bishop iterates")
	analyzeCmd.Flags().StringVar(&analyzePlotFile, "export-plot", "", "Write a cross-section plot (png/pdf/svg by extension)")
	analyzeCmd.Flags().StringVar(&analyzePDFFile, "export-pdf", "", "Write a PDF report")
	analyzeCmd.Flags().StringVar(&analyzeXLSXFile, "export-xlsx", "", "Write an XLSX workbook")
	analyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name for reports")
	analyzeCmd.Flags().StringVar(&analyzeAuthor, "author", "", "Author name for reports")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	terrain, soils, water, sc, err := analyzeInputs.build(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	circle := slope.Circle{X: analyzeCX, Y: analyzeCY, R: analyzeRadius}
	if sc != nil && !cmd.Flags().Changed("radius") {
		c, err := sc.BuildCircle()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if c == nil {
			fmt.Println("Error: no slip circle: pass --cx/--cy/--radius or add one to the scenario")
			return
		}
		circle = *c
	}

	method, err := stability.ParseMethod(analyzeMethod)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	slices := analyzeSlices
	if sc != nil && sc.Slices > 0 && !cmd.Flags().Changed("slices") {
		slices = sc.Slices
	}

	result, err := stability.Analyze(stability.Request{
		Circle:  circle,
		Terrain: terrain,
		Soils:   soils,
		Water:   water,
		Slices:  slices,
		Method:  method,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printAnalysis(terrain, water, result)

	if analyzeSliceTable {
		fmt.Print(diagram.DrawSliceTable(result.Slices))
	}
	if analyzeDiagram {
		fmt.Print(diagram.DrawASCIICrossSection(crossSection(terrain, water, result)))
	}
	if analyzeConvergence && result.Bishop != nil {
		fmt.Print(diagram.DrawConvergenceChart(result.Bishop.History))
	}
	if analyzePlotFile != "" {
		if err := diagram.ExportCrossSection(crossSection(terrain, water, result), analyzePlotFile); err != nil {
			fmt.Printf("Error writing plot: %v\n", err)
			return
		}
		fmt.Printf("  Plot written to %s\n\n", analyzePlotFile)
	}
	if analyzePDFFile != "" || analyzeXLSXFile != "" {
		data := report.Data{
			Project:   analyzeProject,
			Author:    analyzeAuthor,
			Circle:    result.Circle,
			Slices:    result.Slices,
			Fellenius: result.Fellenius,
			Bishop:    result.Bishop,
		}
		if analyzePDFFile != "" {
			if err := report.WritePDF(data, analyzePDFFile); err != nil {
				fmt.Printf("Error writing PDF: %v\n", err)
				return
			}
			fmt.Printf("  Report written to %s\n\n", analyzePDFFile)
		}
		if analyzeXLSXFile != "" {
			if err := report.WriteXLSX(data, analyzeXLSXFile); err != nil {
				fmt.Printf("Error writing XLSX: %v\n", err)
				return
			}
			fmt.Printf("  Workbook written to %s\n\n", analyzeXLSXFile)
		}
	}
}

func crossSection(terrain *slope.TerrainProfile, water *slope.WaterTable, r *stability.Result) diagram.CrossSectionData {
	data := diagram.CrossSectionData{
		Terrain: terrain,
		Water:   water,
		Circle:  r.Circle,
		Slices:  r.Slices,
	}
	if r.Fellenius != nil {
		data.FelleniusFS = r.Fellenius.FactorOfSafety
	}
	if r.Bishop != nil {
		data.BishopFS = r.Bishop.FactorOfSafety
	}
	return data
}

func printAnalysis(terrain *slope.TerrainProfile, water *slope.WaterTable, result *stability.Result) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SLOPE STABILITY ANALYSIS - METHOD OF SLICES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Terrain extent:\t[%.2f, %.2f] m\n", terrain.XMin(), terrain.XMax())
	fmt.Fprintf(w, "  Slope relief:\t%.2f m\n", terrain.Height())
	fmt.Fprintf(w, "  Circle center:\t(%.2f, %.2f) m\n", result.Circle.X, result.Circle.Y)
	fmt.Fprintf(w, "  Circle radius:\t%.2f m\n", result.Circle.R)
	fmt.Fprintf(w, "  Slices:\t%d\n", len(result.Slices))
	if water != nil {
		fmt.Fprintf(w, "  Water table:\tpresent\n")
	} else {
		fmt.Fprintf(w, "  Water table:\tnone (dry analysis)\n")
	}
	w.Flush()
	fmt.Println()

	if result.Fellenius != nil {
		f := result.Fellenius
		fmt.Println("FELLENIUS (ORDINARY) METHOD:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Resisting moment:\t%.1f kN·m\n", f.ResistingMoment)
		fmt.Fprintf(w, "  Driving moment:\t%.1f kN·m\n", f.DrivingMoment)
		fmt.Fprintf(w, "  Factor of safety:\t%.3f\n", f.FactorOfSafety)
		w.Flush()
		fmt.Println()
	}

	if result.Bishop != nil {
		b := result.Bishop
		fmt.Println("MODIFIED BISHOP METHOD:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Iterations:\t%d\n", b.Iterations)
		fmt.Fprintf(w, "  Residual:\t%.6f\n", b.Residual)
		fmt.Fprintf(w, "  Resisting moment:\t%.1f kN·m\n", b.ResistingMoment)
		fmt.Fprintf(w, "  Driving moment:\t%.1f kN·m\n", b.DrivingMoment)
		fmt.Fprintf(w, "  Factor of safety:\t%.3f\n", b.FactorOfSafety)
		w.Flush()
		fmt.Println()
	}

	if result.Fellenius != nil && result.Bishop != nil {
		cmp := stability.Compare(result.Fellenius, result.Bishop)
		fmt.Println("METHOD COMPARISON:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Spread:\t%+.1f%%", cmp.SpreadPercent)
		if cmp.WithinTypicalBand {
			fmt.Fprintf(w, " ✓\n")
		} else {
			fmt.Fprintf(w, " ⚠ (outside the typical 0–20%% band)\n")
		}
		fmt.Fprintf(w, "  More conservative:\t%s\n", cmp.MoreConservative)
		w.Flush()
		fmt.Println()
	}

	fs, label := governingFS(result)
	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTOR OF SAFETY Fs = %.3f (%s)     \n", fs, label)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", stabilityVerdict(fs))
	for _, warning := range collectResultWarnings(result) {
		fmt.Printf("  ⚠ %s\n", warning)
	}
	fmt.Println()
}

// governingFS picks the value to headline: Bishop when computed, else
// Fellenius.
func governingFS(r *stability.Result) (float64, string) {
	if r.Bishop != nil {
		return r.Bishop.FactorOfSafety, "Bishop"
	}
	return r.Fellenius.FactorOfSafety, "Fellenius"
}

func stabilityVerdict(fs float64) string {
	switch {
	case math.IsNaN(fs):
		return "No verdict"
	case fs < 1.0:
		return "UNSTABLE: driving forces exceed resisting forces"
	case fs < 1.5:
		return "MARGINAL: below the customary 1.5 threshold for permanent slopes"
	default:
		return "STABLE: meets the customary 1.5 threshold"
	}
}

func collectResultWarnings(r *stability.Result) []string {
	var out []string
	if r.Fellenius != nil {
		out = append(out, r.Fellenius.Warnings...)
	}
	if r.Bishop != nil {
		out = append(out, r.Bishop.Warnings...)
	}
	return out
}
