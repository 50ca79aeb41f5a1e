package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslope/internal/constraint"
	"github.com/alexiusacademia/goslope/internal/slope"
)

var (
	boundsInputs modelInputs

	boundsValidate    bool
	boundsAutoCorrect bool
	boundsCX          float64
	boundsCY          float64
	boundsRadius      float64
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Derive search bounds for slip circles from the slope geometry",
	Long: `Derive the admissible center and radius ranges for slip-circle
search. The ranges scale with the slope height; the scaling factors
follow the slope steepness class (gentle, moderate, steep, very
steep).

With --validate, a candidate circle is checked against the derived
bounds; --auto-correct additionally clamps each violated dimension to
its nearest bound.

Examples:
  # Bounds for a 10 m slope at 30°
  goslope bounds --height 10 --angle 30

  # Validate a circle, clamping it into the bounds
  goslope bounds --height 10 --angle 30 --validate \
      --cx 40 --cy 5 --radius 50 --auto-correct`,
	Run: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsInputs.register(boundsCmd)

	boundsCmd.Flags().BoolVar(&boundsValidate, "validate", false, "Validate a circle against the bounds")
	boundsCmd.Flags().BoolVar(&boundsAutoCorrect, "auto-correct", false, "Clamp a violating circle into the bounds")
	boundsCmd.Flags().Float64Var(&boundsCX, "cx", 0, "Circle center x (m)")
	boundsCmd.Flags().Float64Var(&boundsCY, "cy", 0, "Circle center y (m)")
	boundsCmd.Flags().Float64VarP(&boundsRadius, "radius", "r", 0, "Circle radius (m)")
}

func runBounds(cmd *cobra.Command, args []string) {
	terrain, _, _, _, err := boundsInputs.build(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b, err := constraint.Derive(terrain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	preset := constraint.PresetFor(b.SlopeAngle)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SLIP CIRCLE SEARCH BOUNDS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SLOPE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Height:\t%.2f m\n", b.SlopeHeight)
	fmt.Fprintf(w, "  Width:\t%.2f m\n", b.SlopeWidth)
	fmt.Fprintf(w, "  Mean inclination:\t%.1f°\n", b.SlopeAngle)
	fmt.Fprintf(w, "  Steepness class:\t%s\n", preset.Name)
	w.Flush()
	fmt.Println()

	fmt.Println("BOUNDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center x:\t[%.2f, %.2f] m\n", b.CenterXMin, b.CenterXMax)
	fmt.Fprintf(w, "  Center y:\t[%.2f, %.2f] m\n", b.CenterYMin, b.CenterYMax)
	fmt.Fprintf(w, "  Radius:\t[%.2f, %.2f] m\n", b.RadiusMin, b.RadiusMax)
	w.Flush()
	fmt.Println()

	if !boundsValidate {
		return
	}

	circle := slope.Circle{X: boundsCX, Y: boundsCY, R: boundsRadius}
	ok, violations, corrected := constraint.ValidateAndCorrect(circle, b, boundsAutoCorrect)

	fmt.Println("VALIDATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Circle: center (%.2f, %.2f) m, radius %.2f m\n", circle.X, circle.Y, circle.R)
	if ok {
		fmt.Println("  ✓ Circle satisfies every bound.")
		fmt.Println()
		return
	}
	for _, v := range violations {
		fmt.Printf("  ⚠ %s\n", v)
	}
	if corrected != nil {
		fmt.Printf("  Corrected: center (%.2f, %.2f) m, radius %.2f m\n",
			corrected.X, corrected.Y, corrected.R)
	}
	fmt.Println()
}
