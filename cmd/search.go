package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslope/internal/constraint"
	"github.com/alexiusacademia/goslope/internal/diagram"
	"github.com/alexiusacademia/goslope/internal/scenario"
	"github.com/alexiusacademia/goslope/internal/search"
	"github.com/alexiusacademia/goslope/internal/slope"
	"github.com/alexiusacademia/goslope/internal/stability"
)

var (
	searchInputs modelInputs

	searchStrategy string
	searchMethod   string
	searchSlices   int
	searchWorkers  int
	searchTimeout  time.Duration
	searchSeed     int64

	searchSamples     int
	searchDivisions   int
	searchPopulation  int
	searchGenerations int

	searchProgress bool
	searchDiagram  bool
	searchPlotFile string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the critical slip circle",
	Long: `Search the admissible circle space for the critical slip surface:
the circle with the minimum factor of safety.

Center and radius bounds are derived from the slope geometry (see
'goslope bounds'). Candidates whose geometry is infeasible are
rejected and the search continues; a search that rejects every
candidate reports no critical circle rather than an error.

Strategies:
  grid     coarse grid plus one refinement pass (default)
  random   uniform sampling of the bound box
  genetic  evolutionary search, best for large spaces
  hybrid   coarse grid seeding a genetic run

Examples:
  # Grid search on a homogeneous 8 m slope at 35°
  goslope search --height 8 --angle 35 -c 20 --phi 25 --gamma 19

  # Genetic search with a fixed seed for a reproducible run
  goslope search --case slope.yaml --strategy genetic --seed 42

  # Bound the runtime; the best circle so far is reported on timeout
  goslope search --builtin two-layer --strategy random --samples 2000 --timeout 30s`,
	Run: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchInputs.register(searchCmd)

	searchCmd.Flags().StringVarP(&searchStrategy, "strategy", "s", "grid", "Search strategy (grid, random, genetic, hybrid)")
	searchCmd.Flags().StringVarP(&searchMethod, "method", "m", "bishop", "Evaluator method (fellenius, bishop)")
	searchCmd.Flags().IntVarP(&searchSlices, "slices", "n", slope.DefaultSliceCount, "Slices per candidate evaluation")
	searchCmd.Flags().IntVarP(&searchWorkers, "workers", "w", 0, "Parallel evaluations (0 = all CPUs)")
	searchCmd.Flags().DurationVar(&searchTimeout, "timeout", 0, "Abort the search after this duration (0 = no limit)")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 0, "RNG seed for reproducible random/genetic runs")

	searchCmd.Flags().IntVar(&searchSamples, "samples", 0, "Random strategy: number of samples")
	searchCmd.Flags().IntVar(&searchDivisions, "divisions", 0, "Grid strategy: divisions per axis")
	searchCmd.Flags().IntVar(&searchPopulation, "population", 0, "Genetic strategy: population size")
	searchCmd.Flags().IntVar(&searchGenerations, "generations", 0, "Genetic strategy: generation count")

	searchCmd.Flags().BoolVar(&searchProgress, "progress", false, "Print each improvement as it is found")
	searchCmd.Flags().BoolVar(&searchDiagram, "diagram", false, "Draw the critical circle cross section")
	searchCmd.Flags().StringVar(&searchPlotFile, "export-plot", "", "Write the critical circle cross section (png/pdf/svg by extension)")
}

func runSearch(cmd *cobra.Command, args []string) {
	terrain, soils, water, sc, err := searchInputs.build(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	strategy, err := search.ParseStrategy(searchStrategy)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	method, err := stability.ParseMethod(searchMethod)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if method == stability.MethodBoth {
		method = stability.MethodBishop
	}

	bounds, err := constraint.Derive(terrain)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cfg := search.Config{
		Strategy:      strategy,
		Method:        method,
		Slices:        searchSlices,
		Samples:       searchSamples,
		GridDivisions: searchDivisions,
		Population:    searchPopulation,
		Generations:   searchGenerations,
		Workers:       searchWorkers,
		Seed:          searchSeed,
	}
	if sc != nil && sc.Search != nil {
		if err := applyScenarioSearch(&cfg, sc.Search, cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}
	if searchProgress {
		cfg.Progress = func(bestFS float64, evaluated int) {
			fmt.Printf("  ... Fs = %.3f after %d evaluations\n", bestFS, evaluated)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, searchTimeout)
		defer cancel()
	}

	started := time.Now()
	result, err := search.Run(ctx, terrain, soils, water, bounds, cfg)
	elapsed := time.Since(started)

	interrupted := err != nil
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printSearch(result, bounds, elapsed, interrupted)

	if result.Found && (searchDiagram || searchPlotFile != "") {
		res, err := stability.Analyze(stability.Request{
			Circle:  result.Circle,
			Terrain: terrain,
			Soils:   soils,
			Water:   water,
			Slices:  searchSlices,
			Method:  stability.MethodBoth,
		})
		if err != nil {
			fmt.Printf("Error rendering the critical circle: %v\n", err)
			return
		}
		if searchDiagram {
			fmt.Print(diagram.DrawASCIICrossSection(crossSection(terrain, water, res)))
		}
		if searchPlotFile != "" {
			if err := diagram.ExportCrossSection(crossSection(terrain, water, res), searchPlotFile); err != nil {
				fmt.Printf("Error writing plot: %v\n", err)
				return
			}
			fmt.Printf("  Plot written to %s\n\n", searchPlotFile)
		}
	}
}

// applyScenarioSearch folds scenario search settings under any explicit
// flags: a changed flag always wins over the file.
func applyScenarioSearch(cfg *search.Config, spec *scenario.SearchSpec, cmd *cobra.Command) error {
	if spec.Strategy != "" && !cmd.Flags().Changed("strategy") {
		strategy, err := search.ParseStrategy(spec.Strategy)
		if err != nil {
			return err
		}
		cfg.Strategy = strategy
	}
	if spec.Samples > 0 && !cmd.Flags().Changed("samples") {
		cfg.Samples = spec.Samples
	}
	if spec.Divisions > 0 && !cmd.Flags().Changed("divisions") {
		cfg.GridDivisions = spec.Divisions
	}
	if spec.Population > 0 && !cmd.Flags().Changed("population") {
		cfg.Population = spec.Population
	}
	if spec.Generations > 0 && !cmd.Flags().Changed("generations") {
		cfg.Generations = spec.Generations
	}
	if spec.Seed != 0 && !cmd.Flags().Changed("seed") {
		cfg.Seed = spec.Seed
	}
	return nil
}

func printSearch(r *search.Result, b constraint.Bounds, elapsed time.Duration, interrupted bool) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     CRITICAL SLIP CIRCLE SEARCH")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SEARCH SPACE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center x:\t[%.2f, %.2f] m\n", b.CenterXMin, b.CenterXMax)
	fmt.Fprintf(w, "  Center y:\t[%.2f, %.2f] m\n", b.CenterYMin, b.CenterYMax)
	fmt.Fprintf(w, "  Radius:\t[%.2f, %.2f] m\n", b.RadiusMin, b.RadiusMax)
	w.Flush()
	fmt.Println()

	fmt.Println("SEARCH RUN:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Strategy:\t%s\n", r.Strategy)
	fmt.Fprintf(w, "  Candidates evaluated:\t%d\n", r.Evaluated)
	fmt.Fprintf(w, "  Candidates rejected:\t%d\n", r.Rejected)
	fmt.Fprintf(w, "  Elapsed:\t%s\n", elapsed.Round(time.Millisecond))
	if interrupted {
		fmt.Fprintf(w, "  Note:\tsearch interrupted, best so far reported\n")
	}
	w.Flush()
	fmt.Println()

	if !r.Found {
		fmt.Println("  No valid slip circle found inside the search space.")
		fmt.Println("  Widen the bounds or revisit the geometry.")
		fmt.Println()
		return
	}

	fmt.Println("CRITICAL CIRCLE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Center:\t(%.2f, %.2f) m\n", r.Circle.X, r.Circle.Y)
	fmt.Fprintf(w, "  Radius:\t%.2f m\n", r.Circle.R)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  MINIMUM Fs = %.3f                    \n", r.FS)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", stabilityVerdict(r.FS))
	fmt.Println()
}
