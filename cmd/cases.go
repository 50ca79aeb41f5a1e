package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goslope/internal/scenario"
)

var casesExport string

var casesCmd = &cobra.Command{
	Use:   "cases [name]",
	Short: "List or export the built-in analysis cases",
	Long: `List the built-in analysis cases, or export one as a scenario
YAML file to edit and feed back with --case.

Examples:
  # List the available cases
  goslope cases

  # Export one as a starting point
  goslope cases two-layer --export my-slope.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runCases,
}

func init() {
	rootCmd.AddCommand(casesCmd)
	casesCmd.Flags().StringVar(&casesExport, "export", "", "Write the named case to a YAML file")
}

func runCases(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Println()
		fmt.Println("BUILT-IN CASES:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, name := range scenario.BuiltinNames() {
			sc, _ := scenario.Builtin(name)
			fmt.Fprintf(w, "  %s\t%s\n", name, sc.Description)
		}
		w.Flush()
		fmt.Println()
		fmt.Println("  Use 'goslope cases <name> --export file.yaml' to export one.")
		fmt.Println()
		return
	}

	sc, err := scenario.Builtin(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if casesExport == "" {
		fmt.Printf("\n  %s: %s\n\n", sc.Name, sc.Description)
		fmt.Println("  Pass --export <file.yaml> to write it out.")
		fmt.Println()
		return
	}
	if err := sc.Save(casesExport); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("  Case %q written to %s\n", sc.Name, casesExport)
}
