package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goslope/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goslope",
	Short: "Slope Stability Analysis Tool",
	Long: `goslope - Go Slope Stability Analyzer

A CLI tool for slope stability analysis by the limit-equilibrium
method of slices on circular slip surfaces.

This tool helps geotechnical engineers perform:
  - Factor of safety by the ordinary (Fellenius) method
  - Factor of safety by the modified Bishop method
  - Critical slip circle search (grid, random, genetic, hybrid)
  - Search bound derivation from the slope geometry
  - Cross-section diagrams and PDF/XLSX reports`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goslope v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Slope Stability Analyzer                             ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for slope stability analysis by the limit-")
		fmt.Println("  equilibrium method of slices on circular slip surfaces.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Fellenius (ordinary) method of slices")
		fmt.Println("    • Modified Bishop method with iterative solution")
		fmt.Println("    • Critical circle search: grid, random, genetic, hybrid")
		fmt.Println("    • Pore pressure from a piezometric water table")
		fmt.Println("    • Terminal diagrams, PNG plots, PDF and XLSX reports")
		fmt.Println()
		fmt.Println("  Use 'goslope --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
