package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goslope/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goslope",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goslope v%s\n", version.Version)
		fmt.Println("Slope Stability Analysis Tool")
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
