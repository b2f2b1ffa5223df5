// Package cli implements the formgraph command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Command group IDs for the root command's help output.
const (
	GroupAnalysis = "analysis"
	GroupLookup   = "lookup"
	GroupUtility  = "utility"
)

var rootCmd = &cobra.Command{
	Use:   "formgraph",
	Short: "Analyze the dependency graph of a survey definition",
	Long: `formgraph converts an XLSForm-style survey definition into a directed
dependency graph and answers structural questions about it: which elements
reference which, cycles, forward references, isolates, and transitive
dependency closures.

Supported inputs: .xlsx/.xlsm workbooks (survey sheet), .csv sheet exports,
and a YAML row-list dialect.`,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupAnalysis, Title: "Analysis Commands:"},
		&cobra.Group{ID: GroupLookup, Title: "Lookup Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	rootCmd.PersistentFlags().String("config", "", "Path to project config file (default .formgraph/config.yml)")
	rootCmd.PersistentFlags().String("sheet", "", "Worksheet holding the survey definition (default from config)")
	rootCmd.PersistentFlags().StringSlice("expression-columns", nil, "Columns scanned for ${...} references (default from config)")
	rootCmd.PersistentFlags().Bool("scan-all-columns", false, "Scan every column for ${...} references")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
