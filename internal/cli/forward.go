package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/output"
)

var forwardCmd = &cobra.Command{
	Use:   "forward <form>",
	Short: "List references to elements defined later in the document",
	Long: `List every reference whose target is defined on a later row than the
element using it. Survey engines usually expect dependencies to be defined
first, so forward references are worth review even when they evaluate
correctly.

Exit codes:
  0 - No forward references
  1 - At least one forward reference found
  4 - Survey file unreadable or structurally invalid`,
	Example: `  formgraph forward household_survey.xlsx`,
	Args:    requireFormArg("forward"),
	GroupID: GroupAnalysis,
	RunE:    runForward,
}

func init() {
	rootCmd.AddCommand(forwardCmd)
}

func runForward(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	out := cmd.OutOrStdout()
	forward := g.ForwardDependencies()
	if len(forward) == 0 {
		output.PrintOK(out, "no forward references")
		return nil
	}
	for _, edge := range forward {
		fmt.Fprintf(out, "%s -> %s\n", edge.Target, edge.Source)
	}
	os.Exit(ExitFindings)
	return nil
}
