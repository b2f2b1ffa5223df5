package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/output"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles <form>",
	Short: "List dependency cycles in a form",
	Long: `Enumerate every elementary dependency cycle in the form's graph. A
self-referencing element is reported as a cycle of length one.

Exit codes:
  0 - No cycles
  1 - At least one cycle found
  4 - Survey file unreadable or structurally invalid`,
	Example: `  formgraph cycles household_survey.xlsx`,
	Args:    requireFormArg("cycles"),
	GroupID: GroupAnalysis,
	RunE:    runCycles,
}

func init() {
	rootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	cycles := g.Cycles()
	out := cmd.OutOrStdout()
	if len(cycles) == 0 {
		output.PrintOK(out, "no dependency cycles")
		return nil
	}

	for _, cycle := range cycles {
		fmt.Fprintln(out, formatCycle(cycle))
	}
	os.Exit(ExitFindings)
	return nil
}
