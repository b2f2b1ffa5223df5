package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/output"
)

var terminalsCmd = &cobra.Command{
	Use:   "terminals <form>",
	Short: "List elements nothing else depends on",
	Long: `List the form elements that depend on at least one other element while
nothing depends on them, in document order. These are the graph's end
products: typically final calculations and display notes.`,
	Example: `  formgraph terminals household_survey.xlsx`,
	Args:    requireFormArg("terminals"),
	GroupID: GroupAnalysis,
	RunE:    runTerminals,
}

func init() {
	rootCmd.AddCommand(terminalsCmd)
}

func runTerminals(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	out := cmd.OutOrStdout()
	terminals := g.TerminalNodes()
	if len(terminals) == 0 {
		output.PrintOK(out, "no terminal elements")
		return nil
	}
	for _, el := range terminals {
		fmt.Fprintf(out, "%-4d %s\n", el.Position, el.Name)
	}
	return nil
}
