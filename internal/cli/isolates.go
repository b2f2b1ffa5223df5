package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/output"
)

var isolatesCmd = &cobra.Command{
	Use:   "isolates <form>",
	Short: "List elements with no dependencies and no dependents",
	Long: `List the form elements that neither reference another element nor are
referenced by one, in document order. Metadata rows (start, end, deviceid)
commonly show up here; unexpected isolates often indicate a misspelled
${...} reference.`,
	Example: `  formgraph isolates household_survey.xlsx`,
	Args:    requireFormArg("isolates"),
	GroupID: GroupAnalysis,
	RunE:    runIsolates,
}

func init() {
	rootCmd.AddCommand(isolatesCmd)
}

func runIsolates(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	out := cmd.OutOrStdout()
	isolates := g.Isolates()
	if len(isolates) == 0 {
		output.PrintOK(out, "no isolated elements")
		return nil
	}
	for _, el := range isolates {
		fmt.Fprintf(out, "%-4d %s\n", el.Position, el.Name)
	}
	return nil
}
