package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/graph"
	"github.com/surveytools/formgraph/internal/output"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <form>",
	Short: "Report the structure of a form's dependency graph",
	Long: `Build the dependency graph of a survey definition and print a structural
report: node and edge counts, isolated elements, terminal elements, forward
(out-of-order) references, and dependency cycles.

Exit codes:
  0 - Analysis completed (no findings, or findings without --strict)
  1 - Cycles or forward references found with --strict
  4 - Survey file unreadable or structurally invalid`,
	Example: `  # Analyze an XLSForm workbook
  formgraph analyze household_survey.xlsx

  # Fail CI when the form has cycles or forward references
  formgraph analyze household_survey.xlsx --strict`,
	Args:    requireFormArg("analyze"),
	GroupID: GroupAnalysis,
	RunE:    runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("strict", false, "Exit nonzero when cycles or forward references exist")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	out := cmd.OutOrStdout()
	output.PrintSectionHeader(out, fmt.Sprintf("Dependency graph: %s", args[0]))
	output.PrintKeyValue(out, "elements", g.NodeCount())
	output.PrintKeyValue(out, "references", g.EdgeCount())
	fmt.Fprintln(out)

	printIsolates(cmd, g)
	printTerminals(cmd, g)
	findings := printForward(cmd, g)
	findings = printCycles(cmd, g) || findings

	if strict, _ := cmd.Flags().GetBool("strict"); strict && findings {
		os.Exit(ExitFindings)
	}
	return nil
}

func printIsolates(cmd *cobra.Command, g *graph.Graph) {
	out := cmd.OutOrStdout()
	isolates := g.Isolates()
	if len(isolates) == 0 {
		output.PrintOK(out, "no isolated elements")
		return
	}
	output.PrintWarning(out, "%d isolated element(s): %s", len(isolates), joinNames(isolates))
}

func printTerminals(cmd *cobra.Command, g *graph.Graph) {
	out := cmd.OutOrStdout()
	terminals := g.TerminalNodes()
	if len(terminals) == 0 {
		output.PrintOK(out, "no terminal elements")
		return
	}
	fmt.Fprintf(out, "  %d terminal element(s): %s\n", len(terminals), joinNames(terminals))
}

// printForward reports out-of-order references and returns whether any exist.
func printForward(cmd *cobra.Command, g *graph.Graph) bool {
	out := cmd.OutOrStdout()
	forward := g.ForwardDependencies()
	if len(forward) == 0 {
		output.PrintOK(out, "no forward references")
		return false
	}
	output.PrintWarning(out, "%d forward reference(s):", len(forward))
	for _, edge := range forward {
		fmt.Fprintf(out, "    %s references %s, defined later\n", edge.Target, edge.Source)
	}
	return true
}

// printCycles reports dependency cycles and returns whether any exist.
func printCycles(cmd *cobra.Command, g *graph.Graph) bool {
	out := cmd.OutOrStdout()
	cycles := g.Cycles()
	if len(cycles) == 0 {
		output.PrintOK(out, "no dependency cycles")
		return false
	}
	output.PrintFail(out, "%d dependency cycle(s):", len(cycles))
	red := color.New(color.FgRed).SprintFunc()
	for _, cycle := range cycles {
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", red(formatCycle(cycle)))
	}
	return true
}

// formatCycle renders a cycle as "a -> b -> a".
func formatCycle(cycle []string) string {
	return strings.Join(append(append([]string(nil), cycle...), cycle[0]), " -> ")
}

// joinNames renders element names as a comma-separated list.
func joinNames(elements []*graph.Element) string {
	names := make([]string, len(elements))
	for i, el := range elements {
		names[i] = el.Name
	}
	return strings.Join(names, ", ")
}
