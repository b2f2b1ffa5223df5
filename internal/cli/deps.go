package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	clierrors "github.com/surveytools/formgraph/internal/errors"
	"github.com/surveytools/formgraph/internal/graph"
)

var depsCmd = &cobra.Command{
	Use:   "deps <form> <element>...",
	Short: "List everything the named elements depend on",
	Long: `Compute the full upstream dependency closure of the named elements:
every element reachable by following references backward, transitively.
The seed elements themselves are excluded unless a cycle leads back to
them. With --direct, only one-hop dependencies are listed.`,
	Example: `  # Everything the eligibility calculation relies on
  formgraph deps household_survey.xlsx eligible

  # Direct dependencies only
  formgraph deps household_survey.xlsx eligible --direct`,
	Args:    cobra.MinimumNArgs(2),
	GroupID: GroupLookup,
	RunE:    runDeps,
}

var dependentsCmd = &cobra.Command{
	Use:   "dependents <form> <element>...",
	Short: "List everything that depends on the named elements",
	Long: `Compute the full downstream closure of the named elements: every element
that references them, transitively. The seed elements themselves are
excluded unless a cycle leads back to them. With --direct, only one-hop
dependents are listed.`,
	Example: `  # What breaks if the age question is removed?
  formgraph dependents household_survey.xlsx age`,
	Args:    cobra.MinimumNArgs(2),
	GroupID: GroupLookup,
	RunE:    runDependents,
}

func init() {
	depsCmd.Flags().Bool("direct", false, "List direct (one-hop) dependencies only")
	dependentsCmd.Flags().Bool("direct", false, "List direct (one-hop) dependents only")
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(dependentsCmd)
}

func runDeps(cmd *cobra.Command, args []string) error {
	return runClosure(cmd, args, (*graph.Graph).Predecessors, (*graph.Graph).AllDependenciesOf)
}

func runDependents(cmd *cobra.Command, args []string) error {
	return runClosure(cmd, args, (*graph.Graph).Successors, (*graph.Graph).AllNodesDependentOn)
}

// runClosure is shared by deps and dependents; direct picks the one-hop
// query, otherwise the transitive closure runs over all seeds.
func runClosure(
	cmd *cobra.Command,
	args []string,
	direct func(*graph.Graph, string) ([]*graph.Element, error),
	closure func(*graph.Graph, ...string) ([]*graph.Element, error),
) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}
	seeds := args[1:]

	var elements []*graph.Element
	if directOnly, _ := cmd.Flags().GetBool("direct"); directOnly {
		elements, err = directUnion(g, seeds, direct)
	} else {
		elements, err = closure(g, seeds...)
	}
	if err != nil {
		var nfErr *graph.NotFoundError
		if errors.As(err, &nfErr) {
			cliErr := clierrors.UnknownElement(nfErr.Name)
			clierrors.PrintError(cliErr)
			os.Exit(ExitInvalidArguments)
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, el := range elements {
		fmt.Fprintf(out, "%-4d %s\n", el.Position, el.Name)
	}
	return nil
}

// directUnion merges one-hop neighbor sets over all seeds, keeping
// document order and dropping duplicates.
func directUnion(
	g *graph.Graph,
	seeds []string,
	direct func(*graph.Graph, string) ([]*graph.Element, error),
) ([]*graph.Element, error) {
	seen := make(map[string]bool)
	var merged []*graph.Element
	for _, seed := range seeds {
		neighbors, err := direct(g, seed)
		if err != nil {
			return nil, err
		}
		for _, el := range neighbors {
			if !seen[el.Name] {
				seen[el.Name] = true
				merged = append(merged, el)
			}
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Position < merged[j].Position })
	return merged, nil
}
