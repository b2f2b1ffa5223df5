package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	clierrors "github.com/surveytools/formgraph/internal/errors"
	"github.com/surveytools/formgraph/internal/graph"
	"github.com/surveytools/formgraph/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <form> [element]",
	Short: "Show one element, or list all elements",
	Long: `Without an element argument, list every element with its position, type,
and name. With an element name (or --position / --row), print the element's
fields and its direct dependencies and dependents.

Lookup modes:
  name            formgraph show form.xlsx age
  position (0-based)   formgraph show form.xlsx --position 4
  sheet row (1-based)  formgraph show form.xlsx --row 6`,
	Args:    cobra.RangeArgs(1, 2),
	GroupID: GroupLookup,
	RunE:    runShow,
}

func init() {
	showCmd.Flags().Int("position", -1, "Look up by 0-based position instead of name")
	showCmd.Flags().Int("row", 0, "Look up by 1-based sheet row instead of name")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	g, err := loadGraph(cmd, args[0])
	if err != nil {
		os.Exit(ExitInputError)
	}

	el, listAll, err := resolveShowTarget(cmd, g, args)
	if err != nil {
		var nfErr *graph.NotFoundError
		var idxErr *graph.IndexError
		switch {
		case errors.As(err, &nfErr):
			clierrors.PrintError(clierrors.UnknownElement(nfErr.Name))
		case errors.As(err, &idxErr):
			clierrors.PrintError(clierrors.NewArgumentError(idxErr.Error()))
		default:
			return err
		}
		os.Exit(ExitInvalidArguments)
	}

	out := cmd.OutOrStdout()
	if listAll {
		for _, e := range g.Elements() {
			fmt.Fprintf(out, "%-4d %-24s %s\n", e.Position, e.Type, e.Name)
		}
		return nil
	}

	printElement(cmd, g, el)
	return nil
}

// resolveShowTarget picks the element addressed by the name argument or the
// --position / --row flags. With neither, the whole listing is requested.
func resolveShowTarget(cmd *cobra.Command, g *graph.Graph, args []string) (*graph.Element, bool, error) {
	position, _ := cmd.Flags().GetInt("position")
	rowNum, _ := cmd.Flags().GetInt("row")

	switch {
	case len(args) == 2:
		el, err := g.ByName(args[1])
		return el, false, err
	case cmd.Flags().Changed("position"):
		el, err := g.At(position)
		return el, false, err
	case cmd.Flags().Changed("row"):
		el, err := g.AtRow(rowNum)
		return el, false, err
	default:
		return nil, true, nil
	}
}

// printElement prints one element's fields and direct graph neighborhood.
func printElement(cmd *cobra.Command, g *graph.Graph, el *graph.Element) {
	out := cmd.OutOrStdout()
	output.PrintSectionHeader(out, el.Name)
	output.PrintKeyValue(out, "position", el.Position)
	output.PrintKeyValue(out, "type", el.Type)
	if len(el.Ancestors) > 0 {
		output.PrintKeyValue(out, "group", strings.Join(el.Ancestors, " / "))
	}

	columns := make([]string, 0, len(el.Fields))
	for column, value := range el.Fields {
		if value != "" && column != "type" && column != "name" {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)
	for _, column := range columns {
		output.PrintKeyValue(out, column, el.Fields[column])
	}

	preds, _ := g.Predecessors(el.Name)
	succs, _ := g.Successors(el.Name)
	output.PrintKeyValue(out, "depends on", joinOrNone(preds))
	output.PrintKeyValue(out, "depended on by", joinOrNone(succs))
}

func joinOrNone(elements []*graph.Element) string {
	if len(elements) == 0 {
		return "(none)"
	}
	return joinNames(elements)
}
