package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/surveytools/formgraph/internal/config"
	clierrors "github.com/surveytools/formgraph/internal/errors"
	"github.com/surveytools/formgraph/internal/graph"
	"github.com/surveytools/formgraph/internal/workbook"
)

// requireFormArg validates that exactly one survey file argument was given,
// printing usage guidance when it is missing.
func requireFormArg(command string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch {
		case len(args) == 0:
			clierrors.PrintError(clierrors.MissingFormArgument(command))
			os.Exit(ExitInvalidArguments)
		case len(args) > 1:
			return fmt.Errorf("expected one survey file, got %d arguments", len(args))
		}
		return nil
	}
}

// loadGraph reads the survey file and builds its dependency graph, applying
// config-file settings and their flag overrides. Errors are reported as
// categorized CLI errors and returned for exit-code handling.
func loadGraph(cmd *cobra.Command, path string) (*graph.Graph, error) {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		cliErr := clierrors.Wrap(err, clierrors.Configuration,
			"Check .formgraph/config.yml for syntax or value errors")
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}

	if _, err := os.Stat(path); err != nil {
		cliErr := clierrors.FormNotFound(path)
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}

	stop := startSpinner(fmt.Sprintf(" Loading %s", path))
	rows, err := workbook.Load(path, cfg.Sheet)
	stop()
	if err != nil {
		cliErr := clierrors.WrapWithMessage(err, clierrors.Input, "loading survey")
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}

	g, err := graph.Build(rows, graph.Options{
		ExpressionColumns: cfg.ScanColumns(),
		HeaderOffset:      cfg.HeaderOffset,
		AncestorEdges:     cfg.AncestorEdges,
	})
	if err != nil {
		var dupErr *graph.DuplicateNameError
		if errors.As(err, &dupErr) {
			cliErr := clierrors.DuplicateElement(dupErr.Name)
			clierrors.PrintError(cliErr)
			return nil, cliErr
		}
		cliErr := clierrors.WrapWithMessage(err, clierrors.Analysis, "building graph")
		clierrors.PrintError(cliErr)
		return nil, cliErr
	}
	return g, nil
}

// loadConfiguration loads layered config and applies command-line overrides.
func loadConfiguration(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if sheet, _ := cmd.Flags().GetString("sheet"); sheet != "" {
		cfg.Sheet = sheet
	}
	if cmd.Flags().Changed("expression-columns") {
		columns, _ := cmd.Flags().GetStringSlice("expression-columns")
		cfg.ExpressionColumns = columns
	}
	if scanAll, _ := cmd.Flags().GetBool("scan-all-columns"); scanAll {
		cfg.ScanAllColumns = true
	}
	return cfg, nil
}

// startSpinner shows a spinner on stderr while a slow load runs, but only
// when stderr is a terminal. Returns a stop function.
func startSpinner(message string) func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = message
	s.Start()
	return s.Stop
}
