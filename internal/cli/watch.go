package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	clierrors "github.com/surveytools/formgraph/internal/errors"
)

var watchCmd = &cobra.Command{
	Use:   "watch <form>",
	Short: "Re-analyze the form whenever it changes",
	Long: `Watch the survey file and re-run the structural analysis on every save.
Useful while editing a form: cycles and forward references show up as soon
as they are introduced.

The watch follows the containing directory rather than the file itself, so
editors that replace the file on save (write-then-rename) keep working.

Press Ctrl+C to exit.`,
	Example: `  formgraph watch household_survey.xlsx

  # Debounce slow editors with a longer settle interval
  formgraph watch household_survey.xlsx --settle 500ms`,
	Args:    requireFormArg("watch"),
	GroupID: GroupUtility,
	RunE:    runWatch,
}

func init() {
	watchCmd.Flags().Duration("settle", 200*time.Millisecond, "Delay after a change before re-analyzing")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	formPath := args[0]
	settle, _ := cmd.Flags().GetDuration("settle")
	if settle < 10*time.Millisecond {
		cliErr := clierrors.NewArgumentError("settle interval must be at least 10ms")
		clierrors.PrintError(cliErr)
		os.Exit(ExitInvalidArguments)
	}

	absPath, err := filepath.Abs(formPath)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	analyzeOnce(cmd, formPath)
	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s (Ctrl+C to exit)\n", formPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			time.Sleep(settle)
			fmt.Fprintf(cmd.OutOrStdout(), "\n--- %s changed at %s ---\n",
				formPath, time.Now().Format("15:04:05"))
			analyzeOnce(cmd, formPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

// analyzeOnce runs the analyze report, swallowing load errors so a
// half-saved file does not kill the watch.
func analyzeOnce(cmd *cobra.Command, formPath string) {
	g, err := loadGraph(cmd, formPath)
	if err != nil {
		return
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d elements, %d references\n", g.NodeCount(), g.EdgeCount())
	printIsolates(cmd, g)
	printTerminals(cmd, g)
	printForward(cmd, g)
	printCycles(cmd, g)
}
