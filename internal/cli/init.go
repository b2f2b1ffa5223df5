package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/surveytools/formgraph/internal/config"
	clierrors "github.com/surveytools/formgraph/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a project configuration file",
	Long: `Write a commented .formgraph/config.yml in the working directory with the
default settings. Edit it to change the worksheet name, header offset, or
the columns scanned for ${...} references.`,
	Example: `  formgraph init

  # Overwrite an existing config
  formgraph init --force`,
	Args:    cobra.NoArgs,
	GroupID: GroupUtility,
	RunE:    runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := config.ProjectConfigPath()
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			cliErr := clierrors.NewArgumentError(
				fmt.Sprintf("%s already exists (use --force to overwrite)", path))
			clierrors.PrintError(cliErr)
			os.Exit(ExitInvalidArguments)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
