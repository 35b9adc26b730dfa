package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/configloader"
	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
)

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an atslint configuration file",
		Long: `Create a commented .atslint.yml in the current directory with the default
settings for checking and conversion.

Examples:
  atslint init                     Create .atslint.yml
  atslint init --full              Include the rule catalog as comments
  atslint init -o ci/atslint.yml   Write to a custom path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "document every rule in the template")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFile, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err := configloader.WriteConfig(commandContext(cmd), absPath, content, flags.force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", flags.output)
	logger.Info("run 'atslint rules' to see the rule catalog")

	return nil
}
