package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/configloader"
	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
)

// loadConfig resolves the layered configuration for cmd, with cliCfg holding
// only the values of flags the user actually set.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// commandContext returns the command's context, or a background context when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// colorMode reads the persistent --color flag.
func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}
