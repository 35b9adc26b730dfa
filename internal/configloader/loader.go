// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support, schema checks, and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// When empty, ATSLINT_CONFIG is consulted unless IgnoreEnv is set.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (ATSLINT_*)
//  3. Explicit config file (opts.ExplicitPath or ATSLINT_CONFIG)
//  4. Project config (.atslint.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/atslint/config.yml)
//  6. System config (/etc/atslint/config.yml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result := &LoadResult{Paths: paths}

	explicit := opts.ExplicitPath
	if explicit == "" && !opts.IgnoreEnv {
		explicit = os.Getenv(EnvConfigPath)
	}
	paths.Explicit = explicit

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{name: "system", path: paths.System, ignore: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{name: "project", path: paths.Project, ignore: opts.IgnoreProjectConfig || explicit != ""},
		{name: "explicit", path: explicit},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}

		layerCfg, err := loadConfigFile(ctx, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, layerCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)

		logger.Debug("loaded config layer", "layer", layer.name, logging.FieldPath, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads a YAML config file, checks it against the schema, and decodes it.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	schemaResult, err := ValidateSchema(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !schemaResult.Valid() {
		first := schemaResult.Errors[0]
		first.FilePath = path
		return nil, &first
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WriteConfig writes YAML config content to path, refusing to replace an
// existing file unless force is set.
func WriteConfig(ctx context.Context, path string, content []byte, force bool) error {
	if !force && fsutil.Exists(path) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := fsutil.WriteAtomic(ctx, path, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
