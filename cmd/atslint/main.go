// Package main is the entry point for the atslint CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/yaklabco/atslint/internal/cli"
	"github.com/yaklabco/atslint/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/atslint/pkg/lint/rules"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine; ATSLINT_* may come from the real environment.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCommand(cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsSilent(err) {
		logging.Default().Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCode(err)
}
