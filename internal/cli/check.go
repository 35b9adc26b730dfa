package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/reporter"
	"github.com/yaklabco/atslint/pkg/runner"
)

type checkFlags struct {
	format        string
	report        string
	failOnWarning bool
	jobs          int
	ignore        []string
	noContext     bool
	noSummary     bool
	compact       bool
}

func newCheckCommand(version string) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"validate"},
		Short:   "Check documents for ATS compatibility",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, version)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "",
		"output format: text, json, sarif, markdown, html, summary (default from config, else text)")
	cmd.Flags().StringVar(&flags.report, "report", "", "also write a validation report (.html/.htm renders HTML, else Markdown)")
	cmd.Flags().BoolVar(&flags.failOnWarning, "fail-on-warning", false, "fail on any violation, not just critical ones")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide the source line under each violation")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary after text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify JSON and SARIF output")

	return cmd
}

const checkLongDescription = `Check résumés and cover letters for ATS compatibility.

By default, checks all .md and .markdown files in the current directory
and subdirectories. Files named explicitly are checked whatever their extension.

Exit status is 1 when any document has a CRITICAL finding, or any finding at all
with --fail-on-warning. Unreadable documents exit with status 3.

Examples:
  atslint check                        # Check the current directory
  atslint check resume.md              # Check one file
  atslint check docs/ -f json          # JSON output for CI
  atslint check --report report.html   # Also write an HTML report
  atslint check --fail-on-warning      # Treat any finding as failure`

// cliConfig returns a config holding only the flags the user set.
func (f *checkFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(f.format)
	}
	if cmd.Flags().Changed("report") {
		cliCfg.Report = f.report
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = f.ignore
	}
	cliCfg.FailOnWarning = f.failOnWarning
	return cliCfg
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, version string) error {
	cfg, workDir, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	logger.Debug("starting check",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldFormat, format,
	)

	result, err := runner.New(lint.NewEngine(lint.DefaultRegistry)).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return errors.Join(errors.New("check failed"), err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
		ToolVersion: version,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if cfg.Report != "" {
		if err := writeReport(ctx, cfg.Report, result, workDir, version); err != nil {
			return err
		}
		logger.Info("validation report written", logging.FieldReport, cfg.Report)
	}

	return gate(result, cfg.FailOnWarning)
}

// gate applies the exit contract to a finished run.
func gate(result *runner.Result, failOnWarning bool) error {
	if result.HasErrors() {
		return ErrUnreadableInput
	}
	for _, f := range result.Files {
		if f.Result != nil && lint.ShouldFail(f.Result.Status, f.Result.IssueCount(), failOnWarning) {
			return ErrViolationsFound
		}
	}
	return nil
}

// writeReport renders result as a Markdown or HTML report at path, chosen by extension.
func writeReport(ctx context.Context, path string, result *runner.Result, workDir, version string) error {
	var buf bytes.Buffer
	if err := renderReport(ctx, &buf, reporter.FormatForReportPath(path), result, workDir, version); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, path, buf.Bytes(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderReport(ctx context.Context, w io.Writer, format reporter.Format, result *runner.Result, workDir, version string) error {
	rep, err := reporter.New(reporter.Options{
		Writer:      w,
		Format:      format,
		Color:       "never",
		WorkingDir:  workDir,
		ToolVersion: version,
	})
	if err != nil {
		return fmt.Errorf("create report writer: %w", err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
