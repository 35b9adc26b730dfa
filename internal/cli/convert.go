package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/configloader"
	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/convert"
	"github.com/yaklabco/atslint/pkg/fsutil"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/reporter"
	"github.com/yaklabco/atslint/pkg/runner"
)

type convertFlags struct {
	output           string
	documentType     string
	css              string
	title            string
	author           string
	date             string
	pdfEngine        string
	templatesDir     string
	validateOnly     bool
	validationReport string
	failOnWarning    bool
	force            bool
}

func newConvertCommand(d deps, version string) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Validate a document and convert it to PDF",
		Long: `Validate a Markdown document for ATS compatibility, then convert it to PDF.

Conversion is aborted when validation finds CRITICAL issues, or any issue
with --fail-on-warning. HIGH findings print a warning and conversion continues.
Bullet characters are normalized before the document is handed to the PDF
engine, and the stylesheet is chosen by --type unless --css is given.

Examples:
  atslint convert resume.md                          # Writes resume.pdf
  atslint convert letter.md -o out/letter.pdf --type cover-letter
  atslint convert resume.md --type profile --pdf-engine chrome
  atslint convert resume.md --validate-only --validation-report report.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], flags, d, version)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output PDF path (default: input with .pdf)")
	cmd.Flags().StringVar(&flags.documentType, "type", "", "stylesheet profile: cover-letter or profile (default from config)")
	cmd.Flags().StringVar(&flags.css, "css", "", "custom stylesheet; overrides --type")
	cmd.Flags().StringVar(&flags.title, "title", "", "document title metadata")
	cmd.Flags().StringVar(&flags.author, "author", "", "document author metadata")
	cmd.Flags().StringVar(&flags.date, "date", "", "document date metadata")
	cmd.Flags().StringVar(&flags.pdfEngine, "pdf-engine", "", "pandoc PDF engine, or chrome (default "+config.DefaultPDFEngine+")")
	cmd.Flags().StringVar(&flags.templatesDir, "templates-dir", "", "directory holding the built-in stylesheets")
	cmd.Flags().BoolVar(&flags.validateOnly, "validate-only", false, "validate without converting")
	cmd.Flags().StringVar(&flags.validationReport, "validation-report", "", "write a validation report (.html/.htm renders HTML, else Markdown)")
	cmd.Flags().BoolVar(&flags.failOnWarning, "fail-on-warning", false, "abort on any violation, not just critical ones")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing output without asking")

	return cmd
}

func (f *convertFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cliCfg := &config.Config{FailOnWarning: f.failOnWarning}
	if cmd.Flags().Changed("validation-report") {
		cliCfg.Report = f.validationReport
	}
	if cmd.Flags().Changed("type") {
		cliCfg.Convert.DocumentType = config.DocumentType(f.documentType)
	}
	if cmd.Flags().Changed("css") {
		cliCfg.Convert.CSS = f.css
	}
	if cmd.Flags().Changed("pdf-engine") {
		cliCfg.Convert.PDFEngine = f.pdfEngine
	}
	if cmd.Flags().Changed("templates-dir") {
		cliCfg.Convert.TemplatesDir = f.templatesDir
	}
	return cliCfg
}

func runConvert(cmd *cobra.Command, input string, flags *convertFlags, d deps, version string) error {
	cfg, workDir, err := loadConfig(cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fileResult, err := runner.New(lint.NewEngine(lint.DefaultRegistry)).ValidateFile(ctx, input)
	if err != nil {
		return err
	}
	result := runner.NewResult(runner.FileOutcome{Path: fileResult.Path, Result: fileResult})

	if cfg.Report != "" {
		if err := writeReport(ctx, cfg.Report, result, workDir, version); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Validation report written to %s\n", cfg.Report)
	}

	console := reporter.NewTextReporter(reporter.Options{
		Writer:      stdout,
		ErrorWriter: stderr,
		Color:       colorMode(cmd),
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if _, err := console.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	status, count := fileResult.Status, fileResult.IssueCount()

	if flags.validateOnly {
		if lint.ShouldFail(status, count, cfg.FailOnWarning) {
			return ErrViolationsFound
		}
		return nil
	}

	switch {
	case status == config.StatusFail:
		fmt.Fprintln(stderr, "Conversion aborted: fix the critical ATS issues above first")
		return ErrConversionBlocked
	case cfg.FailOnWarning && count > 0:
		fmt.Fprintf(stderr, "Conversion aborted: %d ATS issue(s) found and --fail-on-warning is set\n", count)
		return ErrConversionBlocked
	case status == config.StatusWarning:
		fmt.Fprintln(stderr, "Warning: high-severity ATS issues found; converting anyway")
	}

	opts := convert.OptionsFromConfig(cfg.Convert, input)
	opts.Output = flags.output
	opts.Title = flags.title
	opts.Author = flags.author
	opts.Date = flags.date

	if !flags.force && fsutil.Exists(opts.OutputPath()) && configloader.IsInteractive() {
		ok, err := confirm(cmd.InOrStdin(), stdout,
			fmt.Sprintf("%s already exists. Overwrite? [y/N] ", opts.OutputPath()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stdout, "Conversion cancelled")
			return nil
		}
	}

	converted, err := d.newConverter().Convert(ctx, opts)
	if err != nil {
		return err
	}

	if converted.EngineOutput != "" {
		logger.Debug(converted.EngineOutput, logging.FieldEngine, converted.Engine)
	}
	fmt.Fprintf(stdout, "Successfully converted '%s' to '%s'\n", converted.Input, converted.Output)

	return nil
}

// confirm asks a yes/no question; anything but y or yes means no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := io.WriteString(out, prompt); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
