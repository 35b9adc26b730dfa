package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/atslint/internal/ui/pretty"
	"github.com/yaklabco/atslint/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := relativePath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || !file.Result.HasIssues() {
			continue
		}

		violations := file.Result.Violations
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(violations), file.Result.Status))

		for i := range violations {
			v := violations[i]
			v.FilePath = path
			fmt.Fprint(r.bw, r.styles.FormatViolation(&v, r.opts.ShowContext))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	if total == 0 && result.Stats.FilesErrored == 0 {
		fmt.Fprintln(r.bw, r.styles.Success.Render("No ATS compatibility issues found!"))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
		fmt.Fprintln(r.bw, r.styles.FormatOutcome(result.Status()))
	}

	return total, nil
}

// relativePath makes path relative to workDir when both allow it.
func relativePath(path, workDir string) string {
	if workDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
