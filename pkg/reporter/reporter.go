// Package reporter renders validation results for terminals, machines, and people.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/atslint/pkg/analysis"
	"github.com/yaklabco/atslint/pkg/runner"
)

// Compile-time interface check for reporterFacade.
var _ Reporter = (*reporterFacade)(nil)

// Reporter formats and writes validation results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of violations reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Renderer writes an analyzed report in one output format. The facade runs
// analysis once, so a Renderer only decides layout.
type Renderer interface {
	Render(ctx context.Context, report *analysis.Report) error
}

// reporterFacade bridges the Reporter interface to Renderer implementations.
type reporterFacade struct {
	renderer     Renderer
	analysisOpts analysis.Options
}

// Report implements Reporter by analyzing the result and rendering it.
func (f *reporterFacade) Report(ctx context.Context, result *runner.Result) (int, error) {
	report := analysis.Analyze(result, f.analysisOpts)
	if err := f.renderer.Render(ctx, report); err != nil {
		return 0, fmt.Errorf("render: %w", err)
	}
	return report.Totals.Violations, nil
}

// newRendererFacade creates a facade wrapping a Renderer.
func newRendererFacade(renderer Renderer, opts Options, sortBy analysis.SortField, desc bool) *reporterFacade {
	return &reporterFacade{
		renderer: renderer,
		analysisOpts: analysis.Options{
			IncludeViolations: true,
			IncludeByFile:     true,
			IncludeByRule:     true,
			SortBy:            sortBy,
			SortDesc:          desc,
			WorkingDir:        opts.WorkingDir,
			RunID:             opts.RunID,
		},
	}
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return newRendererFacade(NewJSONRenderer(opts), opts, analysis.SortByAlpha, false), nil
	case FormatSARIF:
		return newRendererFacade(NewSARIFRenderer(opts), opts, analysis.SortByAlpha, false), nil
	case FormatMarkdown:
		return newRendererFacade(NewMarkdownRenderer(opts), opts, analysis.SortByAlpha, false), nil
	case FormatHTML:
		return newRendererFacade(NewHTMLRenderer(opts), opts, analysis.SortByAlpha, false), nil
	case FormatSummary:
		return newRendererFacade(NewSummaryRenderer(opts), opts, analysis.SortBySeverity, true), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
