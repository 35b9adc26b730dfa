package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaklabco/atslint/pkg/analysis"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	RunID     string          `json:"run_id"`
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	Status    config.Status   `json:"status"`
	Files     []JSONFile      `json:"files"`
	Summary   analysis.Totals `json:"summary"`
}

// JSONFile represents a single document's results.
type JSONFile struct {
	Path       string           `json:"path"`
	Status     config.Status    `json:"status,omitempty"`
	Violations []lint.Violation `json:"violations"`
	Error      string           `json:"error,omitempty"`
}

// JSONRenderer formats reports as JSON.
type JSONRenderer struct {
	opts Options
}

// NewJSONRenderer creates a new JSON renderer.
func NewJSONRenderer(opts Options) *JSONRenderer {
	return &JSONRenderer{opts: opts}
}

// Render implements Renderer.
func (r *JSONRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(buildJSONOutput(report)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func buildJSONOutput(report *analysis.Report) *JSONOutput {
	output := &JSONOutput{
		RunID:     report.RunID,
		Version:   report.Version,
		Timestamp: report.Timestamp,
		Status:    report.Status,
		Files:     make([]JSONFile, 0, len(report.ByFile)+len(report.Errors)),
		Summary:   report.Totals,
	}

	byPath := violationsByPath(report.Violations)

	for _, fa := range report.ByFile {
		violations := byPath[fa.Path]
		if violations == nil {
			violations = make([]lint.Violation, 0)
		}
		output.Files = append(output.Files, JSONFile{
			Path:       fa.Path,
			Status:     fa.Status,
			Violations: violations,
		})
	}

	for _, fe := range report.Errors {
		output.Files = append(output.Files, JSONFile{
			Path:       fe.Path,
			Violations: make([]lint.Violation, 0),
			Error:      fe.Message,
		})
	}

	return output
}

// violationsByPath groups a flat violation list by document, preserving order.
func violationsByPath(violations []lint.Violation) map[string][]lint.Violation {
	groups := make(map[string][]lint.Violation)
	for _, v := range violations {
		groups[v.FilePath] = append(groups[v.FilePath], v)
	}
	return groups
}
