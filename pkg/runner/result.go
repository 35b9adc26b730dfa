package runner

import (
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// FileOutcome is the result of validating one discovered document.
type FileOutcome struct {
	// Path is the document that was validated.
	Path string

	// Result is nil when the document could not be loaded or validated.
	Result *lint.FileResult

	// Error is set if the document could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int
	FilesWithIssues int

	// ViolationsTotal is the number of violations across all documents.
	ViolationsTotal int

	// BySeverity always holds all four severities.
	BySeverity lint.Counts
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// Status returns the worst gate status across processed documents.
func (r *Result) Status() config.Status {
	if r == nil {
		return config.StatusPass
	}
	statuses := make([]config.Status, 0, len(r.Files))
	for _, f := range r.Files {
		if f.Result != nil {
			statuses = append(statuses, f.Result.Status)
		}
	}
	return lint.WorstStatus(statuses...)
}

// HasIssues reports whether any violations were found.
func (r *Result) HasIssues() bool {
	return r != nil && r.Stats.ViolationsTotal > 0
}

// HasErrors reports whether any document failed to load or validate.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// Violations returns every violation in file order.
func (r *Result) Violations() []lint.Violation {
	if r == nil {
		return nil
	}
	var out []lint.Violation
	for _, f := range r.Files {
		if f.Result != nil {
			out = append(out, f.Result.Violations...)
		}
	}
	return out
}

func newStats() Stats {
	return Stats{BySeverity: lint.CountBySeverity(nil)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.ViolationsTotal += outcome.Result.IssueCount()
	if outcome.Result.HasIssues() {
		r.Stats.FilesWithIssues++
	}
	for _, v := range outcome.Result.Violations {
		r.Stats.BySeverity[v.Severity]++
	}
}

// NewResult builds a Result from outcomes already produced, in the order given.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes)), Stats: newStats()}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}
