package analysis

import (
	"time"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// Report contains pre-computed views of validation results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// RunID uniquely identifies this validation run.
	RunID string `json:"run_id"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`

	// Status is the worst gate outcome across documents.
	Status config.Status `json:"status"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Violations is the flat list, in file order then severity and line order.
	Violations []lint.Violation `json:"violations,omitempty"`

	// ByFile groups violations by document.
	ByFile []FileAnalysis `json:"by_file,omitempty"`

	// ByRule groups violations by rule.
	ByRule []RuleAnalysis `json:"by_rule,omitempty"`

	// Errors lists documents that could not be validated.
	Errors []FileError `json:"errors,omitempty"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files           int `json:"files_checked"`
	FilesWithIssues int `json:"files_with_issues"`
	FilesErrored    int `json:"files_errored"`
	Violations      int `json:"total_violations"`
	Critical        int `json:"critical"`
	High            int `json:"high"`
	Medium          int `json:"medium"`
	Low             int `json:"low"`
}

// HasIssues returns true if there are any violations.
func (t Totals) HasIssues() bool {
	return t.Violations > 0
}

// HasCritical returns true if any CRITICAL violation was found.
func (t Totals) HasCritical() bool {
	return t.Critical > 0
}

// Count returns the total for one severity.
func (t Totals) Count(sev config.Severity) int {
	switch sev {
	case config.SeverityCritical:
		return t.Critical
	case config.SeverityHigh:
		return t.High
	case config.SeverityMedium:
		return t.Medium
	case config.SeverityLow:
		return t.Low
	default:
		return 0
	}
}

func (t *Totals) add(sev config.Severity) {
	t.Violations++
	switch sev {
	case config.SeverityCritical:
		t.Critical++
	case config.SeverityHigh:
		t.High++
	case config.SeverityMedium:
		t.Medium++
	case config.SeverityLow:
		t.Low++
	}
}

// FileAnalysis contains aggregated data for a single document.
type FileAnalysis struct {
	Path       string        `json:"path"`
	Status     config.Status `json:"status"`
	Violations int           `json:"violations"`
	Counts     lint.Counts   `json:"counts"`
	Rules      []string      `json:"rules,omitempty"`
}

// RuleAnalysis contains aggregated data for a single rule.
type RuleAnalysis struct {
	RuleID     string          `json:"rule_id"`
	RuleName   string          `json:"rule_name"`
	Severity   config.Severity `json:"severity"`
	Violations int             `json:"violations"`
	Types      []string        `json:"violation_types,omitempty"`
	Files      []string        `json:"files,omitempty"`
}

// FileError records a document that failed to load or validate.
type FileError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}
