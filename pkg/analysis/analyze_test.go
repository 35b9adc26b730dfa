package analysis

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/runner"
)

func violation(ruleID, ruleName, vType string, sev config.Severity, line int) lint.Violation {
	return lint.Violation{
		RuleID:     ruleID,
		RuleName:   ruleName,
		Type:       vType,
		Severity:   sev,
		LineNumber: line,
	}
}

func fileOutcome(path string, violations ...lint.Violation) runner.FileOutcome {
	return runner.FileOutcome{
		Path: path,
		Result: &lint.FileResult{
			Path:       path,
			Violations: violations,
			Status:     lint.Evaluate(violations),
		},
	}
}

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			fileOutcome("/work/resume.md",
				violation("ATS001", "no-emoji", "Emoji/Special Character", config.SeverityCritical, 2),
				violation("ATS002", "no-tables", "Markdown Table", config.SeverityHigh, 4),
				violation("ATS002", "no-tables", "HTML Table", config.SeverityHigh, 9),
			),
			fileOutcome("/work/letter.md",
				violation("ATS004", "no-all-caps", "All Caps Text", config.SeverityLow, 1),
			),
			fileOutcome("/work/clean.md"),
			{Path: "/work/broken.md", Error: errors.New("input file is not valid UTF-8")},
		},
	}
}

func TestAnalyze_EmptyResult(t *testing.T) {
	t.Parallel()

	report := Analyze(&runner.Result{}, DefaultOptions())

	require.NotNil(t, report)
	assert.Equal(t, 0, report.Totals.Violations)
	assert.Equal(t, config.StatusPass, report.Status)
	assert.Empty(t, report.Violations)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
}

func TestAnalyze_NilResult(t *testing.T) {
	t.Parallel()

	report := Analyze(nil, DefaultOptions())
	require.NotNil(t, report)
	assert.Equal(t, ReportVersion, report.Version)
	assert.Equal(t, config.StatusPass, report.Status)
}

func TestAnalyze_CountsTotals(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())

	assert.Equal(t, Totals{
		Files:           4,
		FilesWithIssues: 2,
		FilesErrored:    1,
		Violations:      4,
		Critical:        1,
		High:            2,
		Medium:          0,
		Low:             1,
	}, report.Totals)
	assert.Equal(t, config.StatusFail, report.Status)
	assert.Len(t, report.Violations, 4)
	require.Len(t, report.Errors, 1)
	assert.Equal(t, "/work/broken.md", report.Errors[0].Path)
}

func TestAnalyze_RunID(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())
	_, err := uuid.Parse(report.RunID)
	require.NoError(t, err)

	other := Analyze(sampleResult(), DefaultOptions())
	assert.NotEqual(t, report.RunID, other.RunID)

	opts := DefaultOptions()
	opts.RunID = "fixed"
	assert.Equal(t, "fixed", Analyze(sampleResult(), opts).RunID)
}

func TestAnalyze_RelativePaths(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(sampleResult(), opts)
	for _, v := range report.Violations {
		assert.NotContains(t, v.FilePath, "/work")
	}
	assert.Equal(t, "broken.md", report.Errors[0].Path)
}

func TestAnalyze_ByRule(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())
	require.Len(t, report.ByRule, 3)

	// Severity sort puts CRITICAL rules first and LOW rules last.
	assert.Equal(t, "ATS001", report.ByRule[0].RuleID)
	assert.Equal(t, "ATS002", report.ByRule[1].RuleID)
	assert.Equal(t, "ATS004", report.ByRule[2].RuleID)

	tables := report.ByRule[1]
	assert.Equal(t, 2, tables.Violations)
	assert.Equal(t, []string{"HTML Table", "Markdown Table"}, tables.Types)
	assert.Equal(t, []string{"/work/resume.md"}, tables.Files)
}

func TestAnalyze_ByFile(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())
	require.Len(t, report.ByFile, 3, "clean documents are kept, unreadable ones are not")

	assert.Equal(t, "/work/resume.md", report.ByFile[0].Path)
	assert.Equal(t, config.StatusFail, report.ByFile[0].Status)
	assert.Equal(t, []string{"ATS001", "ATS002"}, report.ByFile[0].Rules)
	assert.Equal(t, 2, report.ByFile[0].Counts[config.SeverityHigh])

	assert.Equal(t, "/work/letter.md", report.ByFile[1].Path)
	assert.Equal(t, config.StatusPass, report.ByFile[1].Status)

	clean := report.ByFile[2]
	assert.Equal(t, "/work/clean.md", clean.Path)
	assert.Equal(t, config.StatusPass, clean.Status)
	assert.Zero(t, clean.Violations)
	assert.Empty(t, clean.Rules)
}

func TestAnalyze_SortByCountAndAlpha(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.SortBy = SortByCount
	report := Analyze(sampleResult(), opts)
	assert.Equal(t, "ATS002", report.ByRule[0].RuleID)

	opts.SortBy = SortByAlpha
	report = Analyze(sampleResult(), opts)
	assert.Equal(t, "/work/clean.md", report.ByFile[0].Path)
	assert.Equal(t, "ATS001", report.ByRule[0].RuleID)
}

func TestAnalyze_OptionalSections(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), Options{})
	assert.Empty(t, report.Violations)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
	assert.Equal(t, 4, report.Totals.Violations)
}

func TestGroupBySeverity(t *testing.T) {
	t.Parallel()

	report := Analyze(sampleResult(), DefaultOptions())
	groups := GroupBySeverity(report.Violations)

	require.Len(t, groups, 4)
	assert.Len(t, groups[config.SeverityCritical], 1)
	assert.Len(t, groups[config.SeverityHigh], 2)
	assert.Empty(t, groups[config.SeverityMedium])
	assert.Len(t, groups[config.SeverityLow], 1)
	assert.Equal(t, 4, groups[config.SeverityHigh][0].LineNumber)
}
