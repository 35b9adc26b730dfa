package reporter_test

import (
	"errors"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/runner"
)

const (
	testWorkDir = "/work"
	testRunID   = "3f1c2b9e-7d4a-4e8b-9a61-0c5d2e8f4a17"
)

func testViolations() []lint.Violation {
	return []lint.Violation{
		{
			RuleID:      "ATS001",
			RuleName:    "no-emoji",
			FilePath:    "/work/resume.md",
			LineNumber:  2,
			LineContent: "Shipped 🚀 faster builds",
			Type:        "Emoji/Special Character",
			Severity:    config.SeverityCritical,
			Message:     "Disallowed character: '🚀'",
			Suggestion:  "Remove emojis and special characters",
			FoundText:   "🚀",
		},
		{
			RuleID:      "ATS002",
			RuleName:    "no-tables",
			FilePath:    "/work/resume.md",
			LineNumber:  3,
			LineContent: "<table><tr><td>Go</td></tr></table>",
			Type:        "HTML Table",
			Severity:    config.SeverityHigh,
			Message:     "HTML table detected",
			Suggestion:  "Convert tables to bullet lists or plain paragraphs",
			FoundText:   "<table><tr><td>Go</td></tr></table>",
		},
		{
			RuleID:      "ATS004",
			RuleName:    "no-all-caps",
			FilePath:    "/work/resume.md",
			LineNumber:  5,
			LineContent: "LEADERSHIP",
			Type:        "All Caps Text",
			Severity:    config.SeverityLow,
			Message:     "Text in all caps",
			Suggestion:  "Use title case",
			FoundText:   "LEADERSHIP",
		},
	}
}

// testResult holds one failing document, one clean document, and one unreadable document.
func testResult() *runner.Result {
	violations := testViolations()
	return &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/broken.md", Error: errors.New("input file is not a text document: /work/broken.md")},
			{Path: "/work/letter.md", Result: &lint.FileResult{Path: "/work/letter.md", Status: config.StatusPass}},
			{
				Path: "/work/resume.md",
				Result: &lint.FileResult{
					Path:       "/work/resume.md",
					Violations: violations,
					Status:     config.StatusFail,
				},
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithIssues: 1,
			ViolationsTotal: len(violations),
			BySeverity:      lint.CountBySeverity(violations),
		},
	}
}

func cleanResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/letter.md", Result: &lint.FileResult{Path: "/work/letter.md", Status: config.StatusPass}},
		},
		Stats: runner.Stats{
			FilesDiscovered: 1,
			FilesProcessed:  1,
			BySeverity:      lint.CountBySeverity(nil),
		},
	}
}

func testRules() []config.RuleInfo {
	return []config.RuleInfo{
		{ID: "ATS001", Name: "no-emoji", Description: "Emoji and pictographic symbols", Severity: config.SeverityCritical, Tags: []string{"characters"}},
		{ID: "ATS002", Name: "no-tables", Description: "Markdown and HTML tables", Severity: config.SeverityHigh, Tags: []string{"layout"}},
	}
}
