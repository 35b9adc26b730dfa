package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/yaklabco/atslint/pkg/analysis"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// reportDateLayout formats the verification date.
const reportDateLayout = "2006-01-02 15:04:05"

// markdownSections titles the per-severity sections of the verification report.
//
//nolint:gochecknoglobals // Fixed heading table.
var markdownSections = map[config.Severity]string{
	config.SeverityCritical: "Critical Issues (Must Fix)",
	config.SeverityHigh:     "High Severity Issues (Should Fix)",
	config.SeverityMedium:   "Medium Severity Issues (Consider Fixing)",
	config.SeverityLow:      "Low Severity Issues (Optional)",
}

//nolint:gochecknoglobals // Fixed footer text.
var markdownRecommendations = []string{
	"Use standard fonts (Arial, Calibri, Times New Roman)",
	"Avoid tables, columns, and complex layouts",
	"Use standard section headers",
	"Include relevant keywords naturally",
	"Use standard date formats (Month YYYY - Month YYYY)",
	"Avoid emojis, special characters, and creative formatting",
}

// MarkdownRenderer writes the ATS Safety Verification Report as Markdown.
type MarkdownRenderer struct {
	opts Options
}

// NewMarkdownRenderer creates a new Markdown renderer.
func NewMarkdownRenderer(opts Options) *MarkdownRenderer {
	return &MarkdownRenderer{opts: opts}
}

// Render implements Renderer.
func (r *MarkdownRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	writeMarkdownReport(bw, report, func(s string) string { return s })
	return nil
}

// writeMarkdownReport writes the verification report. Violation text passes
// through escape before it is embedded.
func writeMarkdownReport(w io.Writer, report *analysis.Report, escape func(string) string) {
	lines := []string{"# ATS Safety Verification Report", ""}

	byPath := violationsByPath(report.Violations)
	date := report.Timestamp.Format(reportDateLayout)

	for _, fa := range report.ByFile {
		lines = append(lines, documentSection(fa, byPath[fa.Path], date, escape)...)
	}

	if len(report.Errors) > 0 {
		lines = append(lines, "## Unreadable Documents", "")
		for _, fe := range report.Errors {
			lines = append(lines, fmt.Sprintf("- %s: %s", escape(fe.Path), escape(fe.Message)))
		}
		lines = append(lines, "", "---", "")
	}

	lines = append(lines, "## Recommendations", "For best ATS compatibility:")
	for _, rec := range markdownRecommendations {
		lines = append(lines, "- "+rec)
	}

	fmt.Fprint(w, strings.Join(lines, "\n")+"\n")
}

func documentSection(fa analysis.FileAnalysis, violations []lint.Violation, date string, escape func(string) string) []string {
	lines := []string{
		"## Document: " + escape(filepath.Base(fa.Path)),
		"**Verification Date:** " + date,
		"**Overall Status:** " + string(fa.Status),
		"",
		"---",
		"",
		"## Summary",
		fmt.Sprintf("- Critical Issues: %d", fa.Counts[config.SeverityCritical]),
		fmt.Sprintf("- High Severity Issues: %d", fa.Counts[config.SeverityHigh]),
		fmt.Sprintf("- Medium Severity Issues: %d", fa.Counts[config.SeverityMedium]),
		fmt.Sprintf("- Low Severity Issues: %d", fa.Counts[config.SeverityLow]),
		"",
		"---",
		"",
	}

	groups := analysis.GroupBySeverity(violations)
	for _, sev := range config.Severities() {
		group := groups[sev]
		if len(group) == 0 {
			continue
		}
		lines = append(lines, "## "+markdownSections[sev], "")
		for _, v := range group {
			lines = append(lines,
				fmt.Sprintf("### %s at line %d", v.Type, v.LineNumber),
				"",
				"**Severity:** "+string(v.Severity),
				"",
				"**Found:** "+escape(v.FoundText),
				"",
				"**Issue:** "+escape(v.Message),
				"",
				"**Suggestion:** "+escape(v.Suggestion),
				"",
				"**Example:** "+escape(v.LineContent),
				"",
			)
		}
	}

	return append(lines, "---", "")
}
