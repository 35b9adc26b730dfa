package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 violations (1 critical, 2 high, 2 low) in 2 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.ViolationsTotal == 0 {
		return s.Success.Render("No ATS issues found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))) + "\n"
	}

	var severityParts []string
	for _, sev := range config.Severities() {
		if n := stats.BySeverity[sev]; n > 0 {
			severityParts = append(severityParts,
				s.Severity(sev).Render(fmt.Sprintf("%d %s", n, strings.ToLower(string(sev)))))
		}
	}

	line := fmt.Sprintf("%d %s (%s) in %d %s",
		stats.ViolationsTotal,
		plural(stats.ViolationsTotal, "violation", "violations"),
		strings.Join(severityParts, ", "),
		stats.FilesWithIssues,
		plural(stats.FilesWithIssues, wordFile, wordFiles),
	)
	if stats.FilesErrored > 0 {
		line += ", " + s.Failure.Render(fmt.Sprintf("%d unreadable", stats.FilesErrored))
	}
	return line + "\n"
}

// FormatSummary formats run statistics as a summary block ending in the gate outcome.
func (s *Styles) FormatSummary(stats runner.Stats, status config.Status) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files unreadable:  " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString("  Total violations:  " +
		s.SummaryValue.Render(strconv.Itoa(stats.ViolationsTotal)) + "\n")

	for _, sev := range config.Severities() {
		n := stats.BySeverity[sev]
		if n == 0 {
			continue
		}
		label := fmt.Sprintf("    %-16s", sev.Label()+":")
		builder.WriteString(label + s.Severity(sev).Render(strconv.Itoa(n)) + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString(s.FormatOutcome(status))
	builder.WriteString("\n")

	return builder.String()
}

// FormatOutcome returns the one-line verdict for a gate status.
func (s *Styles) FormatOutcome(status config.Status) string {
	switch status {
	case config.StatusFail:
		return s.Failure.Render("ATS validation failed: critical issues must be fixed")
	case config.StatusWarning:
		return s.Warning.Render("ATS validation passed with warnings")
	default:
		return s.Success.Render("ATS validation passed")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
