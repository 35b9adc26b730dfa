package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// severityLabelWidth pads severity labels so messages line up.
const severityLabelWidth = 8

// FormatViolation formats a single violation for terminal output.
func (s *Styles) FormatViolation(v *lint.Violation, showContext bool) string {
	var builder strings.Builder

	location := s.Location.Render(fmt.Sprintf("%s:%d", v.FilePath, v.LineNumber))
	if v.FilePath == "" {
		location = s.Location.Render(fmt.Sprintf("line %d", v.LineNumber))
	}

	fmt.Fprintf(&builder, "  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(v.Severity),
		s.Message.Render(v.Message),
		s.RuleID.Render("("+v.RuleID+" "+v.RuleName+")"),
	)

	if showContext && v.LineContent != "" {
		builder.WriteString(s.FormatSourceContext(v.LineContent, v.FoundText))
	}

	if v.Suggestion != "" {
		builder.WriteString("    " + s.Dim.Render("Suggestion:") + " " +
			s.Suggestion.Render(v.Suggestion) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a padded, styled severity label.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	label := s.Severity(sev).Render(string(sev))
	if pad := severityLabelWidth - len(sev); pad > 0 {
		label += strings.Repeat(" ", pad)
	}
	return label
}

// FormatSourceContext formats the source line and underlines found within it.
// The underline is omitted when found is empty or not on the line.
func (s *Styles) FormatSourceContext(line, found string) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if first, _, _ := strings.Cut(found, "\n"); first != "" {
		if idx := strings.Index(line, first); idx >= 0 {
			padding := indent + strings.Repeat(" ", lipgloss.Width(line[:idx]))
			width := max(lipgloss.Width(first), 1)
			builder.WriteString(padding + s.Caret.Render(strings.Repeat("^", width)) + "\n")
		}
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int, status config.Status) string {
	header := s.FilePath.Render(path) + " " + s.FormatStatus(status)
	if count > 0 {
		word := "violations"
		if count == 1 {
			word = "violation"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, word))
	}
	return header
}

// FormatStatus returns the styled gate status.
func (s *Styles) FormatStatus(status config.Status) string {
	switch status {
	case config.StatusFail:
		return s.Failure.Render(string(status))
	case config.StatusWarning:
		return s.Warning.Render(string(status))
	default:
		return s.Success.Render(string(status))
	}
}
