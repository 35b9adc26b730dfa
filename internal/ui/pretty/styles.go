// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/atslint/pkg/config"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Critical lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style

	// Violation components
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	RuleID     lipgloss.Style
	Message    lipgloss.Style
	Suggestion lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		High:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleID:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Italic(true),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Critical:       plain,
		High:           plain,
		Medium:         plain,
		Low:            plain,
		FilePath:       plain,
		Location:       plain,
		RuleID:         plain,
		Message:        plain,
		Suggestion:     plain,
		SourceLine:     plain,
		Caret:          plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Warning:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// Severity returns the style for a severity level.
func (s *Styles) Severity(sev config.Severity) lipgloss.Style {
	switch sev {
	case config.SeverityCritical:
		return s.Critical
	case config.SeverityHigh:
		return s.High
	case config.SeverityMedium:
		return s.Medium
	case config.SeverityLow:
		return s.Low
	default:
		return s.Message
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
