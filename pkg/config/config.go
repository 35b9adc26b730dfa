// Package config defines core configuration and classification types for atslint.
// These types are pure data structures with no dependency on how configuration is loaded.
package config

import (
	"fmt"
	"strings"
)

// Severity is the fixed four-level classification attached to every violation.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// severityOrder lists severities from most to least severe. The index is the rank.
//
//nolint:gochecknoglobals // Fixed ordering table.
var severityOrder = [...]Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Severities returns all severities ordered from most to least severe.
func Severities() []Severity {
	out := make([]Severity, len(severityOrder))
	copy(out, severityOrder[:])
	return out
}

// Rank returns the sort rank of the severity: CRITICAL=0, HIGH=1, MEDIUM=2, LOW=3.
// Unknown values rank after LOW.
func (s Severity) Rank() int {
	for i, sev := range severityOrder {
		if sev == s {
			return i
		}
	}
	return len(severityOrder)
}

// IsValid reports whether s is one of the four defined severities.
func (s Severity) IsValid() bool {
	return s.Rank() < len(severityOrder)
}

// Label returns the title-cased severity name ("Critical", "High", ...).
func (s Severity) Label() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// ParseSeverity parses a severity name case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	if !sev.IsValid() {
		return "", fmt.Errorf("unknown severity %q (valid: CRITICAL, HIGH, MEDIUM, LOW)", s)
	}
	return sev, nil
}

// Status is the overall gating outcome of a validation run.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusWarning Status = "WARNING"
	StatusFail    Status = "FAIL"
)

// OutputFormat specifies the output format for validation results.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatSARIF    OutputFormat = "sarif"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatSummary  OutputFormat = "summary"
)

// DocumentType selects the stylesheet used when converting to PDF.
type DocumentType string

const (
	DocumentCoverLetter DocumentType = "cover-letter"
	DocumentProfile     DocumentType = "profile"
)

// Default values shared by the loader, templates, and CLI flags.
const (
	DefaultPDFEngine    = "weasyprint"
	DefaultTemplatesDir = "templates"
	ChromeEngine        = "chrome"
)

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	// DocumentType selects the built-in stylesheet.
	DocumentType DocumentType `yaml:"document_type" validate:"omitempty,oneof=cover-letter profile"`

	// CSS is a custom stylesheet path that overrides DocumentType.
	CSS string `yaml:"css,omitempty"`

	// PDFEngine is passed to pandoc as --pdf-engine, or "chrome" for headless Chrome.
	PDFEngine string `yaml:"pdf_engine" validate:"required"`

	// TemplatesDir contains ats-cover-letter.css, ats-profile.css, and the fallback stylesheet.
	TemplatesDir string `yaml:"templates_dir" validate:"required"`

	// TmpDir holds preprocessed Markdown during conversion. Empty selects /app/tmp or ./tmp.
	TmpDir string `yaml:"tmp_dir,omitempty"`
}

// Config is the root configuration structure for atslint.
type Config struct {
	// Format specifies the output format for the check command.
	Format OutputFormat `yaml:"format" validate:"omitempty,oneof=text json sarif markdown html summary"`

	// FailOnWarning makes any violation fail the run, not just CRITICAL ones.
	FailOnWarning bool `yaml:"fail_on_warning"`

	// Jobs specifies the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs" validate:"min=0"`

	// Ignore contains glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore,omitempty"`

	// Report is the default path for the validation report.
	Report string `yaml:"report,omitempty"`

	// Convert configures PDF conversion.
	Convert ConvertConfig `yaml:"convert"`
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Format:        FormatText,
		FailOnWarning: false,
		Jobs:          0,
		Convert: ConvertConfig{
			DocumentType: DocumentCoverLetter,
			PDFEngine:    DefaultPDFEngine,
			TemplatesDir: DefaultTemplatesDir,
		},
	}
}
