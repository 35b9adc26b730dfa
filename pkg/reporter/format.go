package reporter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatSARIF    Format = "sarif"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatSummary  Format = "summary"
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "sarif":
		return FormatSARIF, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "summary":
		return FormatSummary, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: text, json, sarif, markdown, html, summary", formatStr)
	}
}

// FormatForReportPath picks the report file format from its extension:
// HTML for .html and .htm, Markdown otherwise.
func FormatForReportPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatMarkdown
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatMarkdown, FormatHTML, FormatSummary:
		return true
	default:
		return false
	}
}
