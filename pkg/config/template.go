package config

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full appends the built-in rule catalog as commented documentation.
	Full bool
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a commented .atslint.yml template.
func GenerateTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Output format for "atslint check": text, json, sarif, markdown, html, or summary
format: text

# Fail when any violation is found, not only CRITICAL ones
fail_on_warning: false

# Number of parallel workers (0 = auto)
jobs: 0

# File patterns to skip during discovery (glob patterns)
# ignore:
#   - "drafts/**"

# Default path for the validation report (.html renders HTML, anything else Markdown)
# report: ats-report.md

convert:
  # Stylesheet selection: cover-letter or profile
  document_type: cover-letter

  # Custom stylesheet; overrides document_type
  # css: styles/resume.css

  # Pandoc PDF engine, or "chrome" for headless Chrome
  pdf_engine: weasyprint

  # Directory holding ats-cover-letter.css and ats-profile.css
  templates_dir: templates
`)

	if opts.Full {
		writeCatalog(&buf, getRuleInfos())
	}

	return buf.Bytes()
}

func writeCatalog(buf *bytes.Buffer, rules []RuleInfo) {
	if len(rules) == 0 {
		return
	}

	slices.SortFunc(rules, func(a, b RuleInfo) int {
		return strings.Compare(a.ID, b.ID)
	})

	buf.WriteString("\n# Built-in rules (always enabled):\n")
	for _, rule := range rules {
		fmt.Fprintf(buf, "#\n# %s %s [%s]\n", rule.ID, rule.Name, rule.Severity)
		fmt.Fprintf(buf, "#   %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(buf, "#   Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
	}
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps text to fit within maxWidth, continuing lines as comments.
func wrapComment(text string, maxWidth int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n#   ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# atslint configuration
# See: https://github.com/yaklabco/atslint`
}
