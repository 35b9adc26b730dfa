package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/atslint/pkg/config"
)

// MaxFoundTextLen is the rune length beyond which FoundText is truncated.
const MaxFoundTextLen = 100

// ViolationBuilder helps construct Violation values.
type ViolationBuilder struct {
	v Violation
}

// NewViolation starts building a violation for the given rule, line, and type.
func NewViolation(ruleID string, line int, violationType string) *ViolationBuilder {
	return &ViolationBuilder{
		v: Violation{
			RuleID:     ruleID,
			LineNumber: line,
			Type:       violationType,
		},
	}
}

// WithRuleName sets the rule name.
func (b *ViolationBuilder) WithRuleName(name string) *ViolationBuilder {
	b.v.RuleName = name
	return b
}

// WithSeverity sets the severity.
func (b *ViolationBuilder) WithSeverity(s config.Severity) *ViolationBuilder {
	b.v.Severity = s
	return b
}

// WithLine sets the source line; surrounding whitespace is trimmed.
func (b *ViolationBuilder) WithLine(line string) *ViolationBuilder {
	b.v.LineContent = strings.TrimSpace(line)
	return b
}

// WithMessage sets the message.
func (b *ViolationBuilder) WithMessage(msg string) *ViolationBuilder {
	b.v.Message = msg
	return b
}

// WithSuggestion sets the remediation hint.
func (b *ViolationBuilder) WithSuggestion(s string) *ViolationBuilder {
	b.v.Suggestion = s
	return b
}

// WithFound sets the matched text verbatim.
func (b *ViolationBuilder) WithFound(text string) *ViolationBuilder {
	b.v.FoundText = text
	return b
}

// WithExcerpt sets the matched text, truncated to MaxFoundTextLen runes plus "...".
func (b *ViolationBuilder) WithExcerpt(text string) *ViolationBuilder {
	b.v.FoundText = Truncate(text, MaxFoundTextLen)
	return b
}

// Build returns the constructed Violation.
func (b *ViolationBuilder) Build() Violation {
	return b.v
}

// Truncate shortens s to max runes and appends "..." when it was longer.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
