package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeSectionHeader is the finding type for unrecognized section names.
const TypeSectionHeader = "Non-Standard Section Header"

// SectionHeaderRule reports level-2 headings outside the canonical section set.
type SectionHeaderRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewSectionHeaderRule creates a new standard-section-headers rule.
func NewSectionHeaderRule() *SectionHeaderRule {
	return &SectionHeaderRule{
		BaseRule: lint.NewBaseRule(
			"ATS009",
			"standard-section-headers",
			"Section headings should use names ATS parsers recognize",
			config.SeverityLow,
			[]string{"structure"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply matches "## Name" headings exactly against the canonical set.
func (r *SectionHeaderRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		m := r.patterns.Header.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if r.patterns.IsStandardHeader(name) {
			continue
		}

		violations = append(violations, r.Violation(i+1, TypeSectionHeader).
			WithLine(line).
			WithMessage(fmt.Sprintf("Section header '%s' is not a standard name", name)).
			WithSuggestion("Use a standard header such as 'Work Experience', 'Education', or 'Skills'").
			WithFound(name).
			Build())
	}

	return violations, nil
}
