package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeCreativeTitle is the finding type for informal job titles.
const TypeCreativeTitle = "Creative Job Title"

// CreativeTitleRule reports informal titles such as "ninja" or "rock star".
type CreativeTitleRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewCreativeTitleRule creates a new no-creative-titles rule.
func NewCreativeTitleRule() *CreativeTitleRule {
	return &CreativeTitleRule{
		BaseRule: lint.NewBaseRule(
			"ATS005",
			"no-creative-titles",
			"Informal job titles do not match the titles recruiters search for",
			config.SeverityMedium,
			[]string{"content"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply emits one finding per matched title word.
func (r *CreativeTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, match := range r.patterns.Creative.FindAllString(line, -1) {
			violations = append(violations, r.Violation(i+1, TypeCreativeTitle).
				WithLine(line).
				WithMessage(fmt.Sprintf("Creative job title '%s' detected", match)).
				WithSuggestion("Use a conventional title such as 'Senior Software Engineer'").
				WithFound(match).
				Build())
		}
	}

	return violations, nil
}
