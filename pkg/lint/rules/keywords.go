package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeKeywordStuffing is the finding type for repeated keywords.
const TypeKeywordStuffing = "Keyword Stuffing"

// KeywordStuffingRule reports a watched keyword repeated more than twice on one line.
type KeywordStuffingRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewKeywordStuffingRule creates a new no-keyword-stuffing rule.
func NewKeywordStuffingRule() *KeywordStuffingRule {
	return &KeywordStuffingRule{
		BaseRule: lint.NewBaseRule(
			"ATS008",
			"no-keyword-stuffing",
			"Repeating a keyword within one line is penalized by ATS ranking",
			config.SeverityLow,
			[]string{"content"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply counts each keyword per line. Counts never carry across lines.
func (r *KeywordStuffingRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, kw := range r.patterns.StuffingKeywords {
			matches := kw.Pattern.FindAllString(line, -1)
			count := len(matches)
			if count <= stuffingThreshold {
				continue
			}
			violations = append(violations, r.Violation(i+1, TypeKeywordStuffing).
				WithLine(line).
				WithMessage(fmt.Sprintf("Keyword '%s' appears %d times on one line", kw.Word, count)).
				WithSuggestion("Vary wording and spread keywords across sections").
				WithFound(matches[0]).
				Build())
		}
	}

	return violations, nil
}
