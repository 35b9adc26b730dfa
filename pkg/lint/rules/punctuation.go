package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// SmartPunctuationRule reports typographic quotes, dashes, and ellipses.
type SmartPunctuationRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewSmartPunctuationRule creates a new no-smart-punctuation rule.
func NewSmartPunctuationRule() *SmartPunctuationRule {
	return &SmartPunctuationRule{
		BaseRule: lint.NewBaseRule(
			"ATS003",
			"no-smart-punctuation",
			"Typographic punctuation may be mis-encoded by ATS parsers",
			config.SeverityMedium,
			[]string{"characters"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply emits one finding per typographic character.
func (r *SmartPunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, ch := range line {
			repl, ok := r.patterns.SmartPunctuation[ch]
			if !ok {
				continue
			}
			violations = append(violations, r.Violation(i+1, repl.Type).
				WithLine(line).
				WithMessage(fmt.Sprintf("%s character '%c' detected", repl.Type, ch)).
				WithSuggestion(fmt.Sprintf("Replace '%c' with '%s'", ch, repl.ASCII)).
				WithFound(string(ch)).
				Build())
		}
	}

	return violations, nil
}
