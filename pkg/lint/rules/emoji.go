package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeEmoji is the finding type for emoji and pictographic symbols.
const TypeEmoji = "Emoji/Special Character"

// EmojiRule reports every emoji or pictographic symbol, one finding per code point.
type EmojiRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewEmojiRule creates a new no-emoji rule.
func NewEmojiRule() *EmojiRule {
	return &EmojiRule{
		BaseRule: lint.NewBaseRule(
			"ATS001",
			"no-emoji",
			"Emoji and pictographic symbols are dropped or garbled by ATS parsers",
			config.SeverityCritical,
			[]string{"characters"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply scans every line rune by rune. Joiners and variation selectors are
// outside the reported ranges, so a composed sequence yields one finding per visible part.
func (r *EmojiRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		for _, ch := range line {
			if !r.patterns.IsEmoji(ch) {
				continue
			}
			violations = append(violations, r.Violation(i+1, TypeEmoji).
				WithLine(line).
				WithMessage(fmt.Sprintf("Disallowed character: '%c'", ch)).
				WithSuggestion("Remove emojis and special characters").
				WithFound(string(ch)).
				Build())
		}
	}

	return violations, nil
}
