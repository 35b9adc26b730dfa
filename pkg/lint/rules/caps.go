package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeAllCaps is the finding type for lines written entirely in capitals.
const TypeAllCaps = "All Caps Text"

// minCapsLen is the trimmed length a line must exceed to be checked.
const minCapsLen = 3

// AllCapsRule reports lines written entirely in capitals.
type AllCapsRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewAllCapsRule creates a new no-all-caps rule.
func NewAllCapsRule() *AllCapsRule {
	return &AllCapsRule{
		BaseRule: lint.NewBaseRule(
			"ATS004",
			"no-all-caps",
			"Lines in all capitals read as shouting and can confuse section detection",
			config.SeverityLow,
			[]string{"style"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply checks non-empty, non-heading lines longer than three characters.
// A line made only of known acronyms is exempt.
func (r *AllCapsRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= minCapsLen || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if !r.patterns.CapsLine.MatchString(trimmed) || !strings.ContainsFunc(trimmed, unicode.IsUpper) {
			continue
		}
		if r.allAcronyms(trimmed) {
			continue
		}

		violations = append(violations, r.Violation(i+1, TypeAllCaps).
			WithLine(line).
			WithMessage("Line is written in all capital letters").
			WithSuggestion("Use sentence or title case; keep capitals for acronyms").
			WithExcerpt(trimmed).
			Build())
	}

	return violations, nil
}

func (r *AllCapsRule) allAcronyms(line string) bool {
	for _, word := range r.patterns.CapsWord.FindAllString(line, -1) {
		if !r.patterns.Acronyms[word] {
			return false
		}
	}
	return true
}
