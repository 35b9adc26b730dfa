package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeHiddenText is the finding type for HTML comments.
const TypeHiddenText = "Hidden Text"

// HiddenTextRule reports HTML comments, which can carry text invisible to readers but not to parsers.
type HiddenTextRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewHiddenTextRule creates a new no-hidden-text rule.
func NewHiddenTextRule() *HiddenTextRule {
	return &HiddenTextRule{
		BaseRule: lint.NewBaseRule(
			"ATS007",
			"no-hidden-text",
			"HTML comments hide text from readers and are flagged as manipulation by ATS vendors",
			config.SeverityCritical,
			[]string{"content"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply scans the whole document so comments spanning lines are found once.
func (r *HiddenTextRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Cancelled() {
		return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
	}

	doc := ctx.Document
	var violations []lint.Violation

	for _, loc := range r.patterns.HTMLComment.FindAllStringIndex(doc.Content, -1) {
		lineNum := doc.LineAt(loc[0])
		violations = append(violations, r.Violation(lineNum, TypeHiddenText).
			WithLine(doc.Line(lineNum)).
			WithMessage("HTML comment detected").
			WithSuggestion("Remove comments; keep only text that is visible in the document").
			WithExcerpt(doc.Content[loc[0]:loc[1]]).
			Build())
	}

	return violations, nil
}
