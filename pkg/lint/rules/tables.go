package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// Table finding types.
const (
	TypeMarkdownTable = "Markdown Table"
	TypeHTMLTable     = "HTML Table"
)

const tableSuggestion = "Convert tables to bullet lists or plain paragraphs"

// TableRule reports Markdown pipe-table rows and HTML table blocks.
type TableRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewTableRule creates a new no-tables rule.
func NewTableRule() *TableRule {
	return &TableRule{
		BaseRule: lint.NewBaseRule(
			"ATS002",
			"no-tables",
			"Tables are flattened or skipped by most ATS parsers",
			config.SeverityHigh,
			[]string{"layout"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply flags each pipe-delimited row, then each HTML table at its opening line.
func (r *TableRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if !r.patterns.MarkdownTable.MatchString(line) {
			continue
		}
		violations = append(violations, r.Violation(i+1, TypeMarkdownTable).
			WithLine(line).
			WithMessage("Markdown table detected").
			WithSuggestion(tableSuggestion).
			WithExcerpt(line).
			Build())
	}

	doc := ctx.Document
	for _, loc := range r.patterns.HTMLTable.FindAllStringIndex(doc.Content, -1) {
		lineNum := doc.LineAt(loc[0])
		violations = append(violations, r.Violation(lineNum, TypeHTMLTable).
			WithLine(doc.Line(lineNum)).
			WithMessage("HTML table detected").
			WithSuggestion(tableSuggestion).
			WithExcerpt(doc.Content[loc[0]:loc[1]]).
			Build())
	}

	return violations, nil
}
