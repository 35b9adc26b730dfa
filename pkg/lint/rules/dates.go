package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// TypeDateFormat is the finding type for date ranges ATS parsers cannot normalize.
const TypeDateFormat = "Non-Standard Date Format"

// DateFormatRule reports seasonal date ranges and bare year ranges.
// A year range wrapped in parentheses is treated as an education entry and allowed.
type DateFormatRule struct {
	lint.BaseRule
	patterns *Patterns
}

// NewDateFormatRule creates a new standard-dates rule.
func NewDateFormatRule() *DateFormatRule {
	return &DateFormatRule{
		BaseRule: lint.NewBaseRule(
			"ATS006",
			"standard-dates",
			"Date ranges should use month and year so ATS parsers can compute tenure",
			config.SeverityHigh,
			[]string{"dates"},
		),
		patterns: DefaultPatterns(),
	}
}

// Apply checks each line for seasonal ranges first, then bare year ranges outside them.
func (r *DateFormatRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	var violations []lint.Violation

	for i, line := range ctx.Lines() {
		if ctx.Cancelled() {
			return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		seasons := r.patterns.SeasonDate.FindAllStringIndex(line, -1)
		for _, loc := range seasons {
			found := line[loc[0]:loc[1]]
			violations = append(violations, r.Violation(i+1, TypeDateFormat).
				WithLine(line).
				WithMessage(fmt.Sprintf("Seasonal or relative date range '%s'", found)).
				WithSuggestion("Use month and year, e.g. 'Jan 2020 - Jun 2024'").
				WithFound(found).
				Build())
		}

		for _, m := range r.patterns.YearRange.FindAllStringSubmatchIndex(line, -1) {
			openParen, closeParen := m[2] >= 0, m[8] >= 0
			if openParen && closeParen {
				continue
			}
			start, end := m[4], m[7]
			if overlapsAny(start, end, seasons) {
				continue
			}
			found := line[start:end]
			violations = append(violations, r.Violation(i+1, TypeDateFormat).
				WithLine(line).
				WithMessage(fmt.Sprintf("Year-only date range '%s'", found)).
				WithSuggestion("Add months, e.g. 'Mar 2019 - Aug 2021'; parenthesized year ranges are reserved for education").
				WithFound(found).
				Build())
		}
	}

	return violations, nil
}

func overlapsAny(start, end int, spans [][]int) bool {
	for _, s := range spans {
		if start < s[1] && s[0] < end {
			return true
		}
	}
	return false
}
