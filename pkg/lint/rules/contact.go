package rules

import (
	"fmt"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/lint/contact"
)

// ContactRule runs the contact-information validator over the whole document.
type ContactRule struct {
	lint.BaseRule
	validator *contact.Validator
}

// NewContactRule creates a new contact-format rule.
func NewContactRule() *ContactRule {
	return &ContactRule{
		BaseRule: lint.NewBaseRule(
			contact.RuleID,
			contact.RuleName,
			"Email, phone, and URL entries need text labels and standard formats",
			config.SeverityHigh,
			[]string{"contact"},
		),
		validator: contact.New(),
	}
}

// Apply validates the document starting at line 1.
func (r *ContactRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if ctx.Cancelled() {
		return nil, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
	}
	return r.validator.Validate(ctx.Document.Content, 1), nil
}
