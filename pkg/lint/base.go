package lint

import "github.com/yaklabco/atslint/pkg/config"

// BaseRule provides the metadata half of the Rule interface.
// Embed it in rule implementations and provide Apply.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string
	name     string
	desc     string
	severity config.Severity
	tags     []string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, severity config.Severity, tags []string) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: severity,
		tags:     tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Severity returns the severity the rule assigns to its findings.
func (r *BaseRule) Severity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Violation starts a violation for this rule at the given line.
func (r *BaseRule) Violation(line int, violationType string) *ViolationBuilder {
	return NewViolation(r.id, line, violationType).
		WithRuleName(r.name).
		WithSeverity(r.severity)
}
