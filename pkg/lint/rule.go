// Package lint provides the violation model, rule registry, and validation engine for atslint.
package lint

import (
	"github.com/yaklabco/atslint/pkg/config"
)

// Violation is a single detected ATS-incompatibility in a document.
// Violations are values: rules create them and nothing modifies them afterwards.
type Violation struct {
	// RuleID is the identifier of the rule that produced this violation (e.g., "ATS001").
	RuleID string `json:"rule_id"`

	// RuleName is the human-readable rule name (e.g., "no-emoji").
	RuleName string `json:"rule_name"`

	// FilePath is the document the violation was found in.
	FilePath string `json:"file_path,omitempty"`

	// LineNumber is the 1-based line of the finding.
	LineNumber int `json:"line_number"`

	// LineContent is the trimmed source line.
	LineContent string `json:"line_content"`

	// Type names the kind of finding, such as "Markdown Table" or "Unlabeled Email".
	Type string `json:"violation_type"`

	// Severity is fixed per rule and finding type.
	Severity config.Severity `json:"severity"`

	// Message describes the issue.
	Message string `json:"message"`

	// Suggestion is a remediation hint.
	Suggestion string `json:"suggestion"`

	// FoundText is the matched text, truncated for large constructs.
	FoundText string `json:"found_text"`
}

// Rule defines the interface that all validation rules implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "ATS001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Severity returns the severity the rule assigns to its findings.
	Severity() config.Severity

	// Tags returns categorization tags for this rule.
	Tags() []string

	// Apply scans the document in ctx and returns its violations.
	//
	// Rules must not mutate the document or shared state. An error means the rule
	// itself is broken; findings are never reported as errors.
	Apply(ctx *RuleContext) ([]Violation, error)
}
