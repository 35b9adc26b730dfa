package lint

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/document"
)

// ErrInvalidViolation indicates a rule produced a violation that breaks the
// violation invariants (unknown severity or out-of-range line number).
var ErrInvalidViolation = errors.New("invalid violation")

// FileResult contains the results of validating a single document.
type FileResult struct {
	// Path is the document path.
	Path string

	// Fingerprint is the hex SHA-256 of the document bytes, when loaded from disk.
	Fingerprint string

	// Lines is the number of lines in the document.
	Lines int

	// Violations holds all findings, sorted by severity rank then line number.
	Violations []Violation

	// Status is the gate outcome for this document.
	Status config.Status
}

// HasIssues returns true if any violations were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Violations) > 0
}

// IssueCount returns the total number of violations.
func (fr *FileResult) IssueCount() int {
	return len(fr.Violations)
}

// Engine runs every registered rule over a document and merges the results.
type Engine struct {
	// Registry holds the rules to run.
	Registry *Registry

	// Concurrency caps how many rules run at once. 0 means GOMAXPROCS.
	Concurrency int
}

// NewEngine creates a new Engine for the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Validate runs all rules over doc.
//
// Rules run concurrently, each into its own slot. Slots are concatenated in
// registry order and stably sorted, so identical input always yields an
// identical violation list. The first rule error aborts validation.
func (e *Engine) Validate(ctx context.Context, doc *document.Document) (*FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("validation cancelled: %w", err)
	}

	start := time.Now()
	rules := e.Registry.Rules()
	slots := make([][]Violation, len(rules))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.limit())

	for i, rule := range rules {
		group.Go(func() error {
			ruleCtx := NewRuleContext(groupCtx, doc)
			ruleCtx.Registry = e.Registry

			found, err := rule.Apply(ruleCtx)
			if err != nil {
				return fmt.Errorf("rule %s (%s): %w", rule.ID(), rule.Name(), err)
			}
			slots[i] = found
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	violations := make([]Violation, 0, totalLen(slots))
	for i, found := range slots {
		for _, v := range found {
			if v.RuleID == "" {
				v.RuleID = rules[i].ID()
			}
			if v.RuleName == "" {
				v.RuleName = rules[i].Name()
			}
			if v.FilePath == "" {
				v.FilePath = doc.Path
			}
			if err := checkViolation(v, doc.LineCount()); err != nil {
				return nil, err
			}
			violations = append(violations, v)
		}
	}

	SortViolations(violations)

	result := &FileResult{
		Path:        doc.Path,
		Fingerprint: doc.Fingerprint,
		Lines:       doc.LineCount(),
		Violations:  violations,
		Status:      Evaluate(violations),
	}

	logging.FromContext(ctx).Debug("validated document",
		logging.FieldPath, doc.Path,
		logging.FieldRules, len(rules),
		logging.FieldViolations, len(violations),
		logging.FieldStatus, result.Status,
		logging.FieldDuration, time.Since(start),
	)

	return result, nil
}

// ValidateString validates in-memory content with the given registry.
func ValidateString(ctx context.Context, registry *Registry, content string) ([]Violation, error) {
	result, err := NewEngine(registry).Validate(ctx, document.FromString(content))
	if err != nil {
		return nil, err
	}
	return result.Violations, nil
}

func (e *Engine) limit() int {
	if e.Concurrency > 0 {
		return e.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func checkViolation(v Violation, lineCount int) error {
	if !v.Severity.IsValid() {
		return fmt.Errorf("%w: rule %s: severity %q", ErrInvalidViolation, v.RuleID, v.Severity)
	}
	if v.LineNumber < 1 || v.LineNumber > lineCount {
		return fmt.Errorf("%w: rule %s: line %d outside 1..%d", ErrInvalidViolation, v.RuleID, v.LineNumber, lineCount)
	}
	return nil
}

func totalLen(slots [][]Violation) int {
	n := 0
	for _, s := range slots {
		n += len(s)
	}
	return n
}

// SortViolations orders violations by severity rank, then ascending line number.
// The sort is stable, so equal keys keep rule-execution order.
func SortViolations(violations []Violation) {
	slices.SortStableFunc(violations, CompareViolations)
}

// CompareViolations compares by severity rank, then line number.
func CompareViolations(a, b Violation) int {
	if c := a.Severity.Rank() - b.Severity.Rank(); c != 0 {
		return c
	}
	return a.LineNumber - b.LineNumber
}
