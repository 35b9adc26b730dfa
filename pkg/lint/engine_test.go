package lint_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/document"
	"github.com/yaklabco/atslint/pkg/lint"
)

// stubRule is a test rule that returns fixed violations.
type stubRule struct {
	lint.BaseRule
	lines []int
	err   error
}

func newStubRule(id string, sev config.Severity, lines ...int) *stubRule {
	return &stubRule{
		BaseRule: lint.NewBaseRule(id, "stub-"+id, "stub rule", sev, nil),
		lines:    lines,
	}
}

func (r *stubRule) Apply(ctx *lint.RuleContext) ([]lint.Violation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]lint.Violation, 0, len(r.lines))
	for _, line := range r.lines {
		out = append(out, r.Violation(line, "Stub").
			WithLine(ctx.Document.Line(line)).
			WithMessage("stub finding").
			Build())
	}
	return out, nil
}

func fiveLineDoc() *document.Document {
	return document.FromString("one\ntwo\nthree\nfour\nfive")
}

func TestEngine_Validate_SortsBySeverityThenLine(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityLow, 1))
	reg.Register(newStubRule("T002", config.SeverityCritical, 5, 2))
	reg.Register(newStubRule("T003", config.SeverityHigh, 3))
	reg.Register(newStubRule("T004", config.SeverityCritical, 2))

	result, err := lint.NewEngine(reg).Validate(context.Background(), fiveLineDoc())
	require.NoError(t, err)
	require.Len(t, result.Violations, 5)

	type key struct {
		rule string
		line int
	}
	got := make([]key, 0, len(result.Violations))
	for _, v := range result.Violations {
		got = append(got, key{v.RuleID, v.LineNumber})
	}

	// T002 line 2 precedes T004 line 2: equal keys keep rule-execution order.
	assert.Equal(t, []key{
		{"T002", 2}, {"T004", 2}, {"T002", 5}, {"T003", 3}, {"T001", 1},
	}, got)
	assert.Equal(t, config.StatusFail, result.Status)
}

func TestEngine_Validate_Deterministic(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	for _, id := range []string{"T001", "T002", "T003", "T004", "T005", "T006"} {
		reg.Register(newStubRule(id, config.SeverityMedium, 4, 1, 3))
	}
	engine := lint.NewEngine(reg)

	first, err := engine.Validate(context.Background(), fiveLineDoc())
	require.NoError(t, err)

	for range 20 {
		again, err := engine.Validate(context.Background(), fiveLineDoc())
		require.NoError(t, err)
		assert.Equal(t, first.Violations, again.Violations)
	}
}

func TestEngine_Validate_FillsRuleMetadata(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityHigh, 2))

	doc := fiveLineDoc()
	doc.Path = "resume.md"

	result, err := lint.NewEngine(reg).Validate(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, result.Violations, 1)

	v := result.Violations[0]
	assert.Equal(t, "stub-T001", v.RuleName)
	assert.Equal(t, "resume.md", v.FilePath)
	assert.Equal(t, "two", v.LineContent)
	assert.Equal(t, 5, result.Lines)
}

func TestEngine_Validate_RuleErrorPropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("catalog bug")
	broken := newStubRule("T002", config.SeverityLow)
	broken.err = boom

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityLow, 1))
	reg.Register(broken)

	result, err := lint.NewEngine(reg).Validate(context.Background(), fiveLineDoc())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "T002")
}

func TestEngine_Validate_RejectsOutOfRangeLine(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityLow, 6))

	_, err := lint.NewEngine(reg).Validate(context.Background(), fiveLineDoc())
	require.ErrorIs(t, err, lint.ErrInvalidViolation)
}

func TestEngine_Validate_RejectsUnknownSeverity(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.Severity("SEVERE"), 1))

	_, err := lint.NewEngine(reg).Validate(context.Background(), fiveLineDoc())
	require.ErrorIs(t, err, lint.ErrInvalidViolation)
}

func TestEngine_Validate_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lint.NewEngine(lint.NewRegistry()).Validate(ctx, fiveLineDoc())
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Validate_EmptyDocument(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityLow))

	result, err := lint.NewEngine(reg).Validate(context.Background(), document.FromString(""))
	require.NoError(t, err)
	assert.Empty(t, result.Violations)
	assert.Equal(t, config.StatusPass, result.Status)
}

func TestEngine_Validate_SingleWorker(t *testing.T) {
	t.Parallel()

	reg := lint.NewRegistry()
	reg.Register(newStubRule("T001", config.SeverityLow, 1))
	reg.Register(newStubRule("T002", config.SeverityHigh, 1))

	engine := lint.NewEngine(reg)
	engine.Concurrency = 1

	result, err := engine.Validate(context.Background(), fiveLineDoc())
	require.NoError(t, err)
	require.Len(t, result.Violations, 2)
	assert.Equal(t, "T002", result.Violations[0].RuleID)
}
