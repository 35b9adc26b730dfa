package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

func violationsOf(sevs ...config.Severity) []lint.Violation {
	out := make([]lint.Violation, 0, len(sevs))
	for i, s := range sevs {
		out = append(out, lint.Violation{LineNumber: i + 1, Severity: s})
	}
	return out
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sevs []config.Severity
		want config.Status
	}{
		{"no violations", nil, config.StatusPass},
		{"low only", []config.Severity{config.SeverityLow}, config.StatusPass},
		{"medium and low", []config.Severity{config.SeverityMedium, config.SeverityLow}, config.StatusPass},
		{"high", []config.Severity{config.SeverityLow, config.SeverityHigh}, config.StatusWarning},
		{"critical", []config.Severity{config.SeverityCritical}, config.StatusFail},
		{"critical beats high", []config.Severity{config.SeverityHigh, config.SeverityCritical}, config.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lint.Evaluate(violationsOf(tt.sevs...)))
		})
	}
}

func TestShouldFail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		status        config.Status
		count         int
		failOnWarning bool
		want          bool
	}{
		{"pass clean", config.StatusPass, 0, false, false},
		{"pass clean strict", config.StatusPass, 0, true, false},
		{"pass with low findings", config.StatusPass, 2, false, false},
		{"pass with low findings strict", config.StatusPass, 2, true, true},
		{"warning", config.StatusWarning, 1, false, false},
		{"warning strict", config.StatusWarning, 1, true, true},
		{"fail", config.StatusFail, 1, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lint.ShouldFail(tt.status, tt.count, tt.failOnWarning))
		})
	}
}

func TestCountBySeverity(t *testing.T) {
	t.Parallel()

	counts := lint.CountBySeverity(violationsOf(
		config.SeverityHigh, config.SeverityHigh, config.SeverityLow,
	))

	assert.Equal(t, 0, counts[config.SeverityCritical])
	assert.Equal(t, 2, counts[config.SeverityHigh])
	assert.Equal(t, 0, counts[config.SeverityMedium])
	assert.Equal(t, 1, counts[config.SeverityLow])
	assert.Len(t, counts, 4)
}

func TestWorstStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.StatusPass, lint.WorstStatus())
	assert.Equal(t, config.StatusWarning, lint.WorstStatus(config.StatusPass, config.StatusWarning))
	assert.Equal(t, config.StatusFail, lint.WorstStatus(config.StatusWarning, config.StatusFail, config.StatusPass))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", lint.Truncate("short", 10))
	assert.Equal(t, "abc...", lint.Truncate("abcdef", 3))
	assert.Equal(t, "日本...", lint.Truncate("日本語テキスト", 2))
}

func TestSortViolations_StableWithinKey(t *testing.T) {
	t.Parallel()

	vs := []lint.Violation{
		{RuleID: "b", LineNumber: 3, Severity: config.SeverityLow},
		{RuleID: "a", LineNumber: 3, Severity: config.SeverityLow},
		{RuleID: "c", LineNumber: 1, Severity: config.SeverityMedium},
	}
	lint.SortViolations(vs)

	assert.Equal(t, "c", vs[0].RuleID)
	assert.Equal(t, "b", vs[1].RuleID)
	assert.Equal(t, "a", vs[2].RuleID)
}
