package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/document"
	"github.com/yaklabco/atslint/pkg/lint"
)

// apply runs a single rule over content.
func apply(t *testing.T, rule lint.Rule, content string) []lint.Violation {
	t.Helper()

	ctx := lint.NewRuleContext(context.Background(), document.FromString(content))
	violations, err := rule.Apply(ctx)
	require.NoError(t, err)
	return violations
}

func types(violations []lint.Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Type)
	}
	return out
}

func lineNumbers(violations []lint.Violation) []int {
	out := make([]int, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.LineNumber)
	}
	return out
}
