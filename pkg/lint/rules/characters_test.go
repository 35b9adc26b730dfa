package rules_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint/rules"
)

func TestEmojiRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		wantN int
	}{
		{name: "family sequence counts each person", input: "Team 👨‍👩‍👧‍👦 lead", wantN: 4},
		{name: "rocket and check mark", input: "Shipped 🚀 and ✅", wantN: 2},
		{name: "arrow", input: "Go → Rust", wantN: 1},
		{name: "heart with variation selector", input: "Loves ❤️ open source", wantN: 1},
		{name: "currency and degree allowed", input: "Budget $1M € £ ¥ ¢ at 20° R&D", wantN: 0},
		{name: "plain text", input: "Senior Software Engineer", wantN: 0},
		{name: "empty", input: "", wantN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := apply(t, rules.NewEmojiRule(), tt.input)
			assert.Len(t, got, tt.wantN)
			for _, v := range got {
				assert.Equal(t, config.SeverityCritical, v.Severity)
				assert.Equal(t, rules.TypeEmoji, v.Type)
				assert.Equal(t, "ATS001", v.RuleID)
			}
		})
	}
}

func TestEmojiRule_Fields(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewEmojiRule(), "# Jane\n  Built 🚀 pipelines  ")
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, 2, v.LineNumber)
	assert.Equal(t, "Built 🚀 pipelines", v.LineContent)
	assert.Equal(t, "🚀", v.FoundText)
	assert.Equal(t, "no-emoji", v.RuleName)
	assert.Contains(t, v.Message, "🚀")
}

func TestSmartPunctuationRule(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewSmartPunctuationRule(), "It’s “great” — really – truly…")
	require.Len(t, got, 6)

	assert.Equal(t, []string{
		rules.TypeSmartQuotes,
		rules.TypeSmartQuotes,
		rules.TypeSmartQuotes,
		rules.TypeEmDash,
		rules.TypeEnDash,
		rules.TypeEllipsis,
	}, types(got))

	for _, v := range got {
		assert.Equal(t, config.SeverityMedium, v.Severity)
	}
	assert.Equal(t, "Replace '—' with '-'", got[3].Suggestion)
	assert.Equal(t, "Replace '…' with '...'", got[5].Suggestion)
}

func TestSmartPunctuationRule_ASCII(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewSmartPunctuationRule(), `It's "plain" - ASCII...`)
	assert.Empty(t, got)
}

func TestTableRule_Markdown(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewTableRule(), "| Skill | Years |\n|---|---|\n| Go | 5 |")
	require.GreaterOrEqual(t, len(got), 2)
	assert.Len(t, got, 3)

	for _, v := range got {
		assert.Equal(t, rules.TypeMarkdownTable, v.Type)
		assert.Equal(t, config.SeverityHigh, v.Severity)
		assert.Contains(t, v.Message, "table")
		assert.Contains(t, v.Suggestion, "Convert tables")
	}
	assert.Equal(t, []int{1, 2, 3}, lineNumbers(got))
}

func TestTableRule_PipeInProse(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewTableRule(), "Go | Rust | Python")
	assert.Empty(t, got)
}

func TestTableRule_HTML(t *testing.T) {
	t.Parallel()

	got := apply(t, rules.NewTableRule(), "Intro\n<TABLE class=\"x\">\n<tr><td>Go</td></tr>\n</table>\nAfter")
	require.Len(t, got, 1)

	v := got[0]
	assert.Equal(t, rules.TypeHTMLTable, v.Type)
	assert.Equal(t, 2, v.LineNumber)
	assert.Equal(t, `<TABLE class="x">`, v.LineContent)
}

func TestTableRule_HTMLTruncated(t *testing.T) {
	t.Parallel()

	long := "<table>" + strings.Repeat("x", 200) + "</table>"
	got := apply(t, rules.NewTableRule(), long)
	require.Len(t, got, 1)

	found := got[0].FoundText
	assert.Equal(t, 103, utf8.RuneCountInString(found))
	assert.True(t, strings.HasSuffix(found, "..."))
}
