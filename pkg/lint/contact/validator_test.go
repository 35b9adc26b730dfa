package contact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/lint/contact"
)

func types(vs []lint.Violation) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Type)
	}
	return out
}

func TestValidate_Email(t *testing.T) {
	t.Parallel()

	v := contact.New()

	t.Run("unlabeled", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("user@example.com", 1)
		require.Len(t, got, 1)
		assert.Equal(t, contact.TypeUnlabeledEmail, got[0].Type)
		assert.Equal(t, "user@example.com", got[0].FoundText)
		assert.Equal(t, 1, got[0].LineNumber)
		assert.Equal(t, config.SeverityHigh, got[0].Severity)
		assert.Contains(t, strings.ToLower(got[0].Message), "without")
		assert.Contains(t, strings.ToLower(got[0].Suggestion), "email:")
	})

	t.Run("labeled", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, v.Validate("Email: user@example.com", 1))
		assert.Empty(t, v.Validate("E-mail: user@example.com", 1))
	})

	t.Run("label after first colon is not seen", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("Contact details: email: jane@example.com", 1)
		require.Len(t, got, 1)
		assert.Equal(t, contact.TypeUnlabeledEmail, got[0].Type)
	})
}

func TestValidate_ObfuscatedEmail(t *testing.T) {
	t.Parallel()

	v := contact.New()
	for _, line := range []string{
		"user [at] example [dot] com",
		"user(at)example(dot)com",
		"user AT example DOT com",
		"user [AT] example.com",
	} {
		t.Run(line, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(line, 1)
			require.Len(t, got, 1)
			assert.Equal(t, contact.TypeObfuscatedEmail, got[0].Type)
			assert.Contains(t, strings.ToLower(got[0].Message), "obfuscated")
			assert.Equal(t, config.SeverityHigh, got[0].Severity)
		})
	}
}

func TestValidate_ObfuscationSkipsPlainEmailCheck(t *testing.T) {
	t.Parallel()

	got := contact.New().Validate("jane@example.com (at) work", 1)
	assert.Equal(t, []string{contact.TypeObfuscatedEmail}, types(got))
}

func TestValidate_Phone(t *testing.T) {
	t.Parallel()

	v := contact.New()

	tests := []struct {
		line string
		want []string
	}{
		{"(555) 123-4567", []string{contact.TypeUnlabeledPhone}},
		{"555.123.4567", []string{contact.TypeUnlabeledPhone}},
		{"5551234567", []string{contact.TypeUnlabeledPhone}},
		{"555 123 4567", []string{contact.TypeUnlabeledPhone}},
		{"Phone: (555) 123-4567", nil},
		{"Phone: 555-123-4567", nil},
		{"Phone: +1-555-123-4567", nil},
		{"Phone: +1 (555) 123-4567", nil},
		{"Mobile: 555-123-4567", nil},
		{"Phone: 5551234567", []string{contact.TypePhoneFormat}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(tt.line, 1)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, types(got))
		})
	}
}

func TestValidate_PhoneMessages(t *testing.T) {
	t.Parallel()

	v := contact.New()

	unlabeled := v.Validate("(555) 123-4567", 1)
	require.Len(t, unlabeled, 1)
	assert.Contains(t, strings.ToLower(unlabeled[0].Message), "without")
	assert.Contains(t, strings.ToLower(unlabeled[0].Suggestion), "phone:")
	assert.Equal(t, "(555) 123-4567", unlabeled[0].FoundText)

	format := v.Validate("Phone: 5551234567", 1)
	require.Len(t, format, 1)
	assert.Contains(t, strings.ToLower(format[0].Message), "standard format")
}

func TestValidate_YearRangesAreNotPhones(t *testing.T) {
	t.Parallel()

	v := contact.New()
	for _, line := range []string{
		"(2021-2022)",
		"2019-2021 Acme Corp",
		"Graduated 2016-2020.",
		"2016-2020, State University",
		"Studied: 2012-2016",
		"2018-2020",
	} {
		t.Run(line, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, v.Validate(line, 1))
		})
	}
}

func TestValidate_LabelsMatchWholeWords(t *testing.T) {
	t.Parallel()

	v := contact.New()

	for _, line := range []string{"Hotel Manager: 555-123-4567", "Excellent: 555-123-4567"} {
		t.Run(line, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(line, 1)
			require.Len(t, got, 1)
			assert.Equal(t, contact.TypeUnlabeledPhone, got[0].Type)
		})
	}

	assert.Empty(t, v.Validate("Cell Phone: 555-123-4567", 1))
	assert.Empty(t, v.Validate("Work (tel): 555-123-4567", 1))
	assert.Empty(t, v.Validate("Personal e-mail: user@example.com", 1))
}

func TestValidate_YearRangeThenPhone(t *testing.T) {
	t.Parallel()

	got := contact.New().Validate("(2019-2020) reach me on 555-123-4567", 1)
	require.Len(t, got, 1)
	assert.Equal(t, contact.TypeUnlabeledPhone, got[0].Type)
	assert.Equal(t, "555-123-4567", got[0].FoundText)
}

func TestValidate_URL(t *testing.T) {
	t.Parallel()

	v := contact.New()

	t.Run("with protocol passes", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, v.Validate("LinkedIn: https://linkedin.com/in/user", 1))
		assert.Empty(t, v.Validate("see https://example.com/portfolio and github.com/user", 1))
	})

	t.Run("unlabeled bare url", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("linkedin.com/in/user", 1)
		require.Len(t, got, 1)
		assert.Equal(t, contact.TypeUnlabeledURL, got[0].Type)
		assert.Contains(t, strings.ToLower(got[0].Message), "without")
		assert.Contains(t, strings.ToLower(got[0].Suggestion), "linkedin:")
	})

	t.Run("non-url label", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("Email: github.com/user", 1)
		require.Len(t, got, 1)
		assert.Contains(t, strings.ToLower(got[0].Message), "without proper label")
	})

	for _, line := range []string{"GitHub: github.com/user", "Website: example.com/site"} {
		t.Run("labeled missing protocol "+line, func(t *testing.T) {
			t.Parallel()
			got := v.Validate(line, 1)
			require.Len(t, got, 1)
			assert.Equal(t, contact.TypeURLProtocol, got[0].Type)
			assert.Contains(t, got[0].Suggestion, "https://")
			assert.NotContains(t, strings.ToLower(got[0].Message), "without proper label")
		})
	}
}

func TestValidate_EmojiAsLabel(t *testing.T) {
	t.Parallel()

	v := contact.New()

	got := v.Validate("📧 user@example.com", 1)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{contact.TypeUnlabeledEmail, contact.TypeEmojiLabel}, types(got))
	for _, viol := range got {
		assert.Equal(t, config.SeverityHigh, viol.Severity)
	}

	phone := v.Validate("☎️ phone 555-123-4567", 1)
	assert.Contains(t, types(phone), contact.TypeEmojiLabel)

	assert.Empty(t, v.Validate("🚀 Shipped the release pipeline", 1))
	assert.Empty(t, v.Validate("Launched 🚀 example.com", 1))
}

func TestValidate_MultiLine(t *testing.T) {
	t.Parallel()

	v := contact.New()

	t.Run("three unlabeled kinds", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("user@example.com\n(555) 123-4567\nlinkedin.com/in/user", 1)
		assert.Equal(t, []string{
			contact.TypeUnlabeledEmail, contact.TypeUnlabeledPhone, contact.TypeUnlabeledURL,
		}, types(got))
	})

	t.Run("properly formatted block", func(t *testing.T) {
		t.Parallel()
		content := "Email: user@example.com\nPhone: (555) 123-4567\n" +
			"LinkedIn: https://linkedin.com/in/user\nGitHub: https://github.com/user"
		assert.Empty(t, v.Validate(content, 1))
	})

	t.Run("mixed", func(t *testing.T) {
		t.Parallel()
		content := "Email: user@example.com\n(555) 123-4567\n" +
			"LinkedIn: https://linkedin.com/in/user\ngithub.com/user"
		got := v.Validate(content, 1)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].LineNumber)
		assert.Equal(t, 4, got[1].LineNumber)
	})

	t.Run("blank lines advance numbering", func(t *testing.T) {
		t.Parallel()
		got := v.Validate("\n\nuser@example.com\n\n", 10)
		require.Len(t, got, 1)
		assert.Equal(t, 12, got[0].LineNumber)
	})
}

func TestValidate_PerLineNumbering(t *testing.T) {
	t.Parallel()

	v := contact.New()
	lines := []string{
		"Email: user@example.com",
		"(555) 123-4567",
		"linkedin.com/in/user",
		"Phone: (555) 987-6543",
		"user@example.com",
	}

	var all []lint.Violation
	for i, line := range lines {
		all = append(all, v.Validate(line, i+1)...)
	}

	got := make([]int, 0, len(all))
	for _, viol := range all {
		got = append(got, viol.LineNumber)
	}
	assert.Equal(t, []int{2, 3, 5}, got)
}

func TestValidate_NoContactInfo(t *testing.T) {
	t.Parallel()

	v := contact.New()
	assert.Empty(t, v.Validate("", 1))
	assert.Empty(t, v.Validate("This is a regular paragraph without any contact information.", 1))
}

func TestValidate_RuleIdentity(t *testing.T) {
	t.Parallel()

	got := contact.New().Validate("user@example.com", 3)
	require.Len(t, got, 1)
	assert.Equal(t, contact.RuleID, got[0].RuleID)
	assert.Equal(t, contact.RuleName, got[0].RuleName)
	assert.Equal(t, "user@example.com", got[0].LineContent)
}
