// Package contact validates how contact details (email, phone, URLs) are written.
//
// Contact lines are where ATS parsers most often fail: an unlabeled or
// obfuscated address is usually dropped from the parsed candidate profile.
package contact

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

// Rule identity used for contact violations.
const (
	RuleID   = "ATS010"
	RuleName = "contact-format"
)

// Violation types produced by the validator.
const (
	TypeObfuscatedEmail = "Obfuscated Email"
	TypeUnlabeledEmail  = "Unlabeled Email"
	TypeUnlabeledPhone  = "Unlabeled Phone"
	TypePhoneFormat     = "Non-Standard Phone Format"
	TypeUnlabeledURL    = "Unlabeled URL"
	TypeURLProtocol     = "URL Without Protocol"
	TypeEmojiLabel      = "Emoji as Label"
)

// Validator checks contact-information formatting line by line. It holds no
// mutable state, so one Validator may be shared across goroutines.
type Validator struct {
	patterns *Patterns
}

// New creates a Validator with freshly compiled patterns.
func New() *Validator {
	return NewWithPatterns(NewPatterns())
}

// NewWithPatterns creates a Validator using p.
func NewWithPatterns(p *Patterns) *Validator {
	return &Validator{patterns: p}
}

// Validate checks content, which may span several lines. Lines are numbered
// consecutively from startLine; blank lines produce nothing but still advance the count.
func (v *Validator) Validate(content string, startLine int) []lint.Violation {
	var out []lint.Violation

	for i, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, v.ValidateLine(line, startLine+i)...)
	}

	return out
}

// ValidateLine runs every contact check on a single non-blank line, in order:
// email, phone, URL, then emoji-as-label.
func (v *Validator) ValidateLine(line string, lineNumber int) []lint.Violation {
	var out []lint.Violation
	out = append(out, v.checkEmail(line, lineNumber)...)
	out = append(out, v.checkPhone(line, lineNumber)...)
	out = append(out, v.checkURL(line, lineNumber)...)
	out = append(out, v.checkEmojiLabel(line, lineNumber)...)
	return out
}

func newViolation(line string, lineNumber int, violationType string) *lint.ViolationBuilder {
	return lint.NewViolation(RuleID, lineNumber, violationType).
		WithRuleName(RuleName).
		WithSeverity(config.SeverityHigh).
		WithLine(line)
}

func (v *Validator) checkEmail(line string, lineNumber int) []lint.Violation {
	if m := v.patterns.Obfuscated.FindString(line); m != "" {
		// An obfuscated address explains the missing "@"; the plain check is skipped.
		return []lint.Violation{
			newViolation(line, lineNumber, TypeObfuscatedEmail).
				WithMessage("Obfuscated email address detected").
				WithSuggestion("Use standard email format: user@example.com").
				WithFound(strings.TrimSpace(m)).
				Build(),
		}
	}

	email := v.patterns.Email.FindString(line)
	if email == "" || hasLabel(line, v.patterns.EmailLabels) {
		return nil
	}

	return []lint.Violation{
		newViolation(line, lineNumber, TypeUnlabeledEmail).
			WithMessage("Email address without proper label").
			WithSuggestion("Add 'Email:' label before the address").
			WithFound(email).
			Build(),
	}
}

func (v *Validator) checkPhone(line string, lineNumber int) []lint.Violation {
	phone, ok := v.findPhone(line)
	if !ok {
		return nil
	}

	if !hasLabel(line, v.patterns.PhoneLabels) {
		return []lint.Violation{
			newViolation(line, lineNumber, TypeUnlabeledPhone).
				WithMessage("Phone number without proper label").
				WithSuggestion("Add 'Phone:' label before the number").
				WithFound(phone).
				Build(),
		}
	}

	if isBareDigitRun(phone) {
		return []lint.Violation{
			newViolation(line, lineNumber, TypePhoneFormat).
				WithMessage("Phone number should use standard format").
				WithSuggestion("Use format: (555) 123-4567 or 555-123-4567").
				WithFound(phone).
				Build(),
		}
	}

	return nil
}

// findPhone returns the first phone-like match that is not part of a year range.
func (v *Validator) findPhone(line string) (string, bool) {
	for _, loc := range v.patterns.Phone.FindAllStringIndex(line, -1) {
		if isYearRange(line, loc[0], loc[1]) {
			continue
		}
		return line[loc[0]:loc[1]], true
	}
	return "", false
}

// isYearRange reports whether line[start:end] is the tail of a "YYYY-YYYY" span.
// The phone pattern matches "021-2022" inside "(2021-2022)"; a digit just before
// the match and a closing delimiter just after identify the year range.
func isYearRange(line string, start, end int) bool {
	m := line[start:end]
	if len(m) != 8 || m[3] != '-' || !allDigits(m[:3]) || !allDigits(m[4:]) {
		return false
	}
	if start == 0 || !isDigit(line[start-1]) {
		return false
	}
	if end == len(line) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(line[end:])
	switch next {
	case ')', ',', ':', '.':
		return true
	}
	return unicode.IsSpace(next)
}

// isBareDigitRun reports a number written as ten or more digits with no
// dash, space, or parenthesis separators.
func isBareDigitRun(phone string) bool {
	if strings.ContainsAny(phone, "- ()") {
		return false
	}
	cleaned := strings.ReplaceAll(phone, ".", "")
	return len(cleaned) >= 10 && allDigits(cleaned[:10])
}

func (v *Validator) checkURL(line string, lineNumber int) []lint.Violation {
	if v.patterns.URL.MatchString(line) {
		return nil
	}

	bare := v.patterns.BareURL.FindString(line)
	if bare == "" {
		return nil
	}

	if !hasLabel(line, v.patterns.URLLabels) {
		return []lint.Violation{
			newViolation(line, lineNumber, TypeUnlabeledURL).
				WithMessage("URL without proper label").
				WithSuggestion("Add appropriate label (LinkedIn:, GitHub:, Website:)").
				WithFound(bare).
				Build(),
		}
	}

	return []lint.Violation{
		newViolation(line, lineNumber, TypeURLProtocol).
			WithMessage("URL should include https:// protocol").
			WithSuggestion("Add https:// to the beginning of the URL").
			WithFound(bare).
			Build(),
	}
}

func (v *Validator) checkEmojiLabel(line string, lineNumber int) []lint.Violation {
	stripped := strings.TrimSpace(line)
	first, size := utf8.DecodeRuneInString(stripped)
	if size == 0 || !unicode.Is(v.patterns.LabelEmoji, first) {
		return nil
	}

	rest := stripped[size:]
	for {
		r, n := utf8.DecodeRuneInString(rest)
		if n == 0 || !unicode.Is(v.patterns.Modifiers, r) {
			break
		}
		rest = rest[n:]
	}
	if rest == "" {
		return nil
	}

	lowerRest := strings.ToLower(rest)
	if !v.hasIndicator(lowerRest) {
		return nil
	}
	if !strings.HasPrefix(rest, " ") && !v.startsWithIndicator(lowerRest) {
		return nil
	}

	return []lint.Violation{
		newViolation(line, lineNumber, TypeEmojiLabel).
			WithMessage("Emoji used instead of text label").
			WithSuggestion("Use text labels like 'Email:', 'Phone:', 'LinkedIn:'").
			WithFound(string(first)).
			Build(),
	}
}

func (v *Validator) hasIndicator(s string) bool {
	for _, ind := range v.patterns.Indicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}

func (v *Validator) startsWithIndicator(s string) bool {
	for _, ind := range v.patterns.Indicators {
		if strings.HasPrefix(s, ind) {
			return true
		}
	}
	return false
}

// hasLabel reports whether the text before the first colon contains one of
// labels as a whole word, ignoring case. "Hotel" does not carry the "tel" label.
// Lines without a colon have no label.
func hasLabel(line string, labels []string) bool {
	prefix, _, found := strings.Cut(line, ":")
	if !found {
		return false
	}

	words := strings.FieldsFunc(strings.ToLower(prefix), func(r rune) bool {
		return r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, word := range words {
		for _, label := range labels {
			if word == label {
				return true
			}
		}
	}
	return false
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
