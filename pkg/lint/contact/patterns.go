package contact

import (
	"regexp"
	"unicode"
)

// Patterns holds the compiled expressions and label sets used by the validator.
// A Patterns value is built once and only read afterwards.
type Patterns struct {
	Email      *regexp.Regexp
	Obfuscated *regexp.Regexp
	Phone      *regexp.Regexp
	URL        *regexp.Regexp
	BareURL    *regexp.Regexp

	EmailLabels []string
	PhoneLabels []string
	URLLabels   []string

	// LabelEmoji is the set of code points treated as emoji when they open a line.
	LabelEmoji *unicode.RangeTable

	// Modifiers may follow a label emoji without counting as content.
	Modifiers *unicode.RangeTable

	// Indicators mark the remainder of a line as contact information.
	Indicators []string
}

// NewPatterns compiles the contact patterns.
func NewPatterns() *Patterns {
	return &Patterns{
		Email:      regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		Obfuscated: regexp.MustCompile(`(?i)\[at\]|\[dot\]|\(at\)|\(dot\)| AT | DOT `),
		Phone:      regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`),
		URL:        regexp.MustCompile(`(?i)\bhttps?://\S+\b`),
		BareURL:    regexp.MustCompile(`\b\w+\.\w+/\S+\b`),

		EmailLabels: []string{"email", "e-mail", "mail"},
		PhoneLabels: []string{"phone", "tel", "telephone", "mobile", "cell"},
		URLLabels: []string{
			"linkedin", "linked-in", "github", "git-hub",
			"website", "web", "portfolio", "site", "url",
		},

		LabelEmoji: &unicode.RangeTable{
			R16: []unicode.Range16{
				{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // misc symbols (☎)
				{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats (✉)
			},
			R32: []unicode.Range32{
				{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // flags
				{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // symbols and pictographs
				{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
				{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport and map
				{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
			},
		},
		Modifiers: &unicode.RangeTable{
			R16: []unicode.Range16{
				{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero width joiner
				{Lo: 0xFE0F, Hi: 0xFE0F, Stride: 1}, // variation selector 16
			},
			R32: []unicode.Range32{
				{Lo: 0x1F3FB, Hi: 0x1F3FF, Stride: 1}, // skin tones
			},
		},
		Indicators: []string{"@", "com", "org", "net", "phone", "email"},
	}
}
