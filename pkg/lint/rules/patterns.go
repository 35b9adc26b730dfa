package rules

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
)

// Patterns holds the compiled detection tables shared by the rules.
// A Patterns value is built once and only read afterwards.
type Patterns struct {
	// Emoji covers the pictographic and symbol blocks that ATS parsers drop.
	Emoji *unicode.RangeTable

	// Allowed lists symbols that are never reported even if a range covers them.
	Allowed map[rune]bool

	MarkdownTable *regexp.Regexp
	HTMLTable     *regexp.Regexp
	HTMLComment   *regexp.Regexp

	// SmartPunctuation maps each typographic character to its finding type and ASCII replacement.
	SmartPunctuation map[rune]Replacement

	CapsWord   *regexp.Regexp
	CapsLine   *regexp.Regexp
	Acronyms   map[string]bool
	Creative   *regexp.Regexp
	SeasonDate *regexp.Regexp
	YearRange  *regexp.Regexp
	Header     *regexp.Regexp

	// StandardHeaders is the canonical set of level-2 section names.
	StandardHeaders map[string]bool

	// StuffingKeywords lists the watched keywords with their word-boundary patterns.
	StuffingKeywords []Keyword
}

// Replacement describes a smart punctuation character.
type Replacement struct {
	Type  string
	ASCII string
}

// Keyword is a term watched for repetition within one line.
type Keyword struct {
	Word    string
	Pattern *regexp.Regexp
}

// Finding types for smart punctuation.
const (
	TypeSmartQuotes = "Smart Quotes"
	TypeEmDash      = "Em Dash"
	TypeEnDash      = "En Dash"
	TypeEllipsis    = "Ellipsis"
)

// stuffingThreshold is the per-line occurrence count a keyword may reach before it is reported.
const stuffingThreshold = 2

//nolint:gochecknoglobals // Compiled once, read-only.
var defaultPatterns = sync.OnceValue(NewPatterns)

// DefaultPatterns returns the shared compiled pattern set.
func DefaultPatterns() *Patterns {
	return defaultPatterns()
}

// NewPatterns compiles a fresh pattern set.
func NewPatterns() *Patterns {
	p := &Patterns{
		Emoji: &unicode.RangeTable{
			R16: []unicode.Range16{
				{Lo: 0x2190, Hi: 0x21FF, Stride: 1}, // arrows
				{Lo: 0x2600, Hi: 0x26FF, Stride: 1}, // miscellaneous symbols
				{Lo: 0x2700, Hi: 0x27BF, Stride: 1}, // dingbats
			},
			R32: []unicode.Range32{
				{Lo: 0x1F1E0, Hi: 0x1F1FF, Stride: 1}, // regional indicators
				{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
				{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
				{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
				{Lo: 0x1F700, Hi: 0x1F77F, Stride: 1},
				{Lo: 0x1F780, Hi: 0x1F7FF, Stride: 1},
				{Lo: 0x1F800, Hi: 0x1F8FF, Stride: 1},
				{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
				{Lo: 0x1FA00, Hi: 0x1FA6F, Stride: 1},
				{Lo: 0x1FA70, Hi: 0x1FAFF, Stride: 1},
			},
		},
		Allowed: map[rune]bool{
			'$': true, '€': true, '£': true, '¥': true, '¢': true, '°': true, '&': true,
		},

		MarkdownTable: regexp.MustCompile(`^\s*\|.*\|.*$`),
		HTMLTable:     regexp.MustCompile(`(?is)<table[^>]*>.*?</table>`),
		HTMLComment:   regexp.MustCompile(`(?s)<!--.*?-->`),

		SmartPunctuation: map[rune]Replacement{
			'‘': {Type: TypeSmartQuotes, ASCII: "'"},
			'’': {Type: TypeSmartQuotes, ASCII: "'"},
			'“': {Type: TypeSmartQuotes, ASCII: `"`},
			'”': {Type: TypeSmartQuotes, ASCII: `"`},
			'—': {Type: TypeEmDash, ASCII: "-"},
			'–': {Type: TypeEnDash, ASCII: "-"},
			'…': {Type: TypeEllipsis, ASCII: "..."},
		},

		CapsWord: regexp.MustCompile(`[A-Z][A-Z0-9]*`),
		CapsLine: regexp.MustCompile(`^[A-Z0-9\s.,:;!?'"()&/+\-]+$`),
		Acronyms: wordSet(
			"API", "AWS", "GCP", "HTML", "CSS", "SQL", "JSON", "XML", "YAML", "REST",
			"HTTP", "HTTPS", "CI", "CD", "UI", "UX", "QA", "IT", "AI", "ML", "NLP",
			"SDK", "CLI", "OS", "IOS", "TCP", "IP", "DNS", "SAAS", "B2B", "KPI",
			"ROI", "CRM", "ERP", "MBA", "PHD", "BS", "MS", "BA", "MA", "BSC", "MSC",
			"CEO", "CTO", "CFO", "COO", "CIO", "VP", "SVP", "HR", "PM",
			"USA", "US", "UK", "EU", "NYC", "SF", "LA",
			"PMP", "CPA", "CFA", "GPA", "GDPR", "HIPAA", "SOC",
		),

		// Multi-word titles come first so alternation prefers them.
		Creative: regexp.MustCompile(`(?i)\b(rock star|thought leader|growth hacker|code monkey|ninja|wizard|guru|rockstar|champion|hero|jedi|evangelist|superstar|unicorn|expert|master|specialist)\b`),

		SeasonDate: regexp.MustCompile(`(?i)\b(early|mid|late|spring|summer|fall|autumn|winter)\s+((?:19|20)\d{2})\s*(?:[-–—]|to)\s*(?:(?:(?:early|mid|late|spring|summer|fall|autumn|winter)\s+)?(?:19|20)\d{2}|present|current)\b`),
		YearRange:  regexp.MustCompile(`(\()?\b((?:19|20)\d{2})\s*[-–]\s*((?:19|20)\d{2})\b(\))?`),

		// A closing "#" sequence must be separated by whitespace, so "## C#" keeps its "#".
		Header: regexp.MustCompile(`^##\s+(.+?)(?:\s+#+)?\s*$`),
		StandardHeaders: wordSet(
			"Professional Summary", "Summary", "Objective",
			"Work Experience", "Professional Experience", "Experience",
			"Technical Skills", "Skills", "Core Competencies",
			"Education", "Certifications", "Projects", "Awards", "Publications",
			"Volunteer Experience", "Languages", "Contact Information", "References",
		),
	}

	for _, word := range []string{"software", "development", "programming", "coding", "engineer", "developer"} {
		p.StuffingKeywords = append(p.StuffingKeywords, Keyword{
			Word:    word,
			Pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`),
		})
	}

	return p
}

// IsEmoji reports whether r is a reportable emoji or symbol.
func (p *Patterns) IsEmoji(r rune) bool {
	return !p.Allowed[r] && unicode.Is(p.Emoji, r)
}

// IsStandardHeader reports whether name is in the canonical section set.
func (p *Patterns) IsStandardHeader(name string) bool {
	return p.StandardHeaders[strings.TrimSpace(name)]
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
