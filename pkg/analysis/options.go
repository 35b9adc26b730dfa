package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by violation count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortBySeverity sorts by the most severe finding first.
	SortBySeverity SortField = "severity"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortBySeverity:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeViolations includes the flat violation list.
	IncludeViolations bool

	// IncludeByFile includes the per-document analysis.
	IncludeByFile bool

	// IncludeByRule includes the per-rule analysis.
	IncludeByRule bool

	// SortBy specifies how to sort ByFile and ByRule.
	SortBy SortField

	// SortDesc sorts counts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string

	// RunID identifies the run in machine-readable reports. Empty generates a random UUID.
	RunID string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeViolations: true,
		IncludeByFile:     true,
		IncludeByRule:     true,
		SortBy:            SortBySeverity,
		SortDesc:          true,
	}
}
