package lint

import "github.com/yaklabco/atslint/pkg/config"

// Counts tallies violations per severity.
type Counts map[config.Severity]int

// CountBySeverity tallies violations per severity. Every severity is present in the result.
func CountBySeverity(violations []Violation) Counts {
	counts := make(Counts, len(config.Severities()))
	for _, sev := range config.Severities() {
		counts[sev] = 0
	}
	for _, v := range violations {
		counts[v.Severity]++
	}
	return counts
}

// Evaluate applies the gating contract: any CRITICAL fails, otherwise any HIGH
// warns, otherwise the document passes.
func Evaluate(violations []Violation) config.Status {
	status := config.StatusPass
	for _, v := range violations {
		switch v.Severity {
		case config.SeverityCritical:
			return config.StatusFail
		case config.SeverityHigh:
			status = config.StatusWarning
		}
	}
	return status
}

// ShouldFail reports whether a run should exit unsuccessfully. FAIL always does;
// with failOnWarning, any violation at all does.
func ShouldFail(status config.Status, violationCount int, failOnWarning bool) bool {
	if status == config.StatusFail {
		return true
	}
	return failOnWarning && violationCount > 0
}

// WorstStatus combines per-document statuses into one.
func WorstStatus(statuses ...config.Status) config.Status {
	worst := config.StatusPass
	for _, s := range statuses {
		switch s {
		case config.StatusFail:
			return config.StatusFail
		case config.StatusWarning:
			worst = config.StatusWarning
		}
	}
	return worst
}
