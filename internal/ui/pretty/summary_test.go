package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/atslint/internal/ui/pretty"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/runner"
)

func counts(critical, high, medium, low int) lint.Counts {
	return lint.Counts{
		config.SeverityCritical: critical,
		config.SeverityHigh:     high,
		config.SeverityMedium:   medium,
		config.SeverityLow:      low,
	}
}

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:  10,
		FilesWithIssues: 3,
		ViolationsTotal: 15,
		BySeverity:      counts(5, 0, 10, 0),
	}

	result := styles.FormatSummary(stats, config.StatusFail)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files checked:     10")
	assert.Contains(t, result, "Files with issues: 3")
	assert.Contains(t, result, "Total violations:  15")
	assert.Contains(t, result, "Critical:       5")
	assert.Contains(t, result, "Medium:         10")
	assert.NotContains(t, result, "High:")
	assert.Contains(t, result, "ATS validation failed")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{FilesProcessed: 5, BySeverity: counts(0, 0, 0, 0)}

	result := styles.FormatSummary(stats, config.StatusPass)

	assert.Contains(t, result, "ATS validation passed")
	assert.NotContains(t, result, "Files with issues:")
	assert.NotContains(t, result, "Files unreadable:")
}

func TestFormatSummary_Errored(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSummary(runner.Stats{FilesProcessed: 1, FilesErrored: 2}, config.StatusPass)

	assert.Contains(t, result, "Files unreadable:  2")
}

func TestFormatOutcome(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "ATS validation passed", styles.FormatOutcome(config.StatusPass))
	assert.Equal(t, "ATS validation passed with warnings", styles.FormatOutcome(config.StatusWarning))
	assert.Contains(t, styles.FormatOutcome(config.StatusFail), "critical issues must be fixed")
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 1, BySeverity: counts(0, 0, 0, 0)},
			want:  "No ATS issues found (1 file checked)\n",
		},
		{
			name: "mixed severities",
			stats: runner.Stats{
				FilesProcessed:  3,
				FilesWithIssues: 2,
				ViolationsTotal: 5,
				BySeverity:      counts(1, 2, 0, 2),
			},
			want: "5 violations (1 critical, 2 high, 2 low) in 2 files\n",
		},
		{
			name: "single violation with unreadable file",
			stats: runner.Stats{
				FilesProcessed:  1,
				FilesWithIssues: 1,
				FilesErrored:    1,
				ViolationsTotal: 1,
				BySeverity:      counts(0, 0, 1, 0),
			},
			want: "1 violation (1 medium) in 1 file, 1 unreadable\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}
