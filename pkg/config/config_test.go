package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
)

func TestSeverityRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		severity config.Severity
		want     int
	}{
		{config.SeverityCritical, 0},
		{config.SeverityHigh, 1},
		{config.SeverityMedium, 2},
		{config.SeverityLow, 3},
		{config.Severity("bogus"), 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.severity.Rank())
		})
	}
}

func TestSeverities_Ordered(t *testing.T) {
	t.Parallel()

	sevs := config.Severities()
	require.Len(t, sevs, 4)
	for i := 1; i < len(sevs); i++ {
		assert.Less(t, sevs[i-1].Rank(), sevs[i].Rank())
	}

	// Mutating the returned slice must not affect later calls.
	sevs[0] = config.SeverityLow
	assert.Equal(t, config.SeverityCritical, config.Severities()[0])
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	got, err := config.ParseSeverity(" high ")
	require.NoError(t, err)
	assert.Equal(t, config.SeverityHigh, got)

	_, err = config.ParseSeverity("warning")
	require.Error(t, err)
}

func TestSeverityLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Critical", config.SeverityCritical.Label())
	assert.Equal(t, "Low", config.SeverityLow.Label())
	assert.Empty(t, config.Severity("").Label())
}
