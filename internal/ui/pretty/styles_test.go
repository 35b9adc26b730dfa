package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/internal/ui/pretty"
	"github.com/yaklabco/atslint/pkg/config"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Critical.Render(text), "No-color Critical should not add formatting")
}

func TestStyles_Severity(t *testing.T) {
	styles := pretty.NewStyles(false)

	for _, sev := range config.Severities() {
		assert.Equal(t, "x", styles.Severity(sev).Render("x"), string(sev))
	}
	assert.Equal(t, "x", styles.Severity(config.Severity("bogus")).Render("x"))
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf))
	assert.False(t, pretty.IsColorEnabled("unknown", &buf))
}
