package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies Ignore slice", func(t *testing.T) {
		t.Parallel()
		original := &config.Config{Ignore: []string{"drafts/**", "old/*.md"}}

		clone := original.Clone()
		require.NotNil(t, clone)
		clone.Ignore[0] = "changed"

		assert.Equal(t, "drafts/**", original.Ignore[0])
	})

	t.Run("copies nested convert settings", func(t *testing.T) {
		t.Parallel()
		original := config.NewConfig()
		original.Convert.CSS = "custom.css"

		clone := original.Clone()
		clone.Convert.CSS = "other.css"

		assert.Equal(t, "custom.css", original.Convert.CSS)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.NewConfig()
	original.FailOnWarning = true
	original.Jobs = 4
	original.Ignore = []string{"drafts/**"}
	original.Convert.DocumentType = config.DocumentProfile
	original.Convert.PDFEngine = config.ChromeEngine

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestFromYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("format: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	out := config.GenerateTemplate(config.TemplateOptions{})

	parsed, err := config.FromYAML(out)
	require.NoError(t, err)
	assert.Equal(t, config.FormatText, parsed.Format)
	assert.Equal(t, config.DocumentCoverLetter, parsed.Convert.DocumentType)
	assert.Equal(t, config.DefaultPDFEngine, parsed.Convert.PDFEngine)
	assert.Contains(t, string(out), "# atslint configuration")
}
