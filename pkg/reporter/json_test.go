package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/reporter"
)

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:     &buf,
		Format:     reporter.FormatJSON,
		WorkingDir: testWorkDir,
		RunID:      testRunID,
	})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), testResult())
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, testRunID, out.RunID)
	assert.Equal(t, config.StatusFail, out.Status)
	assert.Equal(t, 3, out.Summary.Violations)
	assert.Equal(t, 1, out.Summary.Critical)
	assert.Equal(t, 1, out.Summary.FilesErrored)

	require.Len(t, out.Files, 3)
	assert.Equal(t, "letter.md", out.Files[0].Path)
	assert.Equal(t, config.StatusPass, out.Files[0].Status)
	assert.Empty(t, out.Files[0].Violations)

	assert.Equal(t, "resume.md", out.Files[1].Path)
	require.Len(t, out.Files[1].Violations, 3)
	assert.Equal(t, "ATS001", out.Files[1].Violations[0].RuleID)
	assert.Equal(t, "Emoji/Special Character", out.Files[1].Violations[0].Type)

	assert.Equal(t, "broken.md", out.Files[2].Path)
	assert.Contains(t, out.Files[2].Error, "not a text document")
}

func TestJSONReporter_FieldNames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, WorkingDir: testWorkDir})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), testResult())
	require.NoError(t, err)

	out := buf.String()
	for _, key := range []string{`"run_id"`, `"line_number"`, `"violation_type"`, `"found_text"`, `"total_violations"`} {
		assert.Contains(t, out, key)
	}
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, Compact: true})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), cleanResult())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "compact JSON is a single line")
}

func TestJSONReporter_CleanDocumentListed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, WorkingDir: testWorkDir})
	require.NoError(t, err)

	_, err = rep.Report(context.Background(), cleanResult())
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Files, 1)
	assert.Equal(t, "letter.md", out.Files[0].Path)
	assert.Equal(t, config.StatusPass, out.Files[0].Status)
	assert.Empty(t, out.Files[0].Violations)
}
