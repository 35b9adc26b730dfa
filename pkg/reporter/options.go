package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/atslint/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowContext includes the source line under each violation.
	ShowContext bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is.
	WorkingDir string

	// RunID identifies the run in JSON and SARIF output. Empty generates one.
	RunID string

	// ToolVersion is reported as the SARIF driver version.
	ToolVersion string

	// Rules describes the catalog for SARIF output. Nil uses config.DefaultRuleInfoProvider.
	Rules []config.RuleInfo
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowContext: true,
		ShowSummary: true,
		Compact:     false,
		ToolVersion: "dev",
	}
}

func (o Options) ruleInfos() []config.RuleInfo {
	if o.Rules != nil {
		return o.Rules
	}
	if config.DefaultRuleInfoProvider != nil {
		return config.DefaultRuleInfoProvider()
	}
	return nil
}
