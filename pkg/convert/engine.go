package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/yaklabco/atslint/internal/logging"
)

// Job is the input to a PDF engine.
type Job struct {
	// Markdown is the preprocessed source path.
	Markdown string

	// Output is the PDF path to write.
	Output string

	// CSS is the stylesheet path.
	CSS string

	Title  string
	Author string
	Date   string
}

// Engine renders a Job to PDF.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string

	// Render writes job.Output. It returns the engine's informational output, if any.
	Render(ctx context.Context, job Job) (string, error)
}

// CommandRunner runs an external program.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// PandocEngine converts through pandoc with the given --pdf-engine backend.
type PandocEngine struct {
	Runner    CommandRunner
	PDFEngine string
}

// NewPandocEngine returns a pandoc engine backed by os/exec.
func NewPandocEngine(pdfEngine string) *PandocEngine {
	return &PandocEngine{Runner: ExecRunner{}, PDFEngine: pdfEngine}
}

// Name implements Engine.
func (e *PandocEngine) Name() string {
	return "pandoc/" + e.PDFEngine
}

// Args returns the pandoc command line for job, without the program name.
func (e *PandocEngine) Args(job Job) []string {
	args := []string{job.Markdown, "-o", job.Output, "--pdf-engine", e.PDFEngine, "--css", job.CSS}

	for _, meta := range []struct{ key, value string }{
		{"title", job.Title},
		{"author", job.Author},
		{"date", job.Date},
	} {
		if meta.value != "" {
			args = append(args, "--metadata", meta.key+"="+meta.value)
		}
	}
	return args
}

// Render implements Engine.
func (e *PandocEngine) Render(ctx context.Context, job Job) (string, error) {
	args := e.Args(job)
	logging.FromContext(ctx).Debug("running pandoc", "args", strings.Join(args, " "))

	stdout, stderr, err := e.Runner.Run(ctx, "pandoc", args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrEngineNotFound
		}
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = strings.TrimSpace(string(stdout))
		}
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: pandoc: %s", ErrConversion, detail)
	}

	return strings.TrimSpace(string(stdout)), nil
}
