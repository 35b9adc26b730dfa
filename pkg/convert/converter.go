package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// Converter runs the preprocess, stylesheet, and engine steps of a conversion.
type Converter struct {
	// Runner executes pandoc. Nil uses ExecRunner.
	Runner CommandRunner

	// Chrome renders when Options.PDFEngine is config.ChromeEngine. Nil uses NewChromeEngine.
	Chrome Engine
}

// Result describes a finished conversion.
type Result struct {
	Input  string
	Output string
	CSS    string
	Engine string

	// EngineOutput is informational text printed by the engine.
	EngineOutput string
}

// New returns a Converter that uses the real pandoc and Chrome engines.
func New() *Converter {
	return &Converter{}
}

// Convert converts opts.Input to PDF. The intermediate Markdown file is removed afterwards.
func (c *Converter) Convert(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx = logging.WithFields(ctx, logging.FieldInput, opts.Input)
	logger := logging.FromContext(ctx)
	start := time.Now()

	preprocessed := opts.PreprocessedPath()
	defer func() {
		if err := os.Remove(preprocessed); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot remove intermediate file", logging.FieldPath, preprocessed, logging.FieldError, err)
		}
	}()

	if err := PreprocessFile(ctx, opts.Input, preprocessed); err != nil {
		return nil, err
	}

	css, err := SelectCSS(ctx, opts.TemplatesDir, opts.DocumentType, opts.CSS)
	if err != nil {
		return nil, err
	}

	engine := c.engine(opts.PDFEngine)
	job := Job{
		Markdown: preprocessed,
		Output:   opts.OutputPath(),
		CSS:      css,
		Title:    opts.Title,
		Author:   opts.Author,
		Date:     opts.Date,
	}

	logger.Debug("converting",
		logging.FieldOutput, job.Output,
		logging.FieldEngine, engine.Name(),
		logging.FieldCSS, css,
	)

	// Engines write the PDF themselves, so the output directory must exist first.
	if err := os.MkdirAll(filepath.Dir(job.Output), fsutil.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: cannot create output directory for %s: %w", ErrFileOperation, job.Output, err)
	}

	engineOutput, err := engine.Render(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", opts.Input, err)
	}

	logger.Debug("conversion finished", logging.FieldOutput, job.Output, logging.FieldDuration, time.Since(start))

	return &Result{
		Input:        opts.Input,
		Output:       job.Output,
		CSS:          css,
		Engine:       engine.Name(),
		EngineOutput: engineOutput,
	}, nil
}

func (c *Converter) engine(pdfEngine string) Engine {
	if pdfEngine == config.ChromeEngine {
		if c.Chrome != nil {
			return c.Chrome
		}
		return NewChromeEngine()
	}

	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	return &PandocEngine{Runner: runner, PDFEngine: pdfEngine}
}
