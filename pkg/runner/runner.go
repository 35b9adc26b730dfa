package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/document"
	"github.com/yaklabco/atslint/pkg/lint"
)

// Runner validates discovered documents with a lint.Engine.
type Runner struct {
	Engine *lint.Engine
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{Engine: engine}
}

// Run discovers documents under opts.Paths and validates them concurrently.
// Outcomes are returned in path order regardless of completion order.
//
// A document that fails to load is recorded as an errored outcome; it does not
// stop the other documents.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	logger := logging.FromContext(ctx)
	logger.Debug("discovered documents", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldViolations, result.Stats.ViolationsTotal,
	)

	return result, nil
}

// ValidateFile loads and validates a single document.
func (r *Runner) ValidateFile(ctx context.Context, path string) (*lint.FileResult, error) {
	doc, err := document.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return r.Engine.Validate(ctx, doc)
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}
		outcome.Result, outcome.Error = r.ValidateFile(ctx, path)
		if outcome.Error != nil {
			logging.FromContext(ctx).Warn("document skipped",
				logging.FieldPath, path,
				logging.FieldError, outcome.Error,
			)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
