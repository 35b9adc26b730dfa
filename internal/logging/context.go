package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

// FromContext returns the logger carried by ctx. Commands attach one in their
// pre-run hook; library code called without it falls back to Default.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(ctxKey{}).(*log.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger attaches logger to ctx. A nil ctx is treated as context.Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithFields attaches a child of the context logger that adds keyvals to every entry,
// so work on one document or conversion logs its path once.
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}
