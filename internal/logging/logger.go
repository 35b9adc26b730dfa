// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Package-level logger is intentional for convenience
var (
	defaultMu     sync.RWMutex
	defaultLogger *log.Logger
)

// New creates a new logger writing to stderr with the specified level.
// Valid levels: "debug", "info", "warn", "error". Anything else means info.
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	setLoggerLevel(logger, level)

	return logger
}

// NewInteractive creates an info-level logger for command output aimed at people:
// prefixed with the program name and without timestamps.
func NewInteractive() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "atslint",
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	logger.SetLevel(log.InfoLevel)
	return logger
}

func setLoggerLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "info":
		logger.SetLevel(log.InfoLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	defaultMu.RLock()
	logger := defaultLogger
	defaultMu.RUnlock()
	if logger != nil {
		return logger
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault sets the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel updates the log level of the default logger.
func SetLevel(level string) {
	setLoggerLevel(Default(), level)
}
