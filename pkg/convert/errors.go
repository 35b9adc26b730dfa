package convert

import "errors"

// Conversion errors.
var (
	// ErrValidation reports bad conversion input, such as a missing custom stylesheet.
	ErrValidation = errors.New("invalid conversion input")

	// ErrFileOperation reports a failure reading or writing an intermediate file.
	ErrFileOperation = errors.New("file operation failed")

	// ErrConversion reports a PDF engine failure.
	ErrConversion = errors.New("PDF conversion failed")

	// ErrEngineNotFound reports that pandoc is not on PATH.
	ErrEngineNotFound = errors.New("pandoc not found; please ensure it is installed")
)
