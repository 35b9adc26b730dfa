package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/atslint/pkg/convert"
	"github.com/yaklabco/atslint/pkg/document"
)

// Exit codes for atslint.
const (
	// ExitSuccess indicates the run passed its gate.
	ExitSuccess = 0

	// ExitGateFailed indicates validation failed or conversion was blocked.
	ExitGateFailed = 1

	// ExitUsageError covers bad flags, bad configuration, and internal errors.
	ExitUsageError = 2

	// ExitInputError indicates unreadable input or a failed conversion.
	ExitInputError = 3
)

// Sentinel errors that carry an exit status rather than a message for the user.
var (
	// ErrViolationsFound is returned when the validation gate fails.
	ErrViolationsFound = errors.New("ATS violations found")

	// ErrConversionBlocked is returned when findings stop a conversion.
	ErrConversionBlocked = errors.New("conversion blocked by ATS violations")

	// ErrUnreadableInput is returned when one or more inputs could not be validated.
	ErrUnreadableInput = errors.New("one or more inputs could not be read")
)

// IsSilent reports whether err is an exit signal whose cause has already been printed.
func IsSilent(err error) bool {
	return errors.Is(err, ErrViolationsFound) || errors.Is(err, ErrConversionBlocked)
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrViolationsFound), errors.Is(err, ErrConversionBlocked):
		return ExitGateFailed
	case errors.Is(err, ErrUnreadableInput),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, document.ErrNotFound),
		errors.Is(err, document.ErrBinaryContent),
		errors.Is(err, document.ErrInvalidEncoding),
		errors.Is(err, document.ErrIsDirectory),
		errors.Is(err, document.ErrPermissionDenied),
		errors.Is(err, convert.ErrValidation),
		errors.Is(err, convert.ErrFileOperation),
		errors.Is(err, convert.ErrConversion),
		errors.Is(err, convert.ErrEngineNotFound):
		return ExitInputError
	default:
		return ExitUsageError
	}
}
