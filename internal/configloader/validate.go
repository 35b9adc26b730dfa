package configloader

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "convert.pdf_engine").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., a custom stylesheet that does not exist yet).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

//nolint:gochecknoglobals // Validators are safe for concurrent use once built.
var structValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
})

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	validateStruct(cfg, result)
	validateIgnorePatterns(cfg, result)
	validateConvert(cfg, result)

	return result
}

// validateStruct applies the validate tags declared on config.Config.
func validateStruct(cfg *config.Config, result *ValidationResult) {
	err := structValidator().Struct(cfg)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
		return
	}

	for _, fe := range fieldErrs {
		result.Errors = append(result.Errors, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Value:   fe.Value(),
			Message: fieldMessage(fe),
		})
	}
}

// fieldPath strips the root type name from a validator namespace,
// turning "Config.convert.pdf_engine" into "convert.pdf_engine".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("invalid value %q; must be one of: %s",
			fmt.Sprint(fe.Value()), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be >= %s (0 means auto)", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if strings.TrimSpace(pattern) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: "empty ignore pattern",
			})
			continue
		}
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// validateConvert reports conversion settings that will fail later but need not block checking.
func validateConvert(cfg *config.Config, result *ValidationResult) {
	if cfg.Convert.CSS != "" && !fsutil.Exists(cfg.Convert.CSS) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "convert.css",
			Value:   cfg.Convert.CSS,
			Message: fmt.Sprintf("custom stylesheet %q does not exist", cfg.Convert.CSS),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidFormat returns true if the format is a known output format.
func IsValidFormat(f config.OutputFormat) bool {
	switch f {
	case config.FormatText, config.FormatJSON, config.FormatSARIF,
		config.FormatMarkdown, config.FormatHTML, config.FormatSummary:
		return true
	default:
		return false
	}
}
