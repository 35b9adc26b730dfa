package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// containerTmpDir is preferred for intermediate files when it exists.
const containerTmpDir = "/app/tmp"

// Options describes one conversion.
type Options struct {
	// Input is the Markdown source.
	Input string `validate:"required"`

	// Output is the PDF path. Empty uses Input with a .pdf extension.
	Output string

	// DocumentType selects the built-in stylesheet.
	DocumentType config.DocumentType `validate:"required,oneof=cover-letter profile"`

	// CSS is a custom stylesheet that overrides DocumentType.
	CSS string

	// Metadata passed to the engine when set.
	Title  string
	Author string
	Date   string

	// PDFEngine is a pandoc --pdf-engine value, or config.ChromeEngine.
	PDFEngine string `validate:"required"`

	// TemplatesDir holds the document-type stylesheets.
	TemplatesDir string `validate:"required"`

	// TmpDir holds the preprocessed Markdown. Empty selects /app/tmp or ./tmp.
	TmpDir string
}

// OptionsFromConfig seeds conversion options from the convert section of cfg.
func OptionsFromConfig(cfg config.ConvertConfig, input string) Options {
	return Options{
		Input:        input,
		DocumentType: cfg.DocumentType,
		CSS:          cfg.CSS,
		PDFEngine:    cfg.PDFEngine,
		TemplatesDir: cfg.TemplatesDir,
		TmpDir:       cfg.TmpDir,
	}
}

// Validate checks the options' struct constraints.
func (o Options) Validate() error {
	err := validator.New().Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q",
				strings.ToLower(fe.Field()), fe.Param(), fmt.Sprint(fe.Value())))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// OutputPath returns Output, or Input with its extension replaced by .pdf.
func (o Options) OutputPath() string {
	if o.Output != "" {
		return o.Output
	}
	return strings.TrimSuffix(o.Input, filepath.Ext(o.Input)) + ".pdf"
}

// TempDir returns the directory for intermediate files.
func (o Options) TempDir() string {
	if o.TmpDir != "" {
		return o.TmpDir
	}
	if fsutil.Exists(containerTmpDir) {
		return containerTmpDir
	}
	return "tmp"
}

// PreprocessedPath returns the intermediate Markdown path for Input.
func (o Options) PreprocessedPath() string {
	stem := strings.TrimSuffix(filepath.Base(o.Input), filepath.Ext(o.Input))
	return filepath.Join(o.TempDir(), stem+".preprocessed.md")
}
