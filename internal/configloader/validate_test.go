package configloader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/atslint/pkg/config"
)

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	result := Validate(config.NewConfig())
	if !result.Valid() {
		t.Fatalf("defaults should be valid: %v", result.AllMessages())
	}
	if result.HasWarnings() {
		t.Errorf("defaults should not warn: %v", result.AllMessages())
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "format", mutate: func(c *config.Config) { c.Format = "xml" }, field: "format"},
		{name: "jobs", mutate: func(c *config.Config) { c.Jobs = -1 }, field: "jobs"},
		{name: "document type", mutate: func(c *config.Config) { c.Convert.DocumentType = "poster" }, field: "convert.document_type"},
		{name: "empty engine", mutate: func(c *config.Config) { c.Convert.PDFEngine = "" }, field: "convert.pdf_engine"},
		{name: "empty templates", mutate: func(c *config.Config) { c.Convert.TemplatesDir = "" }, field: "convert.templates_dir"},
		{name: "bad glob", mutate: func(c *config.Config) { c.Ignore = []string{"drafts/[a"} }, field: "ignore[0]"},
		{name: "blank glob", mutate: func(c *config.Config) { c.Ignore = []string{"ok/*", " "} }, field: "ignore[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.NewConfig()
			tt.mutate(cfg)

			result := Validate(cfg)
			if result.Valid() {
				t.Fatal("expected validation error")
			}
			if result.Errors[0].Field != tt.field {
				t.Errorf("field = %q, want %q", result.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidate_OneOfMessage(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Format = "xml"

	result := Validate(cfg)
	if result.Valid() {
		t.Fatal("expected error")
	}
	msg := result.Errors[0].Message
	if !strings.Contains(msg, `"xml"`) || !strings.Contains(msg, "text, json, sarif") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestValidate_CSSWarning(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := config.NewConfig()
	cfg.Convert.CSS = filepath.Join(dir, "missing.css")

	result := Validate(cfg)
	if !result.Valid() || !result.HasWarnings() {
		t.Fatalf("expected a warning only, got %v", result.AllMessages())
	}

	present := filepath.Join(dir, "brand.css")
	if err := os.WriteFile(present, []byte("body {}"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}
	cfg.Convert.CSS = present
	if Validate(cfg).HasWarnings() {
		t.Error("existing stylesheet should not warn")
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Jobs = -2

	result := ValidateWithFile(cfg, ".atslint.yml")
	if result.Valid() {
		t.Fatal("expected error")
	}
	got := result.Errors[0].Error()
	if !strings.HasPrefix(got, ".atslint.yml: jobs: ") {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Field: "format", Message: "bad", FilePath: "a.yml", Line: 3}
	if got := err.Error(); got != "a.yml:3: format: bad" {
		t.Errorf("Error() = %q", got)
	}

	err = &ValidationError{Message: "bad"}
	if got := err.Error(); got != "bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	if !Validate(nil).Valid() {
		t.Error("nil config should validate")
	}
}

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	if !IsValidFormat(config.FormatHTML) {
		t.Error("html should be valid")
	}
	if IsValidFormat("table") {
		t.Error("table should not be valid")
	}
}
