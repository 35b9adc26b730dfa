package configloader

import (
	"encoding/json"
	"testing"

	"github.com/yaklabco/atslint/pkg/config"
)

func TestSchema_IsJSON(t *testing.T) {
	t.Parallel()

	var doc map[string]any
	if err := json.Unmarshal(Schema(), &doc); err != nil {
		t.Fatalf("embedded schema is not JSON: %v", err)
	}
}

func TestValidateSchema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		valid   bool
		field   string
	}{
		{name: "empty", content: "", valid: true},
		{name: "comment only", content: "# hi\n", valid: true},
		{name: "full", content: "format: html\nfail_on_warning: true\njobs: 4\nignore: [a/*]\nreport: out.md\nconvert:\n  document_type: profile\n  pdf_engine: chrome\n", valid: true},
		{name: "null ignore", content: "ignore:\n", valid: true},
		{name: "unknown root key", content: "rules: {}\n", valid: false},
		{name: "unknown convert key", content: "convert:\n  engine: chrome\n", valid: false, field: "convert"},
		{name: "wrong type", content: "fail_on_warning: yes please\n", valid: false, field: "fail_on_warning"},
		{name: "negative jobs", content: "jobs: -1\n", valid: false, field: "jobs"},
		{name: "bad format", content: "format: table\n", valid: false, field: "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := ValidateSchema([]byte(tt.content))
			if err != nil {
				t.Fatalf("ValidateSchema() error = %v", err)
			}
			if result.Valid() != tt.valid {
				t.Fatalf("Valid() = %v, want %v (%v)", result.Valid(), tt.valid, result.AllMessages())
			}
			if tt.field != "" && result.Errors[0].Field != tt.field {
				t.Errorf("field = %q, want %q", result.Errors[0].Field, tt.field)
			}
		})
	}
}

func TestValidateSchema_AcceptsTemplate(t *testing.T) {
	t.Parallel()

	result, err := ValidateSchema(config.GenerateTemplate(config.TemplateOptions{}))
	if err != nil {
		t.Fatalf("ValidateSchema() error = %v", err)
	}
	if !result.Valid() {
		t.Errorf("template rejected: %v", result.AllMessages())
	}
}

func TestValidateSchema_MalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := ValidateSchema([]byte("format: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
