package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/atslint/pkg/config"
)

// envVarPrefix is the prefix for all atslint environment variables.
const envVarPrefix = "ATSLINT_"

// EnvConfigPath names the variable holding an explicit config file path.
const EnvConfigPath = envVarPrefix + "CONFIG"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":          {field: "format", typ: envTypeString, description: "Output format: text, json, sarif, markdown, html, or summary"},
	"FAIL_ON_WARNING": {field: "fail_on_warning", typ: envTypeBool, description: "Fail on any violation, not just critical ones: true or false"},
	"JOBS":            {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
	"REPORT":          {field: "report", typ: envTypeString, description: "Default validation report path (.md or .html)"},
	"IGNORE":          {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore patterns"},
	"DOCUMENT_TYPE":   {field: "convert.document_type", typ: envTypeString, description: "Stylesheet profile: cover-letter or profile"},
	"CSS":             {field: "convert.css", typ: envTypeString, description: "Custom stylesheet path"},
	"PDF_ENGINE":      {field: "convert.pdf_engine", typ: envTypeString, description: "Pandoc PDF engine, or chrome"},
	"TEMPLATES_DIR":   {field: "convert.templates_dir", typ: envTypeString, description: "Directory holding the built-in stylesheets"},
	"TMP_DIR":         {field: "convert.tmp_dir", typ: envTypeString, description: "Directory for intermediate Markdown"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with ATSLINT_ (e.g., ATSLINT_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "report":
		cfg.Report = value
	case "convert.document_type":
		cfg.Convert.DocumentType = config.DocumentType(value)
	case "convert.css":
		cfg.Convert.CSS = value
	case "convert.pdf_engine":
		cfg.Convert.PDFEngine = value
	case "convert.templates_dir":
		cfg.Convert.TemplatesDir = value
	case "convert.tmp_dir":
		cfg.Convert.TmpDir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "fail_on_warning":
		cfg.FailOnWarning = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes a supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings)+1)
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Field: mapping.field, Description: mapping.description})
	}
	vars = append(vars, EnvVar{Name: EnvConfigPath, Description: "Explicit config file path"})

	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
