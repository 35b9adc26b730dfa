package configloader

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

//nolint:gochecknoglobals // Compiled once, read-only.
var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Schema returns the JSON Schema that config files are checked against.
func Schema() []byte {
	return schemaJSON
}

// ValidateSchema checks raw YAML config content against the embedded schema.
// It reports structural problems such as unknown keys or wrong types before the
// content is decoded into a config.Config. Empty documents are valid.
func ValidateSchema(content []byte) (*ValidationResult, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	result := &ValidationResult{}
	if doc == nil {
		return result, nil
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("load config schema: %w", err)
	}

	outcome, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("validate config schema: %w", err)
	}

	for _, desc := range outcome.Errors() {
		field := desc.Field()
		if field == "(root)" {
			field = ""
		}
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   desc.Value(),
			Message: desc.Description(),
		})
	}

	return result, nil
}
