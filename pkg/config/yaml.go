package config

import (
	"bytes"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// yamlIndent matches the indentation of the generated .atslint.yml template.
const yamlIndent = 2

// ToYAML serializes the configuration in the layout .atslint.yml uses.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
// Fields absent from data are left at their zero values.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone returns a copy that shares no slices with c, so layered merges
// never write through to a lower layer.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	clone.Ignore = slices.Clone(c.Ignore)
	return &clone
}
