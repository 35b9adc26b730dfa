package configloader

import (
	"slices"

	"github.com/yaklabco/atslint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Booleans: only true overrides, so a later layer cannot unset an earlier one
//   - Slices: override replaces base entirely if override is non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Report != "" {
		result.Report = override.Report
	}
	if override.FailOnWarning {
		result.FailOnWarning = true
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	result.Convert = mergeConvert(base.Convert, override.Convert)

	return &result
}

// mergeConvert merges the convert section field by field.
func mergeConvert(base, override config.ConvertConfig) config.ConvertConfig {
	result := base

	if override.DocumentType != "" {
		result.DocumentType = override.DocumentType
	}
	if override.CSS != "" {
		result.CSS = override.CSS
	}
	if override.PDFEngine != "" {
		result.PDFEngine = override.PDFEngine
	}
	if override.TemplatesDir != "" {
		result.TemplatesDir = override.TemplatesDir
	}
	if override.TmpDir != "" {
		result.TmpDir = override.TmpDir
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
