package rules

import (
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
)

//nolint:gochecknoinits // Built-in rules populate the default registry on import.
func init() {
	RegisterAll(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return RuleInfos(lint.DefaultRegistry)
	}
}

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Character rules
	registry.Register(NewEmojiRule())            // ATS001
	registry.Register(NewSmartPunctuationRule()) // ATS003

	// Layout and structure rules
	registry.Register(NewTableRule())         // ATS002
	registry.Register(NewSectionHeaderRule()) // ATS009

	// Content rules
	registry.Register(NewAllCapsRule())         // ATS004
	registry.Register(NewCreativeTitleRule())   // ATS005
	registry.Register(NewDateFormatRule())      // ATS006
	registry.Register(NewHiddenTextRule())      // ATS007
	registry.Register(NewKeywordStuffingRule()) // ATS008

	// Contact rules
	registry.Register(NewContactRule()) // ATS010
}

// NewRegistry returns a fresh registry holding every built-in rule.
func NewRegistry() *lint.Registry {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return registry
}

// RuleInfos describes the rules in registry for templates and the rules command.
func RuleInfos(registry *lint.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          r.ID(),
			Name:        r.Name(),
			Description: r.Description(),
			Severity:    r.Severity(),
			Tags:        r.Tags(),
		})
	}
	return infos
}
