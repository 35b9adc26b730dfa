package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yaklabco/atslint/pkg/analysis"
	"github.com/yaklabco/atslint/pkg/config"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// SARIF result levels.
const (
	sarifLevelError   = "error"
	sarifLevelWarning = "warning"
	sarifLevelNote    = "note"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool              SARIFTool              `json:"tool"`
	AutomationDetails SARIFAutomationDetails `json:"automationDetails"`
	Results           []SARIFResult          `json:"results"`
	Invocations       []SARIFInvocation      `json:"invocations,omitempty"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFAutomationDetails identifies the run.
type SARIFAutomationDetails struct {
	GUID string `json:"guid"`
}

// SARIFRule describes a catalog rule.
type SARIFRule struct {
	ID               string               `json:"id"`
	Name             string               `json:"name,omitempty"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
	Properties       map[string]any       `json:"properties,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single violation.
type SARIFResult struct {
	RuleID     string          `json:"ruleId"`
	RuleIndex  int             `json:"ruleIndex"`
	Level      string          `json:"level"`
	Message    SARIFMessage    `json:"message"`
	Locations  []SARIFLocation `json:"locations"`
	Properties map[string]any  `json:"properties,omitempty"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a document location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected text region.
type SARIFRegion struct {
	StartLine int           `json:"startLine"`
	Snippet   *SARIFMessage `json:"snippet,omitempty"`
}

// SARIFInvocation reports documents that could not be processed.
type SARIFInvocation struct {
	ExecutionSuccessful        bool                `json:"executionSuccessful"`
	ToolExecutionNotifications []SARIFNotification `json:"toolExecutionNotifications,omitempty"`
}

// SARIFNotification is a tool execution message.
type SARIFNotification struct {
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations,omitempty"`
}

// SARIFRenderer formats reports as SARIF.
type SARIFRenderer struct {
	opts Options
}

// NewSARIFRenderer creates a new SARIF renderer.
func NewSARIFRenderer(opts Options) *SARIFRenderer {
	return &SARIFRenderer{opts: opts}
}

// Render implements Renderer.
func (r *SARIFRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(report)); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func (r *SARIFRenderer) buildOutput(report *analysis.Report) *SARIFOutput {
	version := r.opts.ToolVersion
	if version == "" {
		version = "dev"
	}

	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "atslint",
				Version:        version,
				InformationURI: "https://github.com/yaklabco/atslint",
				Rules:          make([]SARIFRule, 0),
			},
		},
		AutomationDetails: SARIFAutomationDetails{GUID: report.RunID},
		Results:           make([]SARIFResult, 0, len(report.Violations)),
	}

	ruleIndex := make(map[string]int)
	for _, info := range r.opts.ruleInfos() {
		ruleIndex[info.ID] = len(run.Tool.Driver.Rules)
		run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
			ID:               info.ID,
			Name:             info.Name,
			ShortDescription: SARIFMultiformatText{Text: info.Description},
			DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(info.Severity)},
			Properties: map[string]any{
				"severity": string(info.Severity),
				"tags":     info.Tags,
			},
		})
	}

	for _, v := range report.Violations {
		idx, ok := ruleIndex[v.RuleID]
		if !ok {
			idx = len(run.Tool.Driver.Rules)
			ruleIndex[v.RuleID] = idx
			run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
				ID:               v.RuleID,
				Name:             v.RuleName,
				ShortDescription: SARIFMultiformatText{Text: v.Type},
				DefaultConfig:    &SARIFRuleConfig{Level: severityToSARIFLevel(v.Severity)},
			})
		}

		message := v.Message
		if v.Suggestion != "" {
			message += ". " + v.Suggestion
		}

		region := SARIFRegion{StartLine: v.LineNumber}
		if v.LineContent != "" {
			region.Snippet = &SARIFMessage{Text: v.LineContent}
		}

		run.Results = append(run.Results, SARIFResult{
			RuleID:    v.RuleID,
			RuleIndex: idx,
			Level:     severityToSARIFLevel(v.Severity),
			Message:   SARIFMessage{Text: message},
			Locations: []SARIFLocation{{
				PhysicalLocation: SARIFPhysicalLocation{
					ArtifactLocation: SARIFArtifactLocation{URI: toURI(v.FilePath)},
					Region:           &region,
				},
			}},
			Properties: map[string]any{
				"severity":      string(v.Severity),
				"violationType": v.Type,
				"foundText":     v.FoundText,
			},
		})
	}

	if len(report.Errors) > 0 {
		invocation := SARIFInvocation{ExecutionSuccessful: false}
		for _, fe := range report.Errors {
			invocation.ToolExecutionNotifications = append(invocation.ToolExecutionNotifications, SARIFNotification{
				Level:   sarifLevelError,
				Message: SARIFMessage{Text: fe.Message},
				Locations: []SARIFLocation{{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{URI: toURI(fe.Path)},
					},
				}},
			})
		}
		run.Invocations = []SARIFInvocation{invocation}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// severityToSARIFLevel converts an ATS severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityCritical, config.SeverityHigh:
		return sarifLevelError
	case config.SeverityMedium:
		return sarifLevelWarning
	case config.SeverityLow:
		return sarifLevelNote
	default:
		return sarifLevelWarning
	}
}

// toURI converts an OS path to a SARIF relative URI.
func toURI(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
