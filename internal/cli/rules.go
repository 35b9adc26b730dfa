package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/lint/rules"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the ATS compatibility rules",
		Long: `List every built-in rule with its ID, name, severity, tags, and description.
All rules are always enabled.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := rules.RuleInfos(lint.DefaultRegistry)

			switch format {
			case formatJSON:
				return writeRulesJSON(cmd.OutOrStdout(), infos)
			case "", "text":
				writeRulesText(cmd.OutOrStdout(), infos)
				return nil
			default:
				return fmt.Errorf("invalid format %q: must be text or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func writeRulesText(w io.Writer, infos []config.RuleInfo) {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.InfoLevel)

	for _, info := range infos {
		logger.Info(info.ID+" "+info.Name,
			logging.FieldSeverity, info.Severity,
			"tags", strings.Join(info.Tags, ","),
			logging.FieldDescription, info.Description,
		)
	}
}

func writeRulesJSON(w io.Writer, infos []config.RuleInfo) error {
	out := make([]ruleInfo, 0, len(infos))
	for _, info := range infos {
		tags := info.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, ruleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
			Tags:        tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
