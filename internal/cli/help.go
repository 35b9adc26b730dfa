package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/ui/pretty"
)

// helpStyles are the Lipgloss styles used for command help.
type helpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// newHelpStyles derives help styles from the report palette so help and
// findings share colors.
func newHelpStyles(colorEnabled bool) *helpStyles {
	s := pretty.NewStyles(colorEnabled)
	if !colorEnabled {
		return &helpStyles{
			Command: s.Bold, Heading: s.Bold, Subcommand: s.Message, Flag: s.Message,
			Description: s.Message, Example: s.Message, Dim: s.Message,
		}
	}
	return &helpStyles{
		Command:     s.Bold.Foreground(lipgloss.Color("14")),
		Heading:     s.Warning,
		Subcommand:  s.Success.UnsetBold(),
		Flag:        s.Low,
		Description: s.Message,
		Example:     s.Dim,
		Dim:         s.Dim,
	}
}

// HelpFormatter renders styled help output for Cobra commands.
type HelpFormatter struct {
	styles *helpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode and writer.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":            h.styles.Command.Render,
		"styleHeading":            h.styles.Heading.Render,
		"styleSubcommand":         h.styles.Subcommand.Render,
		"styleDescription":        h.styles.Description.Render,
		"styleExample":            h.styles.Example.Render,
		"styleDim":                h.styles.Dim.Render,
		"styleFlagsUsage":         h.styleFlagsUsage,
		"rpad":                    rpad,
		"join":                    strings.Join,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}
  {{if .Runnable}}{{ styleCommand .UseLine }}{{end}}
  {{if .HasAvailableSubCommands}}{{ styleCommand .CommandPath }} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ styleDim (join .Aliases ", ") }}
{{- end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleExample .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ styleDescription .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{if or .Runnable .HasSubCommands}}{{ styleCommand .CommandPath }}{{if .Version}} {{ styleDim .Version }}{{end}}

{{end}}{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// styleFlagsUsage colors the flag names in pflag's usage block.
func (h *HelpFormatter) styleFlagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles one "  -f, --flag type   description" line.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	flagPart, desc, ok := splitFlagLine(trimmed)
	if !ok {
		return line
	}

	tokens := strings.Fields(flagPart)
	for i, token := range tokens {
		if !strings.HasPrefix(token, "-") {
			tokens[i] = h.styles.Dim.Render(token)
			continue
		}
		name, comma := strings.CutSuffix(token, ",")
		tokens[i] = h.styles.Flag.Render(name)
		if comma {
			tokens[i] += ","
		}
	}

	return indent + strings.Join(tokens, " ") + "   " + h.styles.Description.Render(desc)
}

// splitFlagLine splits at the first run of two or more spaces.
func splitFlagLine(line string) (flagPart, desc string, ok bool) {
	idx := strings.Index(line, "  ")
	if idx < 0 {
		return "", "", false
	}
	desc = strings.TrimLeft(line[idx:], " ")
	if desc == "" {
		return "", "", false
	}
	return line[:idx], desc, true
}

// ApplyToCommand installs the styled templates on cmd; subcommands inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.funcs()

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		tmpl, err := template.New("usage").Funcs(funcs).Parse(usageTemplate)
		if err != nil {
			return fmt.Errorf("parse usage template: %w", err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		tmpl, err := template.New("help").Funcs(funcs).Parse(helpTemplate)
		if err != nil {
			command.PrintErrln(err)
			return
		}
		if err := tmpl.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
