// Package cli provides the Cobra command structure for atslint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/convert"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// deps are the collaborators commands construct at run time.
type deps struct {
	newConverter func() *convert.Converter
}

func defaultDeps() deps {
	return deps{newConverter: convert.New}
}

// NewRootCommand creates the root atslint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newRootCommand(info, defaultDeps())
}

func newRootCommand(info BuildInfo, d deps) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "atslint",
		Short: "Check résumés and cover letters for ATS compatibility",
		Long: `atslint checks Markdown résumés and cover letters for content that
Applicant Tracking Systems parse badly: emoji, tables, smart punctuation,
hidden text, unusual section headers, and poorly labeled contact details.

Findings are graded CRITICAL, HIGH, MEDIUM, or LOW. Any CRITICAL finding fails
validation and blocks PDF conversion; HIGH findings produce a warning.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(info.Version))
	rootCmd.AddCommand(newConvertCommand(d, info.Version))
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}
