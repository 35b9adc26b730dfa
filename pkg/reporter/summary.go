package reporter

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/atslint/internal/ui/pretty"
	"github.com/yaklabco/atslint/pkg/analysis"
	"github.com/yaklabco/atslint/pkg/config"
)

// Table layout constants for summary output.
const (
	tableWidth        = 90 // Width of table separators.
	nameColWidth      = 34 // Width of the rule and type name columns.
	fileColWidth      = 50 // Width of the file path column.
	numColWidth       = 7  // Width of numeric columns.
	sevColWidth       = 9  // Width of the severity and status columns.
	maxNameLength     = 32 // Maximum characters for a name before truncation.
	maxFilePathLength = 48 // Maximum characters for a file path before truncation.
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// SummaryRenderer formats results as aggregated summary tables.
type SummaryRenderer struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryRenderer creates a new summary renderer.
func NewSummaryRenderer(opts Options) *SummaryRenderer {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryRenderer{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Render implements Renderer.
func (r *SummaryRenderer) Render(_ context.Context, report *analysis.Report) error {
	if !report.Totals.HasIssues() {
		fmt.Fprintln(r.out, r.styles.Success.Render("No ATS compatibility issues found!"))
		r.renderTotals(report.Totals, report.Status)
		return nil
	}

	r.renderSeverityTable(report.Totals)
	fmt.Fprintln(r.out)
	r.renderRuleTable(report.ByRule)
	fmt.Fprintln(r.out)
	r.renderTypeTable(typeCounts(report))
	fmt.Fprintln(r.out)
	r.renderFileTable(report.ByFile)
	fmt.Fprintln(r.out)
	r.renderTotals(report.Totals, report.Status)

	return nil
}

func (r *SummaryRenderer) header(title string, columns ...string) {
	fmt.Fprintln(r.out, r.styles.Bold.Render(title))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
	styled := make([]string, len(columns))
	for i, col := range columns {
		styled[i] = r.styles.TableHeader.Render(col)
	}
	fmt.Fprintln(r.out, strings.Join(styled, " "))
	fmt.Fprintln(r.out, r.styles.TableSeparator.Render(strings.Repeat("─", tableWidth)))
}

func (r *SummaryRenderer) renderSeverityTable(totals analysis.Totals) {
	r.header("Severity Summary",
		padRight("Severity", nameColWidth),
		padLeft("Count", numColWidth),
	)

	for _, sev := range config.Severities() {
		n := totals.Count(sev)
		label := padRight(string(sev), nameColWidth)
		if n > 0 {
			label = r.styles.Severity(sev).Render(label)
		}
		fmt.Fprintf(r.out, "%s %s\n", label, padLeft(strconv.Itoa(n), numColWidth))
	}
}

func (r *SummaryRenderer) renderRuleTable(rules []analysis.RuleAnalysis) {
	if len(rules) == 0 {
		return
	}

	r.header("Rules Summary",
		padRight("Rule", nameColWidth),
		padRight("Severity", sevColWidth),
		padLeft("Count", numColWidth),
		padLeft("Files", numColWidth),
	)

	for _, rule := range rules {
		name := rule.RuleID
		if rule.RuleName != "" {
			name += " " + rule.RuleName
		}

		fmt.Fprintf(r.out, "%s %s %s %s\n",
			truncateRight(name, maxNameLength, nameColWidth),
			r.styles.Severity(rule.Severity).Render(padRight(string(rule.Severity), sevColWidth)),
			padLeft(strconv.Itoa(rule.Violations), numColWidth),
			padLeft(strconv.Itoa(len(rule.Files)), numColWidth),
		)
	}
}

type typeCount struct {
	name     string
	severity config.Severity
	count    int
}

// typeCounts tallies violations by finding type, most severe then most frequent first.
func typeCounts(report *analysis.Report) []typeCount {
	index := make(map[string]int)
	var counts []typeCount
	for _, v := range report.Violations {
		i, ok := index[v.Type]
		if !ok {
			i = len(counts)
			index[v.Type] = i
			counts = append(counts, typeCount{name: v.Type, severity: v.Severity})
		}
		counts[i].count++
	}

	slices.SortFunc(counts, func(a, b typeCount) int {
		return cmp.Or(
			cmp.Compare(a.severity.Rank(), b.severity.Rank()),
			cmp.Compare(b.count, a.count),
			cmp.Compare(a.name, b.name),
		)
	})
	return counts
}

func (r *SummaryRenderer) renderTypeTable(types []typeCount) {
	if len(types) == 0 {
		return
	}

	r.header("Violation Types",
		padRight("Type", nameColWidth),
		padRight("Severity", sevColWidth),
		padLeft("Count", numColWidth),
	)

	for _, tc := range types {
		fmt.Fprintf(r.out, "%s %s %s\n",
			truncateRight(tc.name, maxNameLength, nameColWidth),
			r.styles.Severity(tc.severity).Render(padRight(string(tc.severity), sevColWidth)),
			padLeft(strconv.Itoa(tc.count), numColWidth),
		)
	}
}

// renderFileTable lists only documents with findings.
func (r *SummaryRenderer) renderFileTable(all []analysis.FileAnalysis) {
	files := slices.DeleteFunc(slices.Clone(all), func(fa analysis.FileAnalysis) bool {
		return fa.Violations == 0
	})
	if len(files) == 0 {
		return
	}

	r.header("Files Summary",
		padRight("File", fileColWidth),
		padRight("Status", sevColWidth),
		padLeft("Crit", numColWidth-2),
		padLeft("High", numColWidth-2),
		padLeft("Med", numColWidth-2),
		padLeft("Low", numColWidth-2),
	)

	for _, file := range files {
		path := file.Path
		if runes := []rune(path); len(runes) > maxFilePathLength {
			path = "…" + string(runes[len(runes)-(maxFilePathLength-1):])
		}

		fmt.Fprintf(r.out, "%s %s %s %s %s %s\n",
			padRight(path, fileColWidth),
			r.styledStatus(file.Status, padRight(string(file.Status), sevColWidth)),
			padLeft(strconv.Itoa(file.Counts[config.SeverityCritical]), numColWidth-2),
			padLeft(strconv.Itoa(file.Counts[config.SeverityHigh]), numColWidth-2),
			padLeft(strconv.Itoa(file.Counts[config.SeverityMedium]), numColWidth-2),
			padLeft(strconv.Itoa(file.Counts[config.SeverityLow]), numColWidth-2),
		)
	}
}

func (r *SummaryRenderer) styledStatus(status config.Status, text string) string {
	switch status {
	case config.StatusFail:
		return r.styles.Failure.Render(text)
	case config.StatusWarning:
		return r.styles.Warning.Render(text)
	default:
		return r.styles.Success.Render(text)
	}
}

func (r *SummaryRenderer) renderTotals(totals analysis.Totals, status config.Status) {
	violationWord := "violations"
	if totals.Violations == 1 {
		violationWord = "violation"
	}
	fileWord := "files"
	if totals.Files == 1 {
		fileWord = "file"
	}

	line := fmt.Sprintf("%d %s in %d %s checked", totals.Violations, violationWord, totals.Files, fileWord)
	if totals.FilesErrored > 0 {
		line += fmt.Sprintf(" (%d unreadable)", totals.FilesErrored)
	}

	fmt.Fprintln(r.out, r.styles.Bold.Render("Total: ")+line)
	fmt.Fprintln(r.out, r.styles.Bold.Render("Status: ")+r.styledStatus(status, string(status)))
}

// truncateRight shortens s to limit runes with an ellipsis, then pads it to width.
func truncateRight(s string, limit, width int) string {
	if runes := []rune(s); len(runes) > limit {
		s = string(runes[:limit]) + "…"
	}
	return padRight(s, width)
}
