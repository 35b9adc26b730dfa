// Package analysis turns runner results into the aggregated views that reporters render.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/lint"
	"github.com/yaklabco/atslint/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" || absPath == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	ruleFiles map[string]map[string]bool
	ruleTypes map[string]map[string]bool
	files     []*FileAnalysis
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		ruleTypes: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) rule(v lint.Violation) *RuleAnalysis {
	ra, ok := ctx.ruleMap[v.RuleID]
	if !ok {
		ra = &RuleAnalysis{RuleID: v.RuleID, RuleName: v.RuleName, Severity: v.Severity}
		ctx.ruleMap[v.RuleID] = ra
		ctx.ruleFiles[v.RuleID] = make(map[string]bool)
		ctx.ruleTypes[v.RuleID] = make(map[string]bool)
	}
	if v.Severity.Rank() < ra.Severity.Rank() {
		ra.Severity = v.Severity
	}
	return ra
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		ra.Files = sortedKeys(ctx.ruleFiles[ruleID])
		ra.Types = sortedKeys(ctx.ruleTypes[ruleID])
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	result := make([]FileAnalysis, 0, len(ctx.files))
	for _, fa := range ctx.files {
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

// Analyze transforms a runner.Result into a Report.
// It performs a single pass through violations to compute all views.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		RunID:     opts.RunID,
		Version:   ReportVersion,
		Timestamp: time.Now(),
		Status:    config.StatusPass,
	}
	if report.RunID == "" {
		report.RunID = uuid.NewString()
	}

	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			report.Errors = append(report.Errors, FileError{Path: displayPath, Message: file.Error.Error()})
			continue
		}
		if file.Result == nil {
			continue
		}
		if file.Result.HasIssues() {
			report.Totals.FilesWithIssues++
		}

		fa := &FileAnalysis{
			Path:   displayPath,
			Status: file.Result.Status,
			Counts: lint.CountBySeverity(file.Result.Violations),
		}
		rules := make(map[string]bool)

		for _, v := range file.Result.Violations {
			report.Totals.add(v.Severity)
			fa.Violations++
			rules[v.RuleID] = true

			ra := ctx.rule(v)
			ra.Violations++
			ctx.ruleFiles[v.RuleID][displayPath] = true
			ctx.ruleTypes[v.RuleID][v.Type] = true

			if opts.IncludeViolations {
				v.FilePath = displayPath
				report.Violations = append(report.Violations, v)
			}
		}

		fa.Rules = sortedKeys(rules)
		ctx.files = append(ctx.files, fa)
	}

	report.Status = result.Status()

	if opts.IncludeByRule {
		report.ByRule = ctx.buildByRule(opts)
	}
	if opts.IncludeByFile {
		report.ByFile = ctx.buildByFile(opts)
	}

	return report
}

// GroupBySeverity splits violations into per-severity lists, preserving order.
// Every severity is present in the result, possibly with a nil list.
func GroupBySeverity(violations []lint.Violation) map[config.Severity][]lint.Violation {
	groups := make(map[config.Severity][]lint.Violation, len(config.Severities()))
	for _, sev := range config.Severities() {
		groups[sev] = nil
	}
	for _, v := range violations {
		groups[v.Severity] = append(groups[v.Severity], v)
	}
	return groups
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func sortRuleAnalysis(rules []RuleAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.RuleID, right.RuleID)
		case SortBySeverity:
			return cmp.Or(
				cmp.Compare(left.Severity.Rank(), right.Severity.Rank()),
				cmp.Compare(right.Violations, left.Violations),
				cmp.Compare(left.RuleID, right.RuleID),
			)
		default: // SortByCount
			result := cmp.Compare(left.Violations, right.Violations)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.RuleID, right.RuleID))
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			return cmp.Compare(left.Path, right.Path)
		case SortBySeverity:
			for _, sev := range config.Severities() {
				if c := cmp.Compare(right.Counts[sev], left.Counts[sev]); c != 0 {
					return c
				}
			}
			return cmp.Compare(left.Path, right.Path)
		default: // SortByCount
			result := cmp.Compare(left.Violations, right.Violations)
			if desc {
				result = -result
			}
			return cmp.Or(result, cmp.Compare(left.Path, right.Path))
		}
	})
}
