package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldReport     = "report"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig       = "config"
	FieldFormat       = "format"
	FieldJobs         = "jobs"
	FieldEngine       = "engine"
	FieldCSS          = "css"
	FieldDocumentType = "document_type"

	// Validation fields.
	FieldRule       = "rule"
	FieldRules      = "rules"
	FieldCount      = "count"
	FieldStatus     = "status"
	FieldViolations = "violations"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
