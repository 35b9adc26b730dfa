// Package runner validates many documents concurrently.
package runner

import "github.com/yaklabco/atslint/pkg/config"

// Options controls multi-file validation.
type Options struct {
	// Paths are the user-specified files or directories. Empty means the working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts directory walks to these extensions (lowercase, with
	// leading dot). Empty means any extension linguist classifies as Markdown.
	Extensions []string

	// ExcludeGlobs skip files or directories, matched against the path relative
	// to WorkingDir and against the base name.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps concurrent documents. 0 or negative means runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
