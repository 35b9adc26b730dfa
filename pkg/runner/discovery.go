package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/atslint/pkg/document"
)

// Discover finds the documents named by opts and returns sorted absolute paths.
//
// Files named explicitly are kept whatever their extension, unless excluded.
// Directory walks keep only Markdown files and skip hidden entries.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileGlobs(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	d := &discoverer{ctx: ctx, workDir: workDir, opts: opts, excludes: excludes}
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if !info.IsDir() {
			if !d.excluded(absPath, false) {
				add(absPath)
			}
			continue
		}

		walked, err := d.walk(absPath)
		if err != nil {
			return nil, err
		}
		for _, f := range walked {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

type discoverer struct {
	ctx      context.Context //nolint:containedctx // Scoped to one Discover call.
	workDir  string
	opts     Options
	excludes []glob.Glob
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func (d *discoverer) walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := d.ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && d.excluded(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil //nolint:nilerr // Broken symlinks are skipped.
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Unreadable targets are skipped.
			}
			if info.IsDir() {
				if !d.opts.FollowSymlinks {
					return nil
				}
				// Walk the target; WalkDir uses Lstat on its root, so this cannot recurse forever.
				sub, err := d.walk(realPath)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if d.isDocument(path) && !d.excluded(path, false) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func (d *discoverer) isDocument(path string) bool {
	if len(d.opts.Extensions) == 0 {
		return document.IsMarkdownPath(path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(d.opts.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// excluded matches the path relative to the working directory and its base name.
// Directories are also tried with a trailing slash so "drafts/**" prunes "drafts".
func (d *discoverer) excluded(path string, isDir bool) bool {
	if len(d.excludes) == 0 {
		return false
	}

	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	candidates := []string{rel, filepath.Base(path)}
	if isDir {
		candidates = append(candidates, rel+"/")
	}

	for _, g := range d.excludes {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}

// compileGlobs compiles patterns with "/" as the separator, so "*" stays within
// one path segment and "**" crosses segments.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}
