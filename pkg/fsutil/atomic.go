package fsutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0644

// DefaultDirMode is the permission mode for directories created by WriteAtomic.
const DefaultDirMode os.FileMode = 0755

// WriteAtomic writes content to path atomically using a temp file and rename.
// Missing parent directories are created. If mode is 0, DefaultFileMode is used.
//
// On error, the temp file is cleaned up and any existing file at path is untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	// Same directory as the target so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
