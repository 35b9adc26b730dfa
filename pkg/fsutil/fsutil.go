// Package fsutil provides file system helpers for atslint: context-aware reads
// with categorized errors, content fingerprints, and atomic writes.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// Fingerprint returns the hex-encoded content hash.
func (fi *FileInfo) Fingerprint() string {
	if fi == nil {
		return ""
	}
	return hex.EncodeToString(fi.Hash[:])
}

// ReadFile reads a whole file into memory and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

// Exists reports whether path exists. Errors other than not-exist count as existing,
// so callers never overwrite something they could not inspect.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
