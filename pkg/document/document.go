// Package document loads résumé and cover-letter sources for validation.
//
// A Document is read once, checked for text content, and split into lines.
// Validation never mutates it.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/atslint/pkg/fsutil"
)

// Loader errors. File-system failures wrap the fsutil sentinels so both
// errors.Is(err, document.ErrNotFound) and errors.Is(err, fsutil.ErrNotFound) hold.
var (
	ErrNotFound         = fmt.Errorf("input file does not exist: %w", fsutil.ErrNotFound)
	ErrIsDirectory      = fmt.Errorf("input path is not a file: %w", fsutil.ErrIsDirectory)
	ErrPermissionDenied = fmt.Errorf("cannot read input file: %w", fsutil.ErrPermissionDenied)
	ErrBinaryContent    = errors.New("input file is not a text document")
	ErrInvalidEncoding  = errors.New("input file is not valid UTF-8")
)

//nolint:gochecknoglobals // Immutable byte sequence.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a loaded source document.
type Document struct {
	// Path is the path the document was loaded from (empty for in-memory documents).
	Path string

	// Content is the raw text, without a leading byte order mark.
	Content string

	// Lines holds Content split into lines without terminators.
	Lines []string

	// Fingerprint is the hex SHA-256 of the bytes on disk.
	Fingerprint string
}

// Load reads the document at path and rejects content that is not UTF-8 text.
func Load(ctx context.Context, path string) (*Document, error) {
	data, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		switch {
		case errors.Is(err, fsutil.ErrNotFound):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case errors.Is(err, fsutil.ErrIsDirectory):
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
		case errors.Is(err, fsutil.ErrPermissionDenied):
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		default:
			return nil, err
		}
	}

	doc, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	doc.Fingerprint = info.Fingerprint()
	return doc, nil
}

// Parse builds a Document from raw bytes.
func Parse(path string, data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	if len(data) > 0 && enry.IsBinary(data) {
		return nil, fmt.Errorf("%w: %s", ErrBinaryContent, path)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	content := string(data)
	return &Document{
		Path:    path,
		Content: content,
		Lines:   SplitLines(content),
	}, nil
}

// FromString builds an in-memory Document. It performs no content checks.
func FromString(content string) *Document {
	return &Document{Content: content, Lines: SplitLines(content)}
}

// SplitLines splits content on "\n", dropping a trailing "\r" from each line.
// A final newline does not produce an extra empty line, and empty content yields no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the 1-based line n, or "" when n is out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// LineAt returns the 1-based line number containing byte offset off of Content,
// found by counting the newlines before it.
func (d *Document) LineAt(off int) int {
	if off > len(d.Content) {
		off = len(d.Content)
	}
	if off < 0 {
		off = 0
	}
	return strings.Count(d.Content[:off], "\n") + 1
}

// IsMarkdownPath reports whether path names a Markdown file by extension.
func IsMarkdownPath(path string) bool {
	// ".md" is ambiguous in linguist data, so accept Markdown among several candidates.
	for _, lang := range enry.GetLanguagesByExtension(path, nil, nil) {
		if lang == "Markdown" {
			return true
		}
	}
	return false
}
