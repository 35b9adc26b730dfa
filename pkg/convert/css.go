package convert

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/atslint/pkg/config"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// Stylesheet file names inside the templates directory.
const (
	CoverLetterCSS = "ats-cover-letter.css"
	ProfileCSS     = "ats-profile.css"
	FallbackCSS    = "ats-fallback.css"
)

// fallbackStylesheet is written when the document-type stylesheet is missing.
const fallbackStylesheet = `/* Fallback CSS for atslint PDF conversion */
body {
    font-family: Arial, sans-serif;
    font-size: 12pt;
    line-height: 1.4;
    margin: 1in;
    color: #000;
}

h1, h2, h3, h4, h5, h6 {
    font-weight: bold;
    margin-top: 1em;
    margin-bottom: 0.5em;
}

h1 { font-size: 18pt; }
h2 { font-size: 16pt; }
h3 { font-size: 14pt; }

p {
    margin-bottom: 0.5em;
    text-align: justify;
}

ul, ol {
    margin-bottom: 0.5em;
    padding-left: 1.5em;
}

li {
    margin-bottom: 0.25em;
}

strong, b {
    font-weight: bold;
}

em, i {
    font-style: italic;
}

.page-break {
    page-break-before: always;
}

table {
    border-collapse: collapse;
    width: 100%;
    margin-bottom: 1em;
}

th, td {
    border: 1px solid #000;
    padding: 0.25em;
    text-align: left;
}

th {
    background-color: #f0f0f0;
    font-weight: bold;
}
`

// SelectCSS returns the stylesheet to convert with.
//
// A custom stylesheet wins and must exist. Otherwise the document type picks
// a file in templatesDir; when that file is missing, a fallback stylesheet is
// written to templatesDir and returned instead.
func SelectCSS(ctx context.Context, templatesDir string, docType config.DocumentType, customCSS string) (string, error) {
	if customCSS != "" {
		if !fsutil.Exists(customCSS) {
			return "", fmt.Errorf("%w: custom CSS file not found: %s", ErrValidation, customCSS)
		}
		return customCSS, nil
	}

	name := CoverLetterCSS
	if docType == config.DocumentProfile {
		name = ProfileCSS
	}

	path := filepath.Join(templatesDir, name)
	if fsutil.Exists(path) {
		return path, nil
	}

	fallback := filepath.Join(templatesDir, FallbackCSS)
	if err := fsutil.WriteAtomic(ctx, fallback, []byte(fallbackStylesheet), fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("%w: cannot create CSS file %s: %w", ErrFileOperation, fallback, err)
	}
	return fallback, nil
}
