package reporter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/yaklabco/atslint/pkg/analysis"
)

const htmlReportTitle = "ATS Safety Verification Report"

// markdownEntities turns markup characters into entities that render literally.
//
//nolint:gochecknoglobals // Stateless replacer.
var markdownEntities = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// HTMLRenderer writes the verification report as a standalone HTML page.
type HTMLRenderer struct {
	opts     Options
	markdown goldmark.Markdown
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer(opts Options) *HTMLRenderer {
	return &HTMLRenderer{
		opts:     opts,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render implements Renderer.
func (r *HTMLRenderer) Render(_ context.Context, report *analysis.Report) (err error) {
	var source bytes.Buffer
	writeMarkdownReport(&source, report, markdownEntities.Replace)

	var body bytes.Buffer
	if err := r.markdown.Convert(source.Bytes(), &body); err != nil {
		return fmt.Errorf("render HTML: %w", err)
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintf(bw, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="atslint-run-id" content="%s">
<title>%s</title>
</head>
<body>
`, report.RunID, htmlReportTitle)
	_, _ = bw.Write(body.Bytes())
	fmt.Fprint(bw, "</body>\n</html>\n")

	return nil
}
