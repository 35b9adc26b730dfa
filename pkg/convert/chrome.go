package convert

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/atslint/internal/logging"
	"github.com/yaklabco/atslint/pkg/fsutil"
)

// DefaultChromeTimeout bounds a single headless Chrome render.
const DefaultChromeTimeout = 60 * time.Second

// ChromeEngine renders Markdown to HTML with goldmark and prints it to PDF in headless Chrome.
type ChromeEngine struct {
	Timeout  time.Duration
	markdown goldmark.Markdown
}

// NewChromeEngine returns a Chrome engine with the default timeout.
func NewChromeEngine() *ChromeEngine {
	return &ChromeEngine{
		Timeout: DefaultChromeTimeout,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// Name implements Engine.
func (e *ChromeEngine) Name() string {
	return "chrome"
}

// HTMLPage renders Markdown into a standalone page with css inlined.
func (e *ChromeEngine) HTMLPage(source []byte, css string, job Job) ([]byte, error) {
	var body bytes.Buffer
	if err := e.markdown.Convert(source, &body); err != nil {
		return nil, fmt.Errorf("%w: render markdown: %w", ErrConversion, err)
	}

	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	if job.Title != "" {
		fmt.Fprintf(&out, "<title>%s</title>\n", html.EscapeString(job.Title))
	}
	if job.Author != "" {
		fmt.Fprintf(&out, "<meta name=\"author\" content=\"%s\">\n", html.EscapeString(job.Author))
	}
	if job.Date != "" {
		fmt.Fprintf(&out, "<meta name=\"date\" content=\"%s\">\n", html.EscapeString(job.Date))
	}
	fmt.Fprintf(&out, "<style>\n%s</style>\n</head>\n<body>\n", css)
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")

	return out.Bytes(), nil
}

// Render implements Engine.
func (e *ChromeEngine) Render(ctx context.Context, job Job) (string, error) {
	source, _, err := fsutil.ReadFile(ctx, job.Markdown)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrFileOperation, job.Markdown, err)
	}
	css, _, err := fsutil.ReadFile(ctx, job.CSS)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrFileOperation, job.CSS, err)
	}

	document, err := e.HTMLPage(source, string(css), job)
	if err != nil {
		return "", err
	}

	pdf, err := e.printToPDF(ctx, document)
	if err != nil {
		return "", err
	}

	if err := fsutil.WriteAtomic(ctx, job.Output, pdf, fsutil.DefaultFileMode); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrFileOperation, job.Output, err)
	}

	logging.FromContext(ctx).Debug("chrome rendered PDF", logging.FieldOutput, job.Output, "bytes", len(pdf))
	return "", nil
}

func (e *ChromeEngine) printToPDF(ctx context.Context, document []byte) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(document)).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			pdf = data
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: headless chrome: %w", ErrConversion, err)
	}
	return pdf, nil
}
