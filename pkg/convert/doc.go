// Package convert turns Markdown résumés and cover letters into PDFs.
//
// Conversion rewrites custom bullets into Markdown list items, picks a
// stylesheet for the document type, and hands the result to a PDF engine:
// pandoc with any of its --pdf-engine backends, or headless Chrome.
package convert
