// Package screenplay provides a fluent API for classifying screenplay PDFs.
//
// Basic usage:
//
//	script, err := screenplay.Open("script.pdf").Classify()
//
// For serialized output directly:
//
//	text, err := screenplay.Open("script.pdf").Export(export.Text)
//
// For lower-level control, the extract, langdetect, and screenplay (core)
// packages are available directly.
package screenplay

import (
	"strings"

	"github.com/tsawler/screenplay/export"
	"github.com/tsawler/screenplay/extract"
	"github.com/tsawler/screenplay/langdetect"
	"github.com/tsawler/screenplay/screenplay"
)

// Document is a fluent handle on a PDF file awaiting classification.
type Document struct {
	filename string
}

// Open returns a Document for filename. No file I/O happens until a
// terminal method (Classify or Export) is called.
func Open(filename string) *Document {
	return &Document{filename: filename}
}

// Classify opens, extracts, and classifies the PDF, returning the
// resulting Script.
func (d *Document) Classify() (*screenplay.Script, error) {
	ex, err := extract.Open(d.filename)
	if err != nil {
		return nil, err
	}
	defer ex.Close()

	doc, err := ex.Document()
	if err != nil {
		return nil, err
	}
	doc.Language = langdetect.Detect(sampleText(doc))

	return screenplay.NewClassifier().Classify(doc)
}

// Export classifies the PDF and renders the result in the given format.
func (d *Document) Export(format export.Format) (string, error) {
	script, err := d.Classify()
	if err != nil {
		return "", err
	}
	return export.Render(script, format)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts or tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// sampleText joins the first few pages' raw span text for language
// detection; a single dominant script is evident long before the whole
// document is read.
func sampleText(doc screenplay.Document) string {
	var sb strings.Builder
	for i, p := range doc.Pages {
		if i >= 5 {
			break
		}
		for _, s := range p.Spans {
			sb.WriteString(s.Text)
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
