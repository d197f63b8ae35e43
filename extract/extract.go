// Package extract adapts tabula's PDF reader (github.com/tsawler/tabula/reader)
// into the Span/PageInput shape the screenplay classifier consumes. It owns
// the one piece of domain-specific coordinate math tabula doesn't do for us:
// text.TextFragment reports positions with a PDF-native, bottom-left origin
// (Y increases upward), while the classifier's geometry (column bands,
// margin thresholds, centering) is all written against a top-left,
// Y-down convention. Every fragment gets flipped here, once, on the way in.
package extract

import (
	"fmt"
	"os"

	"github.com/tsawler/tabula/reader"

	"github.com/tsawler/screenplay/screenplay"
)

// Size bounds a PDF must fall within to be considered for extraction. A
// file smaller than minPDFSize cannot hold a valid xref table and trailer;
// one larger than maxPDFSize is almost always a scan dump rather than a
// screenplay and would make text extraction prohibitively slow.
const (
	minPDFSize = 1024
	maxPDFSize = 15 * 1024 * 1024
)

// ValidatePDF checks that path names a file of plausible size whose first
// bytes carry the PDF magic marker, without parsing the file. It exists so
// callers can reject obviously-wrong input before paying for a full
// xref/page-tree parse.
func ValidatePDF(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &screenplay.PDFError{Op: "stat", Err: err}
	}
	if info.Size() < minPDFSize {
		return &screenplay.PDFError{Op: "validate", Err: fmt.Errorf("file too small to be a PDF: %d bytes", info.Size())}
	}
	if info.Size() > maxPDFSize {
		return &screenplay.PDFError{Op: "validate", Err: fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxPDFSize)}
	}

	f, err := os.Open(path)
	if err != nil {
		return &screenplay.PDFError{Op: "open", Err: err}
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := f.Read(magic); err != nil {
		return &screenplay.PDFError{Op: "read header", Err: err}
	}
	if string(magic) != "%PDF" {
		return &screenplay.PDFError{Op: "validate", Err: fmt.Errorf("missing %%PDF magic bytes")}
	}
	return nil
}

// Extractor wraps a reader.Reader and turns its pages into a
// screenplay.Document.
type Extractor struct {
	r *reader.Reader
}

// Open validates and opens the PDF at path, returning an Extractor ready to
// produce a Document.
func Open(path string) (*Extractor, error) {
	if err := ValidatePDF(path); err != nil {
		return nil, err
	}
	r, err := reader.Open(path)
	if err != nil {
		return nil, &screenplay.PDFError{Op: "open", Err: err}
	}
	return &Extractor{r: r}, nil
}

// Close releases the underlying file handle.
func (e *Extractor) Close() error {
	return e.r.Close()
}

// Document extracts every page's text fragments and assembles them into a
// screenplay.Document, flipping each fragment's Y coordinate from the
// engine's bottom-left origin to the classifier's top-left origin.
func (e *Extractor) Document() (screenplay.Document, error) {
	count, err := e.r.PageCount()
	if err != nil {
		return screenplay.Document{}, &screenplay.PDFError{Op: "page count", Err: err}
	}

	inputs := make([]screenplay.PageInput, count)
	for i := 0; i < count; i++ {
		input, err := e.extractPage(i)
		if err != nil {
			return screenplay.Document{}, &screenplay.PDFError{Op: fmt.Sprintf("extract page %d", i), Err: err}
		}
		inputs[i] = input
	}

	return screenplay.Document{Pages: inputs, TotalPages: count}, nil
}

func (e *Extractor) extractPage(index int) (screenplay.PageInput, error) {
	page, err := e.r.GetPage(index)
	if err != nil {
		return screenplay.PageInput{}, err
	}

	width, err := page.Width()
	if err != nil {
		return screenplay.PageInput{}, err
	}
	height, err := page.Height()
	if err != nil {
		return screenplay.PageInput{}, err
	}

	fragments, err := e.r.ExtractTextFragments(page)
	if err != nil {
		return screenplay.PageInput{}, err
	}

	spans := make([]screenplay.Span, len(fragments))
	for i, f := range fragments {
		spans[i] = screenplay.Span{
			Text:     f.Text,
			X:        f.X,
			Y:        flipY(f, height),
			Width:    f.Width,
			Height:   f.Height,
			FontSize: f.FontSize,
			Font:     f.FontName,
		}
	}

	return screenplay.PageInput{PageNumber: index + 1, Width: width, Height: height, Spans: spans}, nil
}
