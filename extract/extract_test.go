package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/tabula/text"
)

func TestFlipYConvertsBottomLeftToTopLeft(t *testing.T) {
	f := text.TextFragment{Y: 700, Height: 12}
	got := flipY(f, 792)
	want := 792.0 - 700.0 - 12.0
	if got != want {
		t.Errorf("flipY() = %v, want %v", got, want)
	}
}

func TestValidatePDFRejectsTooSmall(t *testing.T) {
	path := writeTempFile(t, bytes.Repeat([]byte("%PDF-1.4\n"), 1))
	if err := ValidatePDF(path); err == nil {
		t.Error("expected error for undersized file, got nil")
	}
}

func TestValidatePDFRejectsMissingMagic(t *testing.T) {
	content := append([]byte("NOT A PDF"), bytes.Repeat([]byte{' '}, minPDFSize)...)
	path := writeTempFile(t, content)
	if err := ValidatePDF(path); err == nil {
		t.Error("expected error for missing magic bytes, got nil")
	}
}

func TestValidatePDFRejectsTooLarge(t *testing.T) {
	header := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{'0'}, maxPDFSize+1)...)
	path := writeTempFile(t, header)
	if err := ValidatePDF(path); err == nil {
		t.Error("expected error for oversized file, got nil")
	}
}

func TestValidatePDFAcceptsPlausibleHeader(t *testing.T) {
	content := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte{'0'}, minPDFSize)...)
	path := writeTempFile(t, content)
	if err := ValidatePDF(path); err != nil {
		t.Errorf("ValidatePDF() error = %v, want nil", err)
	}
}

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.pdf")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}
