package extract

import "github.com/tsawler/tabula/text"

// flipY converts a fragment's bottom-left-origin Y (as reported by the text
// extractor) into the top-left-origin Y the classifier expects: the
// fragment's top edge measured down from the top of the page.
func flipY(f text.TextFragment, pageHeight float64) float64 {
	return pageHeight - f.Y - f.Height
}
