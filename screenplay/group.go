package screenplay

import "math"

// gapThreshold is the default vertical gap, in points, above which two
// consecutive elements on a page start a new group.
const gapThreshold = 10.0

// centerBaseTolerance and centerWideTolerance bound how far an element's
// horizontal midpoint may drift from the page's midpoint and still count
// as centered. The wide tolerance only applies in the 280-320 x band,
// where screenplay title pages commonly indent centered text slightly.
const (
	centerBaseTolerance = 20.0
	centerWideTolerance = 35.0
)

// Grouper turns raw positioned spans into enriched TextElements and chunks
// them into gap-delimited groups.
type Grouper struct{}

// BuildTextElements maps each span on a page to a TextElement, computing
// its vertical gaps to its neighbors and whether it is horizontally
// centered on a page of the given width.
func (Grouper) BuildTextElements(spans []Span, pageWidth float64) []*TextElement {
	elements := make([]*TextElement, len(spans))
	for i, s := range spans {
		elements[i] = &TextElement{
			Text:     s.Text,
			X:        s.X,
			Y:        s.Y,
			Width:    s.Width,
			Height:   s.Height,
			FontSize: s.FontSize,
			FontName: s.Font,
			Centered: isCentered(s.X, s.Width, pageWidth),
		}
	}
	for i := range elements {
		if i > 0 {
			prev := elements[i-1]
			gap := elements[i].Y - (prev.Y + prev.Height)
			if gap < 0 {
				gap = 0
			}
			elements[i].GapToPrev = &gap
			elements[i-1].GapToNext = &gap
		}
	}
	return elements
}

// isCentered reports whether a span of the given x and width is centered
// on a page of pageWidth, per the tolerance and exclusion rules.
func isCentered(x, width, pageWidth float64) bool {
	midpoint := x + width/2
	deviation := math.Abs(midpoint - pageWidth/2)

	tolerance := centerBaseTolerance
	if x >= 280 && x <= 320 {
		tolerance = centerWideTolerance
	}
	centered := deviation <= tolerance

	if x >= 170 && x <= 190 && deviation > 8 {
		centered = false
	}
	if x >= 240 && x <= 270 && deviation > 18 {
		centered = false
	}
	return centered
}

// GroupByGap chunks elements into groups, starting a new group after any
// element whose gap to the next element is at least threshold points.
// Elements with no recorded next gap (the last element on the page) close
// out the current group.
func (Grouper) GroupByGap(elements []*TextElement, threshold float64) []Group {
	var groups []Group
	var current Group
	for _, e := range elements {
		current = append(current, e)
		if e.GapToNext == nil || *e.GapToNext >= threshold {
			groups = append(groups, current)
			current = nil
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
