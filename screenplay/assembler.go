package screenplay

import "strings"

// StructureAssembler consumes classified pages and produces the final
// Script: it extracts the title from page 0 and synthesizes an OPENING
// scene heading when the document's screenplay body starts on page 1
// without one.
type StructureAssembler struct{}

// Assemble builds a Script from classified pages and a language label.
// Pages are copied (not mutated in place) so Assemble can be called
// against the same classified pages more than once without surprises.
func (StructureAssembler) Assemble(pages []Page, language string) Script {
	out := make([]Page, len(pages))
	copy(out, pages)

	synthesizeOpening(out)

	script := Script{
		Title:      extractTitle(out),
		Pages:      out,
		Language:   language,
		TotalPages: len(out),
		Metadata:   map[string]string{},
	}
	script.FullText = buildFullText(out)
	return script
}

// extractTitle joins the text of every type==title element on page 0 with
// newlines, or returns nil if page 0 has none.
func extractTitle(pages []Page) *string {
	if len(pages) == 0 {
		return nil
	}
	var parts []string
	for _, e := range pages[0].Elements() {
		if e.Type == Title {
			parts = append(parts, e.Text)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, "\n")
	return &joined
}

// synthesizeOpening inserts a synthetic OPENING scene_heading as the new
// first group of page 1 iff: there are at least 2 pages, page 0 has no
// scene_heading, and page 1's first element is neither a scene_heading nor
// a transition.
func synthesizeOpening(pages []Page) {
	if len(pages) < 2 {
		return
	}
	for _, e := range pages[0].Elements() {
		if e.Type == SceneHeading {
			return
		}
	}

	page1 := &pages[1]
	first := firstElement(page1)
	if first != nil && (first.Type == SceneHeading || first.Type == Transition) {
		return
	}

	y := 144.0
	if first != nil {
		y = first.Y - 24
	}

	synthetic := &TextElement{
		Text:     "OPENING",
		X:        72,
		Y:        y,
		Width:    70,
		Height:   12,
		FontSize: 12,
		Centered: false,
		Type:     SceneHeading,
	}

	newGroups := make([]Group, 0, len(page1.Groups)+1)
	newGroups = append(newGroups, Group{synthetic})
	newGroups = append(newGroups, page1.Groups...)
	page1.Groups = newGroups
}

// firstElement returns the first element of a page's first non-empty
// group, or nil if the page has none.
func firstElement(p *Page) *TextElement {
	for _, g := range p.Groups {
		if len(g) > 0 {
			return g[0]
		}
	}
	return nil
}

// buildFullText joins every element's text across every page, in document
// order, one element per line.
func buildFullText(pages []Page) string {
	var b strings.Builder
	for _, p := range pages {
		for _, e := range p.Elements() {
			b.WriteString(e.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
