package screenplay

import "strings"

// Classifier is the orchestrator: it scans the document once to find the
// screenplay boundary, then walks pages, groups, and elements in order,
// applying ElementPredicates in a fixed priority sequence, updating a
// shared Context, and finally running the second-pass and final-pass
// reclassifications.
type Classifier struct {
	grouper    Grouper
	patterns   TextPatterns
	predicates ElementPredicates
}

// NewClassifier returns a ready-to-use Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify is a pure function from a Document to a Script (or a
// ValidationError when doc.Pages is nil, or a ClassificationError). It performs no I/O and has no side effects beyond
// its return value.
func (c *Classifier) Classify(doc Document) (*Script, error) {
	if doc.Pages == nil {
		return nil, &ValidationError{Field: "Pages", Reason: "missing pages"}
	}

	pages, err := c.buildPages(doc)
	if err != nil {
		return nil, &ClassificationError{Reason: "building pages", Err: err}
	}

	ctx := &Context{}
	ctx.boundary = c.findBoundary(pages)

	c.classifyMainPass(pages, ctx)
	c.secondPass(pages, ctx)
	c.finalPass(pages, ctx)

	script := StructureAssembler{}.Assemble(pages, doc.Language)
	return &script, nil
}

// buildPages groups every page's spans into TextElements and Groups,
// defaulting missing page dimensions to US Letter, and renumbering pages
// 0-based in document order (input PageNumber is otherwise ignored; order
// in doc.Pages is authoritative).
func (c *Classifier) buildPages(doc Document) ([]Page, error) {
	pages := make([]Page, len(doc.Pages))
	for i, pi := range doc.Pages {
		width := pi.Width
		if width == 0 {
			width = defaultPageWidth
		}
		height := pi.Height
		if height == 0 {
			height = defaultPageHeight
		}
		elements := c.grouper.BuildTextElements(pi.Spans, width)
		groups := c.grouper.GroupByGap(elements, gapThreshold)
		pages[i] = Page{
			PageNumber: i,
			PageWidth:  width,
			PageHeight: height,
			Groups:     groups,
			RawSpans:   pi.Spans,
		}
	}
	return pages, nil
}

// findBoundary scans every page/group/element in document order and
// returns the position of the first element whose text is a scene heading
// or transition. Returns nil if no such element exists anywhere.
func (c *Classifier) findBoundary(pages []Page) *position {
	for pIdx, pg := range pages {
		for gIdx, g := range pg.Groups {
			for eIdx, e := range g {
				if c.patterns.SceneHeading(e.Text) || c.patterns.Transition(e.Text) {
					pos := position{Page: pIdx, Group: gIdx, Element: eIdx}
					return &pos
				}
			}
		}
	}
	return nil
}

// classifyMainPass walks every element in document order, computing
// ScreenplayStarted precisely from the boundary and the element's own
// position (not just its page, since the boundary can fall mid-page), and
// evaluating predicates in the fixed priority order.
func (c *Classifier) classifyMainPass(pages []Page, ctx *Context) {
	for pIdx := range pages {
		pg := &pages[pIdx]
		ctx.PageNumber = pg.PageNumber
		ctx.PageWidth = pg.PageWidth
		ctx.PageHeight = pg.PageHeight

		for gIdx, g := range pg.Groups {
			for eIdx, e := range g {
				pos := position{Page: pIdx, Group: gIdx, Element: eIdx}
				ctx.ScreenplayStarted = ctx.screenplayStartedAt(pos)
				c.classifyOne(e, eIdx, g, ctx)
			}
		}
	}
}

// classifyOne evaluates the fixed priority sequence against a single
// element and, on the first match, updates Context so later elements see
// whatever column position or flag the match just established.
func (c *Classifier) classifyOne(e *TextElement, idx int, g Group, ctx *Context) {
	p := c.predicates
	switch {
	case p.Title(e, idx, g, ctx):
		e.Type = Title
	case p.AuthorMarker(e, idx, g, ctx):
		e.Type = AuthorMarker
		ctx.RecentAuthorMarker = true
	case p.Author(e, idx, g, ctx):
		e.Type = Author
		ctx.RecentAuthorMarker = false
	case p.SourceCredit(e, idx, g, ctx):
		e.Type = SourceCredit
	case p.SourceMarker(e, idx, g, ctx):
		e.Type = SourceMarker
	case p.SourceNames(e, idx, g, ctx):
		e.Type = SourceNames
	case p.PageNumber(e, idx, g, ctx):
		e.Type = PageNumber
	case p.Notes(e, idx, g, ctx):
		e.Type = Notes
	case p.SceneHeading(e, idx, g, ctx):
		e.Type = SceneHeading
		if ctx.SceneHeadingX == nil {
			x := e.X
			ctx.SceneHeadingX = &x
		}
		ctx.SceneHeadingFound = true
		if ctx.FirstSceneHeadingY == nil {
			y := e.Y
			ctx.FirstSceneHeadingY = &y
		}
	case p.Character(e, idx, g, ctx):
		e.Type = Character
		if ctx.CharacterX == nil {
			x := e.X
			ctx.CharacterX = &x
		}
	case p.Action(e, idx, g, ctx):
		e.Type = Action
	case p.Parenthetical(e, idx, g, ctx):
		e.Type = Parenthetical
	case p.Dialogue(e, idx, g, ctx):
		e.Type = Dialogue
		if ctx.DialogueX == nil {
			x := e.X
			ctx.DialogueX = &x
		}
	case p.Continuation(e, idx, g, ctx):
		e.Type = Continuation
	case p.Subheading(e, idx, g, ctx):
		e.Type = Subheading
	case p.Transition(e, idx, g, ctx):
		e.Type = Transition
	case p.SceneNumber(e, idx, g, ctx):
		e.Type = SceneNumber
	default:
		// Leave unclassified; the final pass may still fold this into
		// action.
	}
}

// secondPass runs the three per-group retroactive transformations, in
// order: title recovery, dual dialogue, and subheading recovery.
func (c *Classifier) secondPass(pages []Page, ctx *Context) {
	for pIdx := range pages {
		pg := &pages[pIdx]
		for gIdx, g := range pg.Groups {
			if pg.PageNumber == 0 {
				c.retroactiveTitle(g)
			}
			if ctx.screenplayStartedAt(position{Page: pIdx, Group: gIdx, Element: 0}) {
				c.dualDialogue(g, ctx)
			}
			// Subheading recovery only sees elements at or after the
			// boundary, so no subheading appears before it.
			start := 0
			for start < len(g) && !ctx.screenplayStartedAt(position{Page: pIdx, Group: gIdx, Element: start}) {
				start++
			}
			c.subheadingRecovery(g[start:], ctx)
		}
	}
}

// retroactiveTitle recovers titles the main pass missed: within a page-0
// group, find the first author_marker (or a title element reading exactly
// "screenplay", which becomes an author_marker), then reclassify every
// preceding centered, title-like, currently character/unclassified/title
// element as title.
func (c *Classifier) retroactiveTitle(g Group) {
	for _, e := range g {
		if e.Type == Title && strings.ToLower(strings.TrimSpace(e.Text)) == "screenplay" {
			e.Type = AuthorMarker
		}
	}

	markerIdx := -1
	for i, e := range g {
		if e.Type == AuthorMarker {
			markerIdx = i
			break
		}
	}
	if markerIdx < 0 {
		return
	}

	p := c.patterns
	for i := 0; i < markerIdx; i++ {
		e := g[i]
		t := strings.TrimSpace(e.Text)
		if strings.ToLower(t) == "screenplay" {
			continue
		}
		if e.Type != Character && e.Type != "" && e.Type != Title {
			continue
		}
		if !e.Centered {
			continue
		}
		if !(p.AllCapsText(t) || isTitleCase(t)) {
			continue
		}
		e.Type = Title
	}
}

// dualDialogue detects two characters speaking simultaneously: within a
// group where the screenplay has started, find unclassified
// character-shaped candidates in the left (150-220) and right (350-450)
// columns. If both sides are non-empty, the candidates become character
// and nearby unclassified / action elements become dialogue.
func (c *Classifier) dualDialogue(g Group, ctx *Context) {
	var left, right []*TextElement
	for _, e := range g {
		if e.Type != "" {
			continue
		}
		if !c.patterns.Character(e.Text) {
			continue
		}
		if e.X >= 150 && e.X <= 220 {
			left = append(left, e)
		} else if e.X >= 350 && e.X <= 450 {
			right = append(right, e)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return
	}

	for _, e := range left {
		e.Type = Character
		e.IsDualDialogue = true
	}
	for _, e := range right {
		e.Type = Character
		e.IsDualDialogue = true
	}
	for _, e := range g {
		if e.X >= 80 && e.X <= 140 && (e.Type == "" || e.Type == Action) {
			e.Type = Dialogue
			e.IsDualDialogue = true
		} else if e.X >= 300 && e.X <= 370 && e.Type == "" {
			e.Type = Dialogue
			e.IsDualDialogue = true
		}
	}
}

// subheadingRecovery reclassifies any remaining unclassified element whose
// text matches the subheading pattern and sits at the scene-heading column
// (within 5pt) or the left margin (x <= 110) as a subheading. Note the
// 110pt left-margin threshold here differs intentionally from the 140pt
// threshold the main-pass Subheading predicate uses — left unreconciled
// rather than unified, since the two passes see different evidence.
func (c *Classifier) subheadingRecovery(g Group, ctx *Context) {
	for _, e := range g {
		if e.Type != "" {
			continue
		}
		if !c.patterns.Subheading(e.Text) {
			continue
		}
		if ctx.SceneHeadingX != nil && abs(e.X-*ctx.SceneHeadingX) <= 5 {
			e.Type = Subheading
		} else if e.X <= 110 {
			e.Type = Subheading
		}
	}
}

// finalPass folds every still-unclassified element into action, but only
// if a scene heading was found anywhere in the document and the element's
// own position is at or after the screenplay boundary — a blanket fold
// with no position check would let a pre-boundary title-page leftover turn
// into action whenever some later page happens to contain a scene
// heading, misclassifying content that belongs to the title page.
func (c *Classifier) finalPass(pages []Page, ctx *Context) {
	if !ctx.SceneHeadingFound {
		return
	}
	for pIdx := range pages {
		for gIdx, g := range pages[pIdx].Groups {
			for eIdx, e := range g {
				if e.Type != "" {
					continue
				}
				pos := position{Page: pIdx, Group: gIdx, Element: eIdx}
				if ctx.screenplayStartedAt(pos) {
					e.Type = Action
				}
			}
		}
	}
}
