package screenplay

// ElementKind is the closed set of screenplay element types a TextElement
// can be classified as. The zero value is unclassified.
type ElementKind string

const (
	Title         ElementKind = "title"
	AuthorMarker  ElementKind = "author_marker"
	Author        ElementKind = "author"
	SourceMarker  ElementKind = "source_marker"
	SourceCredit  ElementKind = "source_credit"
	SourceNames   ElementKind = "source_names"
	Notes         ElementKind = "notes"
	PageNumber    ElementKind = "page_number"
	SceneNumber   ElementKind = "scene_number"
	SceneHeading  ElementKind = "scene_heading"
	Subheading    ElementKind = "subheading"
	Character     ElementKind = "character"
	Parenthetical ElementKind = "parenthetical"
	Dialogue      ElementKind = "dialogue"
	Action        ElementKind = "action"
	Transition    ElementKind = "transition"
	Continuation  ElementKind = "continuation"
)

// IsValid reports whether k is a member of the closed kind set, or the
// zero value (unclassified).
func (k ElementKind) IsValid() bool {
	switch k {
	case "", Title, AuthorMarker, Author, SourceMarker, SourceCredit, SourceNames,
		Notes, PageNumber, SceneNumber, SceneHeading, Subheading, Character,
		Parenthetical, Dialogue, Action, Transition, Continuation:
		return true
	default:
		return false
	}
}

// Span is a single positioned run of text as produced by a PDF text
// extractor, in top-left, Y-down page coordinates. Font and FontSize are
// optional; a zero FontSize means "not reported".
type Span struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
	Font     string
}

// PageInput is one page's worth of spans, as handed to the classifier by
// the extraction collaborator. PageNumber is 1-based, matching how PDF
// readers commonly report it; the classifier renumbers pages 0-based in
// its output (see Page.PageNumber).
type PageInput struct {
	PageNumber int
	Width      float64
	Height     float64
	Spans      []Span
}

// Document is the classifier's entire input: every page's spans plus a
// language label supplied by an external detector.
type Document struct {
	Pages      []PageInput
	Language   string
	TotalPages int
}

// defaultPageWidth and defaultPageHeight are used whenever a PageInput
// omits its dimensions, matching US Letter at 72dpi.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// TextElement is one visible text span enriched with vertical-gap and
// centering information, and (after classification) a Type.
type TextElement struct {
	Text     string
	X        float64
	Y        float64
	Width    float64
	Height   float64
	FontSize float64
	FontName string

	// GapToPrev and GapToNext are nil at the first/last element of a page.
	GapToPrev *float64
	GapToNext *float64

	Centered bool

	Type           ElementKind
	IsDualDialogue bool
}

// Group is an ordered, gap-delimited run of TextElements within a single
// page.
type Group []*TextElement

// Page holds one page's groups, already classified, plus the raw spans it
// was built from.
type Page struct {
	PageNumber int // 0-based
	PageWidth  float64
	PageHeight float64
	Groups     []Group
	RawSpans   []Span
}

// Elements returns the page's groups flattened into one ordered slice.
func (p Page) Elements() []*TextElement {
	var out []*TextElement
	for _, g := range p.Groups {
		out = append(out, g...)
	}
	return out
}

// position identifies an element's place in document order: page, group,
// and element index, each 0-based.
type position struct {
	Page    int
	Group   int
	Element int
}

// less reports whether p sorts strictly before o in document order.
func (p position) less(o position) bool {
	if p.Page != o.Page {
		return p.Page < o.Page
	}
	if p.Group != o.Group {
		return p.Group < o.Group
	}
	return p.Element < o.Element
}

// Context is the mutable state threaded through classification. The three
// column positions and the screenplay boundary are first-write-wins: once
// set, nothing in the classifier reassigns them.
type Context struct {
	SceneHeadingX *float64
	CharacterX    *float64
	DialogueX     *float64

	FirstSceneHeadingY *float64
	SceneHeadingFound  bool

	boundary *position

	RecentAuthorMarker bool

	PageNumber int
	PageWidth  float64
	PageHeight float64

	// ScreenplayStarted is recomputed by the classifier before each
	// element is evaluated; it is true iff the element's position is at
	// or after screenplay_boundary. Predicates read it directly rather
	// than recomputing from boundary, since they only see the page index.
	ScreenplayStarted bool
}

// screenplayStartedAt reports whether position p is at or after the
// screenplay boundary. A nil boundary (no scene heading or transition
// anywhere in the document) means the screenplay never starts.
func (c *Context) screenplayStartedAt(p position) bool {
	if c.boundary == nil {
		return false
	}
	return !p.less(*c.boundary)
}

// Script is the final, classified output of the core.
type Script struct {
	Title      *string
	Pages      []Page
	FullText   string
	Language   string
	TotalPages int
	Metadata   map[string]string
}
