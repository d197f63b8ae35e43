package screenplay

import "strings"

// positionTolerance is how far an element's x may drift from an already
// established column position and still count as belonging to it.
const positionTolerance = 1.0

// ElementPredicates combine TextPatterns with geometry checks against a
// Context to decide whether a single element, at its place within its
// group, qualifies as a given element kind. Every predicate is a pure
// function of (element, index within group, group, context) — it reads
// Context but the classifier alone decides when to write to it.
type ElementPredicates struct {
	patterns TextPatterns
}

// characterPosition reports whether x falls in the character column: the
// established CharacterX within 1pt, or the 180-400pt default band before
// a column has been discovered.
func characterPosition(ctx *Context, x float64) bool {
	if ctx.CharacterX != nil {
		return abs(x-*ctx.CharacterX) <= positionTolerance
	}
	return x >= 180 && x <= 400
}

// actionPosition reports whether x falls in the scene-heading / left-margin
// column: the established SceneHeadingX within 1pt, or x <= 140 before a
// column has been discovered.
func actionPosition(ctx *Context, x float64) bool {
	if ctx.SceneHeadingX != nil {
		return abs(x-*ctx.SceneHeadingX) <= positionTolerance
	}
	return x <= 140
}

// dialoguePosition reports whether x falls in the dialogue column. It
// requires both the scene-heading and character columns to already be
// established; within that, it checks the established DialogueX within
// 1pt, or the open band strictly between the scene-heading and character
// columns.
func dialoguePosition(ctx *Context, x float64) bool {
	if ctx.SceneHeadingX == nil || ctx.CharacterX == nil {
		return false
	}
	if ctx.DialogueX != nil {
		return abs(x-*ctx.DialogueX) <= positionTolerance
	}
	return x > *ctx.SceneHeadingX && x < *ctx.CharacterX
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// properWordCount counts the whitespace-separated words in text that
// contain at least one ASCII letter or digit (punctuation-only tokens are
// skipped), used by the Title predicate's word-count limit.
func properWordCount(text string) int {
	fields := strings.Fields(text)
	n := 0
	for _, f := range fields {
		trimmed := strings.TrimFunc(f, func(r rune) bool {
			return !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
		})
		if trimmed == "" {
			continue
		}
		n++
	}
	return n
}

var titleLowerExclusions = map[string]bool{
	"by":                     true,
	"written":                true,
	"based on the novel":     true,
}

// looksLikeName reports whether text reads as a 1-4 word human name: at
// most 50 chars, at least one letter, and no mention of an adaptation
// source or draft/version marker.
func looksLikeName(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" || len(t) > 50 {
		return false
	}
	words := strings.Fields(t)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	hasLetter := false
	for _, r := range t {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			hasLetter = true
		}
	}
	if !hasLetter {
		return false
	}
	lower := strings.ToLower(t)
	for _, bad := range []string{"based on", "novel", "draft", "version"} {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}

// Title reports whether element is a title-page title: centered, short
// (<=50 chars, <=3 elements in its group), title-like text (all-caps or
// title case, <=6 proper words), on page 0, not itself an author/source
// marker, and not while an author marker is still waiting for its author
// (RecentAuthorMarker set).
func (p ElementPredicates) Title(e *TextElement, idx int, g Group, ctx *Context) bool {
	t := strings.TrimSpace(e.Text)
	if t == "" || !hasAnyLetter(t) {
		return false
	}
	if ctx.PageNumber != 0 {
		return false
	}
	if !e.Centered {
		return false
	}
	if len(t) > 50 || len(g) > 3 {
		return false
	}
	if titleLowerExclusions[strings.ToLower(t)] {
		return false
	}
	if properWordCount(t) > 6 {
		return false
	}
	if !(p.patterns.AllCapsText(t) || isTitleCase(t)) {
		return false
	}
	if p.patterns.AuthorMarker(t) || p.patterns.SourceMarker(t) ||
		p.patterns.SourceCredit(t) || p.patterns.SourceNames(t) {
		return false
	}
	if ctx.RecentAuthorMarker {
		return false
	}
	return true
}

// hasAnyLetter reports whether t contains at least one ASCII letter.
func hasAnyLetter(t string) bool {
	for _, r := range t {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// isTitleCase reports whether every word in t starts with an uppercase
// letter (allowing short connective words to be lowercase).
func isTitleCase(t string) bool {
	for _, w := range strings.Fields(t) {
		r := []rune(w)
		if len(r) == 0 {
			continue
		}
		first := r[0]
		if first >= 'a' && first <= 'z' {
			lower := strings.ToLower(w)
			if lower != "a" && lower != "an" && lower != "the" && lower != "of" &&
				lower != "and" && lower != "in" && lower != "on" && lower != "to" {
				return false
			}
		}
	}
	return true
}

// AuthorMarker reports whether element is a title-page "by"-phrase:
// page 0, centered, matching the author-marker set.
func (p ElementPredicates) AuthorMarker(e *TextElement, idx int, g Group, ctx *Context) bool {
	return ctx.PageNumber == 0 && e.Centered && p.patterns.AuthorMarker(e.Text)
}

// Author reports whether element is the author's name line on the title
// page: page 0, centered, and either the previous element in the group is
// a literal author-marker phrase, or an author marker was recently seen
// and this text reads like a human name.
func (p ElementPredicates) Author(e *TextElement, idx int, g Group, ctx *Context) bool {
	if ctx.PageNumber != 0 || !e.Centered {
		return false
	}
	if idx > 0 && p.patterns.AuthorMarker(g[idx-1].Text) {
		return true
	}
	if ctx.RecentAuthorMarker && looksLikeName(e.Text) {
		return true
	}
	return false
}

// SourceCredit reports whether element is a title-page credit line:
// page 0, centered, matching one of the source-credit prefixes.
func (p ElementPredicates) SourceCredit(e *TextElement, idx int, g Group, ctx *Context) bool {
	return ctx.PageNumber == 0 && e.Centered && p.patterns.SourceCredit(e.Text)
}

// SourceMarker reports whether element names an adaptation source:
// page 0, centered, matching "based on"/"adapted from"/"inspired by".
func (p ElementPredicates) SourceMarker(e *TextElement, idx int, g Group, ctx *Context) bool {
	return ctx.PageNumber == 0 && e.Centered && p.patterns.SourceMarker(e.Text)
}

// SourceNames reports whether element is a draft/date line on the title
// page: page 0, centered, matching the source-names pattern.
func (p ElementPredicates) SourceNames(e *TextElement, idx int, g Group, ctx *Context) bool {
	return ctx.PageNumber == 0 && e.Centered && p.patterns.SourceNames(e.Text)
}

// Notes reports whether element is studio/copyright boilerplate: either
// on page 0 matching the notes pattern, or in the header band (y < 40)
// of any page.
func (p ElementPredicates) Notes(e *TextElement, idx int, g Group, ctx *Context) bool {
	if ctx.PageNumber == 0 && p.patterns.Notes(e.Text) {
		return true
	}
	return e.Y < 40
}

// PageNumber reports whether element is a page-number marker: matching
// the page-number pattern and sitting in the header or footer band.
func (p ElementPredicates) PageNumber(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !p.patterns.PageNumber(e.Text) {
		return false
	}
	return e.Y < 100 || e.Y > 700
}

// SceneNumber reports whether element is a scene number: matching the
// scene-number pattern, sitting in the left or right margin, and within
// the body y-band.
func (p ElementPredicates) SceneNumber(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !p.patterns.SceneNumber(e.Text) {
		return false
	}
	if !(e.X < 100 || e.X >= 500) {
		return false
	}
	return e.Y >= 100 && e.Y <= 700
}

// SceneHeading reports whether element's text matches the scene-heading
// pattern. Pattern-only: the highest-reliability signal in the priority
// order, so it needs no geometric corroboration.
func (p ElementPredicates) SceneHeading(e *TextElement, idx int, g Group, ctx *Context) bool {
	return p.patterns.SceneHeading(e.Text)
}

// looksLikeCharacter is the "type == character or looks like one" check
// used by the Parenthetical predicate to find a preceding character cue
// regardless of whether it was actually classified yet. The fallback is
// purely geometric: any element in the fixed 180-400pt band counts, even
// after a CharacterX column has been established.
func looksLikeCharacter(e *TextElement) bool {
	return e.Type == Character || (e.X >= 180 && e.X <= 400)
}

// Character reports whether element is a character cue: in the character
// column, matching the character pattern, within the screenplay body (or
// one of the first three pages, per the early-page heuristic), and either
// separated from the previous element by a visible gap/offset, or (at the
// start of a group) heading a group shaped like a character block.
func (p ElementPredicates) Character(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !characterPosition(ctx, e.X) {
		return false
	}
	if !p.patterns.Character(e.Text) {
		return false
	}
	started := ctx.ScreenplayStarted || ctx.PageNumber <= 2
	if !started {
		return false
	}
	if idx > 0 {
		prev := g[idx-1]
		gapOK := e.GapToPrev != nil && *e.GapToPrev > 15
		offsetOK := abs(e.X-prev.X) > 50
		if !gapOK && !offsetOK {
			return false
		}
		return true
	}
	if len(g) == 1 {
		return true
	}
	for _, other := range g[1:] {
		if other.GapToPrev != nil && *other.GapToPrev > 3 {
			return false
		}
	}
	return true
}

// Parenthetical reports whether element is a parenthetical: matching the
// parenthetical pattern, preceded somewhere in the group by a character
// cue, and sitting in the 180-280pt parenthetical band.
func (p ElementPredicates) Parenthetical(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !p.patterns.Parenthetical(e.Text) {
		return false
	}
	if e.X < 180 || e.X > 280 {
		return false
	}
	for i := 0; i < idx; i++ {
		if looksLikeCharacter(g[i]) {
			return true
		}
	}
	return false
}

// Dialogue reports whether element is dialogue: within the screenplay
// body (or one of the first three pages), the character column already
// established, and sitting in the dialogue column.
func (p ElementPredicates) Dialogue(e *TextElement, idx int, g Group, ctx *Context) bool {
	started := ctx.ScreenplayStarted || ctx.PageNumber <= 2
	if !started {
		return false
	}
	if ctx.CharacterX == nil {
		return false
	}
	return dialoguePosition(ctx, e.X)
}

// Continuation reports whether element's text matches a continuation
// marker: (MORE), (CONT'D), and similar.
func (p ElementPredicates) Continuation(e *TextElement, idx int, g Group, ctx *Context) bool {
	return p.patterns.Continuation(e.Text)
}

// Subheading reports whether element is a subheading: within the
// screenplay body, matching the subheading pattern, and sitting at the
// scene-heading column or the left margin.
func (p ElementPredicates) Subheading(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !ctx.ScreenplayStarted {
		return false
	}
	if !p.patterns.Subheading(e.Text) {
		return false
	}
	if ctx.SceneHeadingX != nil && abs(e.X-*ctx.SceneHeadingX) <= positionTolerance {
		return true
	}
	return e.X <= 140
}

// Action reports whether element is action/description text: within the
// screenplay body, at the scene-heading column (or left margin before one
// is established), and not itself a transition or scene heading.
func (p ElementPredicates) Action(e *TextElement, idx int, g Group, ctx *Context) bool {
	if !ctx.ScreenplayStarted {
		return false
	}
	if !actionPosition(ctx, e.X) {
		return false
	}
	if p.patterns.Transition(e.Text) || p.patterns.SceneHeading(e.Text) {
		return false
	}
	return true
}

// Transition reports whether element is a transition: the first element
// in its group, matching the closed transition phrase set, and sitting at
// the left margin or in the right-aligned transition column.
func (p ElementPredicates) Transition(e *TextElement, idx int, g Group, ctx *Context) bool {
	if idx != 0 {
		return false
	}
	if !p.patterns.Transition(e.Text) {
		return false
	}
	return e.X <= 180 || e.X >= 400
}
