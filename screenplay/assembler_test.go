package screenplay

import "testing"

func TestExtractTitleJoinsPageZeroTitles(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "THE GREAT", Type: Title}},
			{&TextElement{Text: "ESCAPE", Type: Title}},
			{&TextElement{Text: "By", Type: AuthorMarker}},
		}},
	}
	got := extractTitle(pages)
	if got == nil || *got != "THE GREAT\nESCAPE" {
		t.Errorf("extractTitle() = %v, want \"THE GREAT\\nESCAPE\"", got)
	}
}

func TestExtractTitleNilWhenNoTitleElements(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "By", Type: AuthorMarker}},
		}},
	}
	if got := extractTitle(pages); got != nil {
		t.Errorf("extractTitle() = %v, want nil", *got)
	}
}

func TestSynthesizeOpeningFiresWhenBoundaryOnPage1(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "MY SCREENPLAY", Type: Title}},
		}},
		{PageNumber: 1, Groups: []Group{
			{&TextElement{Text: "John walks in.", X: 72, Y: 200}},
		}},
	}
	synthesizeOpening(pages)

	first := firstElement(&pages[1])
	if first.Text != "OPENING" || first.Type != SceneHeading {
		t.Fatalf("first element = %+v, want synthetic OPENING", first)
	}
	if first.X != 72 || first.Y != 176 {
		t.Errorf("position = (%v, %v), want (72, 176)", first.X, first.Y)
	}
	if first.Width != 70 || first.Height != 12 || first.FontSize != 12 || first.Centered {
		t.Errorf("synthetic element shape = %+v", first)
	}
}

func TestSynthesizeOpeningSkippedWhenPage0HasSceneHeading(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "INT. HOUSE - DAY", Type: SceneHeading}},
		}},
		{PageNumber: 1, Groups: []Group{
			{&TextElement{Text: "John walks in.", X: 72, Y: 200}},
		}},
	}
	synthesizeOpening(pages)

	first := firstElement(&pages[1])
	if first.Text == "OPENING" {
		t.Error("should not synthesize OPENING when page 0 already has a scene heading")
	}
}

func TestSynthesizeOpeningSkippedWhenPage1AlreadyStartsWithSceneHeading(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "MY SCREENPLAY", Type: Title}},
		}},
		{PageNumber: 1, Groups: []Group{
			{&TextElement{Text: "INT. HOUSE - DAY", Type: SceneHeading, X: 72, Y: 100}},
		}},
	}
	synthesizeOpening(pages)

	first := firstElement(&pages[1])
	if first.Text == "OPENING" {
		t.Error("should not synthesize OPENING when page 1 already starts with a scene heading")
	}
}

func TestSynthesizeOpeningSkippedWithFewerThanTwoPages(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "MY SCREENPLAY", Type: Title}},
		}},
	}
	synthesizeOpening(pages)
	if len(pages[0].Groups) != 1 {
		t.Errorf("page 0 groups changed unexpectedly: %+v", pages)
	}
}

func TestSynthesizeOpeningUsesDefaultYWhenPage1Empty(t *testing.T) {
	pages := []Page{
		{PageNumber: 0, Groups: []Group{
			{&TextElement{Text: "MY SCREENPLAY", Type: Title}},
		}},
		{PageNumber: 1, Groups: nil},
	}
	synthesizeOpening(pages)

	first := firstElement(&pages[1])
	if first == nil || first.Y != 144 {
		t.Errorf("first = %+v, want synthetic at y=144", first)
	}
}
