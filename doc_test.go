package screenplay

import (
	"testing"

	"github.com/tsawler/screenplay/screenplay"
)

func TestSampleTextJoinsFirstFivePages(t *testing.T) {
	doc := screenplay.Document{
		Pages: []screenplay.PageInput{
			{Spans: []screenplay.Span{{Text: "INT. HOUSE - DAY"}}},
			{Spans: []screenplay.Span{{Text: "John enters."}}},
			{Spans: []screenplay.Span{{Text: "3"}}},
			{Spans: []screenplay.Span{{Text: "4"}}},
			{Spans: []screenplay.Span{{Text: "5"}}},
			{Spans: []screenplay.Span{{Text: "6"}}},
		},
	}
	got := sampleText(doc)
	if got != "INT. HOUSE - DAY John enters. 3 4 5 " {
		t.Errorf("sampleText() = %q", got)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(0, errFixture)
}

var errFixture = &screenplay.ValidationError{Field: "x", Reason: "boom"}
