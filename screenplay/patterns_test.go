package screenplay

import "testing"

func TestTextPatternsSceneHeading(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"int", "INT. KITCHEN - DAY", true},
		{"ext", "EXT. PARKING LOT - NIGHT", true},
		{"int ext", "INT/EXT. CAR - CONTINUOUS", true},
		{"no dot", "INT KITCHEN - DAY", true},
		{"not a heading", "John enters the room.", false},
		{"lowercase int", "int. kitchen - day", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SceneHeading(tt.text); got != tt.want {
				t.Errorf("SceneHeading(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsCharacter(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain name", "JOHN", true},
		{"name with parenthetical", "JOHN (O.S.)", true},
		{"ends with colon", "JOHN:", false},
		{"starts lowercase", "john smith", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Character(tt.text); got != tt.want {
				t.Errorf("Character(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsTransition(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"cut to", "CUT TO:", true},
		{"fade in", "FADE IN:", true},
		{"case insensitive", "cut to:", true},
		{"the end", "THE END", true},
		{"not a transition", "CUT THE ROPE", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Transition(tt.text); got != tt.want {
				t.Errorf("Transition(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsParentheticalVsContinuation(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name             string
		text             string
		parenthetical    bool
		continuation     bool
	}{
		{"plain parenthetical", "(beat)", true, false},
		{"more", "(MORE)", false, true},
		{"cont'd", "(CONT'D)", false, true},
		{"continued", "(continued)", false, true},
		{"not parenthesized", "beat", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Parenthetical(tt.text); got != tt.parenthetical {
				t.Errorf("Parenthetical(%q) = %v, want %v", tt.text, got, tt.parenthetical)
			}
			if got := p.Continuation(tt.text); got != tt.continuation {
				t.Errorf("Continuation(%q) = %v, want %v", tt.text, got, tt.continuation)
			}
		})
	}
}

func TestTextPatternsSubheading(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"later", "LATER", true},
		{"continuous", "CONTINUOUS", true},
		{"open on", "OPEN ON:", true},
		{"scene heading excluded", "INT. HOUSE - DAY", false},
		{"transition excluded", "CUT TO:", false},
		{"too long", "THIS ALL CAPS LINE IS DEFINITELY TOO LONG TO BE A SUBHEADING", false},
		{"bare character-shaped name not a subheading", "JOHN", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Subheading(tt.text); got != tt.want {
				t.Errorf("Subheading(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsAllCapsText(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"all caps", "JOHN SMITH", true},
		{"mixed case", "John Smith", false},
		{"digits only", "123", false},
		{"caps with digits", "ROOM 237", true},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.AllCapsText(tt.text); got != tt.want {
				t.Errorf("AllCapsText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsAuthorMarker(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"by", "By", true},
		{"written by", "Written by", true},
		{"screenplay by", "Screenplay by", true},
		{"not a marker", "Produced by", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.AuthorMarker(tt.text); got != tt.want {
				t.Errorf("AuthorMarker(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsSourceNames(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"draft", "FIRST DRAFT", true},
		{"date slash", "Revised 03/14/2024", true},
		{"month name", "June 12, 2024", true},
		{"plain text", "Some Other Line", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.SourceNames(tt.text); got != tt.want {
				t.Errorf("SourceNames(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsNotes(t *testing.T) {
	p := TextPatterns{}
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"copyright symbol", "© 2024 Acme Pictures", true},
		{"studio name", "Warner Bros.", true},
		{"plain", "Just some action text.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Notes(tt.text); got != tt.want {
				t.Errorf("Notes(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTextPatternsPageAndSceneNumber(t *testing.T) {
	p := TextPatterns{}
	if !p.PageNumber("12.") {
		t.Error("PageNumber(\"12.\") = false, want true")
	}
	if !p.PageNumber("-12-") {
		t.Error("PageNumber(\"-12-\") = false, want true")
	}
	if !p.SceneNumber("12A.") {
		t.Error("SceneNumber(\"12A.\") = false, want true")
	}
	if !p.SceneNumber("4-2") {
		t.Error("SceneNumber(\"4-2\") = false, want true")
	}
}
