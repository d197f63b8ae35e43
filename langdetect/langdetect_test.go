package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "und"},
		{"english", "INT. KITCHEN - DAY\nJohn enters the room.", "en"},
		{"russian", "ИНТ. КУХНЯ - ДЕНЬ", "ru"},
		{"arabic", "مرحبا بالعالم", "ar"},
		{"hebrew", "שלום עולם", "he"},
		{"japanese hiragana", "こんにちは", "ja"},
		{"japanese katakana", "コンピューター", "ja"},
		{"korean", "안녕하세요", "ko"},
		{"chinese", "你好世界", "zh"},
		{"digits and punctuation only", "123 -- 456...", "und"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectMixedScriptPicksMajority(t *testing.T) {
	text := "a " + repeat("中", 10)
	if got := Detect(text); got != "zh" {
		t.Errorf("Detect() = %q, want zh", got)
	}
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
