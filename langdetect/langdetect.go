// Package langdetect proposes a BCP-47 language tag for a document's text
// and canonicalizes it through golang.org/x/text/language. It generalizes
// the per-rune Unicode-block classification the PDF engine's text package
// uses for bidi direction (text.GetCharDirection's LTR/RTL buckets) into
// finer-grained language-family buckets, then picks whichever family has
// the most runes.
package langdetect

import (
	"unicode"

	"golang.org/x/text/language"
)

// family is a coarse script/language bucket. Detect reports whichever
// family claims the most runes in the sample, then maps it to a tag guess.
type family int

const (
	unknown family = iota
	latin
	cyrillic
	greek
	arabic
	hebrew
	hiragana
	katakana
	hangul
	hanCJK
	thai
)

// tagGuess is the BCP-47 tag proposed for each family. These are
// deliberately coarse: hiragana/katakana both propose Japanese, and Han
// ideographs alone (no kana, no hangul) propose Chinese.
var tagGuess = map[family]string{
	latin:    "en",
	cyrillic: "ru",
	greek:    "el",
	arabic:   "ar",
	hebrew:   "he",
	hiragana: "ja",
	katakana: "ja",
	hangul:   "ko",
	hanCJK:   "zh",
	thai:     "th",
}

// Detect scans text and returns a canonical BCP-47 language tag, falling
// back to "und" (undetermined) when no sample is available or the proposed
// tag fails to parse.
func Detect(text string) string {
	if text == "" {
		return "und"
	}

	counts := make(map[family]int)
	for _, r := range text {
		f := classify(r)
		if f != unknown {
			counts[f]++
		}
	}

	best := unknown
	bestCount := 0
	for f, n := range counts {
		if n > bestCount {
			best, bestCount = f, n
		}
	}
	if best == unknown {
		return "und"
	}

	return canonicalize(tagGuess[best])
}

// canonicalize parses guess through golang.org/x/text/language so callers
// always receive a well-formed, canonical tag string rather than a raw
// heuristic guess.
func canonicalize(guess string) string {
	tag, err := language.Parse(guess)
	if err != nil {
		return "und"
	}
	return tag.String()
}

// classify buckets r into a language family, generalizing
// text.GetCharDirection's script checks from two buckets (LTR/RTL) into
// one bucket per language family.
func classify(r rune) family {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return unknown
	}

	switch {
	case isArabic(r):
		return arabic
	case isHebrew(r):
		return hebrew
	case isHiragana(r):
		return hiragana
	case isKatakana(r):
		return katakana
	case isHangul(r):
		return hangul
	case isHan(r):
		return hanCJK
	case isThai(r):
		return thai
	case isGreek(r):
		return greek
	case isCyrillic(r):
		return cyrillic
	case isLatin(r):
		return latin
	}
	return unknown
}

func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

func isHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

func isKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

func isHangul(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7AF
}

func isHan(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

func isThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

func isGreek(r rune) bool {
	return (r >= 0x0370 && r <= 0x03FF) || (r >= 0x1F00 && r <= 0x1FFF)
}

func isCyrillic(r rune) bool {
	return (r >= 0x0400 && r <= 0x04FF) || (r >= 0x0500 && r <= 0x052F)
}

func isLatin(r rune) bool {
	return (r >= 0x0000 && r <= 0x007F) ||
		(r >= 0x0080 && r <= 0x00FF) ||
		(r >= 0x0100 && r <= 0x017F) ||
		(r >= 0x0180 && r <= 0x024F)
}
