// Package resolve turns normalized tagger spans into typed, deduplicated
// entity mentions: persons linked to their nearest preceding title,
// locations typed by gazetteer membership, organisations cleaned of
// quoting and abbreviation noise.
package resolve

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// commonWords are Azerbaijani function words and generic nouns that the
// tagger occasionally labels as entities. Matching is on the lowercased
// surface form.
var commonWords = map[string]struct{}{
	"mən": {}, "sən": {}, "o": {}, "biz": {}, "siz": {}, "onlar": {},
	"bu": {}, "həmin": {}, "belə": {}, "kim": {}, "nə": {}, "harada": {},
	"necə": {}, "niyə": {}, "nə üçün": {}, "azərbaycan": {},
	"respublika": {}, "dövlət": {}, "şəhər": {}, "rayon": {},
	"universitet": {}, "bank": {}, "şirkət": {}, "kompaniya": {},
	"ölkədə": {}, "ölkə": {}, "şəhərdə": {}, "rayonda": {},
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// IsProperName reports whether text plausibly names a real entity. It is
// a quality heuristic, not a correctness guarantee: rejected texts are
// silently dropped from the output lists.
func IsProperName(text string) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < 2 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsUpper(first) {
		return false
	}

	if _, ok := commonWords[strings.ToLower(text)]; ok {
		return false
	}

	if digitsOnly.MatchString(text) {
		return false
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
