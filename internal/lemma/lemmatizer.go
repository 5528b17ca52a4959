// Package lemma reduces inflected Azerbaijani surface forms to normalized
// stems for entity-name matching. It is a rule engine, not a dictionary
// lemmatizer: an ordered suffix table is scanned most-specific-first and
// the first rule that matches the ending, leaves a long-enough stem, and
// passes vowel harmony wins. No general morphological generation is
// attempted; the output only needs to be stable enough that two mentions
// of the same entity normalize to the same string.
//
// Lemmatize is a pure function over the static tables below and is safe
// for concurrent use by multiple goroutines.
package lemma

import (
	"strings"
	"unicode/utf8"
)

// rule strips suffix when the remaining stem is longer than minLen runes.
type rule struct {
	suffix string
	minLen int
}

// suffixRules is scanned in order; longest and most specific endings come
// first. Reordering changes results, since only the first rule that
// passes all checks fires.
var suffixRules = []rule{
	// -mə verbal noun forms
	{"məsində", 8}, {"məsinə", 7}, {"məsi", 6}, {"mə", 3},

	// case endings
	{"sində", 6}, {"sindən", 7}, {"sından", 7}, {"sündən", 7},
	{"dən", 3}, {"dan", 3}, {"də", 2}, {"da", 2},
	{"nə", 3}, {"na", 3}, {"yə", 3}, {"ya", 3},
	{"ni", 3}, {"nı", 3}, {"nü", 3}, {"nu", 3},
	{"nin", 4}, {"nın", 4}, {"nün", 4}, {"nun", 4},

	// possessive + case
	{"ımda", 4}, {"imdə", 4}, {"umda", 4}, {"ümdə", 4},
	{"ında", 4}, {"ində", 4}, {"unda", 4}, {"ündə", 4},
	{"ımdan", 5}, {"imdən", 5}, {"umdan", 5}, {"ümdən", 5},
	{"ından", 5}, {"indən", 5}, {"undan", 5}, {"ündən", 5},

	// plural + possessive
	{"ları", 4}, {"ləri", 4}, {"ların", 5}, {"lərin", 5},
	{"larım", 5}, {"lərim", 5}, {"larımız", 7}, {"lərimiz", 7},

	// bare possessives
	{"ım", 2}, {"im", 2}, {"um", 2}, {"üm", 2},
	{"ın", 2}, {"in", 2}, {"un", 2}, {"ün", 2},

	// bare endings
	{"ı", 1}, {"i", 1}, {"u", 1}, {"ü", 1},
	{"si", 2}, {"sı", 2}, {"su", 2}, {"sü", 2},

	// plural
	{"lar", 3}, {"lər", 3},

	// verbal endings
	{"ır", 2}, {"ir", 2}, {"ur", 2}, {"ür", 2},
	{"ar", 2}, {"ər", 2},
	{"mış", 3}, {"miş", 3}, {"muş", 3}, {"müş", 3},
}

// exceptions short-circuits irregular verb forms the suffix rules would
// mangle (edir -> ed, not et).
var exceptions = map[string]string{
	"mənimsənilməsində": "mənimsən",
	"mənimsənilməsi":    "mənimsən",
	"olunur":            "ol",
	"edir":              "et",
	"gedir":             "get",
	"görür":             "gör",
	"deyir":             "de",
	"alır":              "al",
	"verir":             "ver",
	"gəlir":             "gəl",
	"oxuyur":            "oxu",
	"yazır":             "yaz",
	"işləyir":           "işlə",
	"demək":             "de",
	"görmək":            "gör",
	"almaq":             "al",
}

// unchangeable lists words returned as-is even though they end in
// strippable sequences.
var unchangeable = map[string]struct{}{
	"var": {}, "yox": {}, "çox": {}, "az": {}, "bəli": {}, "xeyr": {},
	"hə": {}, "bəlkə": {}, "olası": {}, "mümkün": {},
}

// Lemmatize returns the normalized stem of word. With asName set the
// input keeps its casing (proper names are not case-folded); otherwise it
// is lowercased first. The function never fails: when no rule applies the
// (possibly lowercased) input comes back unchanged.
func Lemmatize(word string, asName bool) string {
	if word == "" {
		return word
	}

	if !asName {
		word = strings.ToLower(word)
	}

	if stem, ok := exceptions[word]; ok {
		return stem
	}
	if _, ok := unchangeable[word]; ok {
		return word
	}

	wordLen := utf8.RuneCountInString(word)
	for _, r := range suffixRules {
		if !strings.HasSuffix(word, r.suffix) || wordLen <= r.minLen {
			continue
		}
		stem := strings.TrimSuffix(word, r.suffix)
		if utf8.RuneCountInString(stem) < 2 {
			continue
		}
		if !harmonyValid(stem, r.suffix) {
			continue
		}
		return stem
	}

	return word
}

// LemmatizeAll maps Lemmatize over a word list.
func LemmatizeAll(words []string, asName bool) []string {
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Lemmatize(w, asName)
	}
	return out
}
