package lemma

// Azerbaijani vowels split into two disjoint harmony classes. A suffix
// may only attach to a stem whose last vowel shares its class.
var (
	backVowels  = map[rune]bool{'a': true, 'ı': true, 'o': true, 'u': true}
	frontVowels = map[rune]bool{'ə': true, 'e': true, 'i': true, 'ö': true, 'ü': true}
)

// harmonyValid reports whether suffix agrees with the harmony class of
// the stem's trailing vowel. A stem without vowels trivially passes.
func harmonyValid(stem, suffix string) bool {
	var last rune
	found := false
	for _, r := range stem {
		if backVowels[r] || frontVowels[r] {
			last = r
			found = true
		}
	}
	if !found {
		return true
	}

	stemBack := backVowels[last]
	for _, r := range suffix {
		if backVowels[r] && !stemBack {
			return false
		}
		if frontVowels[r] && stemBack {
			return false
		}
	}
	return true
}
