package resolve

import "strings"

// containsName reports whether candidate duplicates a name already in the
// accepted list: either string containing the other counts, case
// sensitively. First-seen wins; later duplicates are dropped, not merged.
//
// O(n) per candidate and O(n^2) per document, which is fine for the
// handful of entities a news article yields. Switch to an index structure
// only if per-document entity counts grow by orders of magnitude.
func containsName(accepted []string, candidate string) bool {
	for _, name := range accepted {
		if name == "" {
			continue
		}
		if strings.Contains(name, candidate) || strings.Contains(candidate, name) {
			return true
		}
	}
	return false
}
