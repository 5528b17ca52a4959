package resolve

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

// defaultOrgType is assumed when neither the gazetteer nor the legal-form
// suffix check types the organisation.
const defaultOrgType = "COMPANY"

// legalFormSuffixes are Azerbaijani legal-form acronyms (limited
// liability, joint stock, limited partnership, cooperative). A surface
// text ending in one is a company regardless of the gazetteer's opinion.
var legalFormSuffixes = []string{" mmc", " asc", " mq", " ik"}

// orgNamePatterns are tried in order against the whitespace-normalized
// surface text; the first match wins. The order matters: the quoted-name
// form must win over the bare-parenthetical form for inputs like
// `"ASAN xidmət" (ASAN)`.
var orgNamePatterns = []*regexp.Regexp{
	// "Name" (gloss) trailing text
	regexp.MustCompile(`^"([^"]+)"\s*(?:\([^)]+\))?\s*(.*)`),
	// Name (abbreviation)
	regexp.MustCompile(`^([^(]+)\s*\(([^)]+)\)`),
	// ABBR - full name
	regexp.MustCompile(`^(\b[A-Z]+\b[+\-]?)\s*[-–]\s*(.+)`),
	// bare quoted string
	regexp.MustCompile(`^"([^"]+)"`),
}

// glossExcludePrefix drops parenthetical glosses that are actually
// honorific continuations ("bəy ...") rather than expansions.
const glossExcludePrefix = "bey"

var whitespaceRun = regexp.MustCompile(`\s+`)

// cleanOrgName recovers a display name from tagger output that often
// carries quoting, abbreviations, and dash-joined expansions. When no
// pattern applies, the quoted characters are stripped and the normalized
// text returned as-is.
func cleanOrgName(text string) string {
	text = strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))

	for _, pattern := range orgNamePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		clean := strings.TrimSpace(m[1])
		if len(m) >= 3 && m[2] != "" {
			ext := strings.TrimSpace(m[2])
			if utf8.RuneCountInString(ext) > 3 && !strings.HasPrefix(strings.ToLower(ext), glossExcludePrefix) {
				clean = clean + " (" + ext + ")"
			}
		}
		return clean
	}

	return strings.TrimSpace(strings.ReplaceAll(text, `"`, ""))
}

// classifyOrganisations processes ORGANISATION spans in document order:
// clean the name, gate on the proper-name filter and the dedup gate, then
// type by case-insensitive gazetteer lookup with the legal-form suffix
// check taking precedence over whatever the gazetteer said.
func classifyOrganisations(lex *lexicon.Lexicon, spans []model.Span) []model.OrganisationMention {
	orgs := partition(spans, labelOrganisation)

	mentions := make([]model.OrganisationMention, 0, len(orgs))
	var accepted []string

	for _, o := range orgs {
		surface := strings.TrimSpace(o.span.Text)
		name := cleanOrgName(surface)
		if !IsProperName(name) {
			continue
		}
		if containsName(accepted, name) {
			continue
		}

		typ := defaultOrgType
		lower := strings.ToLower(surface)
		if t, ok := lex.OrganisationType(lower); ok {
			typ = t
		}
		for _, suffix := range legalFormSuffixes {
			if strings.HasSuffix(lower, suffix) {
				typ = defaultOrgType
				break
			}
		}

		accepted = append(accepted, name)
		mentions = append(mentions, model.OrganisationMention{
			Name:    name,
			Type:    typ,
			Mention: model.Offsets{StartChar: o.span.Start, EndChar: o.span.End},
		})
	}

	return mentions
}
