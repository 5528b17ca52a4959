package resolve

import (
	"strings"

	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

// defaultLocationType is assumed when the gazetteer has no entry for the
// surface form.
const defaultLocationType = "COUNTRY"

// classifyLocations processes LOCATION and GPE spans in combined document
// order. Gazetteer membership is exact and case-sensitive. Locations are
// intentionally not run through the dedup gate: repeated mentions of the
// same place each produce a record, unlike persons and organisations.
func classifyLocations(lex *lexicon.Lexicon, spans []model.Span) []model.LocationMention {
	locations := partition(spans, labelLocation, labelGPE)

	mentions := make([]model.LocationMention, 0, len(locations))
	for _, l := range locations {
		clean := strings.TrimSpace(strings.ReplaceAll(l.span.Text, `"`, ""))
		if !IsProperName(clean) {
			continue
		}

		typ := defaultLocationType
		if t, ok := lex.LocationType(clean); ok {
			typ = t
		}

		mentions = append(mentions, model.LocationMention{
			Name:    clean,
			Type:    typ,
			Mention: model.Offsets{StartChar: l.span.Start, EndChar: l.span.End},
		})
	}

	return mentions
}
