package resolve

import (
	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

// Resolver applies the full resolution layer to one document's spans.
// It holds only the shared immutable lexicon, so a single value can serve
// any number of concurrent documents.
type Resolver struct {
	lex *lexicon.Lexicon
}

// NewResolver creates a resolver over the given lexicon.
func NewResolver(lex *lexicon.Lexicon) *Resolver {
	return &Resolver{lex: lex}
}

// Resolve normalizes labels, then runs the three independent resolvers
// over the span sequence. Input spans must be in original document order
// (ascending start offset); the person-position linker depends on it.
// An empty span list yields empty output lists, not an error.
func (r *Resolver) Resolve(spans []model.Span) *model.Entities {
	normalized := NormalizeLabels(r.lex, spans)

	var remaining []model.Span
	for _, s := range normalized {
		if s.Label == labelOutside {
			remaining = append(remaining, s)
		}
	}

	return &model.Entities{
		Persons:       linkPersons(normalized),
		Organisations: classifyOrganisations(r.lex, normalized),
		Locations:     classifyLocations(r.lex, normalized),
		Remaining:     remaining,
	}
}
