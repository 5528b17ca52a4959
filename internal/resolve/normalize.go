package resolve

import (
	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

// Canonical label names the resolvers partition on.
const (
	labelPerson       = "PERSON"
	labelPosition     = "POSITION"
	labelLocation     = "LOCATION"
	labelGPE          = "GPE"
	labelOrganisation = "ORGANISATION"
	labelOutside      = "O"
)

// NormalizeLabels rewrites every span's raw label to its canonical name
// via the lexicon. It must run before any resolver partitions spans by
// label; the input order is preserved because the linker depends on
// original sequence indices.
func NormalizeLabels(lex *lexicon.Lexicon, spans []model.Span) []model.Span {
	out := make([]model.Span, len(spans))
	for i, s := range spans {
		s.Label = lex.ResolveLabel(s.Label)
		out[i] = s
	}
	return out
}

// indexed couples a span with its position in the full normalized span
// sequence. The person-position linker measures distance in sequence
// indices, not character offsets, so the index travels with the span
// through partitioning.
type indexed struct {
	span  model.Span
	index int
}

// partition selects the valid spans carrying one of the wanted labels,
// keeping their original sequence indices. Spans with malformed offsets
// are skipped here so one bad record never aborts the document.
func partition(spans []model.Span, labels ...string) []indexed {
	var out []indexed
	for i, s := range spans {
		if !s.Valid() {
			continue
		}
		for _, l := range labels {
			if s.Label == l {
				out = append(out, indexed{span: s, index: i})
				break
			}
		}
	}
	return out
}
