package resolve

import (
	"strings"

	"github.com/azlabs/tanit/internal/lemma"
	"github.com/azlabs/tanit/internal/model"
)

// positionDistance is the maximum sequence-index gap between a POSITION
// span and the PERSON span it modifies: at most one other span may sit
// between them. This approximates apposition ("prezident İlham Əliyev")
// without parsing, while rejecting unrelated earlier titles.
const positionDistance = 2

// unknownPosition is emitted when no title is close enough.
const unknownPosition = "unknown"

// linkPersons walks PERSON spans in document order, lemmatizes each name,
// and attaches the closest preceding POSITION span within the distance
// threshold. When a title is linked the mention offsets point at the
// title, not the person; otherwise at the person itself.
func linkPersons(spans []model.Span) []model.PersonMention {
	persons := partition(spans, labelPerson)
	positions := partition(spans, labelPosition)

	mentions := make([]model.PersonMention, 0, len(persons))
	var accepted []string

	for _, p := range persons {
		surface := strings.TrimSpace(p.span.Text)
		if !IsProperName(surface) {
			continue
		}

		name := lemma.Lemmatize(surface, true)
		if containsName(accepted, name) {
			continue
		}

		m := model.PersonMention{
			Name:         name,
			OriginalName: surface,
			Position:     unknownPosition,
			Mention:      model.Offsets{StartChar: p.span.Start, EndChar: p.span.End},
		}

		// Closest preceding position: the candidate with the largest
		// sequence index still strictly below the person's.
		if c, ok := closestBefore(positions, p.index); ok && p.index-c.index <= positionDistance {
			m.Position = lemma.Lemmatize(c.span.Text, false)
			m.Mention = model.Offsets{StartChar: c.span.Start, EndChar: c.span.End}
		}

		accepted = append(accepted, name)
		mentions = append(mentions, m)
	}

	return mentions
}

func closestBefore(candidates []indexed, index int) (indexed, bool) {
	var best indexed
	found := false
	for _, c := range candidates {
		if c.index < index {
			best = c
			found = true
		}
	}
	return best, found
}
