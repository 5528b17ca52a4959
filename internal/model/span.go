package model

// Span is a labeled substring of a document as emitted by the external
// entity tagger. Offsets are character positions into the exact text that
// was passed to the tagger, with Start <= End.
type Span struct {
	Label string `json:"label" bson:"label"`
	Text  string `json:"text" bson:"text"`
	Start int    `json:"start" bson:"start"`
	End   int    `json:"end" bson:"end"`
}

// Valid reports whether the span carries usable offsets. Malformed spans
// are skipped by the resolvers rather than failing the document.
func (s Span) Valid() bool {
	return s.Start >= 0 && s.End >= s.Start && s.Text != ""
}

// Offsets locates a mention in the source document.
type Offsets struct {
	StartChar int `json:"start_char" bson:"start_char"`
	EndChar   int `json:"end_char" bson:"end_char"`
}

// PersonMention is a person linked to the nearest preceding position title.
// Position is "unknown" when no title was close enough; in that case the
// mention offsets are the person span's own, otherwise the title's.
type PersonMention struct {
	Name         string  `json:"name" bson:"name"`
	OriginalName string  `json:"original_name" bson:"original_name"`
	Position     string  `json:"position" bson:"position"`
	Mention      Offsets `json:"mentions" bson:"mentions"`
}

// LocationMention is a location typed by gazetteer membership.
type LocationMention struct {
	Name    string  `json:"name" bson:"name"`
	Type    string  `json:"type" bson:"type"`
	Mention Offsets `json:"mentions" bson:"mentions"`
}

// OrganisationMention is an organisation with a cleaned display name.
type OrganisationMention struct {
	Name    string  `json:"name" bson:"name"`
	Type    string  `json:"type" bson:"type"`
	Mention Offsets `json:"mentions" bson:"mentions"`
}

// Entities is the per-document resolution output. Remaining holds the
// spans whose normalized label marks them as non-entity text, kept for
// downstream display.
type Entities struct {
	Persons       []PersonMention       `json:"persons" bson:"persons"`
	Organisations []OrganisationMention `json:"organisations" bson:"organisations"`
	Locations     []LocationMention     `json:"locations" bson:"locations"`
	Remaining     []Span                `json:"-" bson:"-"`
}
