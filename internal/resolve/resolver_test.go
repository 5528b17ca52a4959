package resolve

import (
	"testing"

	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

func testLexicon() *lexicon.Lexicon {
	return lexicon.New(
		map[string]string{
			"0": "O",
			"1": "PERSON",
			"2": "POSITION",
			"3": "LOCATION",
			"4": "ORGANISATION",
		},
		[]lexicon.GazetteerEntry{
			{Type: "CITY", Forms: []string{"Bakı"}},
		},
		[]lexicon.GazetteerEntry{
			{Type: "GOVERNMENT", Forms: []string{"nazirlər kabineti"}},
		},
	)
}

func TestNormalizeLabels(t *testing.T) {
	lex := testLexicon()

	tests := []struct {
		raw  string
		want string
	}{
		{"LABEL_1", "PERSON"},
		{"LABEL_4", "ORGANISATION"},
		{"1", "PERSON"},
		// Codes absent from the mapping pass through verbatim.
		{"LABEL_99", "LABEL_99"},
		{"MISC", "MISC"},
	}

	for _, tt := range tests {
		spans := NormalizeLabels(lex, []model.Span{{Label: tt.raw, Text: "x", Start: 0, End: 1}})
		if spans[0].Label != tt.want {
			t.Errorf("NormalizeLabels(%q) = %q, want %q", tt.raw, spans[0].Label, tt.want)
		}
	}
}

func TestResolver_EndToEnd(t *testing.T) {
	r := NewResolver(testLexicon())

	spans := []model.Span{
		{Label: "LABEL_2", Text: "prezidenti", Start: 0, End: 10},
		{Label: "LABEL_1", Text: "İlham Əliyev", Start: 11, End: 23},
		{Label: "LABEL_3", Text: "Bakı", Start: 30, End: 34},
		{Label: "LABEL_4", Text: `"Kapital Bank"`, Start: 40, End: 54},
		{Label: "LABEL_0", Text: "dedi", Start: 55, End: 59},
	}

	got := r.Resolve(spans)

	if len(got.Persons) != 1 {
		t.Fatalf("persons = %d, want 1", len(got.Persons))
	}
	if got.Persons[0].Position != "prezident" {
		t.Errorf("position = %q, want prezident", got.Persons[0].Position)
	}

	if len(got.Locations) != 1 || got.Locations[0].Type != "CITY" {
		t.Errorf("locations = %+v, want one CITY", got.Locations)
	}

	if len(got.Organisations) != 1 || got.Organisations[0].Name != "Kapital Bank" {
		t.Errorf("organisations = %+v, want Kapital Bank", got.Organisations)
	}

	if len(got.Remaining) != 1 || got.Remaining[0].Text != "dedi" {
		t.Errorf("remaining = %+v, want the O span", got.Remaining)
	}
}

func TestResolver_EmptyInput(t *testing.T) {
	r := NewResolver(testLexicon())

	got := r.Resolve(nil)
	if len(got.Persons) != 0 || len(got.Organisations) != 0 || len(got.Locations) != 0 {
		t.Errorf("expected empty output for empty input, got %+v", got)
	}
}

func TestResolver_MalformedSpanSkipped(t *testing.T) {
	r := NewResolver(testLexicon())

	spans := []model.Span{
		// Inverted offsets: skipped, must not abort the document.
		{Label: "LABEL_3", Text: "Bakı", Start: 10, End: 4},
		{Label: "LABEL_3", Text: "Bakı", Start: 20, End: 24},
	}

	got := r.Resolve(spans)
	if len(got.Locations) != 1 {
		t.Fatalf("expected 1 location, got %d", len(got.Locations))
	}
	if got.Locations[0].Mention.StartChar != 20 {
		t.Errorf("kept the wrong span: %+v", got.Locations[0])
	}
}

func TestContainsName(t *testing.T) {
	accepted := []string{"Araz"}

	if !containsName(accepted, "Araz Holding") {
		t.Error("superstring of an accepted name must be flagged")
	}
	if !containsName(accepted, "Ara") {
		t.Error("substring of an accepted name must be flagged")
	}
	if containsName(accepted, "Xəzər") {
		t.Error("unrelated name must not be flagged")
	}
	if containsName(nil, "Araz") {
		t.Error("empty accepted list never flags")
	}
}
