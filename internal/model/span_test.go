package model

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSpanValid(t *testing.T) {
	tests := []struct {
		name string
		span Span
		want bool
	}{
		{"ok", Span{Label: "B-PER", Text: "Bakı", Start: 0, End: 4}, true},
		{"zero width", Span{Label: "O", Text: "və", Start: 7, End: 7}, true},
		{"inverted offsets", Span{Label: "B-LOC", Text: "Gəncə", Start: 9, End: 3}, false},
		{"negative start", Span{Label: "B-PER", Text: "Əli", Start: -1, End: 2}, false},
		{"empty text", Span{Label: "B-ORG", Text: "", Start: 0, End: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Documents in the processed collection must use the same field names as
// the JSON reports, so queries written against one work against the other.
func TestEntitiesMongoFieldNames(t *testing.T) {
	entities := Entities{
		Persons: []PersonMention{{
			Name:         "İlham Əliyev",
			OriginalName: "İlham Əliyevin",
			Position:     "prezident",
			Mention:      Offsets{StartChar: 40, EndChar: 54},
		}},
		Organisations: []OrganisationMention{{
			Name:    "Milli Məclis",
			Type:    "GOVERNMENT",
			Mention: Offsets{StartChar: 60, EndChar: 72},
		}},
		Locations: []LocationMention{{
			Name:    "Bakı",
			Type:    "CITY",
			Mention: Offsets{StartChar: 0, EndChar: 4},
		}},
		Remaining: []Span{{Label: "O", Text: "dedi", Start: 80, End: 84}},
	}

	raw, err := bson.Marshal(entities)
	if err != nil {
		t.Fatalf("bson.Marshal: %v", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal: %v", err)
	}

	if _, ok := doc["remaining"]; ok {
		t.Error("remaining spans must not be persisted")
	}

	persons, ok := doc["persons"].(bson.A)
	if !ok || len(persons) != 1 {
		t.Fatalf("persons = %v", doc["persons"])
	}
	person, ok := persons[0].(bson.M)
	if !ok {
		t.Fatalf("person document = %v", persons[0])
	}
	for _, field := range []string{"name", "original_name", "position", "mentions"} {
		if _, ok := person[field]; !ok {
			t.Errorf("person document missing %q: %v", field, person)
		}
	}
	mention, ok := person["mentions"].(bson.M)
	if !ok {
		t.Fatalf("mentions document = %v", person["mentions"])
	}
	for _, field := range []string{"start_char", "end_char"} {
		if _, ok := mention[field]; !ok {
			t.Errorf("mention offsets missing %q: %v", field, mention)
		}
	}
}
