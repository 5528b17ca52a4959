package resolve

import "testing"

func TestIsProperName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"capitalized name", "Bakı", true},
		{"azerbaijani capital letter", "Əli", true},
		{"lowercase rejected", "baki", false},
		{"digits rejected", "12345", false},
		{"single letter too short", "A", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"stop word", "Azərbaycan", false},
		{"generic noun stop word", "Universitet", false},
		{"trimmed before checks", "  Gəncə  ", true},
		{"multi word name", "İlham Əliyev", true},
		{"punctuation only", "--", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProperName(tt.text); got != tt.want {
				t.Errorf("IsProperName(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
