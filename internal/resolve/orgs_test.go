package resolve

import (
	"testing"

	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
)

func orgLexicon() *lexicon.Lexicon {
	return lexicon.New(
		map[string]string{},
		nil,
		[]lexicon.GazetteerEntry{
			{Type: "GOVERNMENT", Forms: []string{"nazirlər kabineti"}},
			{Type: "UNIVERSITY", Forms: []string{"bakı dövlət universiteti"}},
		},
	)
}

func TestCleanOrgName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"quoted with gloss", `"ASAN xidmət" (ASAN)`, "ASAN xidmət"},
		{"quoted with trailing expansion", `"Azərsu" Açıq Səhmdar Cəmiyyəti`, "Azərsu (Açıq Səhmdar Cəmiyyəti)"},
		{"name with short abbreviation", "Azərbaycan Respublikası Mərkəzi Bankı (AMB)", "Azərbaycan Respublikası Mərkəzi Bankı"},
		{"name with long expansion", "AzTV (Azərbaycan Televiziyası)", "AzTV (Azərbaycan Televiziyası)"},
		{"abbr dash expansion", "ADY - Azərbaycan Dəmir Yolları", "ADY (Azərbaycan Dəmir Yolları)"},
		{"bare quoted", `"Kapital Bank"`, "Kapital Bank"},
		{"no pattern fallback strips quotes", `Bank "Respublika`, "Bank Respublika"},
		{"whitespace collapsed", "Kapital   Bank", "Kapital Bank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanOrgName(tt.in); got != tt.want {
				t.Errorf("cleanOrgName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanOrgName_ShortGlossDropped(t *testing.T) {
	// A second capture of 3 runes or fewer is never appended.
	got := cleanOrgName("Azərenerji (ASC)")
	if got != "Azərenerji" {
		t.Errorf("cleanOrgName = %q, want %q", got, "Azərenerji")
	}
}

func TestClassifyOrganisations_GazetteerCaseInsensitive(t *testing.T) {
	spans := []model.Span{
		{Label: labelOrganisation, Text: "Bakı Dövlət Universiteti", Start: 0, End: 24},
	}

	orgs := classifyOrganisations(orgLexicon(), spans)
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organisation, got %d", len(orgs))
	}
	if orgs[0].Type != "UNIVERSITY" {
		t.Errorf("type = %q, want UNIVERSITY", orgs[0].Type)
	}
}

func TestClassifyOrganisations_DefaultType(t *testing.T) {
	spans := []model.Span{
		{Label: labelOrganisation, Text: "Naməlum Qurum", Start: 0, End: 13},
	}

	orgs := classifyOrganisations(orgLexicon(), spans)
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organisation, got %d", len(orgs))
	}
	if orgs[0].Type != defaultOrgType {
		t.Errorf("type = %q, want %q", orgs[0].Type, defaultOrgType)
	}
}

func TestClassifyOrganisations_LegalSuffixOverridesGazetteer(t *testing.T) {
	lex := lexicon.New(
		map[string]string{},
		nil,
		[]lexicon.GazetteerEntry{
			{Type: "GOVERNMENT", Forms: []string{`"xəzər" mmc`}},
		},
	)

	spans := []model.Span{
		{Label: labelOrganisation, Text: `"Xəzər" MMC`, Start: 0, End: 11},
	}

	orgs := classifyOrganisations(lex, spans)
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organisation, got %d", len(orgs))
	}
	// The legal-form suffix always wins over the gazetteer.
	if orgs[0].Type != defaultOrgType {
		t.Errorf("type = %q, want %q", orgs[0].Type, defaultOrgType)
	}
	if orgs[0].Name != "Xəzər" {
		t.Errorf("name = %q, want %q", orgs[0].Name, "Xəzər")
	}
}

func TestClassifyOrganisations_DedupSuperstring(t *testing.T) {
	spans := []model.Span{
		{Label: labelOrganisation, Text: "Araz", Start: 0, End: 4},
		{Label: labelOrganisation, Text: "Araz Holding", Start: 20, End: 32},
	}

	orgs := classifyOrganisations(orgLexicon(), spans)
	if len(orgs) != 1 {
		t.Fatalf("expected 1 organisation after dedup, got %d", len(orgs))
	}
	if orgs[0].Name != "Araz" {
		t.Errorf("kept name = %q, want first-seen %q", orgs[0].Name, "Araz")
	}
}

func TestClassifyOrganisations_FilterRejects(t *testing.T) {
	spans := []model.Span{
		{Label: labelOrganisation, Text: "şirkət", Start: 0, End: 6},
	}

	if orgs := classifyOrganisations(orgLexicon(), spans); len(orgs) != 0 {
		t.Errorf("expected no organisations, got %d", len(orgs))
	}
}
