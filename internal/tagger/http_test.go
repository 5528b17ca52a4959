package tagger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPProvider_Tag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req recordsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Texts) != 1 || req.Texts[0].Language != "az" {
			t.Errorf("unexpected request: %+v", req)
		}

		resp := recordsResponse{Texts: []recordResponse{{
			UUID: req.Texts[0].UUID,
			Entities: []entityRecord{
				{
					Name:  "Bakı",
					Label: "LABEL_3",
					Matches: []entityMatch{
						{Start: 40, End: 44, Text: "Bakı"},
						{Start: 5, End: 9, Text: "Bakı"},
					},
				},
				{
					Name:    "İlham Əliyev",
					Label:   "LABEL_1",
					Matches: []entityMatch{{Start: 12, End: 24, Text: "İlham Əliyev"}},
				},
			},
		}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	p, err := NewHTTPProvider(Config{Endpoint: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPProvider: %v", err)
	}

	spans, err := p.Tag(context.Background(), "some text")
	if err != nil {
		t.Fatalf("Tag: %v", err)
	}

	if len(spans) != 3 {
		t.Fatalf("spans = %d, want 3", len(spans))
	}
	// Flattened matches come back sorted by start offset.
	if spans[0].Start != 5 || spans[1].Start != 12 || spans[2].Start != 40 {
		t.Errorf("spans out of order: %+v", spans)
	}
	if spans[1].Label != "LABEL_1" || spans[1].Text != "İlham Əliyev" {
		t.Errorf("span[1] = %+v", spans[1])
	}
}

func TestHTTPProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	p, err := NewHTTPProvider(Config{Endpoint: server.URL})
	if err != nil {
		t.Fatalf("NewHTTPProvider: %v", err)
	}

	if _, err := p.Tag(context.Background(), "text"); err == nil {
		t.Error("expected error for 503 response")
	}
	if p.IsAvailable(context.Background()) {
		t.Error("IsAvailable must be false for a failing endpoint")
	}
}

func TestNewHTTPProvider_RequiresEndpoint(t *testing.T) {
	if _, err := NewHTTPProvider(Config{}); err == nil {
		t.Error("expected error for empty endpoint")
	}
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		want    string
		wantErr bool
	}{
		{"default is http", Config{Endpoint: "http://localhost:8080"}, "http", false},
		{"explicit http", Config{Provider: "http", Endpoint: "http://localhost:8080"}, "http", false},
		{"openai", Config{Provider: "openai", APIKey: "sk-test"}, "openai", false},
		{"unknown", Config{Provider: "bert"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	in := "```json\n[{\"label\":\"PERSON\"}]\n```"
	if got := stripCodeFence(in); got != `[{"label":"PERSON"}]` {
		t.Errorf("stripCodeFence = %q", got)
	}
	if got := stripCodeFence("[1,2]"); got != "[1,2]" {
		t.Errorf("unfenced input must pass through, got %q", got)
	}
}
