package tagger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/azlabs/tanit/internal/model"
)

// HTTPProvider talks to a remote NER service over its batch record API.
// Requests are rate limited so a batch run cannot flood the model server.
type HTTPProvider struct {
	endpoint   string
	language   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewHTTPProvider creates a provider for the given endpoint.
func NewHTTPProvider(config Config) (*HTTPProvider, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("tagger endpoint is required")
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := config.BurstSize
	if burst <= 0 {
		burst = 5
	}

	language := config.Language
	if language == "" {
		language = "az"
	}

	return &HTTPProvider{
		endpoint:   config.Endpoint,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
	}, nil
}

// Name returns the provider name.
func (p *HTTPProvider) Name() string {
	return "http"
}

// IsAvailable checks reachability with an empty tagging request.
func (p *HTTPProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.Tag(ctx, "")
	return err == nil
}

// recordRequest and its siblings mirror the NER service's wire format.
type recordRequest struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type recordsRequest struct {
	Texts []recordRequest `json:"texts"`
}

type entityMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type entityRecord struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Matches []entityMatch `json:"matches"`
}

type recordResponse struct {
	UUID     string         `json:"uuid"`
	Entities []entityRecord `json:"entities"`
}

type recordsResponse struct {
	Texts []recordResponse `json:"texts"`
}

// Tag posts the document to the NER service and flattens the response
// into spans sorted by start offset.
func (p *HTTPProvider) Tag(ctx context.Context, text string) ([]model.Span, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := recordsRequest{
		Texts: []recordRequest{{
			UUID:     uuid.New().String(),
			Text:     text,
			Language: p.language,
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call tagger: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tagger returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var records recordsResponse
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	var spans []model.Span
	for _, rec := range records.Texts {
		for _, e := range rec.Entities {
			for _, m := range e.Matches {
				spans = append(spans, model.Span{
					Label: e.Label,
					Text:  m.Text,
					Start: m.Start,
					End:   m.End,
				})
			}
		}
	}

	sortByStart(spans)

	return spans, nil
}
