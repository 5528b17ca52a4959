package tagger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/azlabs/tanit/internal/model"
)

// OpenAIProvider runs tagging through a chat completion model. It is a
// fallback for texts in languages the dedicated NER service does not
// cover, and trades speed and determinism for coverage.
type OpenAIProvider struct {
	client   *openai.Client
	model    string
	language string
	timeout  time.Duration
}

// NewOpenAIProvider creates an OpenAI-backed tagger.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	modelName := config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	language := config.Language
	if language == "" {
		language = "az"
	}

	return &OpenAIProvider{
		client:   openai.NewClient(config.APIKey),
		model:    modelName,
		language: language,
		timeout:  timeout,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks that the API responds to a model listing.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := p.client.ListModels(ctx)
	return err == nil
}

const taggingPrompt = `You are a named entity tagger for %s-language news text.
Find every entity mention in the text and return ONLY a JSON array, no prose:
[{"label": "...", "text": "...", "start": N, "end": N}]
Labels: PERSON, POSITION, LOCATION, GPE, ORGANISATION.
"start" and "end" are byte offsets into the exact text given.
Tag every occurrence of an entity, including repeats.

Text:
%s`

type openaiSpan struct {
	Label string `json:"label"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Tag asks the chat model for entity spans. Spans the model gets wrong
// (bad offsets, empty text) are dropped rather than failing the document.
func (p *OpenAIProvider) Tag(ctx context.Context, text string) ([]model.Span, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(taggingPrompt, p.language, text),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	return parseCompletion(resp.Choices[0].Message.Content)
}

// parseCompletion turns the model's JSON answer into document-ordered
// spans. Chat models list entities in whatever order they like, so the
// sort here is not optional.
func parseCompletion(content string) ([]model.Span, error) {
	content = stripCodeFence(strings.TrimSpace(content))

	var raw []openaiSpan
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	spans := make([]model.Span, 0, len(raw))
	for _, s := range raw {
		span := model.Span{Label: s.Label, Text: s.Text, Start: s.Start, End: s.End}
		if !span.Valid() {
			continue
		}
		spans = append(spans, span)
	}

	sortByStart(spans)

	return spans, nil
}

// stripCodeFence removes a markdown fence the model sometimes wraps
// around the JSON.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
