// Package tagger wraps the external named-entity tagger behind a small
// provider interface. The model itself is a black box: providers hand the
// document text to a remote service or an LLM and return raw labeled
// spans for the resolution layer to interpret.
package tagger

import (
	"context"
	"sort"
	"time"

	"github.com/azlabs/tanit/internal/model"
)

// Provider produces raw token spans for a document.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Tag runs the external tagger over text and returns its spans in
	// document order. Offsets index the exact text passed in, so any
	// preprocessing must happen before tagging.
	Tag(ctx context.Context, text string) ([]model.Span, error)

	// IsAvailable checks whether the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Config holds tagger provider configuration.
type Config struct {
	// Provider name: "http" or "openai".
	Provider string

	// Endpoint of the remote NER service (http provider).
	Endpoint string

	// Model name (openai provider).
	Model string

	// APIKey for the openai provider.
	APIKey string

	// Language hint sent with each document.
	Language string

	// Timeout for a single tagging request.
	Timeout time.Duration

	// Rate limiting toward the endpoint.
	RequestsPerSecond float64
	BurstSize         int
}

// sortByStart puts spans in document order. The resolution layer links
// persons to nearby positions by sequence index, so every provider must
// return spans sorted this way regardless of how its backend groups
// them.
func sortByStart(spans []model.Span) {
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
}

// ConfigFromModel converts the application tagger config.
func ConfigFromModel(mc model.TaggerConfig) Config {
	return Config{
		Provider:          mc.Provider,
		Endpoint:          mc.Endpoint,
		Model:             mc.Model,
		APIKey:            mc.APIKey,
		Language:          mc.Language,
		Timeout:           mc.Timeout,
		RequestsPerSecond: mc.RequestsPerSecond,
		BurstSize:         mc.BurstSize,
	}
}
