package tagger

import (
	"fmt"
	"strings"
)

// NewProvider creates a tagger provider from configuration.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "http", "":
		return NewHTTPProvider(config)

	case "openai":
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown tagger provider: %s (supported: http, openai)", config.Provider)
	}
}
