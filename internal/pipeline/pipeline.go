// Package pipeline wires fetching, preprocessing, tagging and resolution
// into the end-to-end document flow.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/azlabs/tanit/internal/cache"
	"github.com/azlabs/tanit/internal/lexicon"
	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/resolve"
	"github.com/azlabs/tanit/internal/tagger"
)

// ErrTextTooShort marks documents below the configured minimum length.
// Callers skip these rather than failing the batch.
var ErrTextTooShort = errors.New("document text below minimum length")

// Pipeline orchestrates the full extraction flow for one document at a
// time. It is safe for concurrent use by the batch workers.
type Pipeline struct {
	fetcher  *Fetcher
	provider tagger.Provider
	resolver *resolve.Resolver
	results  cache.Cache
	renderer *Renderer
	config   *model.Config
	log      *logrus.Entry
}

// New creates a pipeline from the application configuration. Lexicon
// files must load cleanly; a missing or unparseable table is fatal.
func New(cfg *model.Config) (*Pipeline, error) {
	lex, err := lexicon.Load(cfg.Lexicon.LabelsPath, cfg.Lexicon.LocationTypesPath, cfg.Lexicon.OrgTypesPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	provider, err := tagger.NewProvider(tagger.ConfigFromModel(cfg.Tagger))
	if err != nil {
		return nil, fmt.Errorf("create tagger: %w", err)
	}

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	return &Pipeline{
		fetcher:  NewFetcher(cfg.HTTP),
		provider: provider,
		resolver: resolve.NewResolver(lex),
		results:  results,
		renderer: NewRenderer(cfg.Output.Verbose),
		config:   cfg,
		log:      logrus.WithField("component", "pipeline"),
	}, nil
}

// cachedEntities is the cache entry payload. Entities excludes the
// remaining spans from its JSON output, so the envelope stores them in
// an explicit field to survive the round trip.
type cachedEntities struct {
	model.Entities
	Remaining []model.Span `json:"remaining"`
}

// ProcessText runs preprocessing, tagging and resolution over raw text.
// Results are memoized on the cleaned text when caching is enabled.
func (p *Pipeline) ProcessText(ctx context.Context, text string) (*model.Entities, error) {
	clean := Preprocess(text)

	if utf8.RuneCountInString(clean) < p.config.MinTextLength {
		return nil, ErrTextTooShort
	}

	key := cache.Key(clean)
	if p.results != nil {
		if raw, found := p.results.Get(key); found {
			var cached cachedEntities
			if err := json.Unmarshal(raw, &cached); err == nil {
				p.log.Debug("cache hit")
				entities := cached.Entities
				entities.Remaining = cached.Remaining
				return &entities, nil
			}
			// Unreadable entry, fall through and retag.
			_ = p.results.Delete(key)
		}
	}

	spans, err := p.provider.Tag(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("tag document: %w", err)
	}

	entities := p.resolver.Resolve(spans)

	if p.results != nil {
		raw, err := json.Marshal(cachedEntities{Entities: *entities, Remaining: entities.Remaining})
		if err == nil {
			err = p.results.Set(key, raw, 0)
		}
		if err != nil {
			p.log.WithError(err).Warn("cache write failed")
		}
	}

	return entities, nil
}

// ProcessArticle extracts entities from a stored article. The title is
// prepended to the body so headline-only mentions are not lost.
func (p *Pipeline) ProcessArticle(ctx context.Context, article model.Article) (*model.ProcessedArticle, error) {
	text := article.Text
	if article.Title != "" {
		text = article.Title + ". " + text
	}

	entities, err := p.ProcessText(ctx, text)
	if err != nil {
		return nil, err
	}

	return &model.ProcessedArticle{
		Article:       article,
		ProcessedDate: time.Now().UTC(),
		Entities:      entities,
	}, nil
}

// ProcessURL fetches an article page and extracts entities from its
// visible text.
func (p *Pipeline) ProcessURL(ctx context.Context, rawURL string) (*model.Report, error) {
	fetched, err := p.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text := Preprocess(ExtractText(fetched.HTML))

	entities, err := p.ProcessText(ctx, text)
	if err != nil {
		return nil, err
	}

	return &model.Report{
		Subject:     fetched.Subject,
		SourceURL:   fetched.FinalURL,
		ExtractedAt: time.Now().UTC(),
		Text:        text,
		Entities:    entities,
	}, nil
}

// RenderReport writes the report JSON and prints the summary.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if p.config.Output.Verbose {
			fmt.Printf("wrote %s\n", jsonPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
