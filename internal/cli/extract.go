package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/pipeline"
)

var (
	outJSON        string
	extractTimeout time.Duration
	taggerProvider string
	taggerEndpoint string
	taggerModel    string
	noCache        bool
)

var extractCmd = &cobra.Command{
	Use:   "extract <url-or-file>",
	Short: "Extract entities from one article",
	Long: `Extract runs the full flow over a single document:
- Fetch the article page (or read a local text file)
- Preprocess the text and call the entity tagger
- Resolve persons, organisations and locations
- Write a JSON report and print a summary

Example:
  tanit extract https://news.example.az/siyaset/sammit-kecirildi
  tanit extract article.txt --json report.json
  tanit extract article.txt --tagger openai`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	extractCmd.Flags().DurationVar(&extractTimeout, "timeout", 2*time.Minute, "overall extraction timeout")
	extractCmd.Flags().StringVar(&taggerProvider, "tagger", "", "tagger provider (http, openai)")
	extractCmd.Flags().StringVar(&taggerEndpoint, "endpoint", "", "NER service endpoint (http provider)")
	extractCmd.Flags().StringVar(&taggerModel, "model", "", "model name (openai provider)")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
}

// applyTaggerFlags folds the extract/batch flags into the configuration.
func applyTaggerFlags(cfg *model.Config) error {
	if taggerProvider != "" {
		cfg.Tagger.Provider = taggerProvider
	}
	if taggerEndpoint != "" {
		cfg.Tagger.Endpoint = taggerEndpoint
	}
	if taggerModel != "" {
		cfg.Tagger.Model = taggerModel
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	if cfg.Tagger.Provider == "openai" {
		if cfg.Tagger.APIKey == "" {
			cfg.Tagger.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.Tagger.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), extractTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyTaggerFlags(cfg); err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	var report *model.Report
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		report, err = p.ProcessURL(ctx, input)
	} else {
		report, err = extractFile(ctx, p, input)
	}
	if errors.Is(err, pipeline.ErrTextTooShort) {
		return fmt.Errorf("document too short to process (minimum %d characters)", cfg.MinTextLength)
	}
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if err := p.RenderReport(report, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

func extractFile(ctx context.Context, p *pipeline.Pipeline, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := pipeline.Preprocess(string(data))

	entities, err := p.ProcessText(ctx, text)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return &model.Report{
		Subject:     subject,
		ExtractedAt: time.Now().UTC(),
		Text:        text,
		Entities:    entities,
	}, nil
}
