package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/pipeline"
	"github.com/azlabs/tanit/internal/store"
)

var (
	processLimit   int64
	processTimeout time.Duration
	dryRun         bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process unseen articles from the database",
	Long: `Process reads articles from the source collection that have no
processed counterpart yet, extracts their entities, and writes the
augmented documents to the target collection in batches.

Example:
  tanit process
  tanit process --limit 500
  tanit process --dry-run`,
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().Int64Var(&processLimit, "limit", 0, "max articles to process (0 = all)")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 30*time.Minute, "total timeout for the run")
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "extract but do not write to the database")
	processCmd.Flags().StringVar(&taggerProvider, "tagger", "", "tagger provider (http, openai)")
	processCmd.Flags().StringVar(&taggerEndpoint, "endpoint", "", "NER service endpoint (http provider)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyTaggerFlags(cfg); err != nil {
		return err
	}

	log := logrus.WithField("command", "process")

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	st, err := store.NewMongoStore(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if err := st.EnsureIndexes(ctx); err != nil {
		return err
	}

	articles, err := st.UnprocessedArticles(ctx, processLimit)
	if err != nil {
		return err
	}

	log.WithField("count", len(articles)).Info("articles to process")

	started := time.Now()
	stats := model.Stats{TotalArticles: len(articles)}
	var processed []model.ProcessedArticle

	for _, article := range articles {
		pa, err := p.ProcessArticle(ctx, article)
		if errors.Is(err, pipeline.ErrTextTooShort) {
			stats.SkippedArticles++
			continue
		}
		if err != nil {
			stats.SkippedArticles++
			log.WithError(err).WithField("id", article.ID).Warn("article failed")
			continue
		}

		processed = append(processed, *pa)
		stats.Add(pa.Entities)
	}

	if !dryRun {
		for _, chunk := range store.Chunk(processed, cfg.Mongo.BatchSize) {
			if err := st.InsertProcessedBatch(ctx, chunk); err != nil {
				return fmt.Errorf("write batch: %w", err)
			}
		}
	}
	stats.ProcessingTime = time.Since(started)

	fmt.Fprintf(os.Stderr, "processed %d/%d articles in %v (skipped %d)\n",
		stats.ProcessedArticles, stats.TotalArticles,
		stats.ProcessingTime.Round(time.Millisecond), stats.SkippedArticles)
	fmt.Fprintf(os.Stderr, "persons: %d  organisations: %d  locations: %d\n",
		stats.TotalPersons, stats.TotalOrganisations, stats.TotalLocations)
	if dryRun {
		fmt.Fprintln(os.Stderr, "dry run: nothing written to the database")
	}

	return nil
}
