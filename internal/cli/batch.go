package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/pipeline"
	"github.com/azlabs/tanit/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract entities from many article URLs in parallel",
	Long: `Batch reads article URLs from a file (one per line) and runs the
extraction flow over them with a worker pool. Each article gets its own
JSON report in the output directory.

Example:
  tanit batch urls.txt
  tanit batch urls.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./tanit-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&taggerProvider, "tagger", "", "tagger provider (http, openai)")
	batchCmd.Flags().StringVar(&taggerEndpoint, "endpoint", "", "NER service endpoint (http provider)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyTaggerFlags(cfg); err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, concurrency)

	started := time.Now()
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.Verbose)
	stats := model.Stats{TotalArticles: len(results)}

	for _, result := range results {
		if result.Error != nil {
			stats.SkippedArticles++
			fmt.Fprintf(os.Stderr, "failed %s: %v\n", result.URL, result.Error)
			continue
		}

		jsonPath := filepath.Join(outputDir, sanitizeFilename(result.Report.Subject)+".json")
		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			stats.SkippedArticles++
			fmt.Fprintf(os.Stderr, "failed %s: write JSON: %v\n", result.URL, err)
			continue
		}

		stats.Add(result.Report.Entities)
	}
	stats.ProcessingTime = time.Since(started)

	fmt.Fprintf(os.Stderr, "\nprocessed %d/%d articles in %v\n",
		stats.ProcessedArticles, stats.TotalArticles, stats.ProcessingTime.Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "persons: %d  organisations: %d  locations: %d\n",
		stats.TotalPersons, stats.TotalOrganisations, stats.TotalLocations)
	fmt.Fprintf(os.Stderr, "reports written to %s\n", outputDir)

	return nil
}

var filenameReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
	" ", "-",
)

// sanitizeFilename makes a subject safe to use as a file name.
func sanitizeFilename(s string) string {
	s = filenameReplacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	if s == "" {
		s = "report"
	}
	return s
}
