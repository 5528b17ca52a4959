package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/azlabs/tanit/internal/model"
)

// Extractor runs the extraction flow for one article URL.
type Extractor interface {
	ProcessURL(ctx context.Context, url string) (*model.Report, error)
}

// ExtractJob extracts entities from one URL.
type ExtractJob struct {
	URL       string
	Extractor Extractor
}

// Execute runs the extraction.
func (j *ExtractJob) Execute(ctx context.Context) Result {
	report, err := j.Extractor.ProcessURL(ctx, j.URL)
	if err != nil {
		return &ExtractResult{URL: j.URL, Error: err}
	}
	return &ExtractResult{URL: j.URL, Report: report}
}

// ExtractResult is the outcome of extracting one URL.
type ExtractResult struct {
	URL    string
	Report *model.Report
	Error  error
}

// GetError returns the extraction error, if any.
func (r *ExtractResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts entities from many article URLs concurrently.
type BatchProcessor struct {
	extractor   Extractor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(extractor Extractor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		extractor:   extractor,
		concurrency: concurrency,
	}
}

// ProcessURLs extracts from all URLs and returns per-URL results. One
// failed URL never aborts the rest of the batch. Results are collected
// concurrently with submission, since batches are routinely larger than
// the pool's channel buffers. Cancelling ctx stops the workers and
// drops the unstarted URLs.
func (b *BatchProcessor) ProcessURLs(ctx context.Context, urls []string) []*ExtractResult {
	if len(urls) == 0 {
		return []*ExtractResult{}
	}

	pool := NewPoolWithContext(ctx, b.concurrency)
	pool.Start()

	collected := make(chan []*ExtractResult, 1)
	go func() {
		extractResults := make([]*ExtractResult, 0, len(urls))
		for result := range pool.Results() {
			extractResults = append(extractResults, result.(*ExtractResult))
		}
		collected <- extractResults
	}()

	for _, url := range urls {
		pool.Submit(&ExtractJob{URL: url, Extractor: b.extractor})
	}
	pool.Close()

	return <-collected
}

// ProcessFile extracts from the URLs listed in a file, one per line.
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*ExtractResult, error) {
	urls, err := ReadURLsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read URLs: %w", err)
	}

	return b.ProcessURLs(ctx, urls), nil
}

// ReadURLsFromFile reads URLs from a file, skipping blanks, comment
// lines and duplicates.
func ReadURLsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var urls []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			urls = append(urls, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return urls, nil
}
