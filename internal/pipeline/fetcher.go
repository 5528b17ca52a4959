package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/azlabs/tanit/internal/model"
	"github.com/azlabs/tanit/internal/util"
	"github.com/azlabs/tanit/internal/worker"
)

// Fetcher downloads article pages. It honors robots.txt and rate limits
// per source host so batch runs stay polite toward news sites.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
}

// NewFetcher creates a fetcher from the HTTP configuration.
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		limiter:   worker.NewLimiter(1, 2),
	}
}

// FetchResult is a downloaded article page.
type FetchResult struct {
	HTML     string
	Subject  string
	FinalURL string
}

// Fetch retrieves the page at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*FetchResult, error) {
	allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("robots check: %w", err)
	}
	if !allowed {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "az,en;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := resp.Request.URL.String()

	return &FetchResult{
		HTML:     string(body),
		Subject:  extractSubject(finalURL),
		FinalURL: finalURL,
	}, nil
}

const fetchAttempts = 3

// Indirection for tests.
var fetchSleepFunc = time.Sleep

// FetchWithRetry retries transient fetch failures with linear backoff.
func (f *Fetcher) FetchWithRetry(ctx context.Context, rawURL string) (*FetchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		result, err := f.Fetch(ctx, rawURL)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !isRetryableFetchError(err) {
			return nil, err
		}
		if attempt < fetchAttempts {
			fetchSleepFunc(time.Duration(attempt) * time.Second)
		}
	}
	return nil, lastErr
}

// isRetryableFetchError reports whether a fetch failure is worth another
// attempt. Server-side and throttling statuses are, client errors are not.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	for _, marker := range []string{
		"status: 429",
		"status: 500",
		"status: 502",
		"status: 503",
		"status: 504",
		"connection refused",
		"connection reset",
		"timeout",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// extractSubject derives a readable subject from the article URL slug.
func extractSubject(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}
