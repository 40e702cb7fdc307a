package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beetools/bee/internal/logging"
	"github.com/beetools/bee/internal/pagecache"
)

// PageFetcher returns the HTML of one answer page.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: %s", e.URL, e.Status)
}

// Fetcher downloads pages over HTTP, consulting Cache first when set.
type Fetcher struct {
	Client    *http.Client
	UserAgent string
	Cache     pagecache.Cache
	CacheTTL  time.Duration
	Logger    logging.Logger
}

var _ PageFetcher = (*Fetcher)(nil)

// Fresh returns a copy of f that skips the page cache, for files that are
// rewritten in place such as the published latest payload.
func (f *Fetcher) Fresh() *Fetcher {
	c := *f
	c.Cache = nil
	return &c
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	log := logging.OrNop(f.Logger)

	if f.Cache != nil {
		b, ok, err := f.Cache.Get(ctx, url)
		if err != nil {
			log.Warn("page cache read failed", "url", url, "error", err)
		} else if ok {
			log.Debug("page cache hit", "url", url, "bytes", len(b))
			return string(b), nil
		}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	if f.UserAgent != "" {
		req.Header.Set("User-Agent", f.UserAgent)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", url, err)
	}
	log.Debug("fetched page", "url", url, "bytes", len(body), "elapsed", time.Since(start))

	if f.Cache != nil {
		if err := f.Cache.Set(ctx, url, body, f.CacheTTL); err != nil {
			log.Warn("page cache write failed", "url", url, "error", err)
		}
	}
	return string(body), nil
}
