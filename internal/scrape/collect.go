package scrape

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beetools/bee/internal/logging"
)

var ErrNegativeDays = errors.New("days to collect must be non-negative")

// URLLog remembers which pages were already collected.
type URLLog interface {
	Has(url string) bool
	Append(url string) error
}

// Failure records a page that could not be collected.
type Failure struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// Status of one page during a collection run.
type Status string

const (
	StatusSkipped   Status = "skipped"
	StatusCollected Status = "collected"
	StatusFailed    Status = "failed"
)

// Progress is reported once per day visited.
type Progress struct {
	Index  int
	Total  int
	URL    string
	Status Status
	Words  int
}

// CollectOptions configures Collector.Collect.
type CollectOptions struct {
	Start    time.Time
	Days     int
	Template string
	// Counts is updated in place; nil starts from an empty map.
	Counts   map[string]int
	Log      URLLog
	Progress func(Progress)
}

// CollectResult summarizes a run.
type CollectResult struct {
	Counts   map[string]int `json:"counts"`
	Scraped  []string       `json:"scraped"`
	Failures []Failure      `json:"failures"`
}

// Collector walks answer pages backwards in time and tallies answers.
type Collector struct {
	Fetcher PageFetcher
	Logger  logging.Logger
}

// Collect visits Days pages ending at Start. Pages already in the log are skipped;
// pages that fail to download or have no answers are recorded as failures and
// the run continues.
func (c *Collector) Collect(ctx context.Context, opts CollectOptions) (CollectResult, error) {
	if opts.Days < 0 {
		return CollectResult{}, ErrNegativeDays
	}
	log := logging.OrNop(c.Logger)

	res := CollectResult{Counts: opts.Counts}
	if res.Counts == nil {
		res.Counts = map[string]int{}
	}
	report := func(p Progress) {
		if opts.Progress != nil {
			opts.Progress(p)
		}
	}

	for i := 0; i < opts.Days; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		url := PageURL(opts.Template, opts.Start.AddDate(0, 0, -i))
		p := Progress{Index: i, Total: opts.Days, URL: url}

		if opts.Log != nil && opts.Log.Has(url) {
			p.Status = StatusSkipped
			report(p)
			continue
		}

		page, err := c.Fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			log.Warn("fetch failed", "url", url, "error", err)
			res.Failures = append(res.Failures, Failure{URL: url, Reason: err.Error()})
			p.Status = StatusFailed
			report(p)
			continue
		}

		items := ExtractAnswerList(page)
		if len(items) == 0 {
			res.Failures = append(res.Failures, Failure{URL: url, Reason: "No answers extracted"})
			p.Status = StatusFailed
			report(p)
			continue
		}

		for _, w := range NormalizeAnswers(items) {
			res.Counts[w]++
		}
		res.Scraped = append(res.Scraped, url)
		if opts.Log != nil {
			if err := opts.Log.Append(url); err != nil {
				return res, fmt.Errorf("failed to record %s: %w", url, err)
			}
		}
		log.Info("collected page", "url", url, "answers", len(items))

		p.Status = StatusCollected
		p.Words = len(items)
		report(p)
	}
	return res, nil
}
