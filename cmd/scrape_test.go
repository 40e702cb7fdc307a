package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/internal/store"
)

func newScrapeCmd(fetcher scrape.PageFetcher) ScrapeCmd {
	return ScrapeCmd{collector: &scrape.Collector{Fetcher: fetcher}, template: testTemplate}
}

func TestScrape_MergesCountsAndSkipsLogged(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "counts.json")
	logPath := filepath.Join(dir, "scraped.txt")
	require.NoError(t, store.SaveWordCounts(dict, map[string]int{"bag": 3}))
	require.NoError(t, os.WriteFile(logPath, []byte("https://bee.example/Bee_20240103.html\n"), 0o644))

	fetcher := &FakeFetcher{FetchFunc: func(_ context.Context, url string) (string, error) {
		if strings.HasSuffix(url, "20240101.html") {
			return `<div id="main-answer-list"></div>`, nil
		}
		return answersPage, nil
	}}

	var err error
	out := captureStdout(t, func() {
		err = newScrapeCmd(fetcher).Run(context.Background(), ScrapeInput{
			Start:    time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local),
			Days:     3,
			DictPath: dict,
			LogPath:  logPath,
			Top:      2,
			Output:   "json",
		})
	})
	require.NoError(t, err)

	var summary scrapeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 1, summary.Scraped)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 3, summary.UniqueWords)
	assert.Equal(t, []store.WordCount{{Word: "bag", Count: 4}, {Word: "cafe", Count: 1}}, summary.Top)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "No answers extracted", summary.Failures[0].Reason)

	counts, err := store.LoadWordCounts(dict)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"bag": 4, "cafe": 1, "dad": 1}, counts)

	logged, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "https://bee.example/Bee_20240102.html")
	assert.Equal(t, []string{
		"https://bee.example/Bee_20240102.html",
		"https://bee.example/Bee_20240101.html",
	}, fetcher.Calls)
}

func TestScrape_PrintsSummary(t *testing.T) {
	setupStdoutCapture(t)
	dir := t.TempDir()
	fetcher := &FakeFetcher{FetchFunc: func(context.Context, string) (string, error) { return answersPage, nil }}

	err := newScrapeCmd(fetcher).Run(context.Background(), ScrapeInput{
		Start:    time.Date(2024, 1, 3, 0, 0, 0, 0, time.Local),
		Days:     2,
		DictPath: filepath.Join(dir, "dict.txt"),
		LogPath:  filepath.Join(dir, "log.txt"),
	})
	require.NoError(t, err)

	out := outBuf.String()
	assert.Contains(t, out, "Scraped 2 days.")
	assert.Contains(t, out, "Collected 3 unique words")
	assert.NotContains(t, out, "Failed URLs")
}

func TestScrape_NegativeDays(t *testing.T) {
	dir := t.TempDir()
	err := newScrapeCmd(&FakeFetcher{}).Run(context.Background(), ScrapeInput{
		Days:     -1,
		DictPath: filepath.Join(dir, "dict.txt"),
		LogPath:  filepath.Join(dir, "log.txt"),
	})
	assert.ErrorIs(t, err, scrape.ErrNegativeDays)
	assert.NoFileExists(t, filepath.Join(dir, "dict.txt"))
}
