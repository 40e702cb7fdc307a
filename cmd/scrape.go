package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/internal/store"
	"github.com/beetools/bee/pkg/table"
	"github.com/beetools/bee/pkg/util"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape recent answer pages and tally word counts",
	Long: `Scrape recent answer pages and tally word counts.

Counts are merged into --dict (format chosen by extension: .json, .msgpack,
.cbor, anything else is text). Pages listed in --log are skipped; every page
scraped successfully is appended to it.`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().Int("days", 30, "Number of days to scrape, counting backwards from --date")
	scrapeCmd.Flags().StringP("date", "d", "", "Most recent day to scrape as YYYY-MM-DD (defaults to today)")
	scrapeCmd.Flags().String("dict", "nytbee_dict.txt", "Word-count file to merge results into")
	scrapeCmd.Flags().String("log", "scraped_urls.txt", "File recording pages already scraped")
	scrapeCmd.Flags().Int("top", 10, "Number of most frequent words to list (0 to skip)")
	scrapeCmd.Flags().StringP("output", "o", "", "Output format: json")
}

type ScrapeInput struct {
	Start    time.Time
	Days     int
	DictPath string
	LogPath  string
	Top      int
	Output   string
}

type scrapeSummary struct {
	Scraped     int               `json:"scraped"`
	Skipped     int               `json:"skipped"`
	UniqueWords int               `json:"unique_words"`
	Top         []store.WordCount `json:"top,omitempty"`
	Failures    []scrape.Failure  `json:"failures"`
}

// ScrapeCmd runs scrapes independent of cobra.
type ScrapeCmd struct {
	collector *scrape.Collector
	template  string
}

func (c ScrapeCmd) Run(ctx context.Context, in ScrapeInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}
	if in.Days < 0 {
		return scrape.ErrNegativeDays
	}

	counts, err := store.LoadWordCounts(in.DictPath)
	if err != nil {
		return err
	}
	urlLog, err := store.OpenURLLog(in.LogPath)
	if err != nil {
		return err
	}
	defer urlLog.Close()

	var bar *pterm.ProgressbarPrinter
	if in.Output != "json" && in.Days > 0 {
		bar, _ = pterm.DefaultProgressbar.WithTotal(in.Days).WithTitle("Scraping").Start()
	}
	skipped := 0
	res, collectErr := c.collector.Collect(ctx, scrape.CollectOptions{
		Start:    in.Start,
		Days:     in.Days,
		Template: c.template,
		Counts:   counts,
		Log:      urlLog,
		Progress: func(p scrape.Progress) {
			if p.Status == scrape.StatusSkipped {
				skipped++
			}
			if bar != nil {
				bar.UpdateTitle(p.URL)
				bar.Increment()
			}
		},
	})
	if bar != nil {
		_, _ = bar.Stop()
	}

	// Whatever was collected before a failure is still worth keeping.
	if err := store.SaveWordCounts(in.DictPath, res.Counts); err != nil {
		return err
	}
	if collectErr != nil {
		return collectErr
	}

	summary := scrapeSummary{
		Scraped:     len(res.Scraped),
		Skipped:     skipped,
		UniqueWords: len(res.Counts),
		Failures:    res.Failures,
	}
	if in.Top > 0 {
		summary.Top = store.TopWords(res.Counts, in.Top)
	}
	if summary.Failures == nil {
		summary.Failures = []scrape.Failure{}
	}
	if in.Output == "json" {
		return util.PrintPrettyJSON(summary)
	}
	printScrapeSummary(summary, in.DictPath)
	return nil
}

func printScrapeSummary(s scrapeSummary, dictPath string) {
	pterm.Success.Printfln("Scraped %d days.", s.Scraped)
	pterm.Info.Printfln("Collected %d unique words into %s.", s.UniqueWords, dictPath)
	if s.Skipped > 0 {
		pterm.Info.Printfln("Skipped %d days already scraped.", s.Skipped)
	}

	if len(s.Top) > 0 {
		rows := pterm.TableData{{"Word", "Count"}}
		for _, wc := range s.Top {
			rows = append(rows, []string{wc.Word, strconv.Itoa(wc.Count)})
		}
		pterm.Println()
		table.PrintTableNoPad(rows, true)
	}

	if len(s.Failures) > 0 {
		pterm.Println()
		pterm.Warning.Println("Failed URLs:")
		rows := pterm.TableData{{"URL", "Reason"}}
		for _, f := range s.Failures {
			rows = append(rows, []string{f.URL, f.Reason})
		}
		table.PrintTableNoPad(rows, true)
	}
}

func runScrape(cmd *cobra.Command, args []string) error {
	days, _ := cmd.Flags().GetInt("days")
	date, _ := cmd.Flags().GetString("date")
	dict, _ := cmd.Flags().GetString("dict")
	logPath, _ := cmd.Flags().GetString("log")
	top, _ := cmd.Flags().GetInt("top")
	output, _ := cmd.Flags().GetString("output")

	start, err := parseDay(date)
	if err != nil {
		return err
	}
	fetcher, closeCache, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	c := ScrapeCmd{
		collector: &scrape.Collector{Fetcher: fetcher, Logger: logger},
		template:  cfg.AnswersURL,
	}
	if err := c.Run(cmd.Context(), ScrapeInput{
		Start:    start,
		Days:     days,
		DictPath: dict,
		LogPath:  logPath,
		Top:      top,
		Output:   output,
	}); err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}
	return nil
}
