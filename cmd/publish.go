package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/publish"
	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/pkg/util"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Write the day's hint page and packed answer list",
	Long: `Write the day's hint page and packed answer list.

Creates <date>.txt and <date>.encoded.txt in the output directory and refreshes
latest.txt and latest.encoded.txt. Letters are looked up from the published
answers unless --letters is given.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().String("output-dir", "results", "Directory to write results into")
	publishCmd.Flags().StringP("letters", "l", "", "Puzzle letters, required letter first (looked up when omitted)")
	publishCmd.Flags().StringP("date", "d", "", "Puzzle date as YYYY-MM-DD (defaults to today)")
	publishCmd.Flags().StringP("wordlist", "w", "", "Dictionary file (defaults to BEE_WORDLIST_PATH)")
	publishCmd.Flags().Bool("no-latest", false, "Do not update the latest.* copies")
	publishCmd.Flags().StringP("output", "o", "", "Output format: json")
}

type PublishInput struct {
	Dir      string
	Day      time.Time
	Letters  string
	Wordlist string
	NoLatest bool
	Output   string
}

type publishResult struct {
	publish.Result
	LatestHintPath    string `json:"latest_hint_path,omitempty"`
	LatestEncodedPath string `json:"latest_encoded_path,omitempty"`
	// MissingAnswers are published answers the word list does not produce.
	MissingAnswers []string `json:"missing_answers,omitempty"`
}

// PublishCmd writes daily results independent of cobra.
type PublishCmd struct {
	fetcher   scrape.PageFetcher
	template  string
	loadWords func(ctx context.Context, path string) ([]string, error)
}

func (c PublishCmd) Publish(ctx context.Context, in PublishInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}

	letters := in.Letters
	if letters == "" {
		if c.fetcher == nil {
			return fmt.Errorf("--letters is required when answer pages are unavailable")
		}
		var err error
		if letters, err = scrape.PuzzleLetters(ctx, c.fetcher, c.template, in.Day); err != nil {
			return err
		}
	}

	dictionary, err := c.loadWords(ctx, in.Wordlist)
	if err != nil {
		return err
	}
	daily, err := publish.GenerateDaily(publish.Options{
		Dir:        in.Dir,
		Date:       in.Day,
		Letters:    letters,
		Dictionary: dictionary,
	})
	if err != nil {
		return err
	}

	res := publishResult{Result: daily}
	if !in.NoLatest {
		if res.LatestHintPath, res.LatestEncodedPath, err = publish.UpdateLatest(in.Dir, daily.HintPath, daily.EncodedPath); err != nil {
			return err
		}
	}

	// The answer page was already fetched for the letters; this read is served
	// by the page cache.
	if in.Letters == "" {
		answers, err := scrape.PageAnswers(ctx, c.fetcher, c.template, in.Day)
		if err != nil {
			return err
		}
		res.MissingAnswers = lo.Without(answers, daily.Solution.Words...)
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(res)
	}
	pterm.Success.Printfln("Wrote %s", res.HintPath)
	pterm.Success.Printfln("Wrote %s", res.EncodedPath)
	if res.LatestHintPath != "" {
		pterm.Info.Printfln("Updated %s and %s", res.LatestHintPath, res.LatestEncodedPath)
	}
	pterm.Info.Printfln("%d words, %d pangrams", len(daily.Solution.Words), len(daily.Solution.Pangrams))
	if len(res.MissingAnswers) > 0 {
		pterm.Warning.Printfln("%d published answers missing from the word list: %s",
			len(res.MissingAnswers), util.JoinOrNone(res.MissingAnswers))
	}
	return nil
}

func runPublish(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("output-dir")
	letters, _ := cmd.Flags().GetString("letters")
	date, _ := cmd.Flags().GetString("date")
	wordlist, _ := cmd.Flags().GetString("wordlist")
	noLatest, _ := cmd.Flags().GetBool("no-latest")
	output, _ := cmd.Flags().GetString("output")

	day, err := parseDay(date)
	if err != nil {
		return err
	}
	if wordlist == "" {
		wordlist = cfg.WordlistPath
	}

	c := PublishCmd{
		template:  cfg.AnswersURL,
		loadWords: downloadingWordLoader(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.WordlistURL, output == "json"),
	}
	if letters == "" {
		fetcher, closeCache, err := newFetcher(cfg, logger)
		if err != nil {
			return err
		}
		defer closeCache()
		c.fetcher = fetcher
	}
	return c.Publish(cmd.Context(), PublishInput{
		Dir:      dir,
		Day:      day,
		Letters:  letters,
		Wordlist: wordlist,
		NoLatest: noLatest,
		Output:   output,
	})
}
