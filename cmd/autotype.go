package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/autotype"
	"github.com/beetools/bee/internal/puzzle"
	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/pkg/wordcodec"
)

var autotypeCmd = &cobra.Command{
	Use:   "autotype [payload]",
	Short: "Type an answer list into the game in Chrome",
	Long: `Type an answer list into the game in Chrome.

By default a packed payload is decoded with the puzzle letters, which are read
from the puzzle on screen unless --letters is given. When no payload is passed
the most recently published one is downloaded.

--from-page types the answers listed on the day's answer page instead, and
--solve types every dictionary word that fits the puzzle on screen.

Use --remote to drive a Chrome you already have open (started with
--remote-debugging-port); otherwise a new window is launched.`,
	Example: `  bee autotype
  bee autotype --from-page
  bee autotype --solve --wordlist words.txt
  bee autotype ABI3 --letters abcdefg --remote ws://127.0.0.1:9222/devtools/browser/<id>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAutotype,
}

func init() {
	addLettersFlag(autotypeCmd.Flags(), "Puzzle letters, required letter first (read from the page when omitted)")
	autotypeCmd.Flags().Bool("from-page", false, "Type the answers from the day's answer page")
	autotypeCmd.Flags().Bool("solve", false, "Type every dictionary word that fits the puzzle")
	autotypeCmd.Flags().StringP("date", "d", "", "Answer page date for --from-page as YYYY-MM-DD (defaults to today)")
	autotypeCmd.Flags().StringP("wordlist", "w", "", "Dictionary for --solve (defaults to BEE_WORDLIST_PATH)")
	autotypeCmd.Flags().String("remote", "", "DevTools websocket URL of a running Chrome")
	autotypeCmd.Flags().String("url", autotype.PuzzleURL, "Puzzle page to open")
	autotypeCmd.Flags().Bool("headless", false, "Run a launched Chrome headless")
	autotypeCmd.Flags().Duration("word-delay", autotype.DefaultWordDelay.Max, "Longest pause between words")
	autotypeCmd.MarkFlagsMutuallyExclusive("from-page", "solve")
}

// AnswerSource selects where autotype gets its words.
type AnswerSource int

const (
	SourcePayload AnswerSource = iota
	SourceAnswerPage
	SourceSolver
)

type AutotypeInput struct {
	Source  AnswerSource
	Payload string
	Letters string
	// Day is the answer page to read for SourceAnswerPage.
	Day time.Time
	// Wordlist is the dictionary path for SourceSolver.
	Wordlist  string
	WordDelay autotype.Delay
}

// AutotypeCmd types answer lists independent of cobra. latest fetches the
// published payload; pages fetches answer pages.
type AutotypeCmd struct {
	hive      autotype.Hive
	latest    scrape.PageFetcher
	latestURL string
	pages     scrape.PageFetcher
	template  string
	loadWords func(ctx context.Context, path string) ([]string, error)
}

func (c AutotypeCmd) Type(ctx context.Context, in AutotypeInput) error {
	words, err := c.answers(ctx, in)
	if err != nil {
		return err
	}

	typer := autotype.NewTyper(c.hive)
	typer.WordDelay = in.WordDelay
	typer.Logger = logger
	typer.OnWord = func(i int, word string) {
		pterm.Printfln("%4d/%d  %s", i+1, len(words), word)
	}

	typed, err := typer.Run(ctx, words)
	if err != nil {
		if typed > 0 {
			pterm.Warning.Printfln("Stopped after %d of %d words", typed, len(words))
		}
		return err
	}
	pterm.Success.Printfln("Typed %d words", typed)
	return nil
}

func (c AutotypeCmd) answers(ctx context.Context, in AutotypeInput) ([]string, error) {
	if in.Source == SourceAnswerPage {
		if c.pages == nil {
			return nil, fmt.Errorf("answer pages are unavailable")
		}
		return scrape.PageAnswers(ctx, c.pages, c.template, in.Day)
	}

	letters := in.Letters
	if letters == "" {
		var err error
		if letters, err = c.hive.LocateLetters(ctx); err != nil {
			return nil, err
		}
		pterm.Info.Printfln("Puzzle letters: %s", letters)
	}

	if in.Source == SourceSolver {
		dictionary, err := c.loadWords(ctx, in.Wordlist)
		if err != nil {
			return nil, err
		}
		sol, err := puzzle.Solve(letters, dictionary)
		if err != nil {
			return nil, err
		}
		return sol.Words, nil
	}

	payload := in.Payload
	if strings.TrimSpace(payload) == "" {
		if c.latest == nil {
			return nil, fmt.Errorf("no payload given")
		}
		body, err := c.latest.Fetch(ctx, c.latestURL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch published payload: %w", err)
		}
		payload = body
	}
	return wordcodec.Decode(payload, letters)
}

func runAutotype(cmd *cobra.Command, args []string) error {
	letters := getLetters(cmd.Flags())
	fromPage, _ := cmd.Flags().GetBool("from-page")
	solve, _ := cmd.Flags().GetBool("solve")
	date, _ := cmd.Flags().GetString("date")
	wordlist, _ := cmd.Flags().GetString("wordlist")
	remote, _ := cmd.Flags().GetString("remote")
	pageURL, _ := cmd.Flags().GetString("url")
	headless, _ := cmd.Flags().GetBool("headless")
	maxDelay, _ := cmd.Flags().GetDuration("word-delay")

	if (fromPage || solve) && len(args) > 0 {
		return fmt.Errorf("a payload cannot be combined with --from-page or --solve")
	}
	day, err := parseDay(date)
	if err != nil {
		return err
	}
	if wordlist == "" {
		wordlist = cfg.WordlistPath
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	in := AutotypeInput{Letters: letters, Day: day, Wordlist: wordlist, WordDelay: wordDelayUpTo(maxDelay)}
	c := AutotypeCmd{latestURL: cfg.LatestEncodedURL, template: cfg.AnswersURL}
	switch {
	case fromPage:
		in.Source = SourceAnswerPage
		fetcher, closeCache, err := newFetcher(cfg, logger)
		if err != nil {
			return err
		}
		defer closeCache()
		c.pages = fetcher
	case solve:
		in.Source = SourceSolver
		c.loadWords = downloadingWordLoader(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.WordlistURL, false)
	case len(args) == 1:
		in.Payload = args[0]
	default:
		c.latest = newLatestFetcher(cfg, logger)
	}

	if remote == "" {
		pterm.Info.Println("Launching Chrome…")
	}
	hive, closeHive, err := autotype.NewChromeHive(ctx, autotype.ChromeOptions{
		RemoteURL: remote,
		PageURL:   pageURL,
		Headless:  headless,
	})
	if err != nil {
		return err
	}
	defer closeHive()
	c.hive = hive

	return c.Type(ctx, in)
}

// wordDelayUpTo keeps the default spread of pauses but caps them at longest.
func wordDelayUpTo(longest time.Duration) autotype.Delay {
	d := autotype.DefaultWordDelay
	if longest <= 0 {
		return autotype.Delay{}
	}
	if longest < d.Max {
		d.Max = longest
	}
	if d.Min > d.Max {
		d.Min = d.Max
	}
	return d
}
