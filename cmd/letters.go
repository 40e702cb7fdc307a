package cmd

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/pkg/util"
)

var lettersCmd = &cobra.Command{
	Use:   "letters",
	Short: "Show a day's puzzle letters, derived from its published answers",
	Args:  cobra.NoArgs,
	RunE:  runLetters,
}

func init() {
	lettersCmd.Flags().StringP("date", "d", "", "Puzzle date as YYYY-MM-DD (defaults to today)")
	lettersCmd.Flags().StringP("output", "o", "", "Output format: json")
}

type LettersInput struct {
	Day    time.Time
	Output string
}

type lettersResult struct {
	Date     string `json:"date"`
	Letters  string `json:"letters"`
	Required string `json:"required"`
	URL      string `json:"url"`
}

// LettersCmd looks up puzzle letters independent of cobra.
type LettersCmd struct {
	fetcher  scrape.PageFetcher
	template string
}

func (c LettersCmd) Show(ctx context.Context, in LettersInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}
	letters, err := scrape.PuzzleLetters(ctx, c.fetcher, c.template, in.Day)
	if err != nil {
		return err
	}

	res := lettersResult{
		Date:     in.Day.Format(time.DateOnly),
		Letters:  letters,
		Required: string([]rune(letters)[:1]),
		URL:      scrape.PageURL(c.template, in.Day),
	}
	if in.Output == "json" {
		return util.PrintPrettyJSON(res)
	}
	pterm.Println(res.Letters)
	pterm.Info.Printfln("%s: required letter %s", res.Date, pterm.Bold.Sprint(res.Required))
	return nil
}

func runLetters(cmd *cobra.Command, args []string) error {
	date, _ := cmd.Flags().GetString("date")
	output, _ := cmd.Flags().GetString("output")

	day, err := parseDay(date)
	if err != nil {
		return err
	}
	fetcher, closeCache, err := newFetcher(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	c := LettersCmd{fetcher: fetcher, template: cfg.AnswersURL}
	return c.Show(cmd.Context(), LettersInput{Day: day, Output: output})
}
