package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/browser"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/pkg/table"
	"github.com/beetools/bee/pkg/util"
	"github.com/beetools/bee/pkg/wordcodec"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [payload]",
	Short: "Unpack a payload back into its answer list",
	Long: `Unpack a payload back into its answer list.

The payload is read from the argument, or from --file ('-' for stdin). With
neither, the most recently published payload is downloaded.`,
	Example: `  bee decode --letters abcdefg ABI3
  bee decode --letters tolnpic --open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	addLettersFlag(decodeCmd.Flags(), "The seven puzzle letters the payload was packed with")
	decodeCmd.Flags().StringP("file", "f", "", "Read the payload from a file ('-' for stdin)")
	decodeCmd.Flags().Bool("open", false, "Open the published payload in the browser")
	decodeCmd.Flags().StringP("output", "o", "", "Output format: json")
	_ = decodeCmd.MarkFlagRequired("letters")
}

type DecodeInput struct {
	Letters string
	// Payload is decoded as given; when empty the published payload is fetched.
	Payload string
	Open    bool
	Output  string
}

// DecodeCmd unpacks payloads independent of cobra.
type DecodeCmd struct {
	fetcher   scrape.PageFetcher
	latestURL string
	open      func(url string) error
}

func (c DecodeCmd) Decode(ctx context.Context, in DecodeInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}

	if in.Open {
		if err := c.open(c.latestURL); err != nil {
			pterm.Warning.Printfln("Could not open browser: %v", err)
		}
	}

	payload := in.Payload
	if strings.TrimSpace(payload) == "" {
		if c.fetcher == nil {
			return fmt.Errorf("no payload given")
		}
		body, err := c.fetcher.Fetch(ctx, c.latestURL)
		if err != nil {
			return fmt.Errorf("failed to fetch published payload: %w", err)
		}
		payload = body
	}

	words, err := wordcodec.Decode(payload, in.Letters)
	if err != nil {
		return err
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(words)
	}
	if len(words) == 0 {
		pterm.Info.Println("Payload holds no words")
		return nil
	}
	table.PrintTableNoPad(table.WordRows(words, 6), false)
	pterm.Success.Printfln("Decoded %d words", len(words))
	return nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	letters := getLetters(cmd.Flags())
	file, _ := cmd.Flags().GetString("file")
	open, _ := cmd.Flags().GetBool("open")
	output, _ := cmd.Flags().GetString("output")

	in := DecodeInput{Letters: letters, Open: open, Output: output}
	switch {
	case file != "" && len(args) > 0:
		return fmt.Errorf("pass the payload as an argument or with --file, not both")
	case file != "":
		data, err := util.ReadInput(file)
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		in.Payload = string(data)
	case len(args) == 1:
		in.Payload = args[0]
	}

	c := DecodeCmd{latestURL: cfg.LatestEncodedURL, open: browser.OpenURL}
	if in.Payload == "" {
		c.fetcher = newLatestFetcher(cfg, logger)
	}
	return c.Decode(cmd.Context(), in)
}
