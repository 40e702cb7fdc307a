package cmd

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/internal/puzzle"
	"github.com/beetools/bee/pkg/util"
	"github.com/beetools/bee/pkg/wordcodec"
)

var solveCmd = &cobra.Command{
	Use:   "solve <letters>",
	Short: "Solve a puzzle against the dictionary and print a hint page",
	Long: `Solve a puzzle against the dictionary and print a hint page.

Pass the seven letters with the required (center) letter first. The dictionary
is downloaded to BEE_WORDLIST_PATH on first use.`,
	Example: `  bee solve tolnpic
  bee solve tolnpic --encode -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringP("wordlist", "w", "", "Dictionary file (defaults to BEE_WORDLIST_PATH)")
	solveCmd.Flags().BoolP("encode", "e", false, "Also print the packed payload of the answers")
	solveCmd.Flags().StringP("output", "o", "", "Output format: json")
}

var (
	hintTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7DA21"))
	hintHeadingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	pangramStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7DA21"))
)

type SolveInput struct {
	Letters  string
	Wordlist string
	Encode   bool
	Output   string
}

type solveResult struct {
	puzzle.Solution
	Payload string `json:"payload,omitempty"`
}

// SolveCmd solves puzzles independent of cobra. loadWords returns the dictionary
// at path, downloading it first when needed.
type SolveCmd struct {
	loadWords func(ctx context.Context, path string) ([]string, error)
}

func (c SolveCmd) Solve(ctx context.Context, in SolveInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}
	if _, _, err := puzzle.NormalizeLetters(in.Letters); err != nil {
		return err
	}

	dictionary, err := c.loadWords(ctx, in.Wordlist)
	if err != nil {
		return err
	}
	sol, err := puzzle.Solve(in.Letters, dictionary)
	if err != nil {
		return err
	}

	res := solveResult{Solution: sol}
	if in.Encode {
		if res.Payload, err = wordcodec.Encode(sol.Words, sol.Letters); err != nil {
			return fmt.Errorf("failed to encode answers: %w", err)
		}
	}

	if in.Output == "json" {
		return util.PrintPrettyJSON(res)
	}

	var page bytes.Buffer
	if err := puzzle.WriteHintPage(&page, sol); err != nil {
		return err
	}
	pterm.Print(styleHintPage(page.String(), sol))
	if res.Payload != "" {
		pterm.Println()
		pterm.Info.Printfln("Payload: %s", res.Payload)
	}
	return nil
}

// styleHintPage colours the plain hint page for the terminal. Text content is unchanged.
func styleHintPage(page string, sol puzzle.Solution) string {
	lines := strings.Split(page, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = hintTitleStyle.Render(line)
		case line == "By length:" || line == "Alphabetical:" || line == "Spelling Bee Grid:":
			lines[i] = hintHeadingStyle.Render(line)
		case strings.HasPrefix(line, "Pangrams ("):
			for _, p := range sol.Pangrams {
				line = strings.ReplaceAll(line, p, pangramStyle.Render(p))
			}
			lines[i] = line
		}
	}
	return strings.Join(lines, "\n")
}

func runSolve(cmd *cobra.Command, args []string) error {
	wordlist, _ := cmd.Flags().GetString("wordlist")
	encode, _ := cmd.Flags().GetBool("encode")
	output, _ := cmd.Flags().GetString("output")

	if wordlist == "" {
		wordlist = cfg.WordlistPath
	}
	c := SolveCmd{loadWords: downloadingWordLoader(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.WordlistURL, output == "json")}
	return c.Solve(cmd.Context(), SolveInput{Letters: args[0], Wordlist: wordlist, Encode: encode, Output: output})
}

// downloadingWordLoader fetches the dictionary from url when path is missing.
func downloadingWordLoader(client *http.Client, url string, quiet bool) func(ctx context.Context, path string) ([]string, error) {
	return func(ctx context.Context, path string) ([]string, error) {
		downloaded, err := puzzle.EnsureWordlist(ctx, client, url, path)
		if err != nil {
			return nil, err
		}
		if downloaded && !quiet {
			pterm.Info.Printfln("Downloaded word list to %s", path)
		}
		return puzzle.LoadWords(path)
	}
}
