package cmd

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/beetools/bee/pkg/util"
	"github.com/beetools/bee/pkg/wordcodec"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [words...]",
	Short: "Pack an answer list into a URL-safe payload",
	Long: `Pack an answer list into a URL-safe payload.

Every word must use only the seven puzzle letters given with --letters.
Words are read from the arguments, or from --file (one per line, '-' for stdin).`,
	Example: `  bee encode --letters tolnpic toil lint pilot
  bee encode --letters tolnpic -f answers.txt -o json`,
	RunE: runEncode,
}

func init() {
	addLettersFlag(encodeCmd.Flags(), "The seven puzzle letters, required letter first")
	encodeCmd.Flags().StringP("file", "f", "", "Read words from a file ('-' for stdin)")
	encodeCmd.Flags().StringP("output", "o", "", "Output format: json")
	_ = encodeCmd.MarkFlagRequired("letters")
}

type EncodeInput struct {
	Letters string
	Words   []string
	Output  string
}

type encodeResult struct {
	Letters string `json:"letters"`
	Words   int    `json:"words"`
	Payload string `json:"payload"`
	Bytes   int    `json:"bytes"`
}

// EncodeCmd packs word lists independent of cobra.
type EncodeCmd struct{}

func (c EncodeCmd) Encode(ctx context.Context, in EncodeInput) error {
	if err := checkOutput(in.Output); err != nil {
		return err
	}
	alphabet, err := wordcodec.NewAlphabet(in.Letters)
	if err != nil {
		return err
	}
	raw, err := alphabet.MarshalWords(in.Words)
	if err != nil {
		return err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)

	if in.Output == "json" {
		return util.PrintPrettyJSON(encodeResult{
			Letters: alphabet.String(),
			Words:   len(in.Words),
			Payload: payload,
			Bytes:   len(raw),
		})
	}

	pterm.Println(payload)
	pterm.Info.Printfln("%d words packed into %s (%d characters)", len(in.Words), util.FormatBytes(int64(len(raw))), len(payload))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	letters := getLetters(cmd.Flags())
	file, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")

	if file != "" && len(args) > 0 {
		return fmt.Errorf("pass words as arguments or with --file, not both")
	}
	words, err := readWordArgs(args, file)
	if err != nil {
		return err
	}
	return EncodeCmd{}.Encode(cmd.Context(), EncodeInput{Letters: letters, Words: words, Output: output})
}
