package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetools/bee/internal/puzzle"
	"github.com/beetools/bee/pkg/wordcodec"
)

var testDictionary = []string{"bagged", "bead", "bed", "cafe", "decafbag", "fade", "zebra"}

func staticWords(words []string) func(context.Context, string) ([]string, error) {
	return func(context.Context, string) ([]string, error) { return words, nil }
}

func TestSolve_PrintsHintPage(t *testing.T) {
	setupStdoutCapture(t)

	c := SolveCmd{loadWords: staticWords(testDictionary)}
	err := c.Solve(context.Background(), SolveInput{Letters: "abgcfed", Encode: true})
	require.NoError(t, err)

	out := outBuf.String()
	assert.Contains(t, out, "NYT Spelling Bee Hint Page")
	assert.Contains(t, out, "Total words: 5")
	assert.Contains(t, out, "decafbag")
	assert.NotContains(t, out, "zebra")
	assert.Contains(t, out, "Payload: ")
}

func TestSolve_JSONOutputRoundTripsPayload(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = SolveCmd{loadWords: staticWords(testDictionary)}.Solve(context.Background(), SolveInput{
			Letters: "ABGCFED",
			Encode:  true,
			Output:  "json",
		})
	})
	require.NoError(t, err)

	var res solveResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "a", res.Required)
	assert.Equal(t, []string{"bagged", "bead", "cafe", "decafbag", "fade"}, res.Words)
	assert.Equal(t, []string{"decafbag"}, res.Pangrams)

	words, err := wordcodec.Decode(res.Payload, res.Letters)
	require.NoError(t, err)
	assert.Equal(t, res.Words, words)
}

func TestSolve_ValidatesLettersBeforeLoading(t *testing.T) {
	loaded := false
	c := SolveCmd{loadWords: func(context.Context, string) ([]string, error) {
		loaded = true
		return nil, nil
	}}
	err := c.Solve(context.Background(), SolveInput{Letters: "abc"})
	assert.ErrorIs(t, err, puzzle.ErrNotEnoughLetters)
	assert.False(t, loaded)
}

func TestSolve_LoadError(t *testing.T) {
	c := SolveCmd{loadWords: func(context.Context, string) ([]string, error) {
		return nil, errors.New("unable to download word list")
	}}
	err := c.Solve(context.Background(), SolveInput{Letters: "abgcfed"})
	assert.ErrorContains(t, err, "unable to download word list")
}

func TestStyleHintPageKeepsText(t *testing.T) {
	sol := puzzle.Solution{Letters: "abgcfed", Required: "a", Words: []string{"cafe", "decafbag"}, Pangrams: []string{"decafbag"}}
	page := "NYT Spelling Bee Hint Page\nPangrams (1): decafbag\n\nBy length:\n4 letters (1): cafe\n"

	styled := styleHintPage(page, sol)
	for _, s := range []string{"NYT Spelling Bee Hint Page", "decafbag", "By length:", "4 letters (1): cafe"} {
		assert.Contains(t, styled, s)
	}
}
