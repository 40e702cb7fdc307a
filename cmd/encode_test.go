package cmd

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetools/bee/pkg/wordcodec"
)

func TestEncode_PrintsPayload(t *testing.T) {
	setupStdoutCapture(t)

	err := EncodeCmd{}.Encode(context.Background(), EncodeInput{Letters: "abcdefg", Words: []string{"bag"}})
	require.NoError(t, err)

	out := outBuf.String()
	assert.Contains(t, out, "ABI3")
	assert.Contains(t, out, "1 words packed into 3 B")
}

func TestEncode_JSONOutput(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = EncodeCmd{}.Encode(context.Background(), EncodeInput{
			Letters: "abcdefg",
			Words:   []string{"bag"},
			Output:  "json",
		})
	})
	require.NoError(t, err)

	var res encodeResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, encodeResult{Letters: "abcdefg", Words: 1, Payload: "ABI3", Bytes: 3}, res)
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   EncodeInput
		want error
	}{
		{name: "bad letters", in: EncodeInput{Letters: "abc", Words: []string{"bag"}}, want: wordcodec.ErrInvalidAlphabet},
		{name: "foreign letter", in: EncodeInput{Letters: "abcdefg", Words: []string{"hat"}}, want: wordcodec.ErrInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupStdoutCapture(t)
			err := EncodeCmd{}.Encode(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, outBuf.String())
		})
	}
}

func TestEncode_RejectsNonLetterWordsFromArgs(t *testing.T) {
	setupStdoutCapture(t)

	words, err := readWordArgs([]string{"bag", "b4g"}, "")
	require.NoError(t, err)
	require.Len(t, words, 2)

	err = EncodeCmd{}.Encode(context.Background(), EncodeInput{Letters: "abcdefg", Words: words})
	assert.ErrorIs(t, err, wordcodec.ErrInvalidCharacter)
	assert.Empty(t, outBuf.String())
}
