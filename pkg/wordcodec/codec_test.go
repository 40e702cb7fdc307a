package wordcodec

import (
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeKnownPayload(t *testing.T) {
	payload, err := Encode([]string{"bag"}, "abcdefg")
	require.NoError(t, err)

	// 000000000001 001 000 110 111 -> 0x00 0x12 0x37
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x12, 0x37}, raw)
	assert.Equal(t, "ABI3", payload)

	words, err := Decode(payload, "abcdefg")
	require.NoError(t, err)
	assert.Equal(t, []string{"bag"}, words)
}

func TestEncodePadsFinalByte(t *testing.T) {
	a := MustAlphabet("abcdefg")
	// 12 + 3*2 = 18 bits -> 3 bytes, last 6 bits zero
	raw, err := a.MarshalWords([]string{"g"})
	require.NoError(t, err)
	require.Len(t, raw, 3)
	assert.Equal(t, byte(0x00), raw[0])
	assert.Equal(t, byte(0x1d), raw[1]) // 0001 110 1: count low nibble, g, first terminator bit
	assert.Equal(t, byte(0xc0), raw[2])
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		words    []string
	}{
		{name: "empty list", alphabet: "abcdefg", words: []string{}},
		{name: "single letter words", alphabet: "abcdefg", words: []string{"a", "g", "d"}},
		{name: "duplicates keep order", alphabet: "tolnpic", words: []string{"toil", "lint", "toil", "pilot"}},
		{name: "pangram", alphabet: "abgcfed", words: []string{"decafbag", "bead", "cafe", "faded"}},
		{name: "uppercase alphabet normalized", alphabet: "ABCDEFG", words: []string{"bag", "cab"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.words, tt.alphabet)
			require.NoError(t, err)

			got, err := Decode(payload, tt.alphabet)
			require.NoError(t, err)
			assert.Equal(t, tt.words, got)
		})
	}
}

func TestRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	const letters = "abcdefghijklmnopqrstuvwxyz"

	for i := 0; i < 50; i++ {
		perm := rng.Perm(len(letters))[:AlphabetSize]
		var sb strings.Builder
		for _, p := range perm {
			sb.WriteByte(letters[p])
		}
		alphabet := sb.String()

		words := make([]string, rng.Intn(200))
		for j := range words {
			n := 1 + rng.Intn(12)
			w := make([]byte, n)
			for k := range w {
				w[k] = alphabet[rng.Intn(AlphabetSize)]
			}
			words[j] = string(w)
		}

		payload, err := Encode(words, alphabet)
		require.NoError(t, err)
		got, err := Decode(payload, alphabet)
		require.NoError(t, err)
		assert.Equal(t, words, got, "alphabet %s", alphabet)
	}
}

func TestEncodeCapacity(t *testing.T) {
	words := make([]string, MaxWords)
	for i := range words {
		words[i] = "a"
	}

	payload, err := Encode(words, "abcdefg")
	require.NoError(t, err)
	got, err := Decode(payload, "abcdefg")
	require.NoError(t, err)
	assert.Len(t, got, MaxWords)

	_, err = Encode(append(words, "a"), "abcdefg")
	assert.ErrorIs(t, err, ErrTooManyWords)
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		alphabet string
		want     error
	}{
		{name: "letter outside alphabet", words: []string{"bag", "hat"}, alphabet: "abcdefg", want: ErrInvalidCharacter},
		{name: "uppercase word", words: []string{"BAG"}, alphabet: "abcdefg", want: ErrInvalidCharacter},
		{name: "empty word", words: []string{"bag", ""}, alphabet: "abcdefg", want: ErrEmptyWord},
		{name: "short alphabet", words: []string{"bag"}, alphabet: "abc", want: ErrInvalidAlphabet},
		{name: "repeated letter", words: []string{"bag"}, alphabet: "abcdefa", want: ErrInvalidAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := Encode(tt.words, tt.alphabet)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, payload)
		})
	}
}

func TestDecodeAlphabetMismatch(t *testing.T) {
	words := []string{"bag", "cafe", "faded"}
	payload, err := Encode(words, "abcdefg")
	require.NoError(t, err)

	got, err := Decode(payload, "hijklmn")
	require.NoError(t, err)
	assert.NotEqual(t, words, got)
	assert.Equal(t, "ihn", got[0])
}

func TestDecodeTruncated(t *testing.T) {
	payload, err := Encode([]string{"bag", "cafe"}, "abcdefg")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	require.NoError(t, err)
	short := base64.RawURLEncoding.EncodeToString(raw[:len(raw)-1])

	got, err := Decode(short, "abcdefg")
	assert.ErrorIs(t, err, ErrTruncatedPayload)
	assert.Nil(t, got)
}

func TestDecodeTerminatorWithoutLetters(t *testing.T) {
	// count=1 then 111: 0000 0000 0001 111(0) -> 0x00 0x1e
	payload := base64.RawURLEncoding.EncodeToString([]byte{0x00, 0x1e})

	got, err := Decode(payload, "abcdefg")
	assert.ErrorIs(t, err, ErrEmptyWord)
	assert.Nil(t, got)
}

func TestDecodeInputs(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		alphabet string
		want     []string
		wantErr  error
	}{
		{name: "zero words", payload: "AAA", alphabet: "abcdefg", want: []string{}},
		{name: "padded", payload: "ABI3====", alphabet: "abcdefg", want: []string{"bag"}},
		{name: "whitespace", payload: "  ABI3\n", alphabet: "abcdefg", want: []string{"bag"}},
		{name: "alphabet case", payload: "ABI3", alphabet: "AbCdEfG", want: []string{"bag"}},
		{name: "empty payload", payload: "", alphabet: "abcdefg", wantErr: ErrTruncatedPayload},
		{name: "standard base64 chars", payload: "AB+/", alphabet: "abcdefg", wantErr: ErrMalformedPayload},
		{name: "garbage", payload: "not*base64", alphabet: "abcdefg", wantErr: ErrMalformedPayload},
		{name: "six letter alphabet", payload: "ABI3", alphabet: "abcdef", wantErr: ErrMalformedPayload},
		{name: "duplicate letters", payload: "ABI3", alphabet: "aabcdef", wantErr: ErrInvalidAlphabet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.payload, tt.alphabet)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	raw := []byte{0x00, 0x12, 0x37, 0xff, 0xff}
	got, err := MustAlphabet("abcdefg").UnmarshalWords(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"bag"}, got)
}
