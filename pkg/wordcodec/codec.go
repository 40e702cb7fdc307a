// Package wordcodec packs Spelling Bee answer lists into short base64url strings.
//
// A payload is a 12-bit word count followed by 3-bit symbols, packed MSB-first
// with no padding between symbols. Symbols 0-6 index the puzzle alphabet and 7
// terminates a word:
//
//	count(12) | sym(3) ... 7(3) | sym(3) ... 7(3) | zero pad to byte
//
// The alphabet is not part of the payload; encoder and decoder must agree on it.
package wordcodec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	countBits  = 12
	symbolBits = 3
	terminator = 7

	// MaxWords is the largest list a 12-bit count can describe.
	MaxWords = 1<<countBits - 1
)

var (
	ErrInvalidCharacter = errors.New("wordcodec: character not in alphabet")
	ErrEmptyWord        = errors.New("wordcodec: empty word")
	ErrTooManyWords     = errors.New("wordcodec: too many words")
	ErrMalformedPayload = errors.New("wordcodec: malformed payload")
	ErrTruncatedPayload = errors.New("wordcodec: truncated payload")
	ErrInvalidAlphabet  = errors.New("wordcodec: alphabet must be 7 distinct letters")
)

var encoding = base64.RawURLEncoding

// Encode packs words using alphabet and returns unpadded base64url text.
func Encode(words []string, alphabet string) (string, error) {
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return "", err
	}
	return a.EncodeWords(words)
}

// Decode unpacks a payload produced by Encode with the same alphabet.
func Decode(payload string, alphabet string) ([]string, error) {
	a, err := NewAlphabet(alphabet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return a.DecodeWords(payload)
}

// EncodeWords packs words into a payload.
func (a Alphabet) EncodeWords(words []string) (string, error) {
	b, err := a.MarshalWords(words)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(b), nil
}

// MarshalWords returns the raw packed bytes, before base64url.
func (a Alphabet) MarshalWords(words []string) ([]byte, error) {
	if len(words) > MaxWords {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWords, len(words), MaxWords)
	}

	var w bitWriter
	w.write(uint32(len(words)), countBits)
	for i, word := range words {
		if word == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyWord, i)
		}
		for _, r := range word {
			sym, ok := a.Index(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, r, word)
			}
			w.write(uint32(sym), symbolBits)
		}
		w.write(terminator, symbolBits)
	}
	return w.finish(), nil
}

// DecodeWords unpacks a base64url payload. Padding and surrounding whitespace are ignored.
func (a Alphabet) DecodeWords(payload string) ([]string, error) {
	payload = strings.TrimRight(strings.TrimSpace(payload), "=")
	raw, err := encoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return a.UnmarshalWords(raw)
}

// UnmarshalWords decodes raw packed bytes. Trailing pad bits are ignored.
func (a Alphabet) UnmarshalWords(raw []byte) ([]string, error) {
	r := bitReader{src: raw}
	count, err := r.read(countBits)
	if err != nil {
		return nil, fmt.Errorf("%w: reading word count", err)
	}

	words := make([]string, 0, count)
	var cur strings.Builder
	for len(words) < int(count) {
		sym, err := r.read(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: %d of %d words decoded", err, len(words), count)
		}
		if sym != terminator {
			cur.WriteRune(a.letters[sym])
			continue
		}
		if cur.Len() == 0 {
			return nil, fmt.Errorf("%w: word %d", ErrEmptyWord, len(words))
		}
		words = append(words, cur.String())
		cur.Reset()
	}
	return words, nil
}
