package wordcodec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// AlphabetSize is the number of letters in a puzzle.
const AlphabetSize = 7

// Alphabet is the ordered set of puzzle letters. Index 0 is the required letter.
type Alphabet struct {
	letters [AlphabetSize]rune
}

// NewAlphabet lowercases s and checks that it holds exactly seven distinct characters.
func NewAlphabet(s string) (Alphabet, error) {
	var a Alphabet
	s = strings.ToLower(strings.TrimSpace(s))
	if n := utf8.RuneCountInString(s); n != AlphabetSize {
		return a, fmt.Errorf("%w: want %d letters, got %d", ErrInvalidAlphabet, AlphabetSize, n)
	}
	i := 0
	for _, r := range s {
		if _, dup := a.index(r, i); dup {
			return Alphabet{}, fmt.Errorf("%w: letter %q repeated", ErrInvalidAlphabet, r)
		}
		a.letters[i] = r
		i++
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error. Intended for tests and constants.
func MustAlphabet(s string) Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Required returns the center letter.
func (a Alphabet) Required() rune {
	return a.letters[0]
}

// Index returns the symbol for r.
func (a Alphabet) Index(r rune) (int, bool) {
	return a.index(r, AlphabetSize)
}

func (a Alphabet) index(r rune, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if a.letters[i] == r {
			return i, true
		}
	}
	return 0, false
}

// Letter returns the letter for symbol i (0-6).
func (a Alphabet) Letter(i int) rune {
	return a.letters[i]
}

func (a Alphabet) String() string {
	return string(a.letters[:])
}
