// Package puzzle solves Spelling Bee puzzles against a word list and renders hint pages.
package puzzle

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// MinWordLength is the shortest accepted answer.
const MinWordLength = 4

var (
	ErrNoLetters        = errors.New("please provide the seven Spelling Bee letters")
	ErrNotEnoughLetters = errors.New("please provide seven unique letters (required letter first)")
	ErrTooManyLetters   = errors.New("a puzzle has exactly seven unique letters")
	ErrNoAnswers        = errors.New("no answers to derive letters from")
	ErrNoRequiredLetter = errors.New("unable to determine the required letter from the answers")
	ErrWrongLetterCount = errors.New("expected seven unique letters in the answers")
)

// NormalizeLetters keeps letters only, lowercases them and drops repeats.
// The first letter is the required one.
func NormalizeLetters(raw string) (required rune, letters string, err error) {
	cleaned := lo.Filter([]rune(strings.ToLower(raw)), func(r rune, _ int) bool {
		return unicode.IsLetter(r)
	})
	if len(cleaned) == 0 {
		return 0, "", ErrNoLetters
	}
	unique := lo.Uniq(cleaned)
	if len(unique) < 7 {
		return 0, "", fmt.Errorf("%w: got %q", ErrNotEnoughLetters, string(unique))
	}
	if len(unique) > 7 {
		return 0, "", fmt.Errorf("%w: got %q", ErrTooManyLetters, string(unique))
	}
	return unique[0], string(unique), nil
}

// LettersFromAnswers reconstructs the puzzle letters from a full answer list.
// The required letter is the alphabetically first letter shared by every answer;
// the rest follow in order of first appearance.
func LettersFromAnswers(answers []string) (string, error) {
	answers = lo.Compact(answers)
	if len(answers) == 0 {
		return "", ErrNoAnswers
	}

	common := lo.Uniq([]rune(answers[0]))
	for _, a := range answers[1:] {
		common = lo.Intersect(common, []rune(a))
	}
	if len(common) == 0 {
		return "", ErrNoRequiredLetter
	}
	sort.Slice(common, func(i, j int) bool { return common[i] < common[j] })
	required := common[0]

	seen := lo.Uniq([]rune(strings.Join(answers, "")))
	rest := lo.Without(seen, required)
	if len(rest) != 6 {
		return "", fmt.Errorf("%w: found %d", ErrWrongLetterCount, len(rest)+1)
	}
	return string(required) + string(rest), nil
}
