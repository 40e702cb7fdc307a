package puzzle

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Solution is the filtered answer set for one puzzle.
type Solution struct {
	Letters  string   `json:"letters"`
	Required string   `json:"required"`
	Words    []string `json:"words"`
	Pangrams []string `json:"pangrams"`
}

// Solve keeps words of at least MinWordLength letters that contain the required
// letter and use only puzzle letters. Words and pangrams come back sorted.
func Solve(rawLetters string, dictionary []string) (Solution, error) {
	required, letters, err := NormalizeLetters(rawLetters)
	if err != nil {
		return Solution{}, err
	}
	allowed := []rune(letters)

	words := lo.Filter(dictionary, func(w string, _ int) bool {
		return len([]rune(w)) >= MinWordLength &&
			strings.ContainsRune(w, required) &&
			lo.Every(allowed, []rune(w))
	})
	words = lo.Uniq(words)
	sort.Strings(words)

	pangrams := lo.Filter(words, func(w string, _ int) bool {
		return lo.Every([]rune(w), allowed)
	})

	return Solution{
		Letters:  letters,
		Required: string(required),
		Words:    words,
		Pangrams: pangrams,
	}, nil
}

// IsPangram reports whether word uses every puzzle letter.
func (s Solution) IsPangram(word string) bool {
	return lo.Contains(s.Pangrams, word)
}
