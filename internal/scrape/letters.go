package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/beetools/bee/internal/puzzle"
)

// PageAnswers fetches the answer page for day and returns its answers normalized,
// in page order, without duplicates.
func PageAnswers(ctx context.Context, f PageFetcher, template string, day time.Time) ([]string, error) {
	url := PageURL(template, day)
	page, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch puzzle from %s: %w", url, err)
	}

	answers := lo.Uniq(NormalizeAnswers(ExtractAnswerList(page)))
	if len(answers) == 0 {
		return nil, fmt.Errorf("no answers extracted for %s", url)
	}
	return answers, nil
}

// PuzzleLetters fetches the answer page for day and derives the puzzle letters,
// required letter first.
func PuzzleLetters(ctx context.Context, f PageFetcher, template string, day time.Time) (string, error) {
	answers, err := PageAnswers(ctx, f, template, day)
	if err != nil {
		return "", err
	}
	letters, err := puzzle.LettersFromAnswers(answers)
	if err != nil {
		return "", fmt.Errorf("%s: %w", PageURL(template, day), err)
	}
	return letters, nil
}
