// Package autotype submits decoded answers into a running Spelling Bee game.
package autotype

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/beetools/bee/internal/logging"
)

var ErrNoWords = errors.New("no answers to type")

// Hive is the game surface: it can report its letters and accept a word.
type Hive interface {
	// LocateLetters returns the seven letters, center letter first.
	LocateLetters(ctx context.Context) (string, error)
	// Submit enters word and presses Enter.
	Submit(ctx context.Context, word string) error
}

// Delay is an inclusive range a random pause is drawn from.
type Delay struct {
	Min, Max time.Duration
}

var (
	DefaultKeyDelay  = Delay{Min: 80 * time.Millisecond, Max: 160 * time.Millisecond}
	DefaultWordDelay = Delay{Min: 220 * time.Millisecond, Max: 420 * time.Millisecond}
)

// Pick returns a uniformly random duration in [Min, Max].
func (d Delay) Pick(r *rand.Rand) time.Duration {
	if d.Max <= d.Min {
		return d.Min
	}
	return d.Min + time.Duration(r.Int64N(int64(d.Max-d.Min)+1))
}

// Typer drives a Hive through a word list.
type Typer struct {
	Hive      Hive
	WordDelay Delay
	Logger    logging.Logger
	// OnWord is called after each successful submission.
	OnWord func(i int, word string)

	rand  *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// NewTyper returns a Typer with the default pauses between words.
func NewTyper(h Hive) *Typer {
	return &Typer{Hive: h, WordDelay: DefaultWordDelay}
}

// Run submits words in order, pausing between them. It stops at the first
// failed submission or when ctx is done.
func (t *Typer) Run(ctx context.Context, words []string) (typed int, err error) {
	if len(words) == 0 {
		return 0, ErrNoWords
	}
	log := logging.OrNop(t.Logger)
	r := t.rand
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	sleep := t.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	for i, w := range words {
		if err := t.Hive.Submit(ctx, w); err != nil {
			return typed, fmt.Errorf("failed to submit %q: %w", w, err)
		}
		typed++
		log.Debug("submitted word", "index", i, "word", w)
		if t.OnWord != nil {
			t.OnWord(i, w)
		}
		if err := sleep(ctx, t.WordDelay.Pick(r)); err != nil {
			return typed, err
		}
	}
	return typed, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
