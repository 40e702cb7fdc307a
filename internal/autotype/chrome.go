package autotype

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"github.com/beetools/bee/pkg/wordcodec"
)

// PuzzleURL is the official game page.
const PuzzleURL = "https://www.nytimes.com/puzzles/spelling-bee"

const hiveLetterSelector = `[data-testid="hive-letter"]`

// lettersScript returns the center letter followed by the outer letters, or "" if
// the hive is not on the page.
const lettersScript = `(() => {
  const nodes = [...document.querySelectorAll('[data-testid="hive-letter"]')];
  if (nodes.length !== 7) return "";
  const center = document.querySelector('[data-testid="hive-center"] [data-testid="hive-letter"]')
    || document.querySelector('.hive-cell.center .cell-letter');
  if (!center) return "";
  const text = (n) => (n.textContent || "").trim().toLowerCase();
  return text(center) + nodes.filter((n) => n !== center).map(text).join("");
})()`

// ChromeOptions configures the browser ChromeHive drives.
type ChromeOptions struct {
	// RemoteURL attaches to an already running Chrome (its DevTools websocket URL).
	// When empty a new Chrome is launched.
	RemoteURL string
	// PageURL is opened before typing; empty keeps the current tab as is.
	PageURL  string
	Headless bool
	KeyDelay Delay
}

// ChromeHive plays the game in a Chrome tab over the DevTools protocol.
type ChromeHive struct {
	tab      context.Context
	keyDelay Delay
	rand     *rand.Rand
}

var _ Hive = (*ChromeHive)(nil)

// NewChromeHive connects to (or launches) Chrome and waits for the hive to render.
// The returned cancel func closes the tab and the allocator.
func NewChromeHive(ctx context.Context, opts ChromeOptions) (*ChromeHive, context.CancelFunc, error) {
	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if opts.RemoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, opts.RemoteURL)
	} else {
		allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-blink-features", "AutomationControlled"),
			chromedp.WindowSize(1280, 900),
		)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, allocOpts...)
	}
	tab, tabCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		tabCancel()
		allocCancel()
	}

	var actions []chromedp.Action
	if opts.PageURL != "" {
		actions = append(actions, chromedp.Navigate(opts.PageURL))
	}
	actions = append(actions, chromedp.WaitVisible(hiveLetterSelector, chromedp.ByQuery))
	if err := chromedp.Run(tab, actions...); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("puzzle did not load: %w", err)
	}

	keyDelay := opts.KeyDelay
	if keyDelay == (Delay{}) {
		keyDelay = DefaultKeyDelay
	}
	return &ChromeHive{
		tab:      tab,
		keyDelay: keyDelay,
		rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 1)),
	}, cancel, nil
}

func (h *ChromeHive) LocateLetters(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var raw string
	if err := chromedp.Run(h.tab, chromedp.Evaluate(lettersScript, &raw)); err != nil {
		return "", fmt.Errorf("failed to read hive letters: %w", err)
	}
	return normalizeHiveLetters(raw)
}

func (h *ChromeHive) Submit(ctx context.Context, word string) error {
	for _, r := range word {
		if err := chromedp.Run(h.tab, chromedp.KeyEvent(string(r))); err != nil {
			return err
		}
		if err := sleepCtx(ctx, h.keyDelay.Pick(h.rand)); err != nil {
			return err
		}
	}
	return chromedp.Run(h.tab, chromedp.KeyEvent(kb.Enter))
}

func normalizeHiveLetters(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("hive letters not found on page")
	}
	a, err := wordcodec.NewAlphabet(raw)
	if err != nil {
		return "", fmt.Errorf("unexpected hive letters %q: %w", raw, err)
	}
	return a.String(), nil
}
