package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/beetools/bee/internal/config"
	"github.com/beetools/bee/internal/logging"
	"github.com/beetools/bee/internal/pagecache"
	"github.com/beetools/bee/internal/scrape"
	"github.com/beetools/bee/pkg/util"
	"github.com/beetools/bee/pkg/wordcodec"
)

func checkOutput(output string) error {
	if output != "" && output != "json" {
		return fmt.Errorf("unsupported --output value: use 'json'")
	}
	return nil
}

// newFetcher builds the page fetcher for the configured cache backend. The
// returned func releases the cache.
func newFetcher(c config.Config, log logging.Logger) (*scrape.Fetcher, func(), error) {
	cache, err := pagecache.New(pagecache.Config{
		Backend:   c.CacheBackend,
		TTL:       c.CacheTTL,
		RedisAddr: c.RedisAddr,
	})
	if err != nil {
		return nil, nil, err
	}
	f := &scrape.Fetcher{
		Client:    &http.Client{Timeout: c.HTTPTimeout},
		UserAgent: c.UserAgent,
		Cache:     cache,
		CacheTTL:  c.CacheTTL,
		Logger:    log,
	}
	return f, func() { _ = cache.Close() }, nil
}

// newLatestFetcher fetches the published payload. It is rewritten in place every
// day, so the page cache is never consulted for it.
func newLatestFetcher(c config.Config, log logging.Logger) *scrape.Fetcher {
	f := &scrape.Fetcher{
		Client:    &http.Client{Timeout: c.HTTPTimeout},
		UserAgent: c.UserAgent,
		Logger:    log,
	}
	return f.Fresh()
}

// readWordArgs collects words from positional args or, when file is set, from
// that file ("-" for stdin). Words are split on whitespace and lowercased; anything
// else is left for the codec to reject.
func readWordArgs(args []string, file string) ([]string, error) {
	text := strings.Join(args, "\n")
	if file != "" {
		data, err := util.ReadInput(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read words: %w", err)
		}
		text = string(data)
	}
	return strings.Fields(strings.ToLower(text)), nil
}

// parseDay reads a --date flag value; empty means today.
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{time.DateOnly, "20060102"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --date %q: use YYYY-MM-DD", s)
}

// lettersValue is a --letters flag that only accepts a valid codec alphabet, so
// typos fail at flag parsing.
type lettersValue struct{ letters string }

var _ pflag.Value = (*lettersValue)(nil)

func (v *lettersValue) String() string { return v.letters }
func (v *lettersValue) Type() string   { return "letters" }

func (v *lettersValue) Set(s string) error {
	a, err := wordcodec.NewAlphabet(s)
	if err != nil {
		return err
	}
	v.letters = a.String()
	return nil
}

func addLettersFlag(fs *pflag.FlagSet, usage string) {
	fs.VarP(&lettersValue{}, "letters", "l", usage)
}

func getLetters(fs *pflag.FlagSet) string {
	if f := fs.Lookup("letters"); f != nil {
		return f.Value.String()
	}
	return ""
}
