package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// LoadWords reads a word list from path. The file is either one word per line or a
// dictionary object keyed by word (JSON, or the single-quoted literal the scraper
// used to write). Words are trimmed, lowercased and kept only if purely alphabetic.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return ParseWords(string(data)), nil
}

// ParseWords is LoadWords on in-memory contents.
func ParseWords(contents string) []string {
	contents = strings.TrimSpace(contents)
	if contents == "" {
		return nil
	}

	var raw []string
	if keys, ok := parseDictKeys(contents); ok {
		raw = keys
	} else {
		raw = strings.Split(contents, "\n")
	}

	words := lo.Map(raw, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	return lo.Filter(words, func(w string, _ int) bool { return isAlpha(w) })
}

// parseDictKeys returns the keys of a {"word": n} object, sorted.
func parseDictKeys(contents string) ([]string, bool) {
	if !strings.HasPrefix(contents, "{") {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(contents), &m); err != nil {
		// single-quoted keys: {'alpha': 1, 'beta': 2}
		if err := json.Unmarshal([]byte(strings.ReplaceAll(contents, "'", `"`)), &m); err != nil {
			return nil, false
		}
	}
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// EnsureWordlist downloads url to path unless path already exists.
func EnsureWordlist(ctx context.Context, client *http.Client, url, path string) (downloaded bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build word list request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("unable to download word list from %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("unable to download word list from %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read word list body: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create word list directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return false, fmt.Errorf("failed to write word list: %w", err)
	}
	return true, nil
}
