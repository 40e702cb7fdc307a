package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// LoadWordCounts reads the snapshot at path. A missing file yields an empty map.
func LoadWordCounts(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read word counts: %w", err)
	}
	codec := CodecFor(path)
	counts, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s word counts from %s: %w", codec.Name(), path, err)
	}
	return counts, nil
}

// SaveWordCounts writes counts to path via a temp file and rename.
func SaveWordCounts(path string, counts map[string]int) error {
	codec := CodecFor(path)
	data, err := codec.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode %s word counts: %w", codec.Name(), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// WordCount pairs a word with how many pages it appeared on.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords returns the n most frequent words, ties broken alphabetically. n <= 0 returns all.
func TopWords(counts map[string]int, n int) []WordCount {
	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
