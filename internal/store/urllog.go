package store

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// URLLog is an append-only file of collected page URLs, one per line.
type URLLog struct {
	mu   sync.Mutex
	path string
	seen map[string]struct{}
	f    *os.File
}

// OpenURLLog loads the URLs already in path and opens it for appending.
func OpenURLLog(path string) (*URLLog, error) {
	l := &URLLog{path: path, seen: map[string]struct{}{}}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read scrape log: %w", err)
	}
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			l.seen[line] = struct{}{}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	l.f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open scrape log: %w", err)
	}
	return l, nil
}

func (l *URLLog) Has(url string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.seen[url]
	return ok
}

// Append records url and syncs it to disk immediately.
func (l *URLLog) Append(url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.f.WriteString(url + "\n"); err != nil {
		return err
	}
	l.seen[url] = struct{}{}
	return l.f.Sync()
}

func (l *URLLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *URLLog) Close() error {
	return l.f.Close()
}
