package store

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Text reads either a JSON object of counts or one word per line (optionally
// followed by a count), and writes "word count" lines sorted by word.
type Text struct{}

func (Text) Name() string { return "text" }

func (Text) Marshal(counts map[string]int) ([]byte, error) {
	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Strings(words)

	var buf bytes.Buffer
	for _, w := range words {
		fmt.Fprintf(&buf, "%s %d\n", w, counts[w])
	}
	return buf.Bytes(), nil
}

func (Text) Unmarshal(data []byte) (map[string]int, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		// older snapshots used single quotes
		counts, err := JSON{}.Unmarshal([]byte(strings.ReplaceAll(trimmed, "'", `"`)))
		if err != nil {
			return nil, fmt.Errorf("invalid word count object: %w", err)
		}
		return counts, nil
	}

	counts := map[string]int{}
	for i, line := range strings.Split(trimmed, "\n") {
		fields := strings.Fields(strings.ToLower(line))
		switch len(fields) {
		case 0:
			continue
		case 1:
			counts[fields[0]] = 1
		default:
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid count %q", i+1, fields[1])
			}
			counts[fields[0]] = n
		}
	}
	return counts, nil
}
