package puzzle

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/samber/lo"
)

const hintColumns = 3

// WriteHintPage renders the plain-text hint page: summary, words grouped by length,
// an alphabetical listing in three columns, and the first-letter by length grid.
func WriteHintPage(w io.Writer, s Solution) error {
	var b strings.Builder

	b.WriteString("NYT Spelling Bee Hint Page\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	fmt.Fprintf(&b, "Letters: %s (required: %s)\n", strings.Join(strings.Split(s.Letters, ""), ", "), s.Required)
	fmt.Fprintf(&b, "Total words: %d\n", len(s.Words))
	pangrams := "None"
	if len(s.Pangrams) > 0 {
		pangrams = strings.Join(s.Pangrams, ", ")
	}
	fmt.Fprintf(&b, "Pangrams (%d): %s\n", len(s.Pangrams), pangrams)

	byLength := lo.GroupBy(s.Words, func(w string) int { return len([]rune(w)) })
	lengths := lo.Keys(byLength)
	sort.Ints(lengths)

	b.WriteString("\nBy length:\n")
	for _, n := range lengths {
		group := append([]string(nil), byLength[n]...)
		sort.Strings(group)
		fmt.Fprintf(&b, "%d letters (%d): %s\n", n, len(group), strings.Join(group, ", "))
	}

	b.WriteString("\nAlphabetical:\n")
	writeColumns(&b, s.Words)

	if len(s.Words) > 0 {
		b.WriteString("\nSpelling Bee Grid:\n")
		b.WriteString(FormatGrid(s.Words))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeColumns(b *strings.Builder, words []string) {
	sorted := append([]string(nil), words...)
	sort.Strings(sorted)
	if len(sorted) == 0 {
		return
	}

	rows := (len(sorted) + hintColumns - 1) / hintColumns
	columns := lo.Chunk(sorted, rows)
	for len(columns) < hintColumns {
		columns = append(columns, nil)
	}
	widths := lo.Map(columns, func(col []string, _ int) int {
		return lo.Max(lo.Map(col, func(w string, _ int) int { return len(w) }))
	})

	for r := 0; r < rows; r++ {
		entries := make([]string, hintColumns)
		for c, col := range columns {
			word := ""
			if r < len(col) {
				word = col[r]
			}
			entries[c] = word + strings.Repeat(" ", widths[c]-len(word))
		}
		b.WriteString(strings.TrimRight(strings.Join(entries, "  "), " ") + "\n")
	}
}

// FormatGrid renders counts of words by first letter (rows) and length (columns),
// with totals on both axes.
func FormatGrid(words []string) string {
	counts := map[rune]map[int]int{}
	lengthSet := map[int]struct{}{}
	for _, w := range words {
		rs := []rune(w)
		if len(rs) == 0 {
			continue
		}
		first := unicode.ToUpper(rs[0])
		if counts[first] == nil {
			counts[first] = map[int]int{}
		}
		counts[first][len(rs)]++
		lengthSet[len(rs)] = struct{}{}
	}

	letters := lo.Keys(counts)
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	lengths := lo.Keys(lengthSet)
	sort.Ints(lengths)

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := []string{""}
	for _, n := range lengths {
		header = append(header, fmt.Sprint(n))
	}
	header = append(header, "Total")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	colTotals := make([]int, len(lengths))
	for _, l := range letters {
		row := []string{string(l)}
		total := 0
		for i, n := range lengths {
			c := counts[l][n]
			total += c
			colTotals[i] += c
			row = append(row, countOrDash(c))
		}
		row = append(row, fmt.Sprint(total))
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	footer := []string{"Total"}
	for _, c := range colTotals {
		footer = append(footer, fmt.Sprint(c))
	}
	footer = append(footer, fmt.Sprint(lo.Sum(colTotals)))
	fmt.Fprintln(tw, strings.Join(footer, "\t")+"\t")

	_ = tw.Flush()
	return b.String()
}

func countOrDash(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}
