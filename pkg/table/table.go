// Package table prints pterm tables in the CLI's house style.
package table

import (
	"github.com/pterm/pterm"
)

// PrintTableNoPad renders rows without boxed borders. When hasHeader is set the
// first row is styled as a header.
func PrintTableNoPad(rows pterm.TableData, hasHeader bool) {
	_ = pterm.DefaultTable.
		WithHasHeader(hasHeader).
		WithSeparator("  ").
		WithData(rows).
		Render()
}

// WordRows lays words out n per row, for listing answers compactly.
func WordRows(words []string, n int) pterm.TableData {
	if n <= 0 {
		n = 1
	}
	var rows pterm.TableData
	for start := 0; start < len(words); start += n {
		end := min(start+n, len(words))
		row := make([]string, n)
		copy(row, words[start:end])
		rows = append(rows, row)
	}
	return rows
}
