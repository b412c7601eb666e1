// Package cli provides the command-line interface for Prism.
package cli

import (
	"strings"
)

// Table is a simple column formatter with dynamic column widths.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row to the table. Short rows are padded to the header
// count; long rows are truncated.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder
	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		result.WriteString(strings.Join(parts, gap))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	separators := make([]string, len(t.headers))
	for i, w := range widths {
		separators[i] = strings.Repeat("-", w)
	}
	writeLine(separators)

	for _, row := range t.rows {
		writeLine(row)
	}
	return result.String()
}

// padRight pads a string with spaces on the right to reach the
// desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
