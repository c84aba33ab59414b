// Package cli provides the command-line interface for Spectra.
package cli

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ansiPattern matches SGR escape sequences, which take no screen width.
var ansiPattern = regexp.MustCompile("\033\\[[0-9;]*m")

// Table renders rows in aligned columns. Cells may contain colour swatches.
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
		padding: 2,
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row ...string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = visibleWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], visibleWidth(cell))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	separator := make([]string, len(colWidths))
	for i, w := range colWidths {
		separator[i] = strings.Repeat("-", w)
	}
	writeLine(separator)

	for _, row := range t.rows {
		writeLine(row)
	}
	return result.String()
}

// visibleWidth counts runes, ignoring ANSI escape sequences.
func visibleWidth(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}

// padRight pads s with spaces up to width visible cells.
func padRight(s string, width int) string {
	w := visibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
