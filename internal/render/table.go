// Package render turns a day report into aligned plain-text or Markdown
// tables.
package render

import (
	"fmt"
	"strings"
)

// Table is a small fixed-shape table: one header row plus data rows.
// Numeric marks columns that are right-aligned in text mode and carry a
// right-aligned separator in Markdown mode.
type Table struct {
	Header  []string
	Rows    [][]string
	Numeric []bool
}

func (t Table) widths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

func (t Table) cell(i int, value string, width int) string {
	if t.Numeric != nil && t.Numeric[i] {
		return fmt.Sprintf("%*s", width, value)
	}
	return fmt.Sprintf("%-*s", width, value)
}

// Text renders fixed-width columns separated by " | " under a dashed header
// rule. Header cells are left-aligned; rows never carry trailing spaces.
func (t Table) Text() string {
	widths := t.widths()
	var b strings.Builder

	headers := make([]string, len(t.Header))
	for i, h := range t.Header {
		headers[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	b.WriteString(strings.TrimRight(strings.Join(headers, " | "), " "))
	b.WriteByte('\n')

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}
	b.WriteString(strings.Join(rule, "-+-"))
	b.WriteByte('\n')

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = t.cell(i, value, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " | "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders a standard pipe-delimited table with padded cells.
func (t Table) Markdown() string {
	widths := t.widths()
	var b strings.Builder

	headers := make([]string, len(t.Header))
	for i, h := range t.Header {
		headers[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |")
	b.WriteByte('\n')

	rule := make([]string, len(widths))
	for i, w := range widths {
		if t.Numeric != nil && t.Numeric[i] {
			// A width-1 column still needs a dash for "-:" to be a valid
			// alignment marker.
			rule[i] = strings.Repeat("-", max(w-1, 1)) + ":"
		} else {
			rule[i] = strings.Repeat("-", w)
		}
	}
	b.WriteString("| " + strings.Join(rule, " | ") + " |")
	b.WriteByte('\n')

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = t.cell(i, value, widths[i])
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |")
		b.WriteByte('\n')
	}
	return b.String()
}
