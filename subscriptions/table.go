package subscriptions

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a plain text table with centered cells, in the style of:
//
//	+-------+-------------+------+
//	|  Name | Description | Type |
//	+-------+-------------+------+
//	| Alpha |    First    | Game |
//	+-------+-------------+------+
type Table struct {
	header []string
	rows   [][]string
}

// NewTable creates a table with the given column names.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow adds a row. Missing cells are left empty, extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.header))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// SortBy sorts the rows by the given column.
// Ties are broken by comparing the whole row from the first column on.
func (t *Table) SortBy(col int) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		a, b := t.rows[i], t.rows[j]
		if a[col] != b[col] {
			return a[col] < b[col]
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

// String renders the table. Cells containing newlines span multiple lines,
// with shorter cells padded out below their text.
func (t *Table) String() string {
	widths := make([]int, len(t.header))
	measure := func(cells []string) {
		for i, cell := range cells {
			for _, l := range strings.Split(cell, "\n") {
				if w := runewidth.StringWidth(l); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}

	var b strings.Builder
	border := func() {
		b.WriteString("+")
		for _, w := range widths {
			b.WriteString(strings.Repeat("-", w+2))
			b.WriteString("+")
		}
	}
	line := func(cells []string) {
		split := make([][]string, len(cells))
		height := 1
		for i, cell := range cells {
			split[i] = strings.Split(cell, "\n")
			if len(split[i]) > height {
				height = len(split[i])
			}
		}

		for n := 0; n < height; n++ {
			if n > 0 {
				b.WriteString("\n")
			}
			b.WriteString("|")
			for i, lines := range split {
				var l string
				if n < len(lines) {
					l = lines[n]
				}
				b.WriteString(" ")
				b.WriteString(center(l, widths[i]))
				b.WriteString(" |")
			}
		}
	}

	border()
	b.WriteString("\n")
	line(t.header)
	b.WriteString("\n")
	border()
	for _, row := range t.rows {
		b.WriteString("\n")
		line(row)
	}
	b.WriteString("\n")
	border()
	return b.String()
}

// center pads s to width. If the padding can't be split evenly,
// odd-width text gets the extra space on the right and even-width text on the left.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	excess := width - w
	if excess <= 0 {
		return s
	}

	left, right := excess/2, excess/2
	if excess%2 != 0 {
		if w%2 != 0 {
			right++
		} else {
			left++
		}
	}
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
