package model

import (
	"fmt"
	"strings"
)

// Table represents a table item with cells organized in rows and columns.
type Table struct {
	Rows [][]Cell
}

// Cell is a single table cell.
type Cell struct {
	Text     string
	IsHeader bool
}

// NewTable creates a table with the given dimensions.
func NewTable(rows, cols int) *Table {
	t := &Table{Rows: make([][]Cell, rows)}
	for i := range t.Rows {
		t.Rows[i] = make([]Cell, cols)
	}
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// ExportFrame exports the table as a column-oriented Frame. The first row
// supplies the column names; the remaining rows supply the values. Rows
// shorter than the header are padded with empty cells.
func (t *Table) ExportFrame() *Frame {
	if len(t.Rows) == 0 {
		return NewFrame()
	}
	header := t.Rows[0]
	cols := make([]string, len(header))
	for i, c := range header {
		cols[i] = c.Text
	}
	f := NewFrame(cols...)
	for _, row := range t.Rows[1:] {
		vals := make([]string, len(cols))
		for i := range cols {
			if i < len(row) {
				vals[i] = row[i].Text
			}
		}
		f.AddRow(vals...)
	}
	return f
}

// ToMarkdown renders the table as a markdown table.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}
	var sb strings.Builder
	writeRow := func(row []Cell) {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(strings.ReplaceAll(cell.Text, "\n", " "))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	writeRow(t.Rows[0])
	for range t.Rows[0] {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	return sb.String()
}

// ToCSV renders the table as CSV.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			text := cell.Text
			if strings.ContainsAny(text, ",\"\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Frame is a column-oriented tabular value: ordered columns of string
// cells. Column names may repeat until DedupColumns is called; a map-backed
// representation could not hold duplicates without silent data loss.
type Frame struct {
	Columns []string
	Series  [][]string // Series[i] holds the values of Columns[i]
}

// NewFrame creates a frame with the given column names and no rows.
func NewFrame(columns ...string) *Frame {
	f := &Frame{
		Columns: append([]string(nil), columns...),
		Series:  make([][]string, len(columns)),
	}
	return f
}

// AddRow appends one row of values. Missing trailing values are empty.
func (f *Frame) AddRow(values ...string) {
	for i := range f.Columns {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		f.Series[i] = append(f.Series[i], v)
	}
}

// RowCount returns the number of rows.
func (f *Frame) RowCount() int {
	if len(f.Series) == 0 {
		return 0
	}
	return len(f.Series[0])
}

// Column returns the values of the first column with the given name.
func (f *Frame) Column(name string) ([]string, bool) {
	for i, c := range f.Columns {
		if c == name {
			return f.Series[i], true
		}
	}
	return nil, false
}

// DedupColumns renames repeated column names in place so every column is
// unique: the first occurrence keeps its name, the k-th repeat becomes
// "name (k)". Column-oriented exports would otherwise collapse duplicates.
func (f *Frame) DedupColumns() {
	seen := make(map[string]int)
	for i, name := range f.Columns {
		seen[name]++
		if seen[name] > 1 {
			f.Columns[i] = fmt.Sprintf("%s (%d)", name, seen[name])
		}
	}
}

// Equal reports whether two frames have identical columns, column order
// and values.
func (f *Frame) Equal(other *Frame) bool {
	if other == nil || len(f.Columns) != len(other.Columns) {
		return false
	}
	for i, c := range f.Columns {
		if c != other.Columns[i] {
			return false
		}
		if len(f.Series[i]) != len(other.Series[i]) {
			return false
		}
		for j, v := range f.Series[i] {
			if v != other.Series[i][j] {
				return false
			}
		}
	}
	return true
}
