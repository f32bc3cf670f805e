package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w       *tabwriter.Writer
	out     io.Writer
	headers []string
	rows    int
	empty   string
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	return &Table{w: tw, out: out, headers: headers}
}

// EmptyMessage sets the line printed instead of the table when no rows were
// added. Without one an empty table prints only its header.
func (t *Table) EmptyMessage(msg string) *Table {
	t.empty = msg
	return t
}

// Row appends a row of values. Missing trailing values render as "-".
func (t *Table) Row(values ...any) {
	if t.rows == 0 {
		_, _ = fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
	}
	t.rows++
	parts := make([]string, len(t.headers))
	for i := range parts {
		parts[i] = "-"
		if i < len(values) {
			if s := fmt.Sprintf("%v", values[i]); s != "" {
				parts[i] = s
			}
		}
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Len returns the number of rows added.
func (t *Table) Len() int { return t.rows }

// Flush writes the buffered output.
func (t *Table) Flush() error {
	if t.rows == 0 {
		if t.empty != "" {
			_, err := fmt.Fprintln(t.out, t.empty)
			return err
		}
		_, _ = fmt.Fprintln(t.w, strings.Join(t.headers, "\t"))
	}
	return t.w.Flush()
}
