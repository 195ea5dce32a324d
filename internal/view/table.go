// Package view holds the operator-facing display surfaces: tables that are
// re-rendered from immutable row snapshots, option lists, input fields and
// the alert channel.
package view

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"text/tabwriter"
	"unicode"
)

// Row is one rendered line of a table: one string per column.
type Row []string

// Table is a display surface owned by a single page component. Its content
// is replaced wholesale on every render. When w is non-nil each render is
// also printed.
type Table struct {
	title   string
	headers []string
	w       io.Writer

	mu          sync.Mutex
	rows        []Row
	placeholder bool
	renders     int
}

// NewTable creates an empty table surface.
func NewTable(title string, headers []string, w io.Writer) *Table {
	return &Table{title: title, headers: headers, w: w}
}

// Replace clears the table and fills it with rows.
func (t *Table) Replace(rows []Row) {
	snapshot := make([]Row, len(rows))
	for i, r := range rows {
		snapshot[i] = slices.Clone(r)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = snapshot
	t.placeholder = false
	t.renders++
	t.print()
}

// ShowEmpty clears the table and shows a single placeholder row.
func (t *Table) ShowEmpty(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = []Row{{text}}
	t.placeholder = true
	t.renders++
	t.print()
}

// Rows returns a copy of the current rows (including a placeholder row).
func (t *Table) Rows() []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = slices.Clone(r)
	}
	return out
}

// IsEmpty reports whether the table currently shows the placeholder row.
func (t *Table) IsEmpty() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.placeholder
}

// Renders returns how many times the table has been rendered.
func (t *Table) Renders() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.renders
}

// print writes the current content in a single Write; t.mu must be held.
func (t *Table) print() {
	if t.w == nil {
		return
	}

	var buf bytes.Buffer
	if t.title != "" {
		fmt.Fprintf(&buf, "\n%s\n", t.title)
	}
	if t.placeholder {
		fmt.Fprintf(&buf, "  %s\n", cleanCell(t.rows[0][0]))
		_, _ = t.w.Write(buf.Bytes())
		return
	}

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	if len(t.headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.headers, "\t"))
		underline := make([]string, len(t.headers))
		for i, h := range t.headers {
			underline[i] = strings.Repeat("-", len([]rune(h)))
		}
		fmt.Fprintln(tw, strings.Join(underline, "\t"))
	}
	cells := make([]string, 0, len(t.headers))
	for _, r := range t.rows {
		cells = cells[:0]
		for _, c := range r {
			cells = append(cells, cleanCell(c))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
	_, _ = t.w.Write(buf.Bytes())
}

// cleanCell replaces tabs, newlines and other control characters with a
// space so a cell stays on its line and column.
func cleanCell(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
