package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pseudomuto/metaexplorer/pkg/catalog"
)

// Formatter writes explorer output to w. Write errors are ignored; output is
// best effort, matching fmt.Println on a terminal.
type Formatter struct {
	w io.Writer
}

// New creates a Formatter writing to w.
func New(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Writer returns the underlying writer.
func (f *Formatter) Writer() io.Writer {
	return f.w
}

// Line writes a formatted line.
func (f *Formatter) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(f.w, format+"\n", args...)
}

// Blank writes an empty line.
func (f *Formatter) Blank() {
	_, _ = fmt.Fprintln(f.w)
}

// Banner writes title underlined with dashes.
func (f *Formatter) Banner(title string) {
	f.Line("%s", title)
	f.Line("%s", strings.Repeat("-", len(title)))
}

// Menu writes heading (when non-empty) followed by the numbered options.
func (f *Formatter) Menu(heading string, options []string) {
	if heading != "" {
		f.Line("%s", heading)
	}

	f.Listing(options)
}

// Listing writes names as "i. NAME", numbered from 1.
func (f *Formatter) Listing(names []string) {
	for i, name := range names {
		f.Line("%d. %s", i+1, name)
	}
}

// Section writes a blank line and the "<title>:" heading of a metadata section.
func (f *Formatter) Section(title string) {
	f.Blank()
	f.Line("%s:", title)
}

// Rows renders res as a table followed by its row count. An empty result
// writes "(0 rows)".
func (f *Formatter) Rows(res *catalog.Result) {
	if res.Empty() {
		f.Line("(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(f.w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range res.Rows {
		cells := make(table.Row, len(row))
		for i, v := range row {
			cells[i] = catalog.FormatValue(v)
		}
		t.AppendRow(cells)
	}

	t.Render()
	f.Line("(%d rows)", len(res.Rows))
}

// List writes one value per line.
func (f *Formatter) List(values []string) {
	for _, v := range values {
		f.Line("%s", v)
	}
}

// Record writes one "Label: value" line per field of row. Columns without a
// label fall back to the matching entry in columns.
func (f *Formatter) Record(labels, columns []string, row catalog.Row) {
	for i, v := range row {
		var label string
		switch {
		case i < len(labels):
			label = labels[i]
		case i < len(columns):
			label = columns[i]
		default:
			label = fmt.Sprintf("Column %d", i+1)
		}

		f.Line("%s: %s", label, catalog.FormatValue(v))
	}
}

// Text writes s followed by a newline unless it already ends with one.
func (f *Formatter) Text(s string) {
	if strings.HasSuffix(s, "\n") {
		_, _ = io.WriteString(f.w, s)
		return
	}

	f.Line("%s", s)
}
