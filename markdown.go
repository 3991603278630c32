package tblf

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored Markdown table. Markdown tables
// need a header, so the first row is used as one.
func writeMarkdown(w io.Writer, t Table, opts Options) error {
	if len(t) == 0 {
		return nil
	}
	width := opts.width()

	rows := make(Table, len(t))
	for i, row := range t {
		rows[i] = make(Row, len(row))
		for j, cell := range row {
			rows[i][j] = strings.ReplaceAll(cell, "|", `\|`)
		}
	}

	// Column widths have a minimum of 3 for the alignment markers.
	widths := Widths(rows, width)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	var right []bool
	if opts.RightAlign {
		right = numericColumns(t[1:])
	}
	aligned := func(col int) bool { return col < len(right) && right[col] }

	if err := writeMarkdownRow(w, rows[0], widths, aligned, width); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, n := range widths {
		if aligned(i) {
			sep[i] = strings.Repeat("-", n-1) + ":"
		} else {
			sep[i] = strings.Repeat("-", n)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths, aligned, width); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells Row, widths []int, aligned func(int) bool, width WidthFunc) error {
	padded := make([]string, len(widths))
	for i, n := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, n-width(cell), aligned(i) && IsNumeric(cell))
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
