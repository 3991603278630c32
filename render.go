package tblf

import (
	"io"
	"strconv"
	"strings"
	"unicode"
)

const (
	boldOn  = "\x1b[1m"
	boldOff = "\x1b[0m"

	// columnGap follows every field, including the last one on a line.
	columnGap = "  "
)

// Render writes t as column-aligned text, one line per row.
//
// Each field is padded to its column width from widths and followed by two
// spaces. Numeric fields are padded on the left when opts.RightAlign is set.
// With opts.Zebra every odd row (0-indexed) is wrapped in bold on/off escape
// sequences before the newline.
func Render(w io.Writer, t Table, widths []int, opts Options) error {
	width := opts.width()
	var sb strings.Builder
	for i, row := range t {
		sb.Reset()
		zebra := opts.Zebra && i%2 == 1
		if zebra {
			sb.WriteString(boldOn)
		}
		for col, cell := range row {
			pad := 0
			if col < len(widths) {
				pad = widths[col] - width(cell)
			}
			sb.WriteString(alignCell(cell, pad, opts.RightAlign && IsNumeric(cell)))
			sb.WriteString(columnGap)
		}
		if zebra {
			sb.WriteString(boldOff)
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func alignCell(s string, pad int, right bool) string {
	if pad <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

// IsNumeric reports whether s reads as a decimal floating-point number once
// leading whitespace is skipped. Anything left over, trailing whitespace
// included, makes it non-numeric, as do inf, nan, hex and underscore forms.
func IsNumeric(s string) bool {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s == "" || strings.ContainsAny(s, "iInNxXpP_") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
