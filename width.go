package tblf

import "github.com/mattn/go-runewidth"

// WidthFunc measures how many columns a field occupies.
type WidthFunc func(string) int

// DisplayWidth counts the codepoints of s: every byte that is not a UTF-8
// continuation byte (10xxxxxx) starts a new one. Combining marks and
// double-width glyphs are not special-cased.
func DisplayWidth(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i]&0xc0 != 0x80 {
			n++
		}
	}
	return n
}

// CellWidth measures s in terminal cells, counting East Asian wide
// characters as two and zero-width marks as none.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Widths returns the widest field of every column in t, measured with width.
// Columns are sized only over the rows that reach them. A nil width means
// DisplayWidth.
func Widths(t Table, width WidthFunc) []int {
	if width == nil {
		width = DisplayWidth
	}
	var widths []int
	for _, row := range t {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, make([]int, i+1-len(widths))...)
			}
			if w := width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
