// Package tblf turns delimiter-separated text tables into column-aligned
// plain text.
//
// The work happens in four stages that run strictly in order:
//
//   - [Sniff] guesses the delimiter when none is given
//   - [Parse] splits non-empty lines into a [Table] of [Row] values
//   - [Widths] finds the widest field of every column
//   - [Render] writes each row with its fields padded to the column width
//
// [Read] combines sniffing and parsing for a rewindable input:
//
//	f, _ := os.Open("data.csv")
//	defer f.Close()
//	t, err := tblf.Read(f, tblf.DefaultOptions())
//	if err != nil { ... }
//	tblf.Write(os.Stdout, tblf.Aligned, t, tblf.DefaultOptions())
//
// # Sniffing
//
// The candidates are tab, comma, semicolon, colon and pipe, tried in that
// order. A candidate is chosen when it occurs equally often, and at least
// once, on every non-empty line. Otherwise [NoDelimiter] is returned and each
// line becomes a single-field row.
//
// # Widths
//
// [DisplayWidth] counts codepoints by skipping UTF-8 continuation bytes. It
// does not know about combining marks or double-width glyphs. [CellWidth]
// measures terminal cells instead and can be selected through
// [Options].Width.
//
// # Rendering
//
// Every field is followed by two spaces, the last one included. Fields for
// which [IsNumeric] holds are right-aligned unless [Options].RightAlign is
// false. [Options].Zebra wraps every odd row in bold escape sequences.
//
// # Other Formats
//
// [Write] also renders a Table as CSV, TSV, Markdown, HTML, JSON, JSON Lines,
// YAML or through a Go template ([GoTemplate]). Use [ParseFormat] to turn a
// flag value into a [Format].
//
// # Errors
//
//   - [ErrEmptyData]: the input produced no rows
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
package tblf
