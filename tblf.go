package tblf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyData         = errors.New("misformed or empty data file")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Aligned  Format = "aligned"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	Markdown Format = "markdown"
	HTML     Format = "html"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Aligned, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that executes a Go text/template once per row.
// The template's dot is the [Row].
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Row is the ordered list of fields parsed from one non-empty input line.
type Row []string

// Table is an ordered list of rows. Rows may differ in length.
type Table []Row

// Options controls parsing and rendering. Build it once and pass it by value.
type Options struct {
	// Delimiter separates fields. NoDelimiter means sniff it from the input.
	Delimiter byte
	// Zebra renders every odd row in bold.
	Zebra bool
	// RightAlign pads numeric fields on the left.
	RightAlign bool
	// Numbered prepends a 1-based row counter to every row.
	Numbered bool
	// Width measures a field. Nil means DisplayWidth.
	Width WidthFunc
}

// DefaultOptions returns the options used when nothing is configured:
// sniffed delimiter, right-aligned numbers, codepoint widths.
func DefaultOptions() Options {
	return Options{
		Delimiter:  NoDelimiter,
		RightAlign: true,
		Width:      DisplayWidth,
	}
}

func (o Options) width() WidthFunc {
	if o.Width == nil {
		return DisplayWidth
	}
	return o.Width
}

// Write renders t in format f and writes it to w.
func Write(w io.Writer, f Format, t Table, opts Options) error {
	switch f {
	case Aligned:
		return Render(w, t, Widths(t, opts.width()), opts)
	case CSV:
		return writeCSV(w, t)
	case TSV:
		return writeTSV(w, t)
	case Markdown:
		return writeMarkdown(w, t, opts)
	case HTML:
		return writeHTML(w, t, opts)
	case JSON:
		return writeJSON(w, t)
	case JSONL:
		return writeJSONL(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func Marshal(f Format, t Table, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// numericColumns reports, per column, whether every field that reaches the
// column looks numeric.
func numericColumns(rows []Row) []bool {
	var numeric []bool
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(numeric) {
				numeric = append(numeric, true)
			}
			if !IsNumeric(cell) {
				numeric[i] = false
			}
		}
	}
	return numeric
}
