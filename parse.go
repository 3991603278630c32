package tblf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single input line.
const maxLineSize = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// Parse reads lines from r and splits each non-empty one on delim.
//
// Zero-length lines are dropped. Empty fields are kept, including a trailing
// one after a final delimiter. When numbered is set every row starts with its
// 1-based position among the emitted rows. If no row is produced the error
// wraps [ErrEmptyData] and reports how many lines were read.
func Parse(r io.Reader, delim byte, numbered bool) (Table, error) {
	var (
		t     Table
		lines int
		sep   = string(delim)
	)

	sc := newLineScanner(r)
	for sc.Scan() {
		lines++
		line := sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, sep)
		if numbered {
			fields = append(Row{strconv.Itoa(len(t) + 1)}, fields...)
		}
		t = append(t, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	if len(t) == 0 {
		return nil, fmt.Errorf("%w, quitting after reading %d lines", ErrEmptyData, lines)
	}
	return t, nil
}

// Read builds a Table from rs. When opts.Delimiter is NoDelimiter the
// delimiter is sniffed first and rs is rewound before parsing.
func Read(rs io.ReadSeeker, opts Options) (Table, error) {
	delim := opts.Delimiter
	if delim == NoDelimiter {
		var err error
		if delim, err = SniffSeeker(rs); err != nil {
			return nil, err
		}
	}
	return Parse(rs, delim, opts.Numbered)
}
