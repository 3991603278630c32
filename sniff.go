package tblf

import (
	"fmt"
	"io"
	"slices"
)

// NoDelimiter is returned by the sniffer when no candidate qualifies. As an
// Options.Delimiter it asks for the delimiter to be sniffed.
const NoDelimiter byte = 0

// candidates lists the sniffable delimiters in tie-break order.
var candidates = [...]byte{'\t', ',', ';', ':', '|'}

// Sniff guesses the field delimiter of the table read from r.
//
// A candidate qualifies when it occurs the same, non-zero number of times on
// every non-empty line. The first qualifying candidate in the order tab,
// comma, semicolon, colon, pipe wins. NoDelimiter is returned when nothing
// qualifies or there are no non-empty lines.
func Sniff(r io.Reader) (byte, error) {
	var counts [len(candidates)][]int

	sc := newLineScanner(r)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		for i := range counts {
			counts[i] = append(counts[i], 0)
		}
		last := len(counts[0]) - 1
		for _, c := range line {
			if i := slices.Index(candidates[:], c); i >= 0 {
				counts[i][last]++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return NoDelimiter, fmt.Errorf("sniff delimiter: %w", err)
	}

	for i, c := range candidates {
		if len(counts[i]) == 0 {
			break
		}
		lo, hi := slices.Min(counts[i]), slices.Max(counts[i])
		if lo == hi && lo != 0 {
			return c, nil
		}
	}
	return NoDelimiter, nil
}

// SniffSeeker sniffs the delimiter like [Sniff] and rewinds rs to its start
// so the table can be parsed from the beginning.
func SniffSeeker(rs io.ReadSeeker) (byte, error) {
	delim, err := Sniff(rs)
	if err != nil {
		return NoDelimiter, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return NoDelimiter, fmt.Errorf("rewind input: %w", err)
	}
	return delim, nil
}
