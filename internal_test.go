package tblf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		pad   int
		right bool
		want  string
	}{
		"left":         {s: "ab", pad: 2, want: "ab  "},
		"right":        {s: "ab", pad: 2, right: true, want: "  ab"},
		"no pad":       {s: "ab", pad: 0, right: true, want: "ab"},
		"negative pad": {s: "abc", pad: -1, want: "abc"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.s, tt.pad, tt.right))
		})
	}
}

func TestNumericColumns(t *testing.T) {
	t.Parallel()
	rows := []Row{
		{"a", "1", "2.5"},
		{"b", "x"},
		{"3", "4", "5", "6"},
	}
	assert.Equal(t, []bool{false, false, true, true}, numericColumns(rows))
	assert.Nil(t, numericColumns(nil))
}

func TestOptionsWidthDefault(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 2, Options{}.width()("日本"))
	assert.Equal(t, 4, Options{Width: CellWidth}.width()("日本"))
}

func TestCandidateOrder(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{'\t', ',', ';', ':', '|'}, candidates[:])
}

func TestParseLongLine(t *testing.T) {
	t.Parallel()
	// Longer than bufio.MaxScanTokenSize.
	long := strings.Repeat("x", 100_000)
	got, err := Parse(strings.NewReader(long+",y\n"), ',', false)
	require.NoError(t, err)
	assert.Equal(t, Table{{long, "y"}}, got)
}

func TestWriteCSVError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Small data: flush error hit via cw.Error().
	err := writeCSV(w, Table{{"a", "b"}})
	assert.ErrorIs(t, err, errInternalWrite)
}

func TestWriteCSVLargeDataError(t *testing.T) {
	t.Parallel()
	w := &errWriterInternal{}
	// Large data exceeds bufio buffer (4096 bytes), causing cw.Write to fail.
	big := strings.Repeat("x", 5000)
	err := writeCSV(w, Table{{big}, {"b"}})
	assert.Error(t, err)
}

func TestWriteMarkdownRowPadding(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	never := func(int) bool { return false }
	err := writeMarkdownRow(&buf, Row{"a"}, []int{3, 3}, never, DisplayWidth)
	require.NoError(t, err)
	assert.Equal(t, "| a   |     |\n", buf.String())
}

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}
