// Package cli implements the tblf command-line interface.
//
// The command reads one table from a file or standard input, resolves an
// immutable tblf.Options from flags and an optional TOML file, and writes the
// formatted table to standard output. Diagnostics and logs go to standard
// error only.
package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/tblf"
	"github.com/bjaus/tblf/internal/buildinfo"
)

const appName = "tblf"

// usage is printed when no input is named.
const usage = `usage: tblf [-lrnz] [-d delimiter] FILE
       tblf [-lrnz] [-d delimiter] -
`

// ErrUsage reports that no input source was given.
var ErrUsage = errors.New("no input specified")

// CLI holds the standard streams the command reads from and writes to.
type CLI struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a CLI bound to the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *CLI {
	return &CLI{Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// Main runs the command with args and returns the process exit status.
func (c *CLI) Main(ctx context.Context, args []string) int {
	if args == nil {
		args = []string{}
	}
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprint(c.Stderr, usage)
	default:
		fmt.Fprintf(c.Stderr, "%s: %v\n", appName, err)
	}
	return 1
}

// RootCommand builds the tblf cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		flags      = defaultSettings()
		configPath string
		verbose    bool
	)

	root := &cobra.Command{
		Use:           "tblf [flags] FILE|-",
		Short:         "Format delimiter-separated tables as aligned text",
		Long:          `tblf reads a CSV, TSV or similarly delimited table and prints it with every column padded to a common width. The delimiter is guessed when -d is not given.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(c.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrUsage
			}
			opts, format, err := resolve(flags, configPath, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			return c.format(cmd.Context(), args[0], format, opts)
		},
	}

	root.SetIn(c.Stdin)
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)
	root.SetVersionTemplate(buildinfo.Template())

	f := root.Flags()
	f.SortFlags = false
	f.StringVarP(&flags.delimiter, "delimiter", "d", "", "field delimiter (first byte is used; guessed when empty)")
	f.BoolVarP(&flags.zebra, "zebra", "z", false, "print every other row in bold")
	f.VarPF(&alignFlag{right: &flags.right, value: false}, "left", "l", "left-align numeric fields").NoOptDefVal = "true"
	f.VarPF(&alignFlag{right: &flags.right, value: true}, "right", "r", "right-align numeric fields").NoOptDefVal = "true"
	f.BoolVarP(&flags.number, "number", "n", false, "prefix every row with its line number")
	f.StringVarP(&flags.format, "format", "o", flags.format, fmt.Sprintf("output format %v or go-template=<tmpl>", tblf.Formats()))
	f.BoolVar(&flags.cells, "cells", false, "measure widths in terminal cells instead of codepoints")
	f.StringVar(&configPath, "config", "", "TOML file with default settings")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

// format reads the table named by src and writes it to c.Stdout.
func (c *CLI) format(ctx context.Context, src string, format tblf.Format, opts tblf.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, closeInput, err := c.open(src)
	if err != nil {
		return err
	}
	defer closeInput()
	logger.Debug("reading table", "source", src)

	delim := opts.Delimiter
	if delim == tblf.NoDelimiter {
		if delim, err = tblf.SniffSeeker(in); err != nil {
			return err
		}
		logger.Debug("sniffed delimiter", "delimiter", delimiterName(delim))
	}

	t, err := tblf.Parse(in, delim, opts.Numbered)
	if err != nil {
		return err
	}
	if err := closeInput(); err != nil {
		return fmt.Errorf("close input: %w", err)
	}
	prog.done("parsed table", "rows", len(t), "columns", len(tblf.Widths(t, opts.Width)))

	bw := bufio.NewWriter(c.Stdout)
	if err := tblf.Write(bw, format, t, opts); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	prog.done("rendered table", "format", format)
	return nil
}

// open returns a rewindable reader for src. "-" buffers all of c.Stdin.
// The returned close function is safe to call more than once.
func (c *CLI) open(src string) (io.ReadSeeker, func() error, error) {
	if src == "-" {
		data, err := io.ReadAll(c.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return bytes.NewReader(data), func() error { return nil }, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	closed := false
	return f, func() error {
		if closed {
			return nil
		}
		closed = true
		return f.Close()
	}, nil
}
