package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bjaus/tblf"
)

// settings is the flag-level view of the configuration. It is resolved into
// an immutable tblf.Options once per run.
type settings struct {
	delimiter string
	zebra     bool
	right     bool
	number    bool
	format    string
	cells     bool
}

func defaultSettings() settings {
	return settings{
		right:  true,
		format: tblf.Aligned.String(),
	}
}

// fileConfig mirrors the keys accepted in a --config TOML file. Unset keys
// keep their defaults.
type fileConfig struct {
	Delimiter  *string `toml:"delimiter"`
	Zebra      *bool   `toml:"zebra"`
	RightAlign *bool   `toml:"right_align"`
	Number     *bool   `toml:"number"`
	Format     *string `toml:"format"`
	Cells      *bool   `toml:"cells"`
}

// loadConfig decodes the TOML file at path on top of s.
func loadConfig(path string, s settings) (settings, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return s, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return s, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.Delimiter != nil {
		s.delimiter = *cfg.Delimiter
	}
	if cfg.Zebra != nil {
		s.zebra = *cfg.Zebra
	}
	if cfg.RightAlign != nil {
		s.right = *cfg.RightAlign
	}
	if cfg.Number != nil {
		s.number = *cfg.Number
	}
	if cfg.Format != nil {
		s.format = *cfg.Format
	}
	if cfg.Cells != nil {
		s.cells = *cfg.Cells
	}
	return s, nil
}

// resolve layers defaults, the optional config file and explicitly set
// flags, in that order.
func resolve(flags settings, configPath string, changed func(name string) bool) (tblf.Options, tblf.Format, error) {
	s := defaultSettings()
	if configPath != "" {
		var err error
		if s, err = loadConfig(configPath, s); err != nil {
			return tblf.Options{}, "", err
		}
	}

	if changed("delimiter") {
		s.delimiter = flags.delimiter
	}
	if changed("zebra") {
		s.zebra = flags.zebra
	}
	if changed("left") || changed("right") {
		s.right = flags.right
	}
	if changed("number") {
		s.number = flags.number
	}
	if changed("format") {
		s.format = flags.format
	}
	if changed("cells") {
		s.cells = flags.cells
	}

	format, err := tblf.ParseFormat(s.format)
	if err != nil {
		return tblf.Options{}, "", err
	}

	opts := tblf.DefaultOptions()
	if s.delimiter != "" {
		opts.Delimiter = s.delimiter[0]
	}
	opts.Zebra = s.zebra
	opts.RightAlign = s.right
	opts.Numbered = s.number
	if s.cells {
		opts.Width = tblf.CellWidth
	}
	return opts, format, nil
}

// alignFlag backs both -l and -r. They write to the same bool so the last
// one given on the command line wins.
type alignFlag struct {
	right *bool
	value bool
}

func (a *alignFlag) String() string {
	if a.right == nil {
		return "false"
	}
	return strconv.FormatBool(*a.right == a.value)
}

func (a *alignFlag) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if on {
		*a.right = a.value
	} else {
		*a.right = !a.value
	}
	return nil
}

func (a *alignFlag) Type() string { return "bool" }

// delimiterName makes control characters readable in log output.
func delimiterName(d byte) string {
	switch d {
	case tblf.NoDelimiter:
		return "none"
	case '\t':
		return "tab"
	default:
		return strconv.QuoteRuneToASCII(rune(d))
	}
}
