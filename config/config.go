package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/andaru/endnote/entry"
	"github.com/andaru/endnote/parser"
)

// Format is an output format for converted entries
type Format int

// Output formats
const (
	FormatBibTeX Format = iota
	FormatYAML
)

var formatNames = []string{"bibtex", "yaml"}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// MarshalText implements encoding.TextMarshaler
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (f *Format) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range formatNames {
		if n == name {
			*f = Format(i)
			return nil
		}
	}
	return errors.Errorf("unknown output format %q (want one of %s)", text, strings.Join(formatNames, ", "))
}

// Set implements the command line flag value interface
func (f *Format) Set(s string) error { return f.UnmarshalText([]byte(s)) }

// Type implements the command line flag value interface
func (f *Format) Type() string { return "format" }

// Preferences are the user's conversion preferences
type Preferences struct {
	// KeywordSeparator joins each entry's keywords into its keywords field
	KeywordSeparator string `yaml:"keyword_separator"`
	// Format is the output format of the convert command
	Format Format `yaml:"format"`
	// Verbosity is the log verbosity level
	Verbosity int `yaml:"verbosity"`
}

// Default returns the default preferences
func Default() Preferences {
	return Preferences{
		KeywordSeparator: entry.DefaultKeywordSeparator,
		Format:           FormatBibTeX,
	}
}

// Load reads preferences from the YAML file at path. Keys missing from
// the file keep their default values.
func Load(path string) (Preferences, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preferences{}, errors.WithStack(err)
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return Preferences{}, errors.Wrapf(err, "load %s", path)
	}
	return p, nil
}

// Decode reads YAML preferences from r. Unknown keys are an error.
func Decode(r io.Reader) (Preferences, error) {
	p := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return Preferences{}, errors.WithStack(err)
	}
	if p.Verbosity < 0 {
		return Preferences{}, errors.Errorf("verbosity must not be negative, got %d", p.Verbosity)
	}
	return p, nil
}

// ParserOptions returns the parser options the preferences imply
func (p Preferences) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithKeywordSeparator(p.KeywordSeparator)}
}
