package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Dialect describes how the bank CSV export is laid out on disk and where the
// QIF file goes. Column order is fixed and not part of the dialect.
type Dialect struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig controls the CSV reader.
type InputConfig struct {
	Delimiter        string `yaml:"delimiter"`         // single character, "," or ";"
	Comment          string `yaml:"comment,omitempty"` // lines starting with it are skipped
	TrimLeadingSpace bool   `yaml:"trim_leading_space"`
}

// OutputConfig controls the QIF file.
type OutputConfig struct {
	Extension string `yaml:"extension"` // without the leading dot
}

// Load reads a dialect YAML file from disk. Keys missing from the file keep
// their Default values.
func Load(path string) (*Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dialect: %w", err)
	}
	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing dialect: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dialect %s: %w", path, err)
	}
	return d, nil
}

// Default returns the dialect of a plain ASN Bank export.
func Default() *Dialect {
	return &Dialect{
		Input: InputConfig{
			Delimiter: ",",
		},
		Output: OutputConfig{
			Extension: "qif",
		},
	}
}

// Validate checks that the dialect can drive a csv.Reader.
func (d *Dialect) Validate() error {
	delim, err := single("delimiter", d.Input.Delimiter)
	if err != nil {
		return err
	}
	if reserved(delim) {
		return fmt.Errorf("delimiter %q not allowed", d.Input.Delimiter)
	}
	if d.Input.Comment != "" {
		c, err := single("comment", d.Input.Comment)
		if err != nil {
			return err
		}
		if reserved(c) {
			return fmt.Errorf("comment %q not allowed", d.Input.Comment)
		}
		if c == delim {
			return errors.New("comment and delimiter must differ")
		}
	}
	ext := d.Output.Extension
	if ext == "" || strings.ContainsAny(ext, `./\`) {
		return fmt.Errorf("output extension %q must be a bare extension like \"qif\"", ext)
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune. Call Validate first.
func (d *Dialect) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Input.Delimiter)
	return r
}

// CommentRune returns the comment character, or 0 when comments are disabled.
func (d *Dialect) CommentRune() rune {
	if d.Input.Comment == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(d.Input.Comment)
	return r
}

// reserved reports whether encoding/csv refuses r as a delimiter or comment.
func reserved(r rune) bool {
	return r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError
}

func single(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be exactly one character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%s %q is not valid UTF-8", name, s)
	}
	return r, nil
}
