package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	contents := "input:\n  delimiter: \";\"\n  comment: \"#\"\n  trim_leading_space: true\noutput:\n  extension: QIF\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Dialect{
		Input:  InputConfig{Delimiter: ";", Comment: "#", TrimLeadingSpace: true},
		Output: OutputConfig{Extension: "QIF"},
	}, got)
}

func TestDefaults(t *testing.T) {
	d := Default()

	assert.Equal(t, ",", d.Input.Delimiter)
	assert.Empty(t, d.Input.Comment)
	assert.False(t, d.Input.TrimLeadingSpace)
	assert.Equal(t, "qif", d.Output.Extension)
	assert.NoError(t, d.Validate())
	assert.Equal(t, ',', d.DelimiterRune())
	assert.Equal(t, rune(0), d.CommentRune())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  delimiter: \";\"\n"), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ';', d.DelimiterRune())
	assert.Equal(t, "qif", d.Output.Extension)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing dialect")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *Dialect)
		wantErr string
	}{
		{"empty delimiter", func(d *Dialect) { d.Input.Delimiter = "" }, "exactly one character"},
		{"long delimiter", func(d *Dialect) { d.Input.Delimiter = ";;" }, "exactly one character"},
		{"quote delimiter", func(d *Dialect) { d.Input.Delimiter = `"` }, "not allowed"},
		{"newline delimiter", func(d *Dialect) { d.Input.Delimiter = "\n" }, "not allowed"},
		{"comment equals delimiter", func(d *Dialect) { d.Input.Comment = "," }, "must differ"},
		{"quote comment", func(d *Dialect) { d.Input.Comment = `"` }, "comment"},
		{"carriage return comment", func(d *Dialect) { d.Input.Comment = "\r" }, "not allowed"},
		{"newline comment", func(d *Dialect) { d.Input.Comment = "\n" }, "not allowed"},
		{"empty extension", func(d *Dialect) { d.Output.Extension = "" }, "bare extension"},
		{"dotted extension", func(d *Dialect) { d.Output.Extension = ".qif" }, "bare extension"},
		{"path extension", func(d *Dialect) { d.Output.Extension = "a/qif" }, "bare extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Default()
			tt.mutate(d)
			err := d.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_InvalidDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dialect.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  comment: \"\\n\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid dialect")
	assert.Contains(t, err.Error(), "comment")
}
