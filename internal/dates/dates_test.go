package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBank(t *testing.T) {
	d, err := ParseBank("05-03-2023")
	require.NoError(t, err)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 5, d.Day())
}

func TestParseThenFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"05-03-2023", "03/05/2023"},
		{"31-12-1999", "12/31/1999"},
		{"01-01-2000", "01/01/2000"},
		{"29-02-2024", "02/29/2024"},
	}
	for _, tt := range tests {
		d, err := ParseBank(tt.in)
		require.NoError(t, err, "ParseBank(%q)", tt.in)
		assert.Equal(t, tt.want, FormatQIF(d), "FormatQIF(ParseBank(%q))", tt.in)
	}
}

func TestParseBank_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"5-03-2023",
		"05-3-2023",
		"05-03-23",
		"2023-03-05",
		"05/03/2023",
		"32-01-2023",
		"29-02-2023",
		"05-13-2023",
		" 05-03-2023",
	} {
		_, err := ParseBank(in)
		assert.Error(t, err, "ParseBank(%q) should fail", in)
	}
}

func TestParseBank_ErrorMentionsInput(t *testing.T) {
	_, err := ParseBank("NOTADATE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"NOTADATE"`)
}
