// Package qif writes Quicken Interchange Format bank transactions.
package qif

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/asn2qif/asn2qif/internal/model"
)

// Extension is the conventional QIF file extension, without the dot.
const Extension = "qif"

// Transform maps a decoded bank row onto a QIF entry. It does no I/O.
func Transform(txn model.Transaction) model.Entry {
	return model.Entry{
		Amount: txn.Amount,
		Date:   txn.Date,
		Payee:  txn.Payee,
		Memo:   StripWrapping(txn.LongDescription),
	}
}

// StripWrapping drops the first and last character of a non-empty string.
// The export wraps descriptions in quotes; a lone character becomes "".
// The bytes between the two ends are kept as they are, valid UTF-8 or not.
func StripWrapping(s string) string {
	if s == "" {
		return s
	}
	_, first := utf8.DecodeRuneInString(s)
	s = s[first:]
	_, last := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-last]
}

// OutputPath returns path with its extension replaced by ext, or ext appended
// when path has none.
func OutputPath(path, ext string) string {
	old := filepath.Ext(path)
	if old == filepath.Base(path) {
		// A dotfile such as ".statement" has a stem but no extension.
		old = ""
	}
	return strings.TrimSuffix(path, old) + "." + ext
}
