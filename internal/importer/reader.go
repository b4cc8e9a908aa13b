package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/asn2qif/asn2qif/internal/config"
	"github.com/asn2qif/asn2qif/internal/model"
)

const utf8BOM = "\xef\xbb\xbf"

// RowError reports a record that could not be parsed or decoded. Errors
// from Next that are not RowErrors come from the underlying reader.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Reader streams Transactions out of a header-less ASN Bank CSV export, one
// record per call to Next.
type Reader struct {
	cr     *csv.Reader
	closer io.Closer
	line   int
}

// Open opens the export at path. The returned error is the one from os.Open.
func Open(path string, d *config.Dialect) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewReader(f, d)
	r.closer = f
	return r, nil
}

// NewReader reads an export from r using dialect d. A leading UTF-8 byte
// order mark is skipped.
func NewReader(r io.Reader, d *config.Dialect) *Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && string(b) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	cr := csv.NewReader(br)
	cr.Comma = d.DelimiterRune()
	cr.Comment = d.CommentRune()
	cr.TrimLeadingSpace = d.Input.TrimLeadingSpace
	// Field count is checked by DecodeRow so the error names the row.
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Reader{cr: cr}
}

// Next decodes the next row. It returns io.EOF once the input is exhausted,
// a *RowError for a malformed record and any other error unchanged.
func (r *Reader) Next() (model.Transaction, error) {
	rec, err := r.cr.Read()
	if err == io.EOF {
		return model.Transaction{}, io.EOF
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			r.line = pe.StartLine
			return model.Transaction{}, &RowError{Line: r.line, Err: fmt.Errorf("reading CSV: %w", err)}
		}
		return model.Transaction{}, err
	}
	r.line, _ = r.cr.FieldPos(0)
	txn, err := DecodeRow(rec)
	if err != nil {
		return model.Transaction{}, &RowError{Line: r.line, Err: err}
	}
	return txn, nil
}

// Line is the input line on which the most recent record started.
func (r *Reader) Line() int {
	return r.line
}

// Close releases the underlying file, if Open created one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
