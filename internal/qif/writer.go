package qif

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/asn2qif/asn2qif/internal/dates"
	"github.com/asn2qif/asn2qif/internal/model"
)

const (
	// BankHeader identifies a bank account transaction list.
	BankHeader = "!Type:Bank"
	// Terminator ends every entry.
	Terminator = "^"
)

// Writer emits QIF lines to an underlying writer. Call Flush when done.
type Writer struct {
	w       *bufio.Writer
	header  bool
	entries int
}

// NewWriter returns a Writer that buffers output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the !Type:Bank line. It may be called once, before any
// entry.
func (w *Writer) WriteHeader() error {
	if w.header {
		return errors.New("QIF header already written")
	}
	w.header = true
	return w.line(BankHeader)
}

// WriteEntry writes the amount, date, payee and memo lines followed by the
// terminator.
func (w *Writer) WriteEntry(e model.Entry) error {
	if !w.header {
		return fmt.Errorf("QIF entry %d written before header", w.entries+1)
	}
	for _, l := range [...]string{
		"T" + e.Amount,
		"D" + dates.FormatQIF(e.Date),
		"P" + e.Payee,
		"M" + e.Memo,
		Terminator,
	} {
		if err := w.line(l); err != nil {
			return err
		}
	}
	w.entries++
	return nil
}

// Entries reports how many entries have been written.
func (w *Writer) Entries() int {
	return w.entries
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func (w *Writer) line(s string) error {
	if _, err := w.w.WriteString(s); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}
