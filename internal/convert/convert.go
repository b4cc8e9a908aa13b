// Package convert turns an ASN Bank CSV export into a QIF bank file.
package convert

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/asn2qif/asn2qif/internal/config"
	"github.com/asn2qif/asn2qif/internal/importer"
	"github.com/asn2qif/asn2qif/internal/qif"
)

// Options configures a conversion. The zero value converts a default export
// without logging.
type Options struct {
	Dialect *config.Dialect
	Logger  zerolog.Logger
}

// Summary describes a finished conversion.
type Summary struct {
	Input        string
	Output       string
	Transactions int
	Net          decimal.Decimal // sum of the amounts that parse as decimals
	Unparsed     int             // amounts left out of Net
}

// File converts the export at inputPath and writes the QIF file next to it,
// replacing any file already there. The output only appears once every row
// has been converted.
func File(inputPath string, opts Options) (Summary, error) {
	dialect := opts.Dialect
	if dialect == nil {
		dialect = config.Default()
	}
	log := opts.Logger

	outputPath := qif.OutputPath(inputPath, dialect.Output.Extension)
	sum := Summary{Input: inputPath, Output: outputPath}

	src, err := importer.Open(inputPath, dialect)
	if err != nil {
		return sum, &IOError{Op: "opening input", Path: inputPath, Err: err}
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), "."+filepath.Base(outputPath)+".*.tmp")
	if err != nil {
		return sum, &IOError{Op: "creating output", Path: outputPath, Err: err}
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	log.Debug().Str("input", inputPath).Str("output", outputPath).Msg("converting")

	w := qif.NewWriter(tmp)
	if err := Stream(src, w, &sum, log); err != nil {
		return sum, err
	}
	if err := w.Flush(); err != nil {
		return sum, &IOError{Op: "writing output", Path: outputPath, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		return sum, &IOError{Op: "writing output", Path: outputPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return sum, &IOError{Op: "writing output", Path: outputPath, Err: err}
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return sum, &IOError{Op: "creating output", Path: outputPath, Err: err}
	}
	committed = true

	log.Debug().
		Int("transactions", sum.Transactions).
		Str("net", sum.Net.StringFixed(2)).
		Msg("converted")
	return sum, nil
}

// Stream writes the QIF header and then one entry per row of src, in order.
// The first bad row stops the run with a *DecodeError; a failing read
// stops it with an *IOError. sum is updated as rows
// are written and its Input and Output name the files in errors.
func Stream(src *importer.Reader, w *qif.Writer, sum *Summary, log zerolog.Logger) error {
	if err := w.WriteHeader(); err != nil {
		return &IOError{Op: "writing output", Path: sum.Output, Err: err}
	}
	for {
		txn, err := src.Next()
		if err == io.EOF {
			return nil
		}
		var rowErr *importer.RowError
		if errors.As(err, &rowErr) {
			log.Debug().Int("row", rowErr.Line).Err(rowErr.Err).Msg("row rejected")
			return &DecodeError{Path: sum.Input, Row: rowErr.Line, Err: rowErr.Err}
		}
		if err != nil {
			return &IOError{Op: "reading input", Path: sum.Input, Err: err}
		}

		if err := w.WriteEntry(qif.Transform(txn)); err != nil {
			return &IOError{Op: "writing output", Path: sum.Output, Err: err}
		}
		sum.Transactions = w.Entries()

		amount, err := decimal.NewFromString(txn.Amount)
		if err != nil {
			sum.Unparsed++
			log.Warn().Int("row", src.Line()).Str("amount", txn.Amount).Msg("amount is not a decimal, left out of total")
			continue
		}
		sum.Net = sum.Net.Add(amount)
		log.Debug().Int("row", src.Line()).Str("payee", txn.Payee).Str("amount", txn.Amount).Msg("row converted")
	}
}
