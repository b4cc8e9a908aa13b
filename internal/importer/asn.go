package importer

import (
	"fmt"
	"strconv"
	"time"

	"github.com/asn2qif/asn2qif/internal/dates"
	"github.com/asn2qif/asn2qif/internal/model"
)

// NumFields is the number of columns in every row of an ASN Bank export.
const NumFields = 19

const (
	colDate = iota
	colAccount
	colPayeeAccount
	colPayee
	colAddress
	colPostalCode
	colCity
	colBalanceBefore
	colAccountCurrency
	colCurrency
	colAmount
	colJournalDate
	colCurrencyDate
	colCode
	colKind
	colTrackingNumber
	colShortDesc
	colLongDesc
	colBlockNumber
)

var columnNames = [NumFields]string{
	colDate:            "date",
	colAccount:         "account",
	colPayeeAccount:    "payee_account",
	colPayee:           "payee",
	colAddress:         "address",
	colPostalCode:      "postal_code",
	colCity:            "city",
	colBalanceBefore:   "balance_before",
	colAccountCurrency: "account_currency",
	colCurrency:        "currency",
	colAmount:          "amount",
	colJournalDate:     "journal_date",
	colCurrencyDate:    "currency_date",
	colCode:            "code",
	colKind:            "kind",
	colTrackingNumber:  "tracking_number",
	colShortDesc:       "short_description",
	colLongDesc:        "long_description",
	colBlockNumber:     "block_number",
}

// DecodeRow converts a CSV record into a Transaction. All typed columns are
// checked, including the ones the QIF output never uses.
func DecodeRow(rec []string) (model.Transaction, error) {
	if len(rec) != NumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", NumFields, len(rec))
	}

	var (
		txn  model.Transaction
		errs fieldErrs
	)
	txn.Date = errs.date(rec, colDate)
	txn.JournalDate = errs.date(rec, colJournalDate)
	txn.CurrencyDate = errs.date(rec, colCurrencyDate)
	txn.Code = uint16(errs.unsigned(rec, colCode, 16))
	txn.TrackingNumber = errs.unsigned(rec, colTrackingNumber, 64)
	txn.BlockNumber = errs.unsigned(rec, colBlockNumber, 64)
	if errs.err != nil {
		return model.Transaction{}, errs.err
	}

	txn.Account = rec[colAccount]
	txn.PayeeAccount = rec[colPayeeAccount]
	txn.Payee = rec[colPayee]
	txn.Address = rec[colAddress]
	txn.PostalCode = rec[colPostalCode]
	txn.City = rec[colCity]
	txn.BalanceBefore = rec[colBalanceBefore]
	txn.AccountCurrency = rec[colAccountCurrency]
	txn.Currency = rec[colCurrency]
	txn.Amount = rec[colAmount]
	txn.Kind = rec[colKind]
	txn.ShortDescription = rec[colShortDesc]
	txn.LongDescription = rec[colLongDesc]
	return txn, nil
}

// fieldErrs keeps the first column conversion failure.
type fieldErrs struct {
	err error
}

func (e *fieldErrs) date(rec []string, col int) time.Time {
	if e.err != nil {
		return time.Time{}
	}
	t, err := dates.ParseBank(rec[col])
	if err != nil {
		e.err = fmt.Errorf("column %s: %w", columnNames[col], err)
	}
	return t
}

func (e *fieldErrs) unsigned(rec []string, col, bits int) uint64 {
	if e.err != nil {
		return 0
	}
	n, err := strconv.ParseUint(rec[col], 10, bits)
	if err != nil {
		e.err = fmt.Errorf("column %s: parsing %q as uint%d: %w", columnNames[col], rec[col], bits, err)
	}
	return n
}
