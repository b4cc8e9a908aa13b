package model

import "time"

// Transaction is one row of an ASN Bank CSV export, decoded positionally.
// Every field is decoded strictly even though only a few reach the QIF output.
type Transaction struct {
	Date             time.Time
	Account          string
	PayeeAccount     string
	Payee            string
	Address          string
	PostalCode       string
	City             string
	BalanceBefore    string // decimal text, kept verbatim
	AccountCurrency  string
	Currency         string
	Amount           string // signed decimal text, kept verbatim
	JournalDate      time.Time
	CurrencyDate     time.Time
	Code             uint16
	Kind             string
	TrackingNumber   uint64
	ShortDescription string
	LongDescription  string // wrapped in quote characters in the export
	BlockNumber      uint64
}

// Entry is a single QIF bank transaction.
type Entry struct {
	Amount string
	Date   time.Time
	Payee  string
	Memo   string
}
