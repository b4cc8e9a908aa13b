// Package dates holds the two date layouts a conversion touches: the bank's
// day-month-year input and QIF's month/day/year output.
package dates

import (
	"fmt"
	"time"
)

const (
	// BankLayout is DD-MM-YYYY, e.g. 05-03-2023.
	BankLayout = "02-01-2006"
	// QIFLayout is MM/DD/YYYY, e.g. 03/05/2023.
	QIFLayout = "01/02/2006"
)

// ParseBank parses a DD-MM-YYYY date. Day and month must be two digits and the
// year four.
func ParseBank(s string) (time.Time, error) {
	t, err := time.Parse(BankLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// FormatQIF renders t as MM/DD/YYYY.
func FormatQIF(t time.Time) string {
	return t.Format(QIFLayout)
}
