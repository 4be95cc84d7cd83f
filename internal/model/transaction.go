package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawField preserves one original header/value pair from a statement row.
// Rows are kept as ordered slices rather than maps so audit output lists
// columns in the order the bank exported them.
type RawField struct {
	Header string
	Value  string
}

// RawTransaction is one canonical transaction extracted from a bank CSV row.
// Immutable once built by the extractor.
type RawTransaction struct {
	RefCode     string
	Beneficiary string
	Amount      decimal.Decimal // non-negative; zero when the cell was unparsable
	Date        *time.Time      // nil when the format carries no date or parsing failed
	Raw         []RawField      // original row, keyed by header, kept for audit
}

// RawValue returns the original cell value for a header, or "" if absent.
func (t RawTransaction) RawValue(header string) string {
	for _, f := range t.Raw {
		if f.Header == header {
			return f.Value
		}
	}
	return ""
}
