package bankformat

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// sourceOffset adjusts statement wall-clock times to UTC. Statement exports
// carry local times from a fixed UTC+8 zone with no daylight saving, so the
// shift is a constant, not a zone lookup.
const sourceOffset = 8 * time.Hour

// dateLayouts are tried in order; bank exports mix these freely, sometimes
// within one file. Slash dates are day-first.
var dateLayouts = []string{
	"2 Jan 2006",
	"2/1/2006",
	"2006-01-02",
}

// ParseAmount converts a statement amount cell to a non-negative decimal.
// Thousands separators and currency prefixes are stripped. An empty cell is
// zero and ok; a cell that still fails to parse is zero and not ok, which
// the extractor records as a warning when the row has other content.
func ParseAmount(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	for _, prefix := range []string{"RM", "PHP", "SGD", "MYR", "$"} {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, prefix))
	}
	if cleaned == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Abs(), true
}

// ParseDate sniffs the cell against the known layouts and normalizes the
// matched wall-clock time to UTC by applying the fixed source offset.
func ParseDate(s string) (time.Time, bool) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, cleaned, time.UTC)
		if err != nil {
			continue
		}
		return t.Add(sourceOffset), true
	}
	return time.Time{}, false
}
