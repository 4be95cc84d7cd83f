// Package bankformat holds the catalog of known bank CSV export layouts and
// picks the right one for a given header row. Each format is a plain value
// of pattern lists plus parser funcs; adding a bank means appending one
// entry to the catalog, never adding a type.
package bankformat

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// StandardizedName is the catalog's canonical format. The extractor
// special-cases its paired description columns.
const StandardizedName = "Standardized Format"

// GenericName is the always-matching fallback at the end of the catalog.
const GenericName = "Generic"

// Config describes one bank's CSV layout: candidate header names for each
// logical field, field parsers, and a detection predicate over the
// normalized header row.
type Config struct {
	Name string

	// Candidate header names per logical field, in preference order.
	RefPatterns         []string
	BeneficiaryPatterns []string
	AmountPatterns      []string
	DatePatterns        []string // empty when the format carries no usable date

	ParseAmount func(string) (decimal.Decimal, bool)
	ParseDate   func(string) (time.Time, bool) // nil when DatePatterns is empty

	Detect func(headers []string) bool // headers are lowercased and trimmed
}

// standardizedHeaders is the exact set the canonical export always carries.
var standardizedHeaders = []string{
	"transaction_date",
	"description_1",
	"description_2",
	"beneficiary",
	"account",
	"cash_in",
	"cash_out",
}

// catalog is ordered: canonical format first, legacy heuristics after,
// generic fallback last. Never mutated at runtime.
var catalog = []Config{
	{
		Name:                StandardizedName,
		RefPatterns:         []string{"description_1", "description_2"},
		BeneficiaryPatterns: []string{"beneficiary"},
		AmountPatterns:      []string{"cash_in"},
		DatePatterns:        []string{"transaction_date"},
		ParseAmount:         ParseAmount,
		ParseDate:           ParseDate,
		Detect: func(headers []string) bool {
			return containsAll(headers, standardizedHeaders)
		},
	},
	{
		Name:                "Maybank2u",
		RefPatterns:         []string{"reference", "transaction description", "description"},
		BeneficiaryPatterns: []string{"beneficiary name", "beneficiary", "payee"},
		AmountPatterns:      []string{"cash-in", "credit", "amount"},
		DatePatterns:        []string{"transaction date", "date"},
		ParseAmount:         ParseAmount,
		ParseDate:           ParseDate,
		Detect: func(headers []string) bool {
			return anyContains(headers, "maybank") || anyContains(headers, "cash-out")
		},
	},
	{
		Name:                "CIMB Clicks",
		RefPatterns:         []string{"reference no", "reference", "remarks"},
		BeneficiaryPatterns: []string{"beneficiary", "account name", "payee"},
		AmountPatterns:      []string{"deposit", "credit", "amount"},
		DatePatterns:        []string{"posting date", "date"},
		ParseAmount:         ParseAmount,
		ParseDate:           ParseDate,
		Detect: func(headers []string) bool {
			return anyContains(headers, "cimb")
		},
	},
	{
		Name:                GenericName,
		RefPatterns:         []string{"reference", "ref", "description", "transaction details", "details", "remarks", "narration"},
		BeneficiaryPatterns: []string{"beneficiary", "payee", "name", "customer", "account name", "sender"},
		AmountPatterns:      []string{"amount", "credit", "cash_in", "cash in", "deposit", "value"},
		DatePatterns:        []string{"transaction_date", "transaction date", "date", "value date", "posting date"},
		ParseAmount:         ParseAmount,
		ParseDate:           ParseDate,
		Detect:              func([]string) bool { return true },
	},
}

// Catalog returns the full ordered format catalog.
func Catalog() []Config {
	return catalog
}

// Detect returns the first catalog entry whose predicate accepts the header
// row. The generic fallback matches unconditionally, so detection never
// fails.
func Detect(headerRow []string) Config {
	headers := make([]string, len(headerRow))
	for i, h := range headerRow {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}
	for _, cfg := range catalog[:len(catalog)-1] {
		if cfg.Detect(headers) {
			return cfg
		}
	}
	return catalog[len(catalog)-1]
}

func containsAll(headers, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, h := range headers {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func anyContains(headers []string, sub string) bool {
	for _, h := range headers {
		if strings.Contains(h, sub) {
			return true
		}
	}
	return false
}
