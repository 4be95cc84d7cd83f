// Package extract resolves a detected bank format against parsed statement
// rows and produces canonical transactions. Per-row problems become error
// strings in the result, never Go errors; only missing structure (no header,
// unresolvable required columns) aborts extraction.
package extract

import (
	"fmt"
	"strings"

	"github.com/clearpay-dev/clearpay/internal/bankformat"
	"github.com/clearpay-dev/clearpay/internal/model"
	"github.com/clearpay-dev/clearpay/internal/rowparser"
)

// columns holds the resolved header indices for one extraction run.
type columns struct {
	ref         int
	beneficiary int
	amount      int
	date        int // -1 when the format has no usable date column

	// Standardized Format reads two description columns and prefers the
	// first non-empty one.
	refAlt int
}

// Extract walks parsed rows with the detected format and returns canonical
// transactions plus accumulated row-level error strings.
func Extract(rows [][]string, cfg bankformat.Config) ([]model.RawTransaction, []string) {
	var errs []string

	headerIdx := findHeader(rows)
	if headerIdx < 0 {
		return nil, []string{"no header row found in statement"}
	}
	header := rows[headerIdx]

	cols, err := resolveColumns(header, cfg)
	if err != nil {
		return nil, []string{err.Error()}
	}

	var txns []model.RawTransaction
	for i, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + i + 2 // 1-based, counting the header row
		if rowparser.IsBlank(row) {
			continue
		}

		refStr := resolveRef(row, cols)
		benStr := cell(row, cols.beneficiary)
		amtStr := cell(row, cols.amount)
		if refStr == "" && benStr == "" && amtStr == "" {
			continue
		}

		amount, ok := cfg.ParseAmount(amtStr)
		if !ok && (refStr != "" || benStr != "") {
			errs = append(errs, fmt.Sprintf("row %d: unparsable amount %q, defaulting to 0", rowNum, amtStr))
		}

		txn := model.RawTransaction{
			RefCode:     refStr,
			Beneficiary: benStr,
			Amount:      amount,
		}

		if cols.date >= 0 && cfg.ParseDate != nil {
			if dateStr := cell(row, cols.date); dateStr != "" {
				if t, ok := cfg.ParseDate(dateStr); ok {
					txn.Date = &t
				} else {
					errs = append(errs, fmt.Sprintf("row %d: unparsable date %q", rowNum, dateStr))
				}
			}
		}

		// A row with no reference, no beneficiary, and zero amount carries
		// nothing a payment could be reconciled against.
		if refStr == "" && benStr == "" && amount.IsZero() {
			continue
		}

		for j, h := range header {
			txn.Raw = append(txn.Raw, model.RawField{Header: h, Value: cell(row, j)})
		}
		txns = append(txns, txn)
	}
	return txns, errs
}

func findHeader(rows [][]string) int {
	for i, row := range rows {
		if !rowparser.IsBlank(row) {
			return i
		}
	}
	return -1
}

func resolveColumns(header []string, cfg bankformat.Config) (columns, error) {
	cols := columns{date: -1, refAlt: -1}

	if cfg.Name == bankformat.StandardizedName {
		cols.ref = findColumn(header, []string{"description_1"})
		cols.refAlt = findColumn(header, []string{"description_2"})
	} else {
		cols.ref = findColumn(header, cfg.RefPatterns)
	}
	if cols.ref < 0 {
		return columns{}, fmt.Errorf("could not locate reference column (tried %s)", strings.Join(cfg.RefPatterns, ", "))
	}

	cols.beneficiary = findColumn(header, cfg.BeneficiaryPatterns)
	if cols.beneficiary < 0 {
		return columns{}, fmt.Errorf("could not locate beneficiary column (tried %s)", strings.Join(cfg.BeneficiaryPatterns, ", "))
	}

	cols.amount = findColumn(header, cfg.AmountPatterns)
	if cols.amount < 0 {
		return columns{}, fmt.Errorf("could not locate amount column (tried %s)", strings.Join(cfg.AmountPatterns, ", "))
	}

	if len(cfg.DatePatterns) > 0 {
		cols.date = findColumn(header, cfg.DatePatterns)
	}
	return cols, nil
}

// findColumn resolves a header index from a pattern list: exact
// case-insensitive match first, then substring containment in either
// direction. Returns -1 when nothing fits.
func findColumn(header []string, patterns []string) int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, p := range patterns {
		p = strings.ToLower(p)
		for i, h := range normalized {
			if h == p {
				return i
			}
		}
	}
	for _, p := range patterns {
		p = strings.ToLower(p)
		for i, h := range normalized {
			if h == "" {
				continue
			}
			if strings.Contains(h, p) || strings.Contains(p, h) {
				return i
			}
		}
	}
	return -1
}

// resolveRef reads the reference cell, preferring description_1 over
// description_2 for the Standardized Format.
func resolveRef(row []string, cols columns) string {
	ref := cell(row, cols.ref)
	if ref == "" && cols.refAlt >= 0 {
		ref = cell(row, cols.refAlt)
	}
	return ref
}

// cell returns the trimmed field at idx, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
