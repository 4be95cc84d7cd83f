// Package recon wires the statement pipeline together: row parsing, format
// detection, extraction, matching, and the final result assembly. Process
// is a pure function of its inputs; independent runs share no state.
package recon

import (
	"github.com/shopspring/decimal"

	"github.com/clearpay-dev/clearpay/internal/bankformat"
	"github.com/clearpay-dev/clearpay/internal/extract"
	"github.com/clearpay-dev/clearpay/internal/match"
	"github.com/clearpay-dev/clearpay/internal/model"
	"github.com/clearpay-dev/clearpay/internal/rowparser"
)

// Process reconciles raw statement text against a list of pending payments.
// It never returns an error: structural failures come back as an otherwise
// empty result carrying the failure strings, with every input payment
// listed as unmatched so callers still see what remains outstanding.
func Process(csvText string, payments []model.PendingPayment) model.ProcessResult {
	rows, err := rowparser.Parse(csvText)
	if err != nil {
		return emptyResult(payments, err.Error())
	}

	cfg := bankformat.Detect(rows[0])

	txns, errs := extract.Extract(rows, cfg)
	if len(txns) == 0 {
		res := emptyResult(payments, errs...)
		res.BankFormat = cfg.Name
		return res
	}

	assigned := match.Assign(txns, payments)

	total := decimal.Zero
	for _, m := range assigned.Matches {
		total = total.Add(m.Transaction.Amount)
	}

	return model.ProcessResult{
		Transactions:          txns,
		Matches:               assigned.Matches,
		UnmatchedTransactions: assigned.UnmatchedTransactions,
		UnmatchedPayments:     assigned.UnmatchedPayments,
		Errors:                errs,
		BankFormat:            cfg.Name,
		Summary: model.Summary{
			TotalTransactions:  len(txns),
			MatchedCount:       len(assigned.Matches),
			TotalMatchedAmount: total,
		},
	}
}

func emptyResult(payments []model.PendingPayment, errs ...string) model.ProcessResult {
	return model.ProcessResult{
		UnmatchedPayments: payments,
		Errors:            errs,
		Summary:           model.Summary{TotalMatchedAmount: decimal.Zero},
	}
}
