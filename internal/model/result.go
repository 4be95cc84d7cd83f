package model

import "github.com/shopspring/decimal"

// TransactionMatch pairs one bank transaction with the pending payment it
// settles. Built only by the matching engine; never mutated after creation.
type TransactionMatch struct {
	Transaction RawTransaction
	Payment     PendingPayment
	Score       int      // 0-100
	Reasons     []string // human-readable, in scoring order
}

// Summary holds the reconciliation run totals. Matched amounts only; money
// that could not be paired stays out of the monetary total.
type Summary struct {
	TotalTransactions  int
	MatchedCount       int
	TotalMatchedAmount decimal.Decimal
}

// ProcessResult is the single output of a reconciliation run.
type ProcessResult struct {
	Transactions          []RawTransaction
	Matches               []TransactionMatch // sorted by Score descending
	UnmatchedTransactions []RawTransaction
	UnmatchedPayments     []PendingPayment
	Errors                []string // parser and extractor problems, in discovery order
	BankFormat            string
	Summary               Summary
}
