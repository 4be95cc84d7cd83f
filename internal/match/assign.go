package match

import (
	"sort"

	"github.com/clearpay-dev/clearpay/internal/model"
)

// passOneThreshold is the minimum score for a high-confidence commit in the
// first pass. The second pass takes any amount-exact candidate (score > 0).
const passOneThreshold = 40

// Result is the outcome of one assignment run: committed matches plus the
// transactions and payments left over, each in input order.
type Result struct {
	Matches               []model.TransactionMatch // sorted by Score descending
	UnmatchedTransactions []model.RawTransaction
	UnmatchedPayments     []model.PendingPayment
}

// Assign pairs transactions with pending payments using a two-pass greedy
// walk in transaction input order. Pass one commits pairs scoring at or
// above the confidence threshold; pass two mops up remaining transactions
// against any payment with a positive score. Each transaction index and
// each payment id is consumed at most once. Ties on score go to the first
// payment seen, preserving payment input order.
//
// This is deliberately greedy and order-dependent rather than an optimal
// bipartite assignment; reordering the inputs can change the outcome.
func Assign(txns []model.RawTransaction, payments []model.PendingPayment) Result {
	usedTxn := make(map[int]bool, len(txns))
	usedPay := make(map[string]bool, len(payments))

	var matches []model.TransactionMatch

	for _, minScore := range []int{passOneThreshold, 1} {
		for i, t := range txns {
			if usedTxn[i] {
				continue
			}
			bestScore := -1
			bestIdx := -1
			var bestReasons []string
			for j, p := range payments {
				if usedPay[p.ID] {
					continue
				}
				score, reasons := Score(t, p)
				if score > bestScore {
					bestScore = score
					bestIdx = j
					bestReasons = reasons
				}
			}
			if bestIdx >= 0 && bestScore >= minScore {
				matches = append(matches, model.TransactionMatch{
					Transaction: t,
					Payment:     payments[bestIdx],
					Score:       bestScore,
					Reasons:     bestReasons,
				})
				usedTxn[i] = true
				usedPay[payments[bestIdx].ID] = true
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	res := Result{Matches: matches}
	for i, t := range txns {
		if !usedTxn[i] {
			res.UnmatchedTransactions = append(res.UnmatchedTransactions, t)
		}
	}
	for _, p := range payments {
		if !usedPay[p.ID] {
			res.UnmatchedPayments = append(res.UnmatchedPayments, p)
		}
	}
	return res
}
