// Package match scores candidate transaction/payment pairs and commits a
// greedy assignment. The scoring weights and the two-pass, order-dependent
// assignment are load-bearing compatibility surface: changing either changes
// which payments get settled, so they must not be "improved" to a globally
// optimal matching.
package match

import (
	"math"
	"strings"

	"github.com/clearpay-dev/clearpay/internal/model"
)

const (
	weightExactRef    = 50
	weightPartialRef  = 30
	weightExactAmount = 40
	weightExactName   = 20
	weightStrongName  = 15
	weightPartialName = 8

	bonusLoanInRef    = 15
	bonusDateWithin1  = 15
	bonusDateWithin7  = 10
	bonusDateWithin30 = 5

	// coreDenominator is the practical ceiling of non-bonus weight
	// (exact ref + exact amount + exact name). Bonuses can push the raw
	// score past it; the cap brings bonus-heavy pairs to exactly 100.
	coreDenominator = 110

	// loanIDPrefixLen is how much of the loan ID borrowers typically copy
	// into a transfer reference.
	loanIDPrefixLen = 8
)

// reasonAmountMismatch is the sole reason returned when the hard amount
// gate fails.
const reasonAmountMismatch = "Amount must match exactly"

// Score rates one transaction against one pending payment on a 0-100 scale,
// returning the score and the human-readable reasons behind it. Without an
// exact amount match the score is always zero.
func Score(t model.RawTransaction, p model.PendingPayment) (int, []string) {
	diff := t.Amount.Sub(p.Amount.Abs()).Abs()
	if !diff.IsZero() {
		return 0, []string{reasonAmountMismatch}
	}

	raw := 0
	var reasons []string

	if t.RefCode != "" && p.Reference != "" {
		ref := strings.ToLower(t.RefCode)
		want := strings.ToLower(p.Reference)
		switch {
		case ref == want:
			raw += weightExactRef
			reasons = append(reasons, "Exact reference match")
		case strings.Contains(ref, want) || strings.Contains(want, ref):
			raw += weightPartialRef
			reasons = append(reasons, "Partial reference match")
		}
	}

	raw += weightExactAmount
	reasons = append(reasons, "Exact amount match")

	raw, reasons = scoreBeneficiary(t.Beneficiary, p.UserFullName, raw, reasons)

	if t.RefCode != "" && p.LoanID != "" {
		prefix := p.LoanID
		if len(prefix) > loanIDPrefixLen {
			prefix = prefix[:loanIDPrefixLen]
		}
		if strings.Contains(strings.ToLower(t.RefCode), strings.ToLower(prefix)) {
			raw += bonusLoanInRef
			reasons = append(reasons, "Loan ID found in reference")
		}
	}

	if t.Date != nil && p.DueDate != nil {
		days := math.Abs(t.Date.Sub(*p.DueDate).Hours() / 24)
		switch {
		case days <= 1:
			raw += bonusDateWithin1
			reasons = append(reasons, "Transaction within 1 day of due date")
		case days <= 7:
			raw += bonusDateWithin7
			reasons = append(reasons, "Transaction within 7 days of due date")
		case days <= 30:
			raw += bonusDateWithin30
			reasons = append(reasons, "Transaction within 30 days of due date")
		}
	}

	score := int(math.Round(float64(raw) / coreDenominator * 100))
	if score > 100 {
		score = 100
	}
	return score, reasons
}

func scoreBeneficiary(beneficiary, fullName string, raw int, reasons []string) (int, []string) {
	bn := normalizeName(beneficiary)
	pn := normalizeName(fullName)
	if bn == "" || pn == "" {
		return raw, reasons
	}
	if bn == pn {
		return raw + weightExactName, append(reasons, "Exact beneficiary name match")
	}

	wordMatches := wordOverlap(strings.Fields(bn), strings.Fields(pn))
	switch {
	case wordMatches >= 2:
		return raw + weightStrongName, append(reasons, "Strong beneficiary name match")
	case wordMatches >= 1:
		return raw + weightPartialName, append(reasons, "Partial beneficiary name match")
	}
	return raw, reasons
}

// wordOverlap counts matching word pairs between two tokenized names: a
// full match is worth 1.0, substring containment either way 0.5. Words of
// two characters or fewer are ignored so particles like "bin" still count
// but initials and "de"/"el" noise do not.
func wordOverlap(a, b []string) float64 {
	var matches float64
	for _, wa := range a {
		if len(wa) <= 2 {
			continue
		}
		for _, wb := range b {
			if len(wb) <= 2 {
				continue
			}
			switch {
			case wa == wb:
				matches += 1.0
			case strings.Contains(wa, wb) || strings.Contains(wb, wa):
				matches += 0.5
			}
		}
	}
	return matches
}

// normalizeName lowercases, trims, and collapses internal whitespace.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
