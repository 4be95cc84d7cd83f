package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpay-dev/clearpay/internal/model"
)

func TestAssignHighConfidenceFirstPass(t *testing.T) {
	txns := []model.RawTransaction{
		{RefCode: "LOAN-A", Beneficiary: "Jane Tan", Amount: dec("500.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-a", Reference: "LOAN-A", Amount: dec("500.00"), UserFullName: "Jane Tan"},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "pay-a", res.Matches[0].Payment.ID)
	assert.GreaterOrEqual(t, res.Matches[0].Score, passOneThreshold)
	assert.Empty(t, res.UnmatchedTransactions)
	assert.Empty(t, res.UnmatchedPayments)
}

func TestAssignAmountOnlySecondPass(t *testing.T) {
	// Unrelated reference and name: score 36 fails pass one but the exact
	// amount still pairs them in the mop-up pass.
	txns := []model.RawTransaction{
		{RefCode: "XYZ-999", Beneficiary: "Somebody Else", Amount: dec("500.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-a", Reference: "ABC-111", Amount: dec("500.00"), UserFullName: "Jane Tan"},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, 36, res.Matches[0].Score)
}

func TestAssignAmountGateNeverMatches(t *testing.T) {
	txns := []model.RawTransaction{
		{RefCode: "LOAN-A", Beneficiary: "Jane Tan", Amount: dec("500.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-a", Reference: "LOAN-A", Amount: dec("499.99"), UserFullName: "Jane Tan"},
	}

	res := Assign(txns, payments)
	assert.Empty(t, res.Matches)
	assert.Len(t, res.UnmatchedTransactions, 1)
	assert.Len(t, res.UnmatchedPayments, 1)
}

func TestAssignEachSideConsumedOnce(t *testing.T) {
	// Two identical transactions compete for one payment; the first in
	// input order wins and the second stays unmatched.
	txns := []model.RawTransaction{
		{RefCode: "LOAN-A", Amount: dec("100.00")},
		{RefCode: "LOAN-A", Amount: dec("100.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-a", Reference: "LOAN-A", Amount: dec("100.00")},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 1)
	require.Len(t, res.UnmatchedTransactions, 1)

	seen := map[string]int{}
	for _, m := range res.Matches {
		seen[m.Payment.ID]++
	}
	assert.Equal(t, 1, seen["pay-a"])
}

func TestAssignTieBreakFirstPaymentWins(t *testing.T) {
	txns := []model.RawTransaction{
		{RefCode: "LOAN-A", Amount: dec("100.00")},
	}
	// Both payments score identically; the earlier one must win.
	payments := []model.PendingPayment{
		{ID: "pay-1", Reference: "LOAN-A", Amount: dec("100.00")},
		{ID: "pay-2", Reference: "LOAN-A", Amount: dec("100.00")},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "pay-1", res.Matches[0].Payment.ID)
	require.Len(t, res.UnmatchedPayments, 1)
	assert.Equal(t, "pay-2", res.UnmatchedPayments[0].ID)
}

func TestAssignGreedyOrderDependence(t *testing.T) {
	// The first transaction claims its best payment even when a later
	// transaction would have scored higher against it. This greedy
	// behavior is intentional and must not be "fixed".
	txns := []model.RawTransaction{
		{RefCode: "PAY LOAN-A", Amount: dec("100.00")},
		{RefCode: "LOAN-A", Beneficiary: "x", Amount: dec("100.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-a", Reference: "LOAN-A", Amount: dec("100.00")},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "PAY LOAN-A", res.Matches[0].Transaction.RefCode)
	require.Len(t, res.UnmatchedTransactions, 1)
	assert.Equal(t, "LOAN-A", res.UnmatchedTransactions[0].RefCode)
}

func TestAssignSortedByScoreDescending(t *testing.T) {
	txns := []model.RawTransaction{
		{RefCode: "NOISE-1", Amount: dec("10.00")},
		{RefCode: "LOAN-B", Beneficiary: "Ahmad Faiz", Amount: dec("20.00")},
	}
	payments := []model.PendingPayment{
		{ID: "pay-1", Reference: "ZZZ", Amount: dec("10.00")},
		{ID: "pay-2", Reference: "LOAN-B", Amount: dec("20.00"), UserFullName: "Ahmad Faiz"},
	}

	res := Assign(txns, payments)
	require.Len(t, res.Matches, 2)
	for i := 1; i < len(res.Matches); i++ {
		assert.GreaterOrEqual(t, res.Matches[i-1].Score, res.Matches[i].Score)
	}
	assert.Equal(t, "pay-2", res.Matches[0].Payment.ID)
}

func TestAssignEmptyInputs(t *testing.T) {
	res := Assign(nil, nil)
	assert.Empty(t, res.Matches)

	res = Assign(nil, []model.PendingPayment{{ID: "p", Amount: dec("1.00")}})
	require.Len(t, res.UnmatchedPayments, 1)
}
