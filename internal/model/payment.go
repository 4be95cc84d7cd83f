package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingPayment is an outstanding loan repayment awaiting settlement.
// Supplied by the caller's data layer; read-only to the engine.
type PendingPayment struct {
	ID           string
	Amount       decimal.Decimal
	Reference    string // optional bank transfer reference the borrower was asked to use
	UserFullName string
	LoanID       string
	DueDate      *time.Time
}
