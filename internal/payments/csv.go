package payments

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearpay-dev/clearpay/internal/model"
)

// Header is the CSV header for a pending-payments file.
const Header = "id,amount,reference,user_full_name,loan_id,due_date"

const (
	numFields     = 6
	dueDateFormat = "2006-01-02"
	colID         = 0
	colAmount     = 1
	colReference  = 2
	colUserName   = 3
	colLoanID     = 4
	colDueDate    = 5
)

// ReadCSV reads a pending-payments CSV export.
func ReadCSV(r io.Reader) ([]model.PendingPayment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading payments CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var out []model.PendingPayment
	for i, rec := range records[1:] {
		p, err := UnmarshalPayment(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// UnmarshalPayment converts a CSV row to a PendingPayment.
func UnmarshalPayment(record []string) (model.PendingPayment, error) {
	if len(record) != numFields {
		return model.PendingPayment{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.PendingPayment{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	p := model.PendingPayment{
		ID:           record[colID],
		Amount:       amount,
		Reference:    record[colReference],
		UserFullName: record[colUserName],
		LoanID:       record[colLoanID],
	}

	if record[colDueDate] != "" {
		due, err := time.Parse(dueDateFormat, record[colDueDate])
		if err != nil {
			return model.PendingPayment{}, fmt.Errorf("parsing due_date %q: %w", record[colDueDate], err)
		}
		p.DueDate = &due
	}
	return p, nil
}

// MarshalPayment converts a PendingPayment to a CSV row.
func MarshalPayment(p model.PendingPayment) []string {
	row := make([]string, numFields)
	row[colID] = p.ID
	row[colAmount] = p.Amount.StringFixed(2)
	row[colReference] = p.Reference
	row[colUserName] = p.UserFullName
	row[colLoanID] = p.LoanID
	if p.DueDate != nil {
		row[colDueDate] = p.DueDate.Format(dueDateFormat)
	}
	return row
}
