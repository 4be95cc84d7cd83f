// Package payments loads pending-payment lists for the CLI. The engine
// itself takes payments as values; these loaders exist so the command line
// can feed it from the files the loan platform exports.
package payments

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/clearpay-dev/clearpay/internal/model"
)

// Load reads a pending-payments file, choosing the codec by extension:
// .yaml/.yml or .csv.
func Load(path string) ([]model.PendingPayment, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening payments file: %w", err)
		}
		defer f.Close()
		return ReadCSV(f)
	default:
		return nil, fmt.Errorf("unsupported payments file extension %q", filepath.Ext(path))
	}
}

// paymentsFile is the YAML document shape.
type paymentsFile struct {
	Payments []paymentYAML `yaml:"payments"`
}

type paymentYAML struct {
	ID           string `yaml:"id"`
	Amount       string `yaml:"amount"`
	Reference    string `yaml:"reference,omitempty"`
	UserFullName string `yaml:"user_full_name"`
	LoanID       string `yaml:"loan_id"`
	DueDate      string `yaml:"due_date,omitempty"` // YYYY-MM-DD
}

func loadYAML(path string) ([]model.PendingPayment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading payments file: %w", err)
	}

	var doc paymentsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing payments file: %w", err)
	}

	out := make([]model.PendingPayment, 0, len(doc.Payments))
	for i, y := range doc.Payments {
		p, err := y.toModel()
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", i+1, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (y paymentYAML) toModel() (model.PendingPayment, error) {
	amount, err := decimal.NewFromString(y.Amount)
	if err != nil {
		return model.PendingPayment{}, fmt.Errorf("parsing amount %q: %w", y.Amount, err)
	}

	p := model.PendingPayment{
		ID:           y.ID,
		Amount:       amount,
		Reference:    y.Reference,
		UserFullName: y.UserFullName,
		LoanID:       y.LoanID,
	}

	if y.DueDate != "" {
		due, err := time.Parse(dueDateFormat, y.DueDate)
		if err != nil {
			return model.PendingPayment{}, fmt.Errorf("parsing due_date %q: %w", y.DueDate, err)
		}
		p.DueDate = &due
	}
	return p, nil
}
