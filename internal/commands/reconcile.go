package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/clearpay-dev/clearpay/internal/config"
	"github.com/clearpay-dev/clearpay/internal/model"
	"github.com/clearpay-dev/clearpay/internal/payments"
	"github.com/clearpay-dev/clearpay/internal/recon"
	"github.com/clearpay-dev/clearpay/internal/runlog"
)

func newReconcileCommand() *cobra.Command {
	var paymentsPath string
	var asJSON bool
	var noLog bool

	cmd := &cobra.Command{
		Use:   "reconcile <statement.csv>",
		Short: "Match a bank statement export against pending repayments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if paymentsPath == "" {
				if cfg, err := config.Load(config.FileName); err == nil {
					paymentsPath = cfg.PaymentsFile
				}
			}
			if paymentsPath == "" {
				return fmt.Errorf("no payments file: pass --payments or run in a workspace with %s", config.FileName)
			}
			return runReconcile(cmd, args[0], paymentsPath, asJSON, noLog)
		},
	}

	cmd.Flags().StringVar(&paymentsPath, "payments", "", "pending payments file (.yaml or .csv)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "skip appending to the run log")

	return cmd
}

func runReconcile(cmd *cobra.Command, statementPath, paymentsPath string, asJSON, noLog bool) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{ReportTimestamp: false})

	data, err := os.ReadFile(statementPath)
	if err != nil {
		return fmt.Errorf("reading statement: %w", err)
	}

	pending, err := payments.Load(paymentsPath)
	if err != nil {
		return fmt.Errorf("loading payments: %w", err)
	}
	logger.Info("loaded pending payments", "file", paymentsPath, "count", len(pending))

	res := recon.Process(string(data), pending)
	logger.Info("processed statement",
		"file", statementPath,
		"format", res.BankFormat,
		"transactions", res.Summary.TotalTransactions,
		"matches", res.Summary.MatchedCount,
		"errors", len(res.Errors))

	if !noLog {
		entry := runlog.Entry{
			RunID:         uuid.New(),
			Timestamp:     time.Now().UTC(),
			StatementFile: statementPath,
			BankFormat:    res.BankFormat,
			Transactions:  res.Summary.TotalTransactions,
			Matches:       res.Summary.MatchedCount,
			MatchedAmount: res.Summary.TotalMatchedAmount,
			Errors:        len(res.Errors),
		}
		if err := runlog.Append(".", []runlog.Entry{entry}); err != nil {
			logger.Warn("could not append run log", "err", err)
		}
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	renderResult(cmd.OutOrStdout(), res)
	return nil
}

// renderResult prints the reconciliation report as plain text.
func renderResult(w io.Writer, res model.ProcessResult) {
	fmt.Fprintf(w, "Bank format: %s\n", res.BankFormat)
	fmt.Fprintf(w, "Transactions: %d  Matched: %d  Matched amount: %s\n\n",
		res.Summary.TotalTransactions, res.Summary.MatchedCount, res.Summary.TotalMatchedAmount.StringFixed(2))

	if len(res.Matches) > 0 {
		fmt.Fprintln(w, "Matches:")
		for _, m := range res.Matches {
			fmt.Fprintf(w, "  [%3d] %s  %s -> payment %s (%s)\n",
				m.Score, m.Transaction.Amount.StringFixed(2), m.Transaction.RefCode, m.Payment.ID, m.Payment.UserFullName)
			fmt.Fprintf(w, "        %s\n", strings.Join(m.Reasons, "; "))
		}
		fmt.Fprintln(w)
	}

	if len(res.UnmatchedTransactions) > 0 {
		fmt.Fprintln(w, "Unmatched transactions:")
		for _, t := range res.UnmatchedTransactions {
			fmt.Fprintf(w, "  %s  %s  %s\n", t.Amount.StringFixed(2), t.RefCode, t.Beneficiary)
		}
		fmt.Fprintln(w)
	}

	if len(res.UnmatchedPayments) > 0 {
		fmt.Fprintln(w, "Outstanding payments:")
		for _, p := range res.UnmatchedPayments {
			fmt.Fprintf(w, "  %s  %s  %s\n", p.Amount.StringFixed(2), p.ID, p.UserFullName)
		}
		fmt.Fprintln(w)
	}

	if len(res.Errors) > 0 {
		fmt.Fprintln(w, "Processing errors:")
		for _, e := range res.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}
}
