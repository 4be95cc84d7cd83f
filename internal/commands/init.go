package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/clearpay-dev/clearpay/internal/config"
)

// samplePayments seeds a new workspace with a commented payments file so
// the expected schema is discoverable without reading docs.
const samplePayments = `# Pending loan repayments awaiting settlement.
# Amounts are strings to avoid YAML float truncation.
payments: []
# payments:
#   - id: pay-0001
#     amount: "500.00"
#     reference: LOAN12345678
#     user_full_name: Jane Tan
#     loan_id: loan12345678-abcd
#     due_date: 2025-07-31
`

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new clearpay workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, cmd)
		},
	}

	return cmd
}

func runInit(dir string, cmd *cobra.Command) error {
	for _, d := range []string{"statements", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}
	if err := config.Save(cfgPath, config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	paymentsPath := filepath.Join(dir, "payments.yaml")
	if _, err := os.Stat(paymentsPath); os.IsNotExist(err) {
		if err := os.WriteFile(paymentsPath, []byte(samplePayments), 0o644); err != nil {
			return fmt.Errorf("writing sample payments: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized clearpay workspace in %s\n", dir)
	return nil
}
