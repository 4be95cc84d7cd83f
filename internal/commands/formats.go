package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clearpay-dev/clearpay/internal/bankformat"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List known bank statement formats in detection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cfg := range bankformat.Catalog() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", cfg.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "  reference:   %s\n", strings.Join(cfg.RefPatterns, ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "  beneficiary: %s\n", strings.Join(cfg.BeneficiaryPatterns, ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "  amount:      %s\n", strings.Join(cfg.AmountPatterns, ", "))
				if len(cfg.DatePatterns) > 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "  date:        %s\n", strings.Join(cfg.DatePatterns, ", "))
				}
			}
			return nil
		},
	}
}
