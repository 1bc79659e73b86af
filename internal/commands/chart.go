package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/accounts"
	"github.com/saldo-dev/saldo/internal/export"
)

func newChartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chart",
		Short: "Print the default chart of accounts as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.WriteAccounts(os.Stdout, accounts.DefaultChart())
		},
	}
}
