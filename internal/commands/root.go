// Package commands defines the saldo CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saldo-dev/saldo/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "saldo",
		Short:   "In-memory double-entry bookkeeping server",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newChartCommand())

	return rootCmd
}
