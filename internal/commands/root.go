// Package commands wires the CLI surface: convert statements, reconcile
// against a ledger export, or serve the HTTP API.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-importer/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "statement-importer",
		Short:   "Convert Indian bank and wallet statements into transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newReconcileCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
