package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-importer/internal/api"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement conversion HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := api.NewApp()
			fmt.Printf("Listening on %s\n", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
