// Package client holds all cli commands related to client organizations
//
// e.g., orderbook client ...
package client

import (
	"github.com/spf13/cobra"
)

// ClientCmd returns the client parent command
func ClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage client organizations",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SetContactCmd())
	cmd.AddCommand(GoldenCmd())

	return cmd
}
