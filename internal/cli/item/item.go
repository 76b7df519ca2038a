// Package item holds all cli commands related to catalog items
//
// e.g., orderbook item ...
package item

import (
	"github.com/spf13/cobra"
)

// ItemCmd returns the item parent command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Browse the catalog",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
