// Package order holds all cli commands related to purchase records
//
// e.g., orderbook order ...
package order

import (
	"github.com/spf13/cobra"
)

// OrderCmd returns the order parent command
func OrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Query purchase records",
	}

	cmd.AddCommand(SearchCmd())

	return cmd
}
