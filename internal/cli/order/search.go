package order

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	orderservice "github.com/thenoetrevino/orderbook/internal/services/order"
)

// SearchCmd returns the order search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List the clients who ordered an item",
		Long: `List every purchase record of an item together with the ordering client.

The item is matched by its exact name, ignoring case and surrounding spaces.

Examples:
  orderbook order search --item Widget
  orderbook order search --item "widget" --json
  orderbook order search --item Widget --quiet   # record ids only
`,
		RunE: runSearch,
	}

	// Required flags
	cmd.Flags().String("item", "", "Item name (required)")
	if err := cmd.MarkFlagRequired("item"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (record ids only)")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	itemName, _ := cmd.Flags().GetString("item")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	result, err := cliInstance.App.OrderService.SearchByItemName(itemName)
	switch {
	case errors.Is(err, orderservice.ErrEmptyItemName):
		return cli.ReportError(formatter, "INVALID_ITEM_NAME", err)
	case errors.Is(err, orderservice.ErrItemNotFound):
		return cli.ReportErrorWithSuggestion(formatter, "ITEM_NOT_FOUND", err,
			"use 'orderbook item list' to see all items")
	case err != nil:
		return cli.ReportError(formatter, "ORDER_SEARCH_ERROR", err)
	}

	if quietMode {
		for _, line := range result.Lines {
			fmt.Printf("%d\n", line.RecordID)
		}
		return nil
	}

	if jsonOutput {
		return formatter.List("result", result)
	}

	// Human-readable output
	if len(result.Lines) == 0 {
		fmt.Printf("No orders for %s\n", result.ItemName)
		return nil
	}

	currency := cliInstance.Config.Currency
	rows := make([][]string, len(result.Lines))
	unknown := make(map[int]bool)
	for i, line := range result.Lines {
		rows[i] = []string{
			strconv.Itoa(line.OrgCode),
			line.Organization,
			strconv.Itoa(line.Quantity),
			cli.FormatPrice(line.UnitPrice, currency),
			cli.FormatDate(line.OrderedOn),
		}
		if _, ok := cliInstance.App.Store().OrganizationByCode(line.OrgCode); !ok {
			unknown[i] = true
		}
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%s: %d orders", result.ItemName, len(result.Lines))))
	fmt.Println(styles.RenderTable(
		[]string{"Client code", "Organization", "Quantity", "Unit price", "Order date"},
		rows, unknown))

	return nil
}
