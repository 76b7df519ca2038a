package item

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	catalogservice "github.com/thenoetrevino/orderbook/internal/services/catalog"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one catalog item",
		Long: `Show a catalog item found by its exact name (case-insensitive).

Examples:
  orderbook item show --name Widget
  orderbook item show --name widget --json
`,
		RunE: runShow,
	}

	// Required flags
	cmd.Flags().String("name", "", "Item name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (code only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
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

	item, err := cliInstance.App.CatalogService.Lookup(name)
	if err != nil {
		switch err {
		case catalogservice.ErrEmptyItemName:
			return cli.ReportError(formatter, "INVALID_NAME", err)
		case catalogservice.ErrItemNotFound:
			return cli.ReportErrorWithSuggestion(formatter, "ITEM_NOT_FOUND",
				fmt.Errorf("%w: %s", err, strings.TrimSpace(name)),
				"use 'orderbook item list' to see all items")
		default:
			return cli.ReportError(formatter, "ITEM_FETCH_ERROR", err)
		}
	}

	if !quietMode && !jsonOutput {
		fmt.Println(styles.RenderCard(strings.Join([]string{
			styles.TitleStyle.Render(item.Name),
			styles.RenderField("Code", strconv.Itoa(item.Code)),
			styles.RenderField("Unit", item.Unit),
			styles.RenderField("Price", cli.FormatPrice(item.UnitPrice, cliInstance.Config.Currency)),
		}, "\n")))
		return nil
	}

	return formatter.Success(item)
}
