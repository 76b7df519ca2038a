package item

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all catalog items",
		Long: `List all catalog items with unit and price.

Prices that could not be read from the book are shown as 0 and highlighted.`,
		RunE: runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (codes only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	items := cliInstance.App.CatalogService.ListItems()
	warnings := cliInstance.App.CatalogService.Warnings()

	if quietMode {
		for _, item := range items {
			fmt.Printf("%d\n", item.Code)
		}
		return nil
	}

	if jsonOutput {
		return formatter.List("items", items)
	}

	// Human-readable output
	if len(items) == 0 {
		fmt.Println("No items found")
		return nil
	}

	section := cliInstance.App.Store().Sections().Items
	fallback := make(map[int]bool, len(warnings))
	for _, w := range warnings {
		if w.Section == section {
			fallback[w.Code] = true
		}
	}

	rows := make([][]string, len(items))
	highlight := make(map[int]bool)
	for i, item := range items {
		rows[i] = []string{
			strconv.Itoa(item.Code),
			item.Name,
			item.Unit,
			cli.FormatPrice(item.UnitPrice, cliInstance.Config.Currency),
		}
		highlight[i] = fallback[item.Code]
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Found %d items:", len(items))))
	fmt.Println(styles.RenderTable([]string{"Code", "Name", "Unit", "Price"}, rows, highlight))

	for _, w := range warnings {
		formatter.Warn(fmt.Sprintf("row %d of %s: price %q could not be read, using 0", w.Row, w.Section, w.Raw))
	}

	return nil
}
