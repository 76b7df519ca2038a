package client

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
)

// ListCmd returns the client list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all client organizations",
		RunE:  runList,
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

	clients := cliInstance.App.ClientService.ListClients()

	if quietMode {
		for _, c := range clients {
			fmt.Printf("%d\n", c.Code)
		}
		return nil
	}

	if jsonOutput {
		return formatter.List("clients", clients)
	}

	if len(clients) == 0 {
		fmt.Println("No clients found")
		return nil
	}

	rows := make([][]string, len(clients))
	for i, c := range clients {
		rows[i] = []string{strconv.Itoa(c.Code), c.Name, c.Address, c.ContactPerson}
	}

	fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("Found %d clients:", len(clients))))
	fmt.Println(styles.RenderTable([]string{"Code", "Organization", "Address", "Contact person"}, rows, nil))

	return nil
}
