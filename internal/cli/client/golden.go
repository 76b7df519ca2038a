package client

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	clientservice "github.com/thenoetrevino/orderbook/internal/services/client"
)

// GoldenCmd returns the client golden subcommand
func GoldenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "golden",
		Short: "Find the client with the most orders in a period",
		Long: `Find the "golden client": the organization with the most purchase records
in the given month, or in the whole year when --month is omitted.
Ties go to the lower client code.

Examples:
  orderbook client golden --year 2023 --month 5
  orderbook client golden --year 2023 --month may --json
  orderbook client golden --year 2023 --top 5    # ranking of the top five
`,
		RunE: runGolden,
	}

	// Required flags
	cmd.Flags().Int("year", 0, "Year, e.g. 2023 (required)")
	if err := cmd.MarkFlagRequired("year"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("month", "", "Month as 1-12 or a name; omit for the whole year")
	cmd.Flags().Int("top", 0, "Also show the ranking of the N most active clients")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (code only)")

	return cmd
}

func runGolden(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	monthFlag, _ := cmd.Flags().GetString("month")
	top, _ := cmd.Flags().GetInt("top")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	month, err := cli.ParseMonth(monthFlag)
	if err != nil {
		return cli.ReportError(formatter, "INVALID_MONTH", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	req := clientservice.GoldenClientRequest{Year: year, Month: month}
	golden, err := cliInstance.App.ClientService.GoldenClient(req)
	switch {
	case errors.Is(err, clientservice.ErrInvalidYear), errors.Is(err, clientservice.ErrInvalidMonth):
		return cli.ReportError(formatter, "INVALID_PERIOD", err)
	case errors.Is(err, clientservice.ErrNoActivity):
		return cli.ReportError(formatter, "NO_ACTIVITY", err)
	case err != nil:
		return cli.ReportError(formatter, "GOLDEN_CLIENT_ERROR", err)
	}

	var ranking []clientservice.RankedClient
	if top > 0 {
		if ranking, err = cliInstance.App.ClientService.Ranking(req, top); err != nil {
			return cli.ReportError(formatter, "RANKING_ERROR", err)
		}
	}

	if quietMode {
		fmt.Printf("%d\n", golden.Organization.Code)
		return nil
	}

	if jsonOutput {
		data := map[string]any{"golden": golden}
		if ranking != nil {
			data["ranking"] = ranking
		}
		return formatter.Success(data)
	}

	// Human-readable output
	fmt.Println(styles.RenderCard(strings.Join([]string{
		styles.TitleStyle.Render("Golden client of " + golden.Period),
		styles.RenderField("Organization", golden.Organization.Name),
		styles.RenderField("Contact person", golden.Organization.ContactPerson),
		styles.RenderField("Orders", strconv.Itoa(golden.Orders)),
	}, "\n")))

	if len(ranking) > 0 {
		rows := make([][]string, len(ranking))
		unknown := make(map[int]bool)
		for i, r := range ranking {
			rows[i] = []string{strconv.Itoa(r.Rank), strconv.Itoa(r.OrgCode), r.Name, strconv.Itoa(r.Orders)}
			unknown[i] = !r.Known
		}
		fmt.Println(styles.RenderTable([]string{"#", "Code", "Organization", "Orders"}, rows, unknown))
	}

	return nil
}
