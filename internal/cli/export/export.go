// Package export holds the command that copies the loaded book into
// another file, possibly of another format
//
// e.g., orderbook export --to orders.db
package export

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/app"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	"github.com/thenoetrevino/orderbook/internal/workbook"
)

// Result describes a finished export
type Result struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Driver string `json:"driver"`
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the order book into another file",
		Long: `Copy every section of the loaded book, headers included, into a new file.
The target format follows its extension: .xlsx/.xlsm for a workbook,
.db/.sqlite/.sqlite3 for a SQLite sheet store. An existing target is overwritten.

Examples:
  orderbook --file orders.xlsx export --to orders.db
  orderbook --file orders.db export --to backup.xlsx --json
`,
		RunE: runExport,
	}

	// Required flags
	cmd.Flags().String("to", "", "Target file (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	target, _ := cmd.Flags().GetString("to")
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

	driver, err := workbook.DriverFor(target)
	if err != nil {
		return cli.ReportErrorWithSuggestion(formatter, "UNSUPPORTED_FORMAT", err,
			"use a .xlsx or .db target")
	}

	if err := cliInstance.App.Export(ctx, target); err != nil {
		if errors.Is(err, app.ErrSameLocation) {
			return cli.ReportError(formatter, "SAME_LOCATION", err)
		}
		return cli.ReportError(formatter, "EXPORT_ERROR", err)
	}

	result := Result{
		Source: cliInstance.App.Store().Location(),
		Target: target,
		Driver: string(driver),
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return formatter.Success(result)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Exported"))
	fmt.Println(styles.RenderField("From", result.Source))
	fmt.Println(styles.RenderField("To", fmt.Sprintf("%s (%s)", result.Target, result.Driver)))
	return nil
}
