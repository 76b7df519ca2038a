package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/client"
	"github.com/thenoetrevino/orderbook/internal/cli/export"
	"github.com/thenoetrevino/orderbook/internal/cli/item"
	"github.com/thenoetrevino/orderbook/internal/cli/order"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	"github.com/thenoetrevino/orderbook/internal/config"
	"github.com/thenoetrevino/orderbook/internal/logging"
)

var (
	sourceFile string
	configFile string

	logCloser io.Closer
)

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orderbook",
		Short: "Orderbook - query and edit a client order book",
		Long: `Orderbook reads clients, catalog items and purchase records from an Excel
workbook (or a SQLite sheet store), answers questions about them and saves
contact changes back to the same file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&sourceFile, "file", "f", "", "Order book to load (overrides config and "+config.EnvSource+")")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/orderbook/config.yaml)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(item.ItemCmd())
	rootCmd.AddCommand(order.OrderCmd())
	rootCmd.AddCommand(client.ClientCmd())
	rootCmd.AddCommand(export.ExportCmd())

	return rootCmd
}

// setup loads config, logging and the book before any subcommand runs.
// A CLI already present in the context is reused.
func setup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cfg, err := config.Load(configFile)
	if err != nil {
		return cli.ReportError(formatter, "CONFIG_ERROR", err)
	}

	level, _ := cfg.Log.SlogLevel()
	if logCloser, err = logging.Init(cfg.Log.File, level); err != nil {
		// Logging is best effort; the command still runs.
		logCloser = nil
		formatter.Warn(fmt.Sprintf("logging disabled: %v", err))
	}

	styles.Init(cfg.Theme)

	cliInstance, err := cli.NewCLI(ctx, cfg, sourceFile)
	if err != nil {
		if errors.Is(err, cli.ErrNoSource) {
			return cli.ReportErrorWithSuggestion(formatter, "NO_SOURCE", err,
				"pass --file PATH, set "+config.EnvSource+" or add 'source:' to the config file")
		}
		return cli.ReportError(formatter, "LOAD_ERROR", err)
	}

	cmd.SetContext(cli.WithCLI(ctx, cliInstance))
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:])
}

func run(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}

	if err == nil {
		return cli.ExitSuccess
	}

	// Cobra validates required flags before any hook runs.
	if strings.HasPrefix(err.Error(), "required flag") {
		err = &cli.UsageError{Err: err}
	}
	if !cli.IsReported(err) {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	}
	return cli.ExitCodeFor(err)
}
