package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test CLI instance
// This injects the CLI through the context so commands find it with
// cli.GetCLIFromContext
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), c, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test CLI
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("CLI cannot be nil - SetupCLITest must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)

	ctxWithCLI := cli.WithCLI(ctx, c)

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithCLI)
	})

	return output, executeErr
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandWithStderr(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	var (
		stdout string
		err    error
	)
	stderr := testutil.CaptureStderr(t, func() {
		stdout, err = ExecuteCLICommand(t, c, cmd, args)
	})
	return stdout, stderr, err
}
