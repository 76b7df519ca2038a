package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/config"
	"github.com/thenoetrevino/orderbook/internal/testutil"
)

// isolate keeps config and logs inside temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv(config.EnvSource, "")
	t.Setenv(config.EnvThemeFile, "")
	t.Cleanup(func() {
		sourceFile = ""
		configFile = ""
	})
	return home
}

func execute(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var code int
	var stdout string
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			code = run(NewRootCmd(), args)
		})
	})
	return stdout, stderr, code
}

func TestRoot_Subcommands(t *testing.T) {
	names := []string{}
	for _, c := range NewRootCmd().Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"item", "order", "client", "export"})
}

func TestRoot_EndToEnd(t *testing.T) {
	home := isolate(t)
	path := testutil.WriteBook(t, testutil.FixtureBook(), "orders.xlsx")

	stdout, _, code := execute(t, "--file", path, "order", "search", "--item", "widget", "--quiet")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, []string{"100", "101", "103", "106"}, strings.Fields(stdout))

	_, _, code = execute(t, "--file", path, "client", "set-contact", "--org", "Globex", "--contact", "Hank Scorpio")
	require.Equal(t, cli.ExitSuccess, code)

	stdout, _, code = execute(t, "--file", path, "client", "list", "--json")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Contains(t, stdout, "Hank Scorpio", "contact was saved to the workbook")

	stdout, _, code = execute(t, "-f", path, "client", "golden", "--year", "2023", "--month", "5", "--quiet")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, "1", strings.TrimSpace(stdout))

	logData, err := os.ReadFile(filepath.Join(home, ".orderbook", "logs", "orderbook.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), "order book loaded")
	assert.Contains(t, string(logData), "contact updated")
}

func TestRoot_SourceFromConfigAndEnv(t *testing.T) {
	home := isolate(t)
	path := testutil.WriteBook(t, testutil.FixtureBook(), "orders.db")

	cfg := config.Default()
	cfg.Source = path
	cfgPath := filepath.Join(home, "custom.yaml")
	require.NoError(t, cfg.Save(cfgPath))

	stdout, _, code := execute(t, "--config", cfgPath, "item", "list", "--quiet")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, []string{"10", "11", "12", "13"}, strings.Fields(stdout))

	t.Setenv(config.EnvSource, path)
	stdout, _, code = execute(t, "client", "list", "--quiet")
	require.Equal(t, cli.ExitSuccess, code)
	assert.Equal(t, []string{"1", "2", "3"}, strings.Fields(stdout))
}

func TestRoot_ExitCodes(t *testing.T) {
	isolate(t)
	path := testutil.WriteBook(t, testutil.FixtureBook(), "orders.xlsx")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no source", []string{"item", "list"}, cli.ExitUsage},
		{"missing book", []string{"--file", filepath.Join(t.TempDir(), "gone.xlsx"), "item", "list"}, cli.ExitDataErr},
		{"unknown flag", []string{"--file", path, "item", "list", "--colour"}, cli.ExitUsage},
		{"required flag", []string{"--file", path, "order", "search"}, cli.ExitUsage},
		{"item not found", []string{"--file", path, "order", "search", "--item", "nope"}, cli.ExitNotFound},
		{"bad month", []string{"--file", path, "client", "golden", "--year", "2023", "--month", "13"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, code := execute(t, tt.args...)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, 1, strings.Count(stderr, "Error:"), "printed once: %s", stderr)
		})
	}
}
