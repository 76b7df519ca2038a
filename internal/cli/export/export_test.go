package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/app"
	"github.com/thenoetrevino/orderbook/internal/testutil"
	"github.com/thenoetrevino/orderbook/internal/testutil/cli"
	"github.com/thenoetrevino/orderbook/internal/workbook"
)

func TestExport_Positive(t *testing.T) {
	tests := []struct {
		source string
		target string
		driver string
	}{
		{"orders.xlsx", "orders.db", "sqlite"},
		{"orders.db", "backup.xlsx", "xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.source+" to "+tt.target, func(t *testing.T) {
			c, _ := cli.SetupCLITestWithFile(t, tt.source)
			target := filepath.Join(t.TempDir(), tt.target)

			output, err := cli.ExecuteCLICommand(t, c, ExportCmd(), []string{"--to", target, "--json"})

			require.NoError(t, err)
			data := testutil.ParseJSON(t, output)["data"].(map[string]any)
			assert.Equal(t, target, data["target"])
			assert.Equal(t, tt.driver, data["driver"])

			exported := cli.LoadCLITest(t, target)
			assert.Equal(t, c.App.ClientService.ListClients(), exported.App.ClientService.ListClients())
			assert.Equal(t, c.App.Store().Records(), exported.App.Store().Records())
		})
	}
}

func TestExport_Human(t *testing.T) {
	c, _ := cli.SetupCLITest(t)
	target := filepath.Join(t.TempDir(), "copy.xlsx")

	output, err := cli.ExecuteCLICommand(t, c, ExportCmd(), []string{"--to", target})

	require.NoError(t, err)
	assert.Contains(t, output, "Exported")
	assert.Contains(t, output, "(xlsx)")
}

func TestExport_Negative(t *testing.T) {
	c, _ := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, c, ExportCmd(), []string{"--to", "orders.csv", "--json"})
	assert.ErrorIs(t, err, workbook.ErrUnsupportedFormat)

	_, err = cli.ExecuteCLICommand(t, c, ExportCmd(), []string{"--to", "fixture.xlsx", "--json"})
	assert.ErrorIs(t, err, app.ErrSameLocation)

	_, err = cli.ExecuteCLICommand(t, c, ExportCmd(), nil)
	assert.Error(t, err)
}
