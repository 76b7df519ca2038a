package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/app"
	"github.com/thenoetrevino/orderbook/internal/config"
	"github.com/thenoetrevino/orderbook/internal/testutil"
)

func TestGetCLIFromContext(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)

	cfg := config.Default()
	a, err := app.Load(context.Background(), "fixture.xlsx", cfg,
		app.WithLogger(slog.New(slog.DiscardHandler)),
		app.WithOpener(testutil.MemoryOpener(testutil.FixtureBook())))
	require.NoError(t, err)
	c := New(context.Background(), a, cfg)

	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.NoError(t, got.Close())
}

func TestResolveSource(t *testing.T) {
	cfg := &config.Config{Source: " from-config.xlsx "}

	assert.Equal(t, "flag.db", ResolveSource(" flag.db", cfg))
	assert.Equal(t, "from-config.xlsx", ResolveSource("", cfg))
	assert.Empty(t, ResolveSource("", nil))
}

func TestNewCLI(t *testing.T) {
	ctx := context.Background()

	_, err := NewCLI(ctx, config.Default(), "")
	assert.ErrorIs(t, err, ErrNoSource)

	_, err = NewCLI(ctx, config.Default(), filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Equal(t, ExitDataErr, ExitCodeFor(err))

	path := testutil.WriteBook(t, testutil.FixtureBook(), "orders.xlsx")
	c, err := NewCLI(ctx, config.Default(), path)
	require.NoError(t, err)
	assert.Len(t, c.App.ClientService.ListClients(), 3)
}
