package cli

import (
	"context"
	"log/slog"
	"testing"

	"github.com/thenoetrevino/orderbook/internal/app"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/config"
	"github.com/thenoetrevino/orderbook/internal/testutil"
	"github.com/thenoetrevino/orderbook/internal/workbook"
	"github.com/thenoetrevino/orderbook/internal/workbook/memory"
)

// SetupCLITest loads the fixture book into memory and returns the CLI built
// over it together with the book, so tests can inspect what was saved.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when store tests import testutil
func SetupCLITest(t *testing.T) (*cli.CLI, *memory.Book) {
	t.Helper()
	book := testutil.FixtureBook()
	return SetupCLITestWithBook(t, book), book
}

// SetupCLITestWithBook builds the CLI over an existing memory book
func SetupCLITestWithBook(t *testing.T, book *memory.Book) *cli.CLI {
	t.Helper()
	return SetupCLITestWithOpener(t, testutil.MemoryOpener(book))
}

// SetupCLITestWithOpener builds the CLI over whatever open returns, for
// tests that need a failing or instrumented book
func SetupCLITestWithOpener(t *testing.T, open workbook.Opener) *cli.CLI {
	t.Helper()
	cfg := config.Default()

	application, err := app.Load(context.Background(), "fixture.xlsx", cfg,
		app.WithLogger(slog.New(slog.DiscardHandler)), app.WithOpener(open))
	if err != nil {
		t.Fatalf("Failed to load fixture book: %v", err)
	}

	return cli.New(context.Background(), application, cfg)
}

// SetupCLITestWithFile writes the fixture book to a temp file named name
// (its extension picks the backend) and loads the CLI from it
func SetupCLITestWithFile(t *testing.T, name string) (*cli.CLI, string) {
	t.Helper()
	path := testutil.WriteBook(t, testutil.FixtureBook(), name)
	return LoadCLITest(t, path), path
}

// LoadCLITest loads the CLI from a book on disk
func LoadCLITest(t *testing.T, path string) *cli.CLI {
	t.Helper()

	c, err := cli.NewCLI(context.Background(), config.Default(), path)
	if err != nil {
		t.Fatalf("Failed to load %s: %v", path, err)
	}
	return c
}
