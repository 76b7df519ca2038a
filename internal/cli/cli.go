package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/thenoetrevino/orderbook/internal/app"
	"github.com/thenoetrevino/orderbook/internal/config"
	"github.com/thenoetrevino/orderbook/internal/logging"
)

// ErrNoSource is returned when neither --file, ORDERBOOK_SOURCE nor the
// config file names a book.
var ErrNoSource = errors.New("no order book configured")

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
}

// NewCLI loads the book named by source, falling back to cfg.Source
func NewCLI(ctx context.Context, cfg *config.Config, source string) (*CLI, error) {
	source = ResolveSource(source, cfg)
	if source == "" {
		return nil, ErrNoSource
	}

	application, err := app.Load(ctx, source, cfg, app.WithLogger(logging.Logger))
	if err != nil {
		return nil, err
	}

	return New(ctx, application, cfg), nil
}

// New wraps an already built App
func New(ctx context.Context, application *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: application, Config: cfg, ctx: ctx}
}

// ResolveSource returns the flag value when set, otherwise the configured source.
func ResolveSource(flag string, cfg *config.Config) string {
	if flag = strings.TrimSpace(flag); flag != "" {
		return flag
	}
	if cfg == nil {
		return ""
	}
	return strings.TrimSpace(cfg.Source)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
