package cli

import (
	"context"
	"errors"
)

type cliKey struct{}

// ErrNotInitialized is returned when a command runs without a loaded CLI.
var ErrNotInitialized = errors.New("order book is not loaded")

// WithCLI returns a context carrying c
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNotInitialized
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNotInitialized
	}
	return c, nil
}
