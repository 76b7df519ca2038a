package app

import (
	"log/slog"

	"github.com/thenoetrevino/orderbook/internal/workbook"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	open   workbook.Opener
}

// WithLogger sets the logger the store reports to
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithOpener replaces workbook.Open for load, save and export
func WithOpener(open workbook.Opener) Option {
	return func(cfg *appConfig) {
		cfg.open = open
	}
}
