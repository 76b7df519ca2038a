package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/thenoetrevino/orderbook/internal/config"
	catalogservice "github.com/thenoetrevino/orderbook/internal/services/catalog"
	clientservice "github.com/thenoetrevino/orderbook/internal/services/client"
	orderservice "github.com/thenoetrevino/orderbook/internal/services/order"
	"github.com/thenoetrevino/orderbook/internal/store"
	"github.com/thenoetrevino/orderbook/internal/workbook"
)

// ErrSameLocation is returned when exporting a book onto itself.
var ErrSameLocation = errors.New("export target is the loaded book")

// App holds all application services and provides dependency injection.
type App struct {
	// Data layer (loaded book)
	store *store.Store
	open  workbook.Opener

	// Service layer (business logic)
	OrderService   orderservice.Service
	ClientService  clientservice.Service
	CatalogService catalogservice.Service
}

// New creates a new App with all services initialized over s.
func New(s *store.Store, placeholders config.Placeholders) *App {
	return &App{
		store:          s,
		open:           workbook.Open,
		OrderService:   orderservice.NewService(s, orderservice.Placeholders{Client: placeholders.Client, Item: placeholders.Item}),
		ClientService:  clientservice.NewService(s, placeholders.Client),
		CatalogService: catalogservice.NewService(s),
	}
}

// Load reads the book at source using cfg and builds the App.
func Load(ctx context.Context, source string, cfg *config.Config, opts ...Option) (*App, error) {
	settings := appConfig{open: workbook.Open}
	for _, opt := range opts {
		opt(&settings)
	}

	storeOpts := cfg.StoreOptions(settings.logger)
	storeOpts.Open = settings.open
	s, err := store.Load(ctx, source, storeOpts)
	if err != nil {
		return nil, err
	}

	a := New(s, cfg.Placeholders)
	a.open = settings.open
	return a, nil
}

// Store returns the underlying store for direct access.
func (a *App) Store() *store.Store {
	return a.store
}

// Export copies every section of the loaded book into a new book at dst.
// The target format follows the extension of dst.
func (a *App) Export(ctx context.Context, dst string) error {
	if filepath.Clean(dst) == filepath.Clean(a.store.Location()) {
		return ErrSameLocation
	}

	src, err := a.open(ctx, a.store.Location())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", a.store.Location(), err)
	}
	defer func() { _ = src.Close() }()

	target, err := workbook.Create(ctx, dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer func() { _ = target.Close() }()

	if err := workbook.Copy(ctx, target, src); err != nil {
		return fmt.Errorf("failed to export to %s: %w", dst, err)
	}
	return nil
}

// Close performs cleanup of application resources.
// The book is reopened per save, so nothing is held open.
func (a *App) Close() error {
	return nil
}
