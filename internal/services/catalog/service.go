package catalog

import (
	"strings"

	"github.com/thenoetrevino/orderbook/internal/models"
	"github.com/thenoetrevino/orderbook/internal/store"
)

// Service defines catalog read operations
type Service interface {
	ListItems() []models.CatalogItem
	Lookup(name string) (*models.CatalogItem, error)
	// Warnings lists the prices that could not be read and were set to zero.
	Warnings() []store.PriceParseError
}

type repository interface {
	CatalogItems() []models.CatalogItem
	ItemByName(name string) (models.CatalogItem, bool)
	Warnings() []store.PriceParseError
}

type service struct {
	repo repository
}

// NewService creates a new catalog service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

func (s *service) ListItems() []models.CatalogItem {
	return s.repo.CatalogItems()
}

// Lookup finds an item by exact case-insensitive name
func (s *service) Lookup(name string) (*models.CatalogItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyItemName
	}
	item, ok := s.repo.ItemByName(name)
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (s *service) Warnings() []store.PriceParseError {
	return s.repo.Warnings()
}
