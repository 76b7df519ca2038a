package store

import (
	"slices"
	"strings"

	"github.com/thenoetrevino/orderbook/internal/models"
)

// FindItemCodeByName returns the code of the first catalog item whose name
// equals name, ignoring case and surrounding whitespace.
func (s *Store) FindItemCodeByName(name string) (int, bool) {
	item, ok := s.ItemByName(name)
	if !ok {
		return 0, false
	}
	return item.Code, true
}

// ItemByName is FindItemCodeByName returning the whole item.
func (s *Store) ItemByName(name string) (models.CatalogItem, bool) {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return models.CatalogItem{}, false
	}
	for _, item := range s.items {
		if strings.EqualFold(strings.TrimSpace(item.Name), needle) {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// RecordsByItemCode returns the records for an item in load order. The
// result is empty, never nil, for a non-positive or unknown code.
func (s *Store) RecordsByItemCode(code int) []models.PurchaseRecord {
	out := []models.PurchaseRecord{}
	if code <= 0 {
		return out
	}
	for _, r := range s.records {
		if r.ItemCode == code {
			out = append(out, r)
		}
	}
	return out
}

// ItemByCode returns the first catalog item with the given code.
func (s *Store) ItemByCode(code int) (models.CatalogItem, bool) {
	for _, item := range s.items {
		if item.Code == code {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// OrganizationByCode returns the first organization with the given code.
func (s *Store) OrganizationByCode(code int) (models.Organization, bool) {
	for _, org := range s.organizations {
		if org.Code == code {
			return org, true
		}
	}
	return models.Organization{}, false
}

// OrganizationByName returns the first organization whose name equals name,
// ignoring case and surrounding whitespace.
func (s *Store) OrganizationByName(name string) (models.Organization, bool) {
	if i := s.organizationIndex(name); i >= 0 {
		return s.organizations[i], true
	}
	return models.Organization{}, false
}

func (s *Store) organizationIndex(name string) int {
	needle := strings.TrimSpace(name)
	if needle == "" {
		return -1
	}
	return slices.IndexFunc(s.organizations, func(o models.Organization) bool {
		return strings.EqualFold(strings.TrimSpace(o.Name), needle)
	})
}

// CatalogItems returns a copy of every catalog item in load order.
func (s *Store) CatalogItems() []models.CatalogItem { return cloneOf(s.items) }

// Organizations returns a copy of every organization in load order.
func (s *Store) Organizations() []models.Organization { return cloneOf(s.organizations) }

// Records returns a copy of every purchase record in load order.
func (s *Store) Records() []models.PurchaseRecord { return cloneOf(s.records) }

func cloneOf[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
