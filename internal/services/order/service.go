package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/orderbook/internal/models"
)

// Display labels for codes with no matching row.
const (
	DefaultUnknownClient = "Неизвестный клиент"
	DefaultUnknownItem   = "Неизвестный товар"
)

// Service defines order-related read operations
type Service interface {
	SearchByItemName(name string) (*SearchResult, error)
}

// Line is one purchase record of the searched item joined with its buyer.
type Line struct {
	RecordID     int             `json:"record_id"`
	OrgCode      int             `json:"org_code"`
	Organization string          `json:"organization"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	OrderedOn    time.Time       `json:"ordered_on"`
}

// SearchResult is the item that matched and every record that references it.
type SearchResult struct {
	ItemCode  int             `json:"item_code"`
	ItemName  string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Lines     []Line          `json:"lines"`
}

// Placeholders overrides the default labels. Empty fields keep the defaults.
type Placeholders struct {
	Client string
	Item   string
}

// repository defines the data access methods needed by the order service
// This interface is private to the service layer
type repository interface {
	FindItemCodeByName(name string) (int, bool)
	ItemByCode(code int) (models.CatalogItem, bool)
	RecordsByItemCode(code int) []models.PurchaseRecord
	OrganizationByCode(code int) (models.Organization, bool)
}

type service struct {
	repo         repository
	placeholders Placeholders
}

// NewService creates a new order service
func NewService(repo repository, placeholders Placeholders) Service {
	if placeholders.Client == "" {
		placeholders.Client = DefaultUnknownClient
	}
	if placeholders.Item == "" {
		placeholders.Item = DefaultUnknownItem
	}
	return &service{repo: repo, placeholders: placeholders}
}

// SearchByItemName finds the item by exact case-insensitive name and lists its
// records in load order. An item with no records yields an empty Lines slice.
func (s *service) SearchByItemName(name string) (*SearchResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyItemName
	}

	code, ok := s.repo.FindItemCodeByName(name)
	if !ok {
		return nil, ErrItemNotFound
	}

	result := &SearchResult{ItemCode: code, ItemName: s.placeholders.Item, UnitPrice: decimal.Zero}
	if item, ok := s.repo.ItemByCode(code); ok {
		result.ItemName = item.Name
		result.UnitPrice = item.UnitPrice
	}

	records := s.repo.RecordsByItemCode(code)
	result.Lines = make([]Line, 0, len(records))
	for _, r := range records {
		orgName := s.placeholders.Client
		if org, ok := s.repo.OrganizationByCode(r.OrgCode); ok {
			orgName = org.Name
		}
		result.Lines = append(result.Lines, Line{
			RecordID:     r.RecordID,
			OrgCode:      r.OrgCode,
			Organization: orgName,
			Quantity:     r.Quantity,
			UnitPrice:    result.UnitPrice,
			OrderedOn:    r.OrderedOn,
		})
	}

	return result, nil
}
