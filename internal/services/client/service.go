package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/orderbook/internal/models"
	"github.com/thenoetrevino/orderbook/internal/store"
)

// DefaultUnknownClient labels ranked codes that have no organization row.
const DefaultUnknownClient = "Неизвестный клиент"

// Service defines all client-related business operations
type Service interface {
	// Read operations
	ListClients() []models.Organization
	GoldenClient(req GoldenClientRequest) (*GoldenClient, error)
	Ranking(req GoldenClientRequest, limit int) ([]RankedClient, error)

	// Write operations
	UpdateContact(ctx context.Context, req UpdateContactRequest) (*models.Organization, error)
}

// UpdateContactRequest encapsulates data for replacing a contact person
type UpdateContactRequest struct {
	Organization string
	Contact      string
}

// GoldenClientRequest selects the period to rank. Month 0 means the whole year.
type GoldenClientRequest struct {
	Year  int
	Month int
}

func (r GoldenClientRequest) period() store.Period {
	if r.Month == 0 {
		return store.Year(r.Year)
	}
	return store.Month(r.Year, time.Month(r.Month))
}

// GoldenClient is the most active organization of a period.
type GoldenClient struct {
	Organization models.Organization `json:"organization"`
	Orders       int                 `json:"orders"`
	Period       string              `json:"period"`
}

// RankedClient is one row of the activity ranking.
type RankedClient struct {
	Rank          int    `json:"rank"`
	OrgCode       int    `json:"org_code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Orders        int    `json:"orders"`
	Known         bool   `json:"known"`
}

// repository defines the data access methods needed by the client service
// This interface is private to the service layer
type repository interface {
	Organizations() []models.Organization
	OrganizationByCode(code int) (models.Organization, bool)
	OrganizationByName(name string) (models.Organization, bool)
	UpdateContact(ctx context.Context, organizationName, newContact string) (bool, error)
	RankOrganizations(p store.Period) []store.Activity
	MostActiveOrganization(p store.Period) (models.Organization, bool)
}

type service struct {
	repo          repository
	unknownClient string
}

// NewService creates a new client service. An empty unknownClient uses
// DefaultUnknownClient.
func NewService(repo repository, unknownClient string) Service {
	if unknownClient == "" {
		unknownClient = DefaultUnknownClient
	}
	return &service{repo: repo, unknownClient: unknownClient}
}

// ListClients returns every organization in load order
func (s *service) ListClients() []models.Organization {
	return s.repo.Organizations()
}

// UpdateContact replaces the contact person of the first organization whose
// name matches case-insensitively. When saving fails the in-memory change is
// kept and the wrapped *store.PersistError is returned.
func (s *service) UpdateContact(ctx context.Context, req UpdateContactRequest) (*models.Organization, error) {
	if err := validateUpdateContact(req); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateContact(ctx, req.Organization, req.Contact)
	if !updated {
		if err != nil {
			return nil, err
		}
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	org, ok := s.repo.OrganizationByName(req.Organization)
	if !ok {
		return nil, ErrClientNotFound
	}
	return &org, nil
}

// GoldenClient returns the organization with the most records in the period.
// Ties go to the lower organization code.
func (s *service) GoldenClient(req GoldenClientRequest) (*GoldenClient, error) {
	if err := validatePeriod(req); err != nil {
		return nil, err
	}

	p := req.period()
	org, ok := s.repo.MostActiveOrganization(p)
	if !ok {
		return nil, ErrNoActivity
	}

	orders := 0
	for _, a := range s.repo.RankOrganizations(p) {
		if a.OrgCode == org.Code {
			orders = a.Count
			break
		}
	}

	return &GoldenClient{Organization: org, Orders: orders, Period: p.String()}, nil
}

// Ranking lists organizations by activity in the period. A limit of zero or
// less returns every organization with records.
func (s *service) Ranking(req GoldenClientRequest, limit int) ([]RankedClient, error) {
	if err := validatePeriod(req); err != nil {
		return nil, err
	}

	activity := s.repo.RankOrganizations(req.period())
	if limit > 0 && len(activity) > limit {
		activity = activity[:limit]
	}

	ranked := make([]RankedClient, len(activity))
	for i, a := range activity {
		ranked[i] = RankedClient{Rank: i + 1, OrgCode: a.OrgCode, Name: s.unknownClient, Orders: a.Count}
		if org, ok := s.repo.OrganizationByCode(a.OrgCode); ok {
			ranked[i].Name = org.Name
			ranked[i].ContactPerson = org.ContactPerson
			ranked[i].Known = true
		}
	}
	return ranked, nil
}

func validateUpdateContact(req UpdateContactRequest) error {
	if strings.TrimSpace(req.Organization) == "" {
		return ErrEmptyOrganization
	}
	if strings.TrimSpace(req.Contact) == "" {
		return ErrEmptyContact
	}
	return nil
}

func validatePeriod(req GoldenClientRequest) error {
	if req.Year < 1 || req.Year > 9999 {
		return ErrInvalidYear
	}
	if req.Month < 0 || req.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}
