package store

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/thenoetrevino/orderbook/internal/models"
)

// Period selects records by the year, and optionally the month, they were
// ordered in. A zero Month covers the whole year.
type Period struct {
	Year  int
	Month time.Month
}

// Year returns the period covering all of year.
func Year(year int) Period { return Period{Year: year} }

// Month returns the period covering one month of year.
func Month(year int, month time.Month) Period { return Period{Year: year, Month: month} }

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	if t.Year() != p.Year {
		return false
	}
	return p.Month == 0 || t.Month() == p.Month
}

func (p Period) String() string {
	if p.Month == 0 {
		return fmt.Sprintf("%04d", p.Year)
	}
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Activity is the number of records an organization code placed in a period.
type Activity struct {
	OrgCode int `json:"org_code"`
	Count   int `json:"count"`
}

// RankOrganizations counts the records of each organization code in the
// period, most active first. Equal counts are ordered by lowest code.
// Codes without an organization are included.
func (s *Store) RankOrganizations(p Period) []Activity {
	counts := make(map[int]int)
	for _, r := range s.records {
		if p.Contains(r.OrderedOn) {
			counts[r.OrgCode]++
		}
	}

	ranking := make([]Activity, 0, len(counts))
	for code, n := range counts {
		ranking = append(ranking, Activity{OrgCode: code, Count: n})
	}
	slices.SortFunc(ranking, func(a, b Activity) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.OrgCode, b.OrgCode)
	})
	return ranking
}

// MostActiveOrganization returns the organization with the most records in
// the period. It reports false when the period has no records or the
// winning code has no organization.
func (s *Store) MostActiveOrganization(p Period) (models.Organization, bool) {
	ranking := s.RankOrganizations(p)
	if len(ranking) == 0 {
		return models.Organization{}, false
	}
	return s.OrganizationByCode(ranking[0].OrgCode)
}
