package store

import (
	"context"
	"slices"
	"strings"
)

// UpdateContact sets the contact person of the organization named
// organizationName and saves the store. It reports false, with no side
// effect, for blank arguments or an unknown organization.
//
// When the save fails the change is kept in memory and the *PersistError is
// returned alongside true.
func (s *Store) UpdateContact(ctx context.Context, organizationName, newContact string) (bool, error) {
	contact := strings.TrimSpace(newContact)
	if strings.TrimSpace(organizationName) == "" || contact == "" {
		return false, nil
	}

	i := s.organizationIndex(organizationName)
	if i < 0 {
		return false, nil
	}

	// Replace the slice instead of editing it so earlier copies stay valid.
	next := slices.Clone(s.organizations)
	next[i] = next[i].WithContact(contact)
	s.organizations = next

	s.opts.Logger.Info("contact updated",
		"organization", next[i].Name,
		"code", next[i].Code)

	if err := s.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}
