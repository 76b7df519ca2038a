package client

import "errors"

// Domain errors for client service
var (
	// Validation errors
	ErrEmptyOrganization = errors.New("organization name cannot be empty")
	ErrEmptyContact      = errors.New("contact person cannot be empty")
	ErrInvalidYear       = errors.New("year must be between 1 and 9999")
	ErrInvalidMonth      = errors.New("month must be between 1 and 12, or 0 for the whole year")

	// Lookup errors
	ErrClientNotFound = errors.New("client not found")
	ErrNoActivity     = errors.New("no orders in the requested period")
)
