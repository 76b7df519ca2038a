package order

import "errors"

// Domain errors for order service
var (
	// Validation errors
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// Lookup errors
	ErrItemNotFound = errors.New("item not found")
)
