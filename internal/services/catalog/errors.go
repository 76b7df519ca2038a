package catalog

import "errors"

// Domain errors for catalog service
var (
	ErrEmptyItemName = errors.New("item name cannot be empty")
	ErrItemNotFound  = errors.New("item not found")
)
