package cli

import (
	"errors"

	"github.com/thenoetrevino/orderbook/internal/app"
	catalogservice "github.com/thenoetrevino/orderbook/internal/services/catalog"
	clientservice "github.com/thenoetrevino/orderbook/internal/services/client"
	orderservice "github.com/thenoetrevino/orderbook/internal/services/order"
	"github.com/thenoetrevino/orderbook/internal/store"
	"github.com/thenoetrevino/orderbook/internal/workbook"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: I/O failures and anything not covered below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or no configured book.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	// Use for: Unknown item or organization names, periods without orders.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Books that fail to load or save.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, out of range years or months, unknown file formats.
	ExitValidation = 5
)

// UsageError wraps a flag or argument error from command parsing.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCodeFor maps an error returned by a command to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		usageErr   *UsageError
		schemaErr  *store.SchemaError
		loadErr    *store.LoadError
		persistErr *store.PersistError
	)

	switch {
	case errors.As(err, &usageErr), errors.Is(err, ErrNoSource), errors.Is(err, ErrNotInitialized):
		return ExitUsage
	case errors.As(err, &schemaErr), errors.As(err, &loadErr), errors.As(err, &persistErr):
		return ExitDataErr
	case errors.Is(err, orderservice.ErrItemNotFound),
		errors.Is(err, catalogservice.ErrItemNotFound),
		errors.Is(err, clientservice.ErrClientNotFound),
		errors.Is(err, clientservice.ErrNoActivity):
		return ExitNotFound
	case errors.Is(err, orderservice.ErrEmptyItemName),
		errors.Is(err, catalogservice.ErrEmptyItemName),
		errors.Is(err, clientservice.ErrEmptyOrganization),
		errors.Is(err, clientservice.ErrEmptyContact),
		errors.Is(err, clientservice.ErrInvalidYear),
		errors.Is(err, clientservice.ErrInvalidMonth),
		errors.Is(err, workbook.ErrUnsupportedFormat),
		errors.Is(err, app.ErrSameLocation),
		errors.Is(err, ErrInvalidMonthName):
		return ExitValidation
	default:
		return ExitError
	}
}
