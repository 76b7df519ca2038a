package store

import (
	"errors"
	"fmt"
)

var (
	errMissingValue  = errors.New("value is missing")
	errNotInteger    = errors.New("not an integer")
	errNegativePrice = errors.New("price is negative")
)

// SchemaError reports a book whose structure does not match the order book
// layout. It is fatal at load.
type SchemaError struct {
	Section string
	Reason  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error in section %q: %s", e.Section, e.Reason)
}

// LoadError reports a failure to read the book or a strict field that could
// not be parsed. Row and Column are 1-based and zero when not applicable.
type LoadError struct {
	Location string
	Section  string
	Row      int
	Column   int
	Field    string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("failed to load %s: %v", e.Location, e.Err)
	}
	return fmt.Sprintf("failed to load %s: section %q row %d column %d (%s): %v",
		e.Location, e.Section, e.Row, e.Column, e.Field, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// PriceParseError records a lenient field that fell back to its default.
// It never aborts a load; the store keeps them as warnings.
type PriceParseError struct {
	Section string
	Row     int
	// Code is the row's key, read from the first column.
	Code    int
	Column  int
	Field   string
	Raw     string
	Err     error
}

func (e PriceParseError) Error() string {
	return fmt.Sprintf("section %q row %d: cannot parse %s %q, using 0: %v",
		e.Section, e.Row, e.Field, e.Raw, e.Err)
}

func (e PriceParseError) Unwrap() error { return e.Err }

// PersistError reports a failed save. The in-memory store is unaffected and
// may now differ from what is on disk.
type PersistError struct {
	Location string
	Section  string
	Err      error
}

func (e *PersistError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("failed to save %s: %v", e.Location, e.Err)
	}
	return fmt.Sprintf("failed to save %s: section %q: %v", e.Location, e.Section, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
