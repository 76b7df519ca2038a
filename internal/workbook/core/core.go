// Package core defines the backend-neutral sheet abstraction that the
// order book is loaded from and persisted to.
package core

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Driver identifies a concrete book backend implementation.
type Driver string

const (
	// DriverXLSX represents an Excel workbook on disk.
	DriverXLSX Driver = "xlsx"
	// DriverSQLite represents a SQLite file holding sheets as cell rows.
	DriverSQLite Driver = "sqlite"
	// DriverMemory represents an in-memory book typically used in tests.
	DriverMemory Driver = "memory"
)

// Kind is the storage type of a cell as the backend reports it.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
)

// String returns the lower-case kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	default:
		return "empty"
	}
}

// ParseKind is the inverse of Kind.String. Unknown names map to KindEmpty.
func ParseKind(s string) Kind {
	switch s {
	case "text":
		return KindText
	case "number":
		return KindNumber
	case "date":
		return KindDate
	default:
		return KindEmpty
	}
}

// Cell is a single sheet value. Numbers keep their canonical decimal text in
// Text so that no precision is lost between backends.
type Cell struct {
	Kind Kind
	Text string
	Time time.Time
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// Int returns a number cell holding n.
func Int(n int) Cell { return Cell{Kind: KindNumber, Text: strconv.Itoa(n)} }

// Number returns a number cell from its decimal representation.
func Number(s string) Cell { return Cell{Kind: KindNumber, Text: s} }

// Date returns a date cell.
func Date(t time.Time) Cell { return Cell{Kind: KindDate, Time: t} }

// IsBlank reports whether the cell carries no value.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindDate:
		return c.Time.IsZero()
	default:
		return strings.TrimSpace(c.Text) == ""
	}
}

// String renders the cell the way a user would type it.
func (c Cell) String() string {
	if c.Kind == KindDate {
		return c.Time.Format(time.RFC3339)
	}
	return c.Text
}

// BlankRow reports whether every cell in row is blank.
func BlankRow(row []Cell) bool {
	for _, c := range row {
		if !c.IsBlank() {
			return false
		}
	}
	return true
}

// Book is a set of named sections (sheets), each an ordered list of rows.
// Implementations are not safe for concurrent use.
type Book interface {
	// Sections lists section names in book order.
	Sections() []string
	// Rows returns every row of a section, header included, in sheet order.
	// Empty rows inside the used range are returned as empty slices.
	Rows(section string) ([][]Cell, error)
	// WriteRows overwrites rows starting at the 1-based row start and removes
	// every row after the last one written.
	WriteRows(section string, start int, rows [][]Cell) error
	// AddSection creates an empty section.
	AddSection(name string) error
	// Save flushes pending writes to the underlying location.
	Save(ctx context.Context) error
	// Close releases the book. It does not save.
	Close() error
	Driver() Driver
}

var (
	// ErrSectionNotFound is returned when a named section does not exist.
	ErrSectionNotFound = errors.New("workbook: section not found")
	// ErrSectionExists is returned by AddSection for a duplicate name.
	ErrSectionExists = errors.New("workbook: section already exists")
	// ErrInvalidRow is returned for a start row below 1.
	ErrInvalidRow = errors.New("workbook: row numbers start at 1")
)

// HasSection reports whether b contains a section named name.
func HasSection(b Book, name string) bool {
	for _, s := range b.Sections() {
		if s == name {
			return true
		}
	}
	return false
}
