// Package memory implements an in-memory core.Book for tests and as the
// working model of backends that load everything at open.
package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

// Book implements core.Book backed by process memory.
type Book struct {
	order  []string
	sheets map[string][][]core.Cell
	saves  int
}

// New returns an empty in-memory book.
func New() *Book { return &Book{sheets: make(map[string][][]core.Cell)} }

// Driver returns the book driver identifier.
func (b *Book) Driver() core.Driver { return core.DriverMemory }

// Sections lists section names in creation order.
func (b *Book) Sections() []string { return slices.Clone(b.order) }

// AddSection creates an empty section; errors if it exists.
func (b *Book) AddSection(name string) error {
	if _, ok := b.sheets[name]; ok {
		return fmt.Errorf("%w: %s", core.ErrSectionExists, name)
	}
	b.order = append(b.order, name)
	b.sheets[name] = nil
	return nil
}

// SetRows replaces a whole section, creating it when missing.
func (b *Book) SetRows(name string, rows [][]core.Cell) {
	if _, ok := b.sheets[name]; !ok {
		b.order = append(b.order, name)
	}
	b.sheets[name] = cloneRows(rows)
}

// Rows returns a deep copy of every row in the section.
func (b *Book) Rows(section string) ([][]core.Cell, error) {
	rows, ok := b.sheets[section]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrSectionNotFound, section)
	}
	return cloneRows(rows), nil
}

// WriteRows overwrites rows from start and drops everything after them.
// Cells to the right of a written row keep their old values.
func (b *Book) WriteRows(section string, start int, rows [][]core.Cell) error {
	if start < 1 {
		return core.ErrInvalidRow
	}
	existing, ok := b.sheets[section]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrSectionNotFound, section)
	}
	keep := start - 1
	if len(existing) < keep {
		pad := make([][]core.Cell, keep-len(existing))
		existing = append(existing, pad...)
	}

	written := cloneRows(rows)
	for i, row := range written {
		if old := keep + i; old < len(existing) && len(existing[old]) > len(row) {
			written[i] = append(row, existing[old][len(row):]...)
		}
	}
	b.sheets[section] = append(existing[:keep:keep], written...)
	return nil
}

// Save counts flushes; memory books have nothing to write.
func (b *Book) Save(context.Context) error {
	b.saves++
	return nil
}

// Saves returns how many times Save was called.
func (b *Book) Saves() int { return b.saves }

// Close is a no-op so that the same book can be reopened by tests.
func (b *Book) Close() error { return nil }

func cloneRows(rows [][]core.Cell) [][]core.Cell {
	if rows == nil {
		return nil
	}
	out := make([][]core.Cell, len(rows))
	for i, r := range rows {
		out[i] = slices.Clone(r)
	}
	return out
}
