package store

import (
	"context"

	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

// defaultDataStart is where data goes in a section that had no header at load.
const defaultDataStart = 2

// Save reopens the book and rewrites the data rows of all three sections from
// the in-memory collections, starting right after the header found at load.
// Rows past the end of a collection are removed. Headers and any rows above
// them are left as they are.
func (s *Store) Save(ctx context.Context) error {
	book, err := s.opts.Open(ctx, s.location)
	if err != nil {
		return &PersistError{Location: s.location, Err: err}
	}
	defer closeBook(book, s.opts.Logger)

	sections := []struct {
		name string
		rows [][]core.Cell
	}{
		{s.opts.Sections.Organizations, rowsOf(s.organizations, organizationRow)},
		{s.opts.Sections.Items, rowsOf(s.items, catalogItemRow)},
		{s.opts.Sections.Records, rowsOf(s.records, purchaseRecordRow)},
	}

	for _, sec := range sections {
		if !core.HasSection(book, sec.name) {
			return &PersistError{
				Location: s.location,
				Section:  sec.name,
				Err:      &SchemaError{Section: sec.name, Reason: "section is missing"},
			}
		}
		if err := book.WriteRows(sec.name, s.dataStartOf(sec.name), sec.rows); err != nil {
			return &PersistError{Location: s.location, Section: sec.name, Err: err}
		}
	}

	if err := book.Save(ctx); err != nil {
		return &PersistError{Location: s.location, Err: err}
	}

	s.opts.Logger.Info("order book saved", "location", s.location)
	return nil
}

func (s *Store) dataStartOf(section string) int {
	if start, ok := s.dataStart[section]; ok {
		return start
	}
	return defaultDataStart
}

func rowsOf[T any](items []T, encode func(T) []core.Cell) [][]core.Cell {
	rows := make([][]core.Cell, len(items))
	for i, item := range items {
		rows[i] = encode(item)
	}
	return rows
}
