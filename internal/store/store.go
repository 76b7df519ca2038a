// Package store is the in-memory data-access layer of the order book. It
// loads organizations, catalog items and purchase records from a book,
// answers queries, applies contact updates and writes everything back.
//
// A Store is not safe for concurrent use.
package store

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/orderbook/internal/models"
	"github.com/thenoetrevino/orderbook/internal/workbook"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

// SectionNames are the section (sheet) names of the three datasets.
type SectionNames struct {
	Organizations string `yaml:"organizations" json:"organizations"`
	Items         string `yaml:"items" json:"items"`
	Records       string `yaml:"records" json:"records"`
}

// DefaultSectionNames returns the sheet names of a stock order book.
func DefaultSectionNames() SectionNames {
	return SectionNames{
		Organizations: "Клиенты",
		Items:         "Товары",
		Records:       "Заявки",
	}
}

func (n SectionNames) withDefaults() SectionNames {
	d := DefaultSectionNames()
	if n.Organizations == "" {
		n.Organizations = d.Organizations
	}
	if n.Items == "" {
		n.Items = d.Items
	}
	if n.Records == "" {
		n.Records = d.Records
	}
	return n
}

// Options configures Load. The zero value is usable.
type Options struct {
	Sections SectionNames
	// Currency is removed from price text; defaults to DefaultCurrency.
	Currency string
	// Logger receives parse warnings and save notices; defaults to slog.Default().
	Logger *slog.Logger
	// Open opens the book for load and for every save; defaults to workbook.Open.
	Open workbook.Opener
}

func (o Options) withDefaults() Options {
	o.Sections = o.Sections.withDefaults()
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Open == nil {
		o.Open = workbook.Open
	}
	return o
}

// Store holds the three collections for the lifetime of the process.
type Store struct {
	location string
	opts     Options

	organizations []models.Organization
	items         []models.CatalogItem
	records       []models.PurchaseRecord

	warnings []PriceParseError

	// dataStart is the 1-based row right after each section's header.
	dataStart map[string]int
}

// Load reads the book at location. It never returns a partially loaded store:
// a *SchemaError or *LoadError means nothing was loaded.
func Load(ctx context.Context, location string, opts Options) (*Store, error) {
	opts = opts.withDefaults()

	book, err := opts.Open(ctx, location)
	if err != nil {
		return nil, &LoadError{Location: location, Err: err}
	}
	defer closeBook(book, opts.Logger)

	for _, name := range []string{opts.Sections.Organizations, opts.Sections.Items, opts.Sections.Records} {
		if !core.HasSection(book, name) {
			return nil, &SchemaError{Section: name, Reason: "section is missing"}
		}
	}

	s := &Store{location: location, opts: opts, dataStart: make(map[string]int, 3)}
	l := loader{book: book, location: location, currency: opts.Currency, logger: opts.Logger}

	var start int
	if s.organizations, start, err = readSection(&l, opts.Sections.Organizations, OrganizationSchema, organizationFrom); err != nil {
		return nil, err
	}
	s.dataStart[opts.Sections.Organizations] = start
	if s.items, start, err = readSection(&l, opts.Sections.Items, CatalogItemSchema, catalogItemFrom); err != nil {
		return nil, err
	}
	s.dataStart[opts.Sections.Items] = start
	if s.records, start, err = readSection(&l, opts.Sections.Records, PurchaseRecordSchema, purchaseRecordFrom); err != nil {
		return nil, err
	}
	s.dataStart[opts.Sections.Records] = start
	s.warnings = l.warnings

	opts.Logger.Info("order book loaded",
		"location", location,
		"driver", book.Driver(),
		"organizations", len(s.organizations),
		"items", len(s.items),
		"records", len(s.records),
		"warnings", len(s.warnings))

	return s, nil
}

// Location returns where the store was loaded from and saves to.
func (s *Store) Location() string { return s.location }

// Sections returns the section names in use.
func (s *Store) Sections() SectionNames { return s.opts.Sections }

// Warnings returns the lenient fields that fell back to zero during load.
func (s *Store) Warnings() []PriceParseError { return slices.Clone(s.warnings) }

type loader struct {
	book     core.Book
	location string
	currency string
	logger   *slog.Logger
	warnings []PriceParseError
}

// readSection skips blank rows, checks and skips the header, then decodes
// every remaining row with the schema. It also returns the row the data
// starts on, which is defaultDataStart when the section has no header.
func readSection[T any](l *loader, section string, schema Schema, build func([]value) T) ([]T, int, error) {
	rows, err := l.book.Rows(section)
	if err != nil {
		return nil, 0, &LoadError{Location: l.location, Section: section, Err: err}
	}

	out := []T{}
	start := 0
	for i, row := range rows {
		if core.BlankRow(row) {
			continue
		}
		if start == 0 {
			if err := schema.checkHeader(section, row); err != nil {
				return nil, 0, err
			}
			start = i + 2
			continue
		}
		values, err := l.decodeRow(section, i+1, schema, row)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, build(values))
	}
	if start == 0 {
		start = defaultDataStart
	}
	return out, start, nil
}

func (l *loader) decodeRow(section string, rowNum int, schema Schema, row []core.Cell) ([]value, error) {
	values := make([]value, len(schema))
	for col, field := range schema {
		cell := core.Empty()
		if col < len(row) {
			cell = row[col]
		}

		var err error
		switch field.Kind {
		case FieldText:
			values[col].s = parseText(cell)
		case FieldInt:
			values[col].i, err = parseInt(cell)
		case FieldDate:
			values[col].t, err = parseDate(cell)
		case FieldDecimal:
			values[col].d, err = parsePrice(cell, l.currency)
		}
		if err == nil {
			continue
		}

		if field.Policy == Strict {
			return nil, &LoadError{
				Location: l.location,
				Section:  section,
				Row:      rowNum,
				Column:   col + 1,
				Field:    field.Name,
				Err:      err,
			}
		}

		values[col] = value{d: decimal.Zero}
		warning := PriceParseError{
			Section: section,
			Row:     rowNum,
			Code:    values[0].i,
			Column:  col + 1,
			Field:   field.Name,
			Raw:     cell.String(),
			Err:     err,
		}
		l.warnings = append(l.warnings, warning)
		l.logger.Warn("failed to parse value, using 0",
			"section", section,
			"row", rowNum,
			"field", field.Name,
			"value", warning.Raw,
			"error", err)
	}
	return values, nil
}

func closeBook(book core.Book, logger *slog.Logger) {
	if err := book.Close(); err != nil {
		logger.Error("error closing book", "error", err)
	}
}
