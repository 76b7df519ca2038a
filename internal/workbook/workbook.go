// Package workbook selects a core.Book backend from a file location.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/orderbook/internal/workbook/core"
	"github.com/thenoetrevino/orderbook/internal/workbook/sqlite"
	"github.com/thenoetrevino/orderbook/internal/workbook/xlsx"
)

// ErrUnsupportedFormat is returned for a location no backend understands.
var ErrUnsupportedFormat = errors.New("workbook: unsupported file format")

// Opener opens an existing book. store.Load takes one so tests can supply
// in-memory books.
type Opener func(ctx context.Context, location string) (core.Book, error)

// DriverFor picks the backend by file extension.
//
//	.xlsx .xlsm           -> xlsx
//	.db .sqlite .sqlite3  -> sqlite
func DriverFor(location string) (core.Driver, error) {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".xlsx", ".xlsm":
		return core.DriverXLSX, nil
	case ".db", ".sqlite", ".sqlite3":
		return core.DriverSQLite, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, location)
	}
}

// Open opens an existing book at location.
func Open(ctx context.Context, location string) (core.Book, error) {
	driver, err := DriverFor(location)
	if err != nil {
		return nil, err
	}
	switch driver {
	case core.DriverXLSX:
		b, err := xlsx.Open(location)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		b, err := sqlite.Open(ctx, location)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Create returns a new, empty book that is written to location on Save.
func Create(ctx context.Context, location string) (core.Book, error) {
	driver, err := DriverFor(location)
	if err != nil {
		return nil, err
	}
	switch driver {
	case core.DriverXLSX:
		return xlsx.Create(location), nil
	default:
		b, err := sqlite.Create(ctx, location)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Copy writes every section of src into dst, header rows included.
// Sections missing from dst are created; existing ones are overwritten.
func Copy(ctx context.Context, dst, src core.Book) error {
	for _, name := range src.Sections() {
		rows, err := src.Rows(name)
		if err != nil {
			return err
		}
		if !core.HasSection(dst, name) {
			if err := dst.AddSection(name); err != nil {
				return err
			}
		}
		if err := dst.WriteRows(name, 1, rows); err != nil {
			return fmt.Errorf("failed to copy section %s: %w", name, err)
		}
	}
	return dst.Save(ctx)
}
