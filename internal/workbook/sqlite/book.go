package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/orderbook/internal/workbook/core"
	"github.com/thenoetrevino/orderbook/internal/workbook/memory"
)

// Book implements core.Book on SQLite. Reads and writes go to an in-memory
// copy; Save replaces the stored cells with it.
type Book struct {
	*memory.Book
	path string
	db   *sql.DB
}

// Open loads an existing SQLite book.
func Open(ctx context.Context, path string) (*Book, error) {
	if err := fileExists(path); err != nil {
		return nil, fmt.Errorf("failed to open book %s: %w", path, err)
	}
	return open(ctx, path)
}

// Create opens path as a book, creating the file and schema when missing.
func Create(ctx context.Context, path string) (*Book, error) {
	return open(ctx, path)
}

func open(ctx context.Context, path string) (*Book, error) {
	db, err := openDB(ctx, path)
	if err != nil {
		return nil, err
	}
	b := &Book{Book: memory.New(), path: path, db: db}
	if err := b.load(ctx); err != nil {
		closeDB(db)
		return nil, err
	}
	return b, nil
}

// Driver returns the book driver identifier.
func (b *Book) Driver() core.Driver { return core.DriverSQLite }

// Path returns the database file.
func (b *Book) Path() string { return b.path }

func (b *Book) load(ctx context.Context) error {
	sheetRows, err := b.db.QueryContext(ctx, `SELECT name FROM sheets ORDER BY position, name`)
	if err != nil {
		return fmt.Errorf("failed to list sheets: %w", err)
	}
	var names []string
	for sheetRows.Next() {
		var name string
		if err := sheetRows.Scan(&name); err != nil {
			_ = sheetRows.Close()
			return err
		}
		names = append(names, name)
	}
	if err := sheetRows.Close(); err != nil {
		return err
	}
	if err := sheetRows.Err(); err != nil {
		return err
	}

	for _, name := range names {
		rows, err := b.loadSheet(ctx, name)
		if err != nil {
			return err
		}
		b.SetRows(name, rows)
	}
	return nil
}

func (b *Book) loadSheet(ctx context.Context, name string) ([][]core.Cell, error) {
	rs, err := b.db.QueryContext(ctx, `
		SELECT row_num, col_num, kind, value
		FROM cells
		WHERE sheet = ?
		ORDER BY row_num, col_num`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", name, err)
	}
	defer func() { _ = rs.Close() }()

	var out [][]core.Cell
	for rs.Next() {
		var (
			rowNum, colNum int
			kind, value    string
		)
		if err := rs.Scan(&rowNum, &colNum, &kind, &value); err != nil {
			return nil, err
		}
		if rowNum < 1 || colNum < 1 {
			return nil, fmt.Errorf("sheet %s: invalid cell position %d,%d", name, rowNum, colNum)
		}
		cell, err := decodeCell(kind, value)
		if err != nil {
			return nil, fmt.Errorf("sheet %s row %d col %d: %w", name, rowNum, colNum, err)
		}
		for len(out) < rowNum {
			out = append(out, nil)
		}
		row := out[rowNum-1]
		for len(row) < colNum {
			row = append(row, core.Empty())
		}
		row[colNum-1] = cell
		out[rowNum-1] = row
	}
	return out, rs.Err()
}

// Save replaces every stored cell with the in-memory book.
func (b *Book) Save(ctx context.Context) error {
	err := withTx(ctx, b.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cells`); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sheets`); err != nil {
			return err
		}

		for pos, name := range b.Sections() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO sheets (name, position) VALUES (?, ?)`, name, pos); err != nil {
				return fmt.Errorf("failed to insert sheet %s: %w", name, err)
			}
			rows, err := b.Rows(name)
			if err != nil {
				return err
			}
			for r, row := range rows {
				for c, cell := range row {
					if cell.IsBlank() {
						continue
					}
					if _, err := tx.ExecContext(ctx, `
						INSERT INTO cells (sheet, row_num, col_num, kind, value)
						VALUES (?, ?, ?, ?, ?)`,
						name, r+1, c+1, cell.Kind.String(), encodeCell(cell)); err != nil {
						return fmt.Errorf("failed to insert cell %s %d,%d: %w", name, r+1, c+1, err)
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save book %s: %w", b.path, err)
	}
	return b.Book.Save(ctx)
}

// Close closes the database handle.
func (b *Book) Close() error {
	return b.db.Close()
}

func encodeCell(c core.Cell) string {
	if c.Kind == core.KindDate {
		return c.Time.UTC().Format(time.RFC3339Nano)
	}
	return c.Text
}

func decodeCell(kind, value string) (core.Cell, error) {
	switch k := core.ParseKind(kind); k {
	case core.KindDate:
		t, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return core.Cell{}, fmt.Errorf("invalid date %q: %w", value, err)
		}
		return core.Date(t.UTC()), nil
	case core.KindText, core.KindNumber:
		return core.Cell{Kind: k, Text: value}, nil
	default:
		return core.Empty(), nil
	}
}
