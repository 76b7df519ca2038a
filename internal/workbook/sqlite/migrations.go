package sqlite

import (
	"context"
	"database/sql"
)

// runMigrations creates the sheet schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create sheets table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sheets (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create cells table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cells (
			sheet TEXT NOT NULL,
			row_num INTEGER NOT NULL,
			col_num INTEGER NOT NULL,
			kind TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (sheet, row_num, col_num),
			FOREIGN KEY (sheet) REFERENCES sheets(name) ON DELETE CASCADE
		)
	`)
	return err
}
