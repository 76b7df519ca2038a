package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestBook_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.db")
	when := time.Date(2023, 5, 17, 9, 30, 0, 0, time.UTC)

	book, err := Create(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, core.DriverSQLite, book.Driver())
	require.NoError(t, book.AddSection("Clients"))
	require.NoError(t, book.AddSection("Orders"))
	require.NoError(t, book.WriteRows("Orders", 1, [][]core.Cell{
		{core.Text("id"), core.Text("date")},
		{core.Int(1), core.Date(when)},
		{},
		{core.Empty(), core.Number("2.5")},
	}))
	require.NoError(t, book.Save(ctx))
	require.NoError(t, book.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	assert.Equal(t, []string{"Clients", "Orders"}, reopened.Sections())

	rows, err := reopened.Rows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []core.Cell{core.Text("id"), core.Text("date")}, rows[0])
	assert.Equal(t, core.Int(1), rows[1][0])
	require.Equal(t, core.KindDate, rows[1][1].Kind)
	assert.True(t, rows[1][1].Time.Equal(when))
	assert.Empty(t, rows[2])
	assert.Equal(t, []core.Cell{core.Empty(), core.Number("2.5")}, rows[3])

	clients, err := reopened.Rows("Clients")
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestBook_SaveReplacesStaleCells(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "book.db")

	book, err := Create(ctx, path)
	require.NoError(t, err)
	require.NoError(t, book.AddSection("S"))
	require.NoError(t, book.WriteRows("S", 1, [][]core.Cell{
		{core.Text("h")}, {core.Int(1)}, {core.Int(2)}, {core.Int(3)},
	}))
	require.NoError(t, book.Save(ctx))
	require.NoError(t, book.WriteRows("S", 2, [][]core.Cell{{core.Int(9)}}))
	require.NoError(t, book.Save(ctx))
	require.NoError(t, book.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	rows, err := reopened.Rows("S")
	require.NoError(t, err)
	assert.Equal(t, [][]core.Cell{{core.Text("h")}, {core.Int(9)}}, rows)
}

func TestDecodeCell(t *testing.T) {
	cell, err := decodeCell("number", "12.5")
	require.NoError(t, err)
	assert.Equal(t, core.Number("12.5"), cell)

	cell, err = decodeCell("weird", "x")
	require.NoError(t, err)
	assert.Equal(t, core.Empty(), cell)

	_, err = decodeCell("date", "not a date")
	assert.Error(t, err)
}
