package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/orderbook/internal/workbook"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
	"github.com/thenoetrevino/orderbook/internal/workbook/memory"
)

// Section names of the fixture book; they match the store defaults.
const (
	SectionClients = "Клиенты"
	SectionGoods   = "Товары"
	SectionOrders  = "Заявки"
)

// Day returns midnight UTC of the given date
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FixtureBook returns an order book with three clients, four goods and eight
// orders:
//
//	May 2023:  ACME (1) x3, Globex (2) x1
//	June 2023: Globex (2) x2
//	July 2023: unknown client 99 x1
//	Dec 2022:  Initech (3) x1
//
// Gadget's price is text with a decimal comma and currency glyph, Gizmo's price
// is unparsable, Sprocket has no orders.
func FixtureBook() *memory.Book {
	b := memory.New()
	b.SetRows(SectionClients, [][]core.Cell{
		{core.Text("Код клиента"), core.Text("Наименование организации"), core.Text("Адрес"), core.Text("Контактное лицо")},
		{core.Int(1), core.Text("ACME"), core.Text("1 Main st"), core.Text("John Smith")},
		{core.Int(2), core.Text("Globex"), core.Text("2 Elm st"), core.Text("Mary Major")},
		{core.Int(3), core.Text("Initech"), core.Text("3 Oak st"), core.Text("Peter Gibbons")},
	})
	b.SetRows(SectionGoods, [][]core.Cell{
		{core.Text("Код товара"), core.Text("Наименование"), core.Text("Ед. измерения"), core.Text("Цена")},
		{core.Int(10), core.Text("Widget"), core.Text("pcs"), core.Number("12.5")},
		{core.Int(11), core.Text("Gadget"), core.Text("kg"), core.Text("12,50 ₽")},
		{core.Int(12), core.Text("Gizmo"), core.Text("pcs"), core.Text("abc")},
		{core.Int(13), core.Text("Sprocket"), core.Text("pcs"), core.Number("3")},
	})
	b.SetRows(SectionOrders, [][]core.Cell{
		{core.Text("Код заявки"), core.Text("Код товара"), core.Text("Код клиента"), core.Text("Номер заявки"), core.Text("Количество"), core.Text("Дата размещения")},
		order(100, 10, 1, 1, 5, Day(2023, time.May, 3)),
		order(101, 10, 1, 2, 3, Day(2023, time.May, 10)),
		order(102, 11, 1, 3, 1, Day(2023, time.May, 20)),
		order(103, 10, 2, 4, 2, Day(2023, time.May, 11)),
		order(104, 11, 2, 5, 7, Day(2023, time.June, 1)),
		order(105, 11, 2, 6, 1, Day(2023, time.June, 15)),
		order(106, 10, 99, 7, 4, Day(2023, time.July, 1)),
		order(107, 12, 3, 8, 1, Day(2022, time.December, 31)),
	})
	return b
}

func order(id, item, client, number, qty int, when time.Time) []core.Cell {
	return []core.Cell{core.Int(id), core.Int(item), core.Int(client), core.Int(number), core.Int(qty), core.Date(when)}
}

// MemoryOpener returns an opener that hands out the same in-memory book for
// any location, so loads and saves of a store share it.
func MemoryOpener(book *memory.Book) workbook.Opener {
	return func(context.Context, string) (core.Book, error) {
		return book, nil
	}
}

// WriteBook copies book into a new file called name under a temp dir and
// returns its path. The extension picks the backend.
func WriteBook(t *testing.T, book core.Book, name string) string {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), name)

	dst, err := workbook.Create(ctx, path)
	if err != nil {
		t.Fatalf("Failed to create book %s: %v", path, err)
	}
	if err := workbook.Copy(ctx, dst, book); err != nil {
		t.Fatalf("Failed to write book %s: %v", path, err)
	}
	if err := dst.Close(); err != nil {
		t.Fatalf("Failed to close book %s: %v", path, err)
	}
	return path
}
