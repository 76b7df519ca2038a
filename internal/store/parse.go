package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
	"github.com/xuri/excelize/v2"
)

// DefaultCurrency is stripped from price text before parsing.
const DefaultCurrency = "₽"

// parseInt accepts integral number cells ("5", "5.0") and text holding a
// plain integer (" 5 "). Text such as "5.0" or "1e3" is rejected.
func parseInt(c core.Cell) (int, error) {
	switch c.Kind {
	case core.KindEmpty:
		return 0, errMissingValue
	case core.KindDate:
		return 0, fmt.Errorf("%w: got a date", errNotInteger)
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return 0, errMissingValue
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if c.Kind == core.KindText {
		return 0, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, fmt.Errorf("%w: %q", errNotInteger, s)
	}
	return int(f), nil
}

// parseText trims the cell. Dates are rendered as ISO days.
func parseText(c core.Cell) string {
	if c.Kind == core.KindDate {
		if c.Time.IsZero() {
			return ""
		}
		return c.Time.Format(time.DateOnly)
	}
	return strings.TrimSpace(c.Text)
}

var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"02.01.2006",
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
}

// parseDate accepts native date cells, spreadsheet serial numbers and text
// in ISO or dotted day-first layouts. Results are UTC.
func parseDate(c core.Cell) (time.Time, error) {
	switch c.Kind {
	case core.KindEmpty:
		return time.Time{}, errMissingValue
	case core.KindDate:
		if c.Time.IsZero() {
			return time.Time{}, errMissingValue
		}
		return c.Time.UTC(), nil
	case core.KindNumber:
		serial, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %q: %w", c.Text, err)
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date serial %q: %w", c.Text, err)
		}
		return t.UTC(), nil
	}

	s := strings.TrimSpace(c.Text)
	if s == "" {
		return time.Time{}, errMissingValue
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parsePrice takes numeric cells as they are. Text has the currency glyph and
// whitespace grouping removed and a decimal comma turned into a point before
// an invariant parse.
func parsePrice(c core.Cell, currency string) (decimal.Decimal, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch c.Kind {
	case core.KindNumber:
		d, err = decimal.NewFromString(strings.TrimSpace(c.Text))
	case core.KindDate:
		return decimal.Zero, fmt.Errorf("got a date")
	default:
		d, err = decimal.NewFromString(normalizePrice(c.Text, currency))
	}
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativePrice
	}
	return d, nil
}

func normalizePrice(s, currency string) string {
	if currency != "" {
		s = strings.ReplaceAll(s, currency, "")
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ReplaceAll(s, ",", ".")
}
