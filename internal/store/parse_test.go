package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		cell    core.Cell
		want    string
		wantErr bool
	}{
		{"number", core.Number("12.5"), "12.50", false},
		{"integer number", core.Number("3"), "3.00", false},
		{"text with comma and glyph", core.Text("12,50 ₽"), "12.50", false},
		{"text with point", core.Text("12.50"), "12.50", false},
		{"glyph first", core.Text("₽ 7"), "7.00", false},
		{"space grouping", core.Text("1 234,50"), "1234.50", false},
		{"no-break space grouping", core.Text("1\u00a0234,50\u00a0₽"), "1234.50", false},
		{"garbage", core.Text("abc"), "0.00", true},
		{"empty", core.Empty(), "0.00", true},
		{"negative", core.Text("-5"), "0.00", true},
		{"dotted thousands", core.Text("1.234,50"), "0.00", true},
		{"date", core.Date(time.Now()), "0.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePrice(tt.cell, DefaultCurrency)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		cell    core.Cell
		want    int
		wantErr error
	}{
		{"number", core.Number("42"), 42, nil},
		{"integral float", core.Number("42.0"), 42, nil},
		{"padded text", core.Text(" 7 "), 7, nil},
		{"negative", core.Text("-3"), -3, nil},
		{"empty", core.Empty(), 0, errMissingValue},
		{"blank text", core.Text("  "), 0, errMissingValue},
		{"fraction", core.Number("1.5"), 0, errNotInteger},
		{"word", core.Text("seven"), 0, errNotInteger},
		{"fractional text", core.Text("5.0"), 0, errNotInteger},
		{"exponent text", core.Text("1e3"), 0, errNotInteger},
		{"exponent number", core.Number("1e3"), 1000, nil},
		{"date", core.Date(time.Now()), 0, errNotInteger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInt(tt.cell)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2023, time.May, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		cell core.Cell
		want time.Time
	}{
		{"date cell", core.Date(want), want},
		{"date cell in another zone", core.Date(want.In(time.FixedZone("MSK", 3*3600))), want},
		{"serial", core.Number("45063"), want},
		{"iso", core.Text("2023-05-17"), want},
		{"iso with time", core.Text("2023-05-17 10:30:00"), want.Add(10*time.Hour + 30*time.Minute)},
		{"rfc3339", core.Text("2023-05-17T00:00:00Z"), want},
		{"dotted", core.Text("17.05.2023"), want},
		{"dotted with time", core.Text("17.05.2023 08:15"), want.Add(8*time.Hour + 15*time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.cell)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	for _, bad := range []core.Cell{core.Empty(), core.Text(""), core.Text("May 17"), core.Number("x"), core.Date(time.Time{})} {
		_, err := parseDate(bad)
		assert.Error(t, err, "%+v", bad)
	}
}

func TestParseText(t *testing.T) {
	assert.Equal(t, "ACME", parseText(core.Text("  ACME\t")))
	assert.Equal(t, "12.5", parseText(core.Number("12.5")))
	assert.Equal(t, "2023-05-17", parseText(core.Date(time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC))))
	assert.Equal(t, "", parseText(core.Empty()))
}
