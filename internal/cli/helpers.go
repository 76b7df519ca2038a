package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidMonthName is returned by ParseMonth for unrecognized input.
var ErrInvalidMonthName = errors.New("invalid month")

// DateLayout is how purchase dates are printed.
const DateLayout = "02.01.2006"

var monthNames = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	"янв": 1, "фев": 2, "мар": 3, "апр": 4, "мая": 5, "май": 5, "июн": 6,
	"июл": 7, "авг": 8, "сен": 9, "окт": 10, "ноя": 11, "дек": 12,
}

// ParseMonth maps "5", "05", "may", "May" or "май" to a month number.
// An empty string means the whole year and yields 0.
func ParseMonth(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 12 {
			return 0, fmt.Errorf("%w '%s' (must be 1-12)", ErrInvalidMonthName, s)
		}
		return n, nil
	}

	runes := []rune(s)
	if len(runes) >= 3 {
		if n, ok := monthNames[string(runes[:3])]; ok {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w '%s' (must be 1-12 or a month name)", ErrInvalidMonthName, s)
}

// FormatPrice renders an amount with two decimals and the currency glyph.
func FormatPrice(d decimal.Decimal, currency string) string {
	if currency == "" {
		return d.StringFixed(2)
	}
	return d.StringFixed(2) + " " + currency
}

// FormatDate renders a purchase date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// reportedError marks an error the user has already been shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// IsReported reports whether err was already printed by ReportError.
func IsReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}

// ReportError prints err through the formatter and returns it, marked as
// reported, for cobra.
func ReportError(formatter *OutputFormatter, code string, err error) error {
	return ReportErrorWithSuggestion(formatter, code, err, "")
}

// ReportErrorWithSuggestion is ReportError with a hint for the user.
func ReportErrorWithSuggestion(formatter *OutputFormatter, code string, err error, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return &reportedError{err: err}
}
