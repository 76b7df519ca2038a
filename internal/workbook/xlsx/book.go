// Package xlsx implements core.Book over an Excel workbook using excelize.
// Each section is a worksheet; the file is read on open and written in place
// on Save.
package xlsx

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/thenoetrevino/orderbook/internal/workbook/core"
	"github.com/xuri/excelize/v2"
)

// Book implements core.Book using an excelize workbook.
type Book struct {
	path string
	f    *excelize.File

	// created is set for books that do not exist on disk yet.
	created bool
	// scratch is the default sheet of a new file, renamed by the first AddSection.
	scratch string

	date1904   bool
	dateStyles map[int]bool
}

// Open reads an existing workbook.
func Open(path string) (*Book, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	b := &Book{path: path, f: f, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		b.date1904 = *props.Date1904
	}
	return b, nil
}

// Create returns a new empty workbook that is written to path on Save.
func Create(path string) *Book {
	f := excelize.NewFile()
	return &Book{
		path:       path,
		f:          f,
		created:    true,
		scratch:    f.GetSheetName(0),
		dateStyles: make(map[int]bool),
	}
}

// Driver returns the book driver identifier.
func (b *Book) Driver() core.Driver { return core.DriverXLSX }

// Path returns the file the book reads from and saves to.
func (b *Book) Path() string { return b.path }

// Sections lists worksheet names in workbook order.
func (b *Book) Sections() []string {
	var names []string
	for _, name := range b.f.GetSheetList() {
		if name == b.scratch {
			continue
		}
		names = append(names, name)
	}
	return names
}

// AddSection creates a worksheet.
func (b *Book) AddSection(name string) error {
	if core.HasSection(b, name) {
		return fmt.Errorf("%w: %s", core.ErrSectionExists, name)
	}
	if b.scratch != "" {
		if err := b.f.SetSheetName(b.scratch, name); err != nil {
			return fmt.Errorf("failed to rename sheet %s: %w", b.scratch, err)
		}
		b.scratch = ""
		return nil
	}
	if _, err := b.f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	return nil
}

// Rows returns every row of the worksheet. Numbers formatted as dates are
// reported as date cells.
func (b *Book) Rows(section string) ([][]core.Cell, error) {
	if !core.HasSection(b, section) {
		return nil, fmt.Errorf("%w: %s", core.ErrSectionNotFound, section)
	}

	raw, err := b.f.GetRows(section, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", section, err)
	}

	out := make([][]core.Cell, len(raw))
	for r, row := range raw {
		cells := make([]core.Cell, len(row))
		for c, value := range row {
			if value == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			cell, err := b.readCell(section, axis, value)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s!%s: %w", section, axis, err)
			}
			cells[c] = cell
		}
		out[r] = cells
	}
	return out, nil
}

func (b *Book) readCell(section, axis, value string) (core.Cell, error) {
	typ, err := b.f.GetCellType(section, axis)
	if err != nil {
		return core.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeBool, excelize.CellTypeError:
		return core.Text(value), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(value); ok {
			return core.Date(t), nil
		}
		return core.Text(value), nil
	}

	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return core.Text(value), nil
	}

	isDate, err := b.isDateStyled(section, axis)
	if err != nil {
		return core.Cell{}, err
	}
	if isDate {
		t, err := excelize.ExcelDateToTime(serial, b.date1904)
		if err == nil {
			return core.Date(t), nil
		}
	}
	return core.Number(value), nil
}

func (b *Book) isDateStyled(section, axis string) (bool, error) {
	idx, err := b.f.GetCellStyle(section, axis)
	if err != nil {
		return false, err
	}
	if idx == 0 {
		return false, nil
	}
	if known, ok := b.dateStyles[idx]; ok {
		return known, nil
	}

	style, err := b.f.GetStyle(idx)
	if err != nil {
		return false, err
	}
	isDate := isDateFormat(style.NumFmt, style.CustomNumFmt)
	b.dateStyles[idx] = isDate
	return isDate, nil
}

// WriteRows overwrites the first len(row) cells of each row starting at start
// and removes the stale rows a previously larger section left behind. Cells to
// the right of a written row are kept.
func (b *Book) WriteRows(section string, start int, rows [][]core.Cell) error {
	if start < 1 {
		return core.ErrInvalidRow
	}
	if !core.HasSection(b, section) {
		return fmt.Errorf("%w: %s", core.ErrSectionNotFound, section)
	}

	existing, err := b.f.GetRows(section, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", section, err)
	}

	for i, row := range rows {
		rowNum := start + i
		for c, cell := range row {
			axis, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return err
			}
			if err := b.writeCell(section, axis, cell); err != nil {
				return fmt.Errorf("failed to write %s!%s: %w", section, axis, err)
			}
		}
	}

	last := start - 1 + len(rows)
	for r := len(existing); r > last; r-- {
		if err := b.f.RemoveRow(section, r); err != nil {
			return fmt.Errorf("failed to remove row %d of %s: %w", r, section, err)
		}
	}
	return nil
}

func (b *Book) writeCell(section, axis string, cell core.Cell) error {
	switch cell.Kind {
	case core.KindText:
		return b.f.SetCellStr(section, axis, cell.Text)
	case core.KindNumber:
		if n, err := strconv.Atoi(cell.Text); err == nil {
			return b.f.SetCellValue(section, axis, n)
		}
		if v, err := strconv.ParseFloat(cell.Text, 64); err == nil {
			return b.f.SetCellFloat(section, axis, v, -1, 64)
		}
		return b.f.SetCellStr(section, axis, cell.Text)
	case core.KindDate:
		return b.f.SetCellValue(section, axis, cell.Time.UTC())
	default:
		return b.f.SetCellValue(section, axis, nil)
	}
}

// Save writes the workbook back to its path.
func (b *Book) Save(context.Context) error {
	if b.created {
		if err := b.f.SaveAs(b.path); err != nil {
			return fmt.Errorf("failed to save workbook %s: %w", b.path, err)
		}
		b.created = false
		return nil
	}
	if err := b.f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", b.path, err)
	}
	return nil
}

// Close releases temporary files held by excelize.
func (b *Book) Close() error {
	return b.f.Close()
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// isDateFormat reports whether a number format renders a date or time.
// Built-in ids follow ECMA-376 18.8.30 plus the common CJK date ids.
func isDateFormat(id int, custom *string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if custom == nil {
		return false
	}
	return customIsDate(*custom)
}

func customIsDate(format string) bool {
	// Only the first section decides; the rest render negatives and text.
	if i := strings.IndexByte(format, ';'); i >= 0 {
		format = format[:i]
	}
	inQuote := false
	inBracket := false
	for i := 0; i < len(format); i++ {
		ch := format[i]
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '\\':
			i++
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		default:
			switch ch | 0x20 {
			case 'y', 'm', 'd', 'h', 's':
				return true
			}
		}
	}
	return false
}
