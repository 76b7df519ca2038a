package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/orderbook/internal/models"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

// FieldKind is the Go type a column is parsed into.
type FieldKind int

const (
	FieldInt FieldKind = iota
	FieldText
	FieldDecimal
	FieldDate
)

// Policy decides what happens when a cell cannot be parsed.
type Policy int

const (
	// Strict fails the whole load.
	Strict Policy = iota
	// LenientDefault logs a warning and uses the zero value.
	LenientDefault
)

// Field declares one positional column of a section.
type Field struct {
	Name   string
	Kind   FieldKind
	Policy Policy
}

// Schema is the ordered column layout of a section.
type Schema []Field

// Columns of each section, in sheet order.
var (
	OrganizationSchema = Schema{
		{Name: "code", Kind: FieldInt},
		{Name: "name", Kind: FieldText},
		{Name: "address", Kind: FieldText},
		{Name: "contact", Kind: FieldText},
	}

	CatalogItemSchema = Schema{
		{Name: "code", Kind: FieldInt},
		{Name: "name", Kind: FieldText},
		{Name: "unit", Kind: FieldText},
		{Name: "price", Kind: FieldDecimal, Policy: LenientDefault},
	}

	PurchaseRecordSchema = Schema{
		{Name: "id", Kind: FieldInt},
		{Name: "item_code", Kind: FieldInt},
		{Name: "org_code", Kind: FieldInt},
		{Name: "sequence_number", Kind: FieldInt},
		{Name: "quantity", Kind: FieldInt},
		{Name: "date", Kind: FieldDate},
	}
)

// checkHeader fails fast when the header is narrower than the schema, which
// would otherwise shift every field silently.
func (s Schema) checkHeader(section string, header []core.Cell) error {
	width := 0
	for _, c := range header {
		if !c.IsBlank() {
			width++
		}
	}
	if width < len(s) {
		return &SchemaError{
			Section: section,
			Reason:  fmt.Sprintf("header has %d columns, want at least %d (%s)", width, len(s), s.names()),
		}
	}
	return nil
}

func (s Schema) names() string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

// value holds one parsed cell; only the member matching the field kind is set.
type value struct {
	i int
	s string
	d decimal.Decimal
	t time.Time
}

func organizationFrom(v []value) models.Organization {
	return models.Organization{
		Code:          v[0].i,
		Name:          v[1].s,
		Address:       v[2].s,
		ContactPerson: v[3].s,
	}
}

func catalogItemFrom(v []value) models.CatalogItem {
	return models.CatalogItem{
		Code:      v[0].i,
		Name:      v[1].s,
		Unit:      v[2].s,
		UnitPrice: v[3].d,
	}
}

func purchaseRecordFrom(v []value) models.PurchaseRecord {
	return models.PurchaseRecord{
		RecordID:       v[0].i,
		ItemCode:       v[1].i,
		OrgCode:        v[2].i,
		SequenceNumber: v[3].i,
		Quantity:       v[4].i,
		OrderedOn:      v[5].t,
	}
}

func organizationRow(o models.Organization) []core.Cell {
	return []core.Cell{core.Int(o.Code), core.Text(o.Name), core.Text(o.Address), core.Text(o.ContactPerson)}
}

func catalogItemRow(i models.CatalogItem) []core.Cell {
	return []core.Cell{core.Int(i.Code), core.Text(i.Name), core.Text(i.Unit), core.Number(i.UnitPrice.String())}
}

func purchaseRecordRow(r models.PurchaseRecord) []core.Cell {
	return []core.Cell{
		core.Int(r.RecordID),
		core.Int(r.ItemCode),
		core.Int(r.OrgCode),
		core.Int(r.SequenceNumber),
		core.Int(r.Quantity),
		core.Date(r.OrderedOn),
	}
}
