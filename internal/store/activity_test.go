package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/testutil"
	"github.com/thenoetrevino/orderbook/internal/workbook/core"
)

func TestPeriod_Contains(t *testing.T) {
	may3 := testutil.Day(2023, time.May, 3)

	assert.True(t, Month(2023, time.May).Contains(may3))
	assert.False(t, Month(2023, time.June).Contains(may3))
	assert.True(t, Year(2023).Contains(may3))
	assert.False(t, Year(2022).Contains(may3))
	assert.Equal(t, "2023-05", Month(2023, time.May).String())
	assert.Equal(t, "2023", Year(2023).String())
}

func TestMostActiveOrganization_Month(t *testing.T) {
	s, _, _ := loadFixture(t)

	org, ok := s.MostActiveOrganization(Month(2023, time.May))

	require.True(t, ok)
	assert.Equal(t, "ACME", org.Name)
}

func TestMostActiveOrganization_WholeYear(t *testing.T) {
	s, _, _ := loadFixture(t)

	// 2023: ACME 3, Globex 3, unknown 99 1. The tie goes to the lower code.
	assert.Equal(t, []Activity{
		{OrgCode: 1, Count: 3},
		{OrgCode: 2, Count: 3},
		{OrgCode: 99, Count: 1},
	}, s.RankOrganizations(Year(2023)))

	org, ok := s.MostActiveOrganization(Year(2023))
	require.True(t, ok)
	assert.Equal(t, 1, org.Code)

	org, ok = s.MostActiveOrganization(Month(2023, time.June))
	require.True(t, ok)
	assert.Equal(t, "Globex", org.Name)
}

func TestMostActiveOrganization_TieBreakIgnoresLoadOrder(t *testing.T) {
	book := testutil.FixtureBook()
	header, err := book.Rows(testutil.SectionOrders)
	require.NoError(t, err)
	book.SetRows(testutil.SectionOrders, [][]core.Cell{
		header[0],
		{core.Int(1), core.Int(10), core.Int(3), core.Int(1), core.Int(1), core.Date(testutil.Day(2024, time.March, 1))},
		{core.Int(2), core.Int(10), core.Int(2), core.Int(2), core.Int(1), core.Date(testutil.Day(2024, time.March, 2))},
	})
	s, _ := loadBook(t, book)

	org, ok := s.MostActiveOrganization(Month(2024, time.March))

	require.True(t, ok)
	assert.Equal(t, 2, org.Code)
}

func TestMostActiveOrganization_None(t *testing.T) {
	s, _, _ := loadFixture(t)

	_, ok := s.MostActiveOrganization(Year(2021))
	assert.False(t, ok, "no records in the period")

	_, ok = s.MostActiveOrganization(Month(2023, time.July))
	assert.False(t, ok, "the winning code has no organization")

	assert.Empty(t, s.RankOrganizations(Month(2023, time.August)))
}
