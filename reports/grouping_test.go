package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dealOn(value float64, closeDate time.Time) models.Deal {
	return models.Deal{Value: value, CloseDate: closeDate}
}

func groupDealsByMonth(deals []models.Deal) []models.ChartDataItem {
	return GroupByMonth(deals,
		func(d models.Deal) time.Time { return d.CloseDate },
		func(d models.Deal) float64 { return d.Value })
}

func TestGroupByMonthScenario(t *testing.T) {
	deals := []models.Deal{
		dealOn(100, day(2024, time.January, 15)),
		dealOn(50, day(2024, time.January, 20)),
		dealOn(200, day(2024, time.February, 1)),
	}
	got := groupDealsByMonth(deals)
	require.Equal(t, []models.ChartDataItem{
		{Name: "Jan 2024", Value: 150},
		{Name: "Feb 2024", Value: 200},
	}, got)
}

func TestGroupByMonthCalendarOrderNotLexical(t *testing.T) {
	// "Apr 2024" < "Jan 2024" lexically; calendar order must win,
	// and Jan 2025 must land after Dec 2024.
	deals := []models.Deal{
		dealOn(1, day(2025, time.January, 2)),
		dealOn(2, day(2024, time.April, 10)),
		dealOn(3, day(2024, time.January, 3)),
		dealOn(4, day(2024, time.December, 31)),
	}
	got := groupDealsByMonth(deals)
	names := make([]string, len(got))
	for i, b := range got {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Jan 2024", "Apr 2024", "Dec 2024", "Jan 2025"}, names)
}

func TestGroupByMonthSkipsZeroDates(t *testing.T) {
	deals := []models.Deal{
		dealOn(100, day(2024, time.January, 15)),
		dealOn(999, time.Time{}), // no close date yet
	}
	got := groupDealsByMonth(deals)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Value)
}

func TestGroupByMonthSumPreservation(t *testing.T) {
	deals := []models.Deal{
		dealOn(10.5, day(2024, time.March, 1)),
		dealOn(20.25, day(2024, time.March, 31)),
		dealOn(30, day(2024, time.May, 15)),
		dealOn(0, day(2024, time.June, 1)),
	}
	var want float64
	for _, d := range deals {
		want += d.Value
	}
	var got float64
	for _, b := range groupDealsByMonth(deals) {
		got += b.Value
	}
	assert.Equal(t, want, got, "no record double-counted or dropped")
}

func TestGroupByOwnerFirstSeenOrder(t *testing.T) {
	deals := []models.Deal{
		{Owner: "Dana", Value: 100},
		{Owner: "Alex", Value: 50},
		{Owner: "Dana", Value: 25},
	}
	got := GroupByOwner(deals,
		func(d models.Deal) string { return d.Owner },
		func(d models.Deal) float64 { return d.Value })
	require.Equal(t, []models.ChartDataItem{
		{Name: "Dana", Value: 125},
		{Name: "Alex", Value: 50},
	}, got, "insertion order, no sorting")
}

func TestGroupBySourceDefaultsUnknown(t *testing.T) {
	leads := []models.Lead{
		{Source: "Web"},
		{Source: ""},
		{Source: "Web"},
		{Source: "Referral"},
	}
	got := GroupBySource(leads)
	require.Equal(t, []models.ChartDataItem{
		{Name: "Web", Value: 2},
		{Name: "Unknown", Value: 1},
		{Name: "Referral", Value: 1},
	}, got)
}

func TestFilterZeroBuckets(t *testing.T) {
	in := []models.ChartDataItem{
		{Name: "a", Value: 1},
		{Name: "b", Value: 0},
		{Name: "c", Value: 2},
	}
	got := FilterZeroBuckets(in)
	assert.Equal(t, []models.ChartDataItem{{Name: "a", Value: 1}, {Name: "c", Value: 2}}, got)
	assert.Len(t, in, 3, "input untouched")
}
