package reports

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

func logAt(ts time.Time, desc string) models.EntityActivityLog {
	return models.EntityActivityLog{
		ID:          uuid.New(),
		Timestamp:   ts,
		UserID:      "u1",
		UserName:    "Dana Reyes",
		EntityType:  models.EntityTypeLead,
		EntityID:    "L-100",
		Description: desc,
	}
}

func TestFilterActivityLogsAllFiltersAnded(t *testing.T) {
	base := day(2023, time.March, 10)
	logs := []models.EntityActivityLog{
		{UserID: "u1", UserName: "Dana", EntityType: "lead", ActivityType: "created", Timestamp: base, Description: "Created lead Acme"},
		{UserID: "u2", UserName: "Alex", EntityType: "lead", ActivityType: "created", Timestamp: base, Description: "Created lead Beta"},
		{UserID: "u1", UserName: "Dana", EntityType: "deal", ActivityType: "created", Timestamp: base, Description: "Created deal Acme"},
		{UserID: "u1", UserName: "Dana", EntityType: "lead", ActivityType: "updated", Timestamp: base, Description: "Updated lead Acme"},
	}
	got := FilterActivityLogs(logs, ActivityLogFilter{
		UserID:       "u1",
		EntityType:   "lead",
		ActivityType: "created",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Created lead Acme", got[0].Description)
}

func TestFilterActivityLogsEmptyFilterMatchesAll(t *testing.T) {
	logs := []models.EntityActivityLog{
		logAt(day(2023, time.March, 1), "a"),
		logAt(day(2023, time.March, 2), "b"),
	}
	got := FilterActivityLogs(logs, ActivityLogFilter{})
	assert.Len(t, got, 2)
}

func TestFilterActivityLogsSearchIsCaseInsensitive(t *testing.T) {
	logs := []models.EntityActivityLog{
		logAt(day(2023, time.March, 1), "Changed status of ACME lead"),
		logAt(day(2023, time.March, 2), "unrelated"),
	}
	got := FilterActivityLogs(logs, ActivityLogFilter{SearchTerm: "acme"})
	require.Len(t, got, 1)
	assert.Equal(t, "Changed status of ACME lead", got[0].Description)
}

func TestFilterActivityLogsSearchCoversNestedDetails(t *testing.T) {
	withFile := logAt(day(2023, time.March, 1), "attached a file")
	withFile.Details = &models.ActivityDetails{FileName: "Q1-Contract.pdf"}
	withTarget := logAt(day(2023, time.March, 2), "reassigned task")
	withTarget.Details = &models.ActivityDetails{TargetUserName: "Jordan Diaz"}
	plain := logAt(day(2023, time.March, 3), "plain entry")

	logs := []models.EntityActivityLog{withFile, withTarget, plain}

	got := FilterActivityLogs(logs, ActivityLogFilter{SearchTerm: "q1-contract"})
	require.Len(t, got, 1)
	assert.Equal(t, withFile.ID, got[0].ID)

	got = FilterActivityLogs(logs, ActivityLogFilter{SearchTerm: "jordan"})
	require.Len(t, got, 1)
	assert.Equal(t, withTarget.ID, got[0].ID)
}

func TestFilterActivityLogsSearchCoversEntityID(t *testing.T) {
	logs := []models.EntityActivityLog{logAt(day(2023, time.March, 1), "x")}
	got := FilterActivityLogs(logs, ActivityLogFilter{SearchTerm: "l-100"})
	assert.Len(t, got, 1)
}

func TestFilterActivityLogsPeriodBoundsInclusive(t *testing.T) {
	start := day(2023, time.March, 1)
	end := time.Date(2023, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	logs := []models.EntityActivityLog{
		logAt(start, "on start"),
		logAt(end, "on end"),
		logAt(start.Add(-time.Millisecond), "before"),
		logAt(end.Add(time.Millisecond), "after"),
	}
	got := FilterActivityLogs(logs, ActivityLogFilter{Range: DateRange{Start: &start, End: &end}})
	require.Len(t, got, 2)
	assert.Equal(t, "on start", got[0].Description)
	assert.Equal(t, "on end", got[1].Description)
}

func TestSortLogsByTimestampDescIsStable(t *testing.T) {
	ts := day(2023, time.March, 10)
	first := logAt(ts, "first in input")
	second := logAt(ts, "second in input")
	newest := logAt(ts.AddDate(0, 0, 1), "newest")

	in := []models.EntityActivityLog{first, second, newest}
	got := SortLogsByTimestampDesc(in)

	require.Len(t, got, 3)
	assert.Equal(t, "newest", got[0].Description)
	assert.Equal(t, "first in input", got[1].Description, "equal timestamps keep input order")
	assert.Equal(t, "second in input", got[2].Description)
	assert.Equal(t, "first in input", in[0].Description, "input not mutated")
}

func TestPaginateSecondPageOf60(t *testing.T) {
	items := make([]int, 60)
	for i := range items {
		items[i] = i + 1
	}
	p := Paginate(items, 2, 25)
	require.Len(t, p.PageItems, 25)
	assert.Equal(t, 26, p.PageItems[0])
	assert.Equal(t, 50, p.PageItems[24])
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 60, p.TotalItems)
}

func TestPaginateBeyondLastPage(t *testing.T) {
	items := make([]int, 10)
	p := Paginate(items, 2, 25)
	assert.Empty(t, p.PageItems)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, 10, p.TotalItems)
}

func TestPaginatePartialLastPage(t *testing.T) {
	items := []string{}
	for i := 0; i < 7; i++ {
		items = append(items, fmt.Sprintf("row-%d", i))
	}
	p := Paginate(items, 2, 5)
	require.Len(t, p.PageItems, 2)
	assert.Equal(t, "row-5", p.PageItems[0])
	assert.Equal(t, 2, p.TotalPages)
}
