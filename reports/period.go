package reports

import (
	"errors"
	"fmt"
	"time"
)

// Period is a symbolic date-range selector resolved against the clock at
// call time.
type Period string

const (
	PeriodAllTime    Period = "all_time"
	PeriodToday      Period = "today"
	PeriodThisMonth  Period = "this_month"
	PeriodLastMonth  Period = "last_month"
	PeriodLast90Days Period = "last_90_days"
	PeriodYearToDate Period = "year_to_date"
)

// ErrInvalidPeriod is returned for an unrecognized period tag. Unknown tags
// fail loudly instead of widening to all-time, so caller bugs surface.
var ErrInvalidPeriod = errors.New("invalid period")

// DateRange bounds a report window. A nil bound means unbounded on that side.
type DateRange struct {
	Start *time.Time `json:"start_date"`
	End   *time.Time `json:"end_date"`
}

// Contains reports whether t falls inside the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// ResolvePeriod resolves a period tag to concrete bounds relative to now.
// Bounds are recomputed on every call; nothing is cached.
func ResolvePeriod(period Period) (DateRange, error) {
	return resolvePeriodAt(period, time.Now())
}

// resolvePeriodAt is the clock-injected core, split out so tests can pin "now".
func resolvePeriodAt(period Period, now time.Time) (DateRange, error) {
	switch period {
	case PeriodAllTime:
		return DateRange{}, nil

	case PeriodToday:
		start := startOfDay(now)
		end := endOfDay(now)
		return DateRange{Start: &start, End: &end}, nil

	case PeriodThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := endOfDay(start.AddDate(0, 1, -1))
		return DateRange{Start: &start, End: &end}, nil

	case PeriodLastMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		start := monthStart.AddDate(0, -1, 0)
		end := endOfDay(monthStart.AddDate(0, 0, -1))
		return DateRange{Start: &start, End: &end}, nil

	case PeriodLast90Days:
		// Open-ended going forward: only the lower bound is set.
		start := startOfDay(now.AddDate(0, 0, -90))
		return DateRange{Start: &start}, nil

	case PeriodYearToDate:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: &start}, nil
	}
	return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// endOfDay truncates to 23:59:59.999 (millisecond resolution, matching the
// inclusive upper-bound semantics of the report filters).
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
