package reports

import (
	"sort"
	"time"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// UnknownSource is the bucket name for leads without a source attribute
const UnknownSource = "Unknown"

// GroupByMonth buckets records by calendar month, summing valueOf per
// bucket. Labels take the form "Jan 2006". Records with a zero date are
// skipped. Output is ordered by the underlying month-year, not by label
// string, so "Feb 2024" follows "Jan 2024" and precedes "Jan 2025".
func GroupByMonth[T any](records []T, dateOf func(T) time.Time, valueOf func(T) float64) []models.ChartDataItem {
	type bucket struct {
		key   time.Time // first of month, UTC-normalized for comparison
		total float64
	}
	byMonth := make(map[time.Time]*bucket)
	for _, r := range records {
		d := dateOf(r)
		if d.IsZero() {
			continue
		}
		key := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := byMonth[key]
		if !ok {
			b = &bucket{key: key}
			byMonth[key] = b
		}
		b.total += valueOf(r)
	}

	buckets := make([]*bucket, 0, len(byMonth))
	for _, b := range byMonth {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].key.Before(buckets[j].key) })

	out := make([]models.ChartDataItem, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, models.ChartDataItem{Name: b.key.Format("Jan 2006"), Value: b.total})
	}
	return out
}

// GroupByOwner buckets records per distinct owner, summing valueOf.
// Buckets appear in first-seen order of the owner in the input; any sorting
// is the caller's concern.
func GroupByOwner[T any](records []T, ownerOf func(T) string, valueOf func(T) float64) []models.ChartDataItem {
	index := make(map[string]int)
	out := []models.ChartDataItem{}
	for _, r := range records {
		owner := ownerOf(r)
		i, ok := index[owner]
		if !ok {
			i = len(out)
			index[owner] = i
			out = append(out, models.ChartDataItem{Name: owner})
		}
		out[i].Value += valueOf(r)
	}
	return out
}

// GroupBySource counts leads per source in first-seen order. Leads without
// a source land in the "Unknown" bucket.
func GroupBySource(leads []models.Lead) []models.ChartDataItem {
	return GroupByOwner(leads, func(l models.Lead) string {
		if l.Source == "" {
			return UnknownSource
		}
		return l.Source
	}, func(models.Lead) float64 { return 1 })
}

// FilterZeroBuckets drops zero-value buckets from a chart series. Charts
// render zero slices poorly; table surfaces keep the full set, so callers
// apply this to the chart copy only.
func FilterZeroBuckets(items []models.ChartDataItem) []models.ChartDataItem {
	out := make([]models.ChartDataItem, 0, len(items))
	for _, it := range items {
		if it.Value != 0 {
			out = append(out, it)
		}
	}
	return out
}
