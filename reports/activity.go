package reports

import (
	"math"
	"sort"
	"strings"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// ActivityLogFilter holds the activity feed filter dimensions. An empty
// string on any dimension means "match all" for that dimension.
type ActivityLogFilter struct {
	SearchTerm   string
	UserID       string
	EntityType   string
	ActivityType string
	Range        DateRange // zero value (both bounds nil) matches all
}

// FilterActivityLogs returns the entries passing ALL provided filters:
// case-insensitive substring search across description, user name, entity
// id and the fileName/targetUserName detail fields; exact match on user id,
// entity type and activity type; timestamp within the range. Input order is
// preserved and the input slice is never mutated.
func FilterActivityLogs(logs []models.EntityActivityLog, f ActivityLogFilter) []models.EntityActivityLog {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := []models.EntityActivityLog{}
	for _, entry := range logs {
		if f.UserID != "" && entry.UserID != f.UserID {
			continue
		}
		if f.EntityType != "" && entry.EntityType != f.EntityType {
			continue
		}
		if f.ActivityType != "" && entry.ActivityType != f.ActivityType {
			continue
		}
		if !f.Range.Contains(entry.Timestamp) {
			continue
		}
		if term != "" && !matchesSearchTerm(entry, term) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func matchesSearchTerm(entry models.EntityActivityLog, term string) bool {
	if containsFold(entry.Description, term) ||
		containsFold(entry.UserName, term) ||
		containsFold(entry.EntityID, term) {
		return true
	}
	if entry.Details != nil {
		return containsFold(entry.Details.FileName, term) ||
			containsFold(entry.Details.TargetUserName, term)
	}
	return false
}

// containsFold does a case-insensitive substring check; term is already
// lowercased by the caller.
func containsFold(s, term string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), term)
}

// SortLogsByTimestampDesc returns a copy sorted most-recent-first. The sort
// is stable: entries with equal timestamps keep their relative input order.
func SortLogsByTimestampDesc(logs []models.EntityActivityLog) []models.EntityActivityLog {
	out := make([]models.EntityActivityLog, len(logs))
	copy(out, logs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// Page is one page of a sliced result set
type Page[T any] struct {
	PageItems  []T `json:"page_items"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Paginate slices items into 1-indexed pages of pageSize. A page past the
// end yields an empty slice, never an error; callers reset page to 1 when
// any filter changes.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	p := Page[T]{
		PageItems:  []T{},
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		TotalItems: total,
	}
	start := (page - 1) * pageSize
	if start >= total {
		return p
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	p.PageItems = items[start:end]
	return p
}
