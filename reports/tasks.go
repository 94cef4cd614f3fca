package reports

import (
	"sort"

	"github.com/Venus2Mice/crm-ad-dash-sub001/models"
)

// SortTasksByDueDate returns a copy sorted ascending by due date, soonest
// first. Tasks without a due date sort last; equal due dates keep their
// relative input order.
func SortTasksByDueDate(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DueDate, out[j].DueDate
		if di.IsZero() {
			return false
		}
		if dj.IsZero() {
			return true
		}
		return di.Before(dj)
	})
	return out
}

// FilterTasksByAssignee keeps tasks assigned to the given user; an empty
// assignee matches all.
func FilterTasksByAssignee(tasks []models.Task, assignee string) []models.Task {
	if assignee == "" {
		return tasks
	}
	out := []models.Task{}
	for _, t := range tasks {
		if t.AssignedTo == assignee {
			out = append(out, t)
		}
	}
	return out
}
