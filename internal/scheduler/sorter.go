package scheduler

import (
	"sort"

	"github.com/alexanderramin/aurora/internal/domain"
)

// SortByDue returns a copy of tasks ordered by due time, earliest first.
// The sort is stable: tasks due at the same instant keep their input order.
// The result is never nil, so an empty input yields an empty slice.
func SortByDue(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Due.Before(sorted[j].Due)
	})
	return sorted
}
