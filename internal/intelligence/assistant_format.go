package intelligence

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
)

// DueDateLayout renders due dates as weekday plus month and day.
const DueDateLayout = "Mon, Jan 2"

// UrgencyLabel describes how far away due is from now in calendar days.
func UrgencyLabel(due, now time.Time) string {
	days := domain.CalendarDaysUntil(due, now)
	switch {
	case days < 0:
		return "⚠ overdue"
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %d days", days)
	}
}

// FormatTaskList renders tasks as a numbered list, one task per line.
func FormatTaskList(tasks []domain.Task, now time.Time) string {
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("%d. %s (%s) — %s, %s, ~%d mins (%s effort)",
			i+1, t.Title, t.Course,
			t.Due.In(now.Location()).Format(DueDateLayout),
			UrgencyLabel(t.Due, now),
			t.EstimatedMinutes, t.Effort)
	}
	return strings.Join(lines, "\n")
}
