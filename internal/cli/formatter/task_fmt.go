package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
)

// FormatTasks renders tasks as a table in the order given, which callers
// keep due-ascending.
func FormatTasks(tasks []domain.Task, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Assignments on radar"))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(Dim("Nothing pinned. Add one with: aurora task add"))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"ID", "DUE", "WHEN", "COURSE", "TASK", "EFFORT", "TIME"}
	rows := make([][]string, 0, len(tasks))
	var total int
	for _, t := range tasks {
		total += t.EstimatedMinutes
		rows = append(rows, []string{
			TruncID(t.ID),
			DueDate(t.Due, now),
			UrgencyStyled(t.Due, now),
			StyleBlue.Render(t.Course),
			t.Title,
			EffortBadge(t.Effort),
			FormatMinutes(t.EstimatedMinutes),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString(Dim(fmt.Sprintf("%d tasks · %s estimated", len(tasks), FormatMinutes(total))))
	b.WriteString("\n")
	return b.String()
}

// FormatTaskCard renders a single task, as shown after adding one or in
// the recommendations panel.
func FormatTaskCard(t domain.Task, now time.Time) string {
	return fmt.Sprintf("%s  %s\n  %s · %s · %s",
		StyleBlue.Render(t.Course),
		Bold(t.Title),
		DueDate(t.Due, now),
		UrgencyStyled(t.Due, now),
		FormatMinutes(t.EstimatedMinutes),
	)
}
