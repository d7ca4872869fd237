package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/charmbracelet/lipgloss"
)

// ChatTimeLayout stamps chat messages, e.g. "Mon, 3:04 PM".
const ChatTimeLayout = "Mon, 3:04 PM"

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// UrgencyStyled returns the assistant's urgency label colored by how close
// the due date is.
func UrgencyStyled(due, now time.Time) string {
	days := domain.CalendarDaysUntil(due, now)
	return UrgencyColor(days).Render(intelligence.UrgencyLabel(due, now))
}

// DueDate renders a due time in the "Mon, Jan 2" form used across the app.
func DueDate(due, now time.Time) string {
	return due.In(now.Location()).Format(intelligence.DueDateLayout)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Bullets renders items as a dimmed-bullet list, one per line.
func Bullets(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StyleDim.Render("• ") + item)
	}
	return b.String()
}
