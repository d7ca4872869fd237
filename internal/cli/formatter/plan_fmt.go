package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/scheduler"
)

// FormatPlan renders the weekly focus map. The entry for now's weekday is
// marked.
func FormatPlan(plan domain.WeeklyPlan, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Weekly focus map"))
	b.WriteString("\n")

	today := todayIndex(now)
	for i, entry := range plan {
		day := StyleBold.Render(entry.Day)
		if i == today {
			day = StyleGreen.Bold(true).Render(entry.Day + " ◂ today")
		}
		b.WriteString("\n")
		b.WriteString(day)
		b.WriteString("\n")
		for _, focus := range entry.FocusAreas {
			b.WriteString("  ")
			b.WriteString(StyleDim.Render("• "))
			b.WriteString(focus)
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(StylePurple.Render("↯ " + entry.EnergyTip))
		b.WriteString("\n")
	}
	return b.String()
}

// todayIndex maps now's weekday onto the Monday-first plan order.
func todayIndex(now time.Time) int {
	wd := now.Weekday()
	for i, name := range scheduler.Weekdays {
		if name == wd.String() {
			return i
		}
	}
	return -1
}
