package scheduler

import "github.com/alexanderramin/aurora/internal/domain"

const (
	// maxFocusAreasPerDay caps how many tasks land on one weekday.
	maxFocusAreasPerDay = 2

	// EmptyDayFocus fills a weekday that received no tasks.
	EmptyDayFocus = "Create reflections or review concept summaries to stay warm."
)

// Weekdays is the fixed plan order.
var Weekdays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var wellbeingTips = []string{
	"Take a 90-second breathing reset between context switches.",
	"Stretch your shoulders and wrists, then grab water—hydration keeps the brain engaged.",
	"A 5-minute mind dump clears mental clutter before deep work.",
	"Batch quick replies after focus blocks so they don't break your flow.",
}

// WellbeingTips returns a copy of the rotating energy tips.
func WellbeingTips() []string {
	out := make([]string, len(wellbeingTips))
	copy(out, wellbeingTips)
	return out
}

// BuildWeeklyPlan deals tasks round-robin across the seven weekdays by their
// due-date rank: the task at sorted position p goes to weekday p mod 7, and
// each weekday keeps its first two. The energy tip rotates with the weekday
// index plus the number of tasks the day received.
//
// The result always has seven entries and depends only on tasks.
func BuildWeeklyPlan(tasks []domain.Task) domain.WeeklyPlan {
	sorted := SortByDue(tasks)

	plan := make(domain.WeeklyPlan, len(Weekdays))
	for i, day := range Weekdays {
		var focus []string
		for p := i; p < len(sorted) && len(focus) < maxFocusAreasPerDay; p += len(Weekdays) {
			focus = append(focus, sorted[p].FocusLabel())
		}

		tip := wellbeingTips[(i+len(focus))%len(wellbeingTips)]
		if len(focus) == 0 {
			focus = []string{EmptyDayFocus}
		}

		plan[i] = domain.WeeklyPlanEntry{
			Day:        day,
			FocusAreas: focus,
			EnergyTip:  tip,
		}
	}
	return plan
}
