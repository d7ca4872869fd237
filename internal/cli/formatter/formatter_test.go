package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow is a Monday.
var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func dueIn(days int) time.Time {
	return time.Date(2025, 6, 16+days, 9, 0, 0, 0, time.UTC)
}

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "systems-lab-0001", Course: "Systems Programming Lab", Title: "Threading bug hunt recap", Due: dueIn(0), Effort: domain.EffortModerate, EstimatedMinutes: 80},
		{ID: "calc-quiz", Course: "Applied Calculus", Title: "Quiz prep", Due: dueIn(3), Effort: domain.EffortLight, EstimatedMinutes: 40},
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"},
		{-5, "0m"},
		{45, "45m"},
		{60, "1h"},
		{110, "1h 50m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.in))
	}
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("systems-lab-0001"), "systems-")
	assert.NotContains(t, TruncID("systems-lab-0001"), "lab-0001")
}

func TestEffortBadge(t *testing.T) {
	assert.Contains(t, EffortBadge(domain.EffortIntensive), "INTENSIVE")
	assert.Contains(t, EffortBadge(""), "UNKNOWN")
}

func TestUrgencyColor(t *testing.T) {
	assert.Equal(t, StyleRed, UrgencyColor(-1))
	assert.Equal(t, StyleRed, UrgencyColor(2))
	assert.Equal(t, StyleYellow, UrgencyColor(5))
	assert.Equal(t, StyleFg, UrgencyColor(12))
}

func TestFormatTasks(t *testing.T) {
	out := FormatTasks(sampleTasks(), testNow)

	assert.Contains(t, out, "ASSIGNMENTS ON RADAR")
	assert.Contains(t, out, "Mon, Jun 16")
	assert.Contains(t, out, "due today")
	assert.Contains(t, out, "due in 3 days")
	assert.Contains(t, out, "1h 20m")
	assert.Contains(t, out, "2 tasks")
	assert.Less(t, strings.Index(out, "Threading bug hunt"), strings.Index(out, "Quiz prep"))
}

func TestFormatTasks_Empty(t *testing.T) {
	assert.Contains(t, FormatTasks(nil, testNow), "aurora task add")
}

func TestFormatPlan_MarksToday(t *testing.T) {
	out := FormatPlan(scheduler.BuildWeeklyPlan(sampleTasks()), testNow)

	assert.Contains(t, out, "Monday ◂ today")
	assert.Contains(t, out, "Systems Programming Lab: Threading bug hunt recap")
	assert.Contains(t, out, scheduler.EmptyDayFocus)
	assert.Equal(t, 1, strings.Count(out, "◂ today"))
}

func TestFormatHistory(t *testing.T) {
	msgs := []domain.ChatMessage{
		{ID: "1", Role: domain.RoleAssistant, Content: "Hey Jordan", CreatedAt: testNow},
		{ID: "2", Role: domain.RoleUser, Content: "plan my week", CreatedAt: testNow.Add(time.Minute)},
	}
	out := FormatHistory(msgs)

	assert.Contains(t, out, AssistantName)
	assert.Contains(t, out, "You")
	assert.Less(t, strings.Index(out, "Hey Jordan"), strings.Index(out, "plan my week"))
	assert.Contains(t, FormatHistory(nil), "No messages yet")
}

func TestFormatRecommendations(t *testing.T) {
	assert.Empty(t, FormatRecommendations(nil, testNow))

	out := FormatRecommendations(sampleTasks()[:1], testNow)
	assert.Contains(t, out, "RECOMMENDED NEXT")
	assert.Contains(t, out, "Threading bug hunt recap")
}

func TestFormatFollowUps(t *testing.T) {
	assert.Empty(t, FormatFollowUps(nil))

	out := FormatFollowUps([]string{"first", "second"})
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
}

func TestFormatCategories(t *testing.T) {
	assert.Contains(t, FormatCategories(nil), "general")
	assert.Contains(t, FormatCategories([]string{"schedule", "exam"}), "schedule, exam")
}

func TestFormatProfile(t *testing.T) {
	out := FormatProfile(domain.Profile{
		Name:         "Jordan",
		SemesterWeek: 6,
		Goals:        []string{"Maintain A- average"},
		Strengths:    []string{"Pattern recognition"},
	})
	assert.Contains(t, out, "Jordan")
	assert.Contains(t, out, "week #6")
	assert.Contains(t, out, "Maintain A- average")
	assert.Contains(t, out, "Pattern recognition")
}

func TestFormatResourcesAndAchievements(t *testing.T) {
	res := FormatResources([]domain.Resource{{Title: "Playground", Description: "Animate graphs", URL: "https://visualgo.net/en", Tag: "Interactive"}})
	assert.Contains(t, res, "[Interactive]")
	assert.Contains(t, res, "https://visualgo.net/en")

	ach := FormatAchievements([]domain.Achievement{{Title: "Consistent streak", Detail: "5 focus sessions"}})
	assert.Contains(t, ach, "Consistent streak")
	assert.Contains(t, ach, "5 focus sessions")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"long-cell", "x"}, {"s", "y"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "x"), strings.Index(lines[3], "y"))
}

func TestHeader_UpperCasesWithUnderline(t *testing.T) {
	out := Header("Weekly focus map")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "WEEKLY FOCUS MAP")
	assert.NotContains(t, out, "Weekly focus map")
	assert.Contains(t, lines[1], strings.Repeat("─", len("WEEKLY FOCUS MAP")))
}
