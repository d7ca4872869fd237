package intelligence

import (
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUrgencyLabel(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{-3, "⚠ overdue"},
		{-1, "⚠ overdue"},
		{0, "due today"},
		{1, "due tomorrow"},
		{2, "due in 2 days"},
		{12, "due in 12 days"},
	}
	for _, tc := range cases {
		due := testNow.AddDate(0, 0, tc.days)
		assert.Equal(t, tc.want, UrgencyLabel(due, testNow), "days=%d", tc.days)
	}
}

func TestUrgencyLabel_CalendarNotHours(t *testing.T) {
	now := time.Date(2025, 6, 16, 23, 50, 0, 0, time.UTC)
	due := time.Date(2025, 6, 17, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, "due tomorrow", UrgencyLabel(due, now))
}

func TestFormatTaskList(t *testing.T) {
	tasks := []domain.Task{
		{ID: "a", Course: "Applied Calculus", Title: "Quiz prep", Due: testNow.AddDate(0, 0, 3), Effort: domain.EffortLight, EstimatedMinutes: 40},
		{ID: "b", Course: "Systems Lab", Title: "Bug hunt", Due: testNow, Effort: domain.EffortModerate, EstimatedMinutes: 80},
	}
	want := "1. Quiz prep (Applied Calculus) — Thu, Jun 19, due in 3 days, ~40 mins (light effort)\n" +
		"2. Bug hunt (Systems Lab) — Mon, Jun 16, due today, ~80 mins (moderate effort)"
	assert.Equal(t, want, FormatTaskList(tasks, testNow))
}

func TestFormatTaskList_Empty(t *testing.T) {
	assert.Equal(t, "", FormatTaskList(nil, testNow))
}
