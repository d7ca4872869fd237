package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func validTask() Task {
	return Task{
		ID:               "algorithms-problem-set",
		Course:           "Algorithms II",
		Title:            "Dynamic programming practice set",
		Due:              testNow.AddDate(0, 0, 1),
		Effort:           EffortIntensive,
		EstimatedMinutes: 110,
	}
}

func TestTaskValidate_OK(t *testing.T) {
	require.NoError(t, validTask().Validate())
}

func TestTaskValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Task)
		want   string
	}{
		{"blank id", func(t *Task) { t.ID = "  " }, "id"},
		{"blank course", func(t *Task) { t.Course = "" }, "course"},
		{"blank title", func(t *Task) { t.Title = "" }, "title"},
		{"zero due", func(t *Task) { t.Due = time.Time{} }, "due"},
		{"unknown effort", func(t *Task) { t.Effort = "heroic" }, "heroic"},
		{"zero minutes", func(t *Task) { t.EstimatedMinutes = 0 }, "minutes"},
		{"negative minutes", func(t *Task) { t.EstimatedMinutes = -5 }, "minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := validTask()
			tc.mutate(&task)
			err := task.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTask))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestTaskFocusLabel(t *testing.T) {
	assert.Equal(t, "Algorithms II: Dynamic programming practice set", validTask().FocusLabel())
}

func TestParseEffort(t *testing.T) {
	e, err := ParseEffort(" Moderate ")
	require.NoError(t, err)
	assert.Equal(t, EffortModerate, e)

	_, err = ParseEffort("extreme")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestCalendarDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
	cases := []struct {
		due  time.Time
		want int
	}{
		{time.Date(2025, 6, 15, 0, 5, 0, 0, time.UTC), 0},
		{time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC), 1},
		{time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC), -1},
		{time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC), 5},
		{time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC), 16},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CalendarDaysUntil(tc.due, now), "due=%s", tc.due)
	}
}

func TestCalendarDaysUntil_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2025, 6, 16, 8, 0, 0, 0, loc)
	// 23:00 UTC on the 15th is 09:00 on the 16th in now's zone.
	due := time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, CalendarDaysUntil(due, now))
}

func TestParseDue(t *testing.T) {
	loc := time.FixedZone("test", 2*60*60)

	got, err := ParseDue("2025-06-18", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 18, 9, 0, 0, 0, loc), got)

	got, err = ParseDue("2025-06-18T14:30:00Z", loc)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 6, 18, 14, 30, 0, 0, time.UTC)))

	_, err = ParseDue("next tuesday", loc)
	assert.ErrorIs(t, err, ErrInvalidTask)
}
