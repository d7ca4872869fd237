package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

func makeTask(id string, dueOffsetDays int) domain.Task {
	return domain.Task{
		ID:               id,
		Course:           "Course " + id,
		Title:            "Title " + id,
		Due:              testNow.AddDate(0, 0, dueOffsetDays),
		Effort:           domain.EffortModerate,
		EstimatedMinutes: 30,
	}
}

func ids(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestSortByDue_EarliestFirst(t *testing.T) {
	tasks := []domain.Task{makeTask("c", 3), makeTask("a", 0), makeTask("b", 1)}
	assert.Equal(t, []string{"a", "b", "c"}, ids(SortByDue(tasks)))
}

func TestSortByDue_StableForEqualDue(t *testing.T) {
	tasks := []domain.Task{makeTask("x", 2), makeTask("first", 1), makeTask("second", 1), makeTask("third", 1)}
	assert.Equal(t, []string{"first", "second", "third", "x"}, ids(SortByDue(tasks)))
}

func TestSortByDue_DoesNotMutateInput(t *testing.T) {
	tasks := []domain.Task{makeTask("b", 1), makeTask("a", 0)}
	_ = SortByDue(tasks)
	assert.Equal(t, []string{"b", "a"}, ids(tasks))
}

func TestSortByDue_EmptyIsNonNil(t *testing.T) {
	sorted := SortByDue(nil)
	require.NotNil(t, sorted)
	assert.Empty(t, sorted)
}
