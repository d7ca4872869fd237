package scheduler

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertWeekdayOrder(t *testing.T, plan domain.WeeklyPlan) {
	t.Helper()
	require.Len(t, plan, 7)
	for i, entry := range plan {
		assert.Equal(t, Weekdays[i], entry.Day)
	}
}

func TestBuildWeeklyPlan_NoTasks(t *testing.T) {
	plan := BuildWeeklyPlan(nil)
	assertWeekdayOrder(t, plan)
	for i, entry := range plan {
		assert.Equal(t, []string{EmptyDayFocus}, entry.FocusAreas)
		assert.Equal(t, wellbeingTips[i%len(wellbeingTips)], entry.EnergyTip, "day %d tip uses zero focus areas", i)
	}
}

func TestBuildWeeklyPlan_RoundRobinByDueRank(t *testing.T) {
	// Input order is scrambled; ranks by due are a0..a4.
	tasks := []domain.Task{makeTask("a3", 3), makeTask("a0", 0), makeTask("a4", 5), makeTask("a1", 1), makeTask("a2", 2)}
	plan := BuildWeeklyPlan(tasks)
	assertWeekdayOrder(t, plan)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("a%d", i)
		assert.Equal(t, []string{"Course " + id + ": Title " + id}, plan[i].FocusAreas)
		assert.Equal(t, wellbeingTips[(i+1)%len(wellbeingTips)], plan[i].EnergyTip)
	}
	assert.Equal(t, []string{EmptyDayFocus}, plan[5].FocusAreas)
	assert.Equal(t, []string{EmptyDayFocus}, plan[6].FocusAreas)
	assert.Equal(t, wellbeingTips[5%len(wellbeingTips)], plan[5].EnergyTip)
}

func TestBuildWeeklyPlan_CapsTwoPerDay(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 22; i++ {
		tasks = append(tasks, makeTask(fmt.Sprintf("t%02d", i), i))
	}
	plan := BuildWeeklyPlan(tasks)
	assertWeekdayOrder(t, plan)

	seen := map[string]bool{}
	for i, entry := range plan {
		require.Len(t, entry.FocusAreas, 2, "day %d", i)
		for _, f := range entry.FocusAreas {
			assert.False(t, seen[f], "%q appears on more than one day", f)
			seen[f] = true
		}
		assert.Equal(t, wellbeingTips[(i+2)%len(wellbeingTips)], entry.EnergyTip)
	}
	// Monday gets ranks 0 and 7; rank 14 and 21 are dropped.
	assert.Equal(t, []string{"Course t00: Title t00", "Course t07: Title t07"}, plan[0].FocusAreas)
	assert.False(t, seen["Course t14: Title t14"])
	assert.False(t, seen["Course t21: Title t21"])
}

func TestBuildWeeklyPlan_EightTasksWrapToMonday(t *testing.T) {
	var tasks []domain.Task
	for i := 0; i < 8; i++ {
		tasks = append(tasks, makeTask(fmt.Sprintf("t%d", i), i))
	}
	plan := BuildWeeklyPlan(tasks)
	assert.Len(t, plan[0].FocusAreas, 2)
	for i := 1; i < 7; i++ {
		assert.Len(t, plan[i].FocusAreas, 1)
	}
}

func TestBuildWeeklyPlan_Deterministic(t *testing.T) {
	tasks := []domain.Task{makeTask("b", 2), makeTask("a", 1), makeTask("c", 2), makeTask("d", -1)}
	first := BuildWeeklyPlan(tasks)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, BuildWeeklyPlan(tasks)); diff != "" {
			t.Fatalf("plan changed between calls (-first +again):\n%s", diff)
		}
	}
}

func TestWellbeingTips_ReturnsCopy(t *testing.T) {
	tips := WellbeingTips()
	tips[0] = "changed"
	assert.NotEqual(t, "changed", wellbeingTips[0])
}
