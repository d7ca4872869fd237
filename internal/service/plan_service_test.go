package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/scheduler"
	"github.com/alexanderramin/aurora/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanService_CurrentBuildsWithoutStoring(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	require.NoError(t, r.tasks.Create(ctx, testutil.NewTestTask("Essay", testutil.WithCourse("Writing"))))

	plan, err := NewPlanService(r.tasks, r.plans, r.uow).Current(ctx)
	require.NoError(t, err)
	require.Len(t, plan, 7)
	assert.Equal(t, []string{"Writing: Essay"}, plan[0].FocusAreas)

	stored, err := r.plans.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "Current must not persist a derived plan")
}

func TestPlanService_CurrentPrefersStored(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	stored := scheduler.BuildWeeklyPlan(nil)
	require.NoError(t, r.plans.Replace(ctx, stored))
	require.NoError(t, r.tasks.Create(ctx, testutil.NewTestTask("Essay")))

	plan, err := NewPlanService(r.tasks, r.plans, r.uow).Current(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(stored, plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanService_RegenerateStores(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	require.NoError(t, r.plans.Replace(ctx, scheduler.BuildWeeklyPlan(nil)))
	task := testutil.NewTestTask("Quiz prep", testutil.WithCourse("Calc"))
	require.NoError(t, r.tasks.Create(ctx, task))

	plan, err := NewPlanService(r.tasks, r.plans, r.uow).Regenerate(ctx)
	require.NoError(t, err)

	want := scheduler.BuildWeeklyPlan([]domain.Task{*task})
	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("regenerated plan mismatch (-want +got):\n%s", diff)
	}
	stored, err := r.plans.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, plan, stored)
}

func TestPlanService_RegenerateRollsBack(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	original := scheduler.BuildWeeklyPlan(nil)
	require.NoError(t, r.plans.Replace(ctx, original))
	require.NoError(t, r.tasks.Create(ctx, testutil.NewTestTask("Essay")))

	boom := errors.New("disk full")
	// Exec 1 clears the table, exec 3 fails midway through the inserts.
	uow := &testutil.FailOnNthExecUoW{DB: r.database, FailOn: 3, Err: boom}

	_, err := NewPlanService(r.tasks, r.plans, uow).Regenerate(ctx)
	require.ErrorIs(t, err, boom)

	stored, err := r.plans.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, stored, "failed regenerate must leave the old plan intact")
}
