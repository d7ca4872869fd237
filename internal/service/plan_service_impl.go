package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/scheduler"
)

type planService struct {
	tasks    repository.TaskRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPlanService(
	tasks repository.TaskRepo,
	plans repository.PlanRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{tasks: tasks, plans: plans, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) Current(ctx context.Context) (domain.WeeklyPlan, error) {
	plan, err := s.plans.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(plan) > 0 {
		return plan, nil
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("building plan: %w", err)
	}
	return scheduler.BuildWeeklyPlan(tasks), nil
}

func (s *planService) Regenerate(ctx context.Context) (plan domain.WeeklyPlan, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "regenerate-plan", time.Now(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks, err := repository.NewSQLiteTaskRepo(tx).List(ctx)
		if err != nil {
			return err
		}
		fields["task_count"] = len(tasks)
		plan = scheduler.BuildWeeklyPlan(tasks)
		return repository.NewSQLitePlanRepo(tx).Replace(ctx, plan)
	})
	if err != nil {
		return nil, fmt.Errorf("regenerating plan: %w", err)
	}
	return plan, nil
}
