package service

import (
	"context"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/scheduler"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	observer UseCaseObserver
}

func NewTaskService(tasks repository.TaskRepo, observers ...UseCaseObserver) TaskService {
	return &taskService{tasks: tasks, observer: useCaseObserverOrNoop(observers)}
}

func (s *taskService) Add(ctx context.Context, t *domain.Task) (err error) {
	fields := map[string]any{"course": t.Course}
	defer observe(ctx, s.observer, "add-task", time.Now(), fields, &err)

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	fields["task_id"] = t.ID
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return scheduler.SortByDue(tasks), nil
}

func (s *taskService) Remove(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "remove-task", time.Now(), map[string]any{"task_id": id}, &err)
	return s.tasks.Delete(ctx, id)
}
