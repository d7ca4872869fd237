package repository

import (
	"context"

	"github.com/alexanderramin/aurora/internal/domain"
)

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks in insertion order; callers sort for display.
	List(ctx context.Context) ([]domain.Task, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type ProfileRepo interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type PlanRepo interface {
	// Get returns the stored plan, or nil when none has been saved.
	Get(ctx context.Context) (domain.WeeklyPlan, error)
	Replace(ctx context.Context, plan domain.WeeklyPlan) error
}

type MessageRepo interface {
	Append(ctx context.Context, m *domain.ChatMessage) error
	// ListRecent returns the newest limit messages in chronological order.
	// A non-positive limit returns the whole history.
	ListRecent(ctx context.Context, limit int) ([]domain.ChatMessage, error)
	DeleteAll(ctx context.Context) error
}
