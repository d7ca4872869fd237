package service

import (
	"context"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/importer"
)

type TaskService interface {
	// Add validates and stores a task, assigning an ID when empty.
	Add(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks ordered by due time.
	List(ctx context.Context) ([]domain.Task, error)
	Remove(ctx context.Context, id string) error
}

type ImportService interface {
	// ImportFile validates every task in a JSON import file and stores them
	// all in one transaction, or none.
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ProfileService interface {
	// Get returns the active profile. A configured override wins over the
	// stored row; with neither, the zero profile is returned.
	Get(ctx context.Context) (domain.Profile, error)
}

type PlanService interface {
	// Current returns the stored plan, building one from the task list
	// when nothing has been stored yet.
	Current(ctx context.Context) (domain.WeeklyPlan, error)
	Regenerate(ctx context.Context) (domain.WeeklyPlan, error)
}

type ChatService interface {
	Ask(ctx context.Context, message string) (*AskResult, error)
	History(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}

type DashboardService interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// AskResult is one completed assistant turn.
type AskResult struct {
	Response   domain.AssistantResponse
	Categories []string
	Question   domain.ChatMessage
	Answer     domain.ChatMessage
}

// ImportResult lists the tasks an import stored.
type ImportResult struct {
	Tasks []domain.Task
}

// Snapshot is everything the dashboard renders on load.
type Snapshot struct {
	Profile domain.Profile
	Tasks   []domain.Task
	Plan    domain.WeeklyPlan
	History []domain.ChatMessage
}
