package testutil

import (
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithCourse(c string) TaskOption {
	return func(t *domain.Task) {
		t.Course = c
	}
}

func WithDue(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Due = d
	}
}

// WithDueIn sets the due time to 09:00 on the day offset days after now.
func WithDueIn(now time.Time, days int) TaskOption {
	return func(t *domain.Task) {
		y, m, d := now.Date()
		t.Due = time.Date(y, m, d+days, 9, 0, 0, 0, now.Location())
	}
}

func WithEffort(e domain.Effort) TaskOption {
	return func(t *domain.Task) {
		t.Effort = e
	}
}

func WithMinutes(n int) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedMinutes = n
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

// NewTestTask returns a valid moderate task due tomorrow.
func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:               uuid.New().String(),
		Course:           "Test Course",
		Title:            title,
		Due:              time.Now().Add(24 * time.Hour).Truncate(time.Second),
		Effort:           domain.EffortModerate,
		EstimatedMinutes: 60,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Profile options
type ProfileOption func(*domain.Profile)

func WithGoals(goals ...string) ProfileOption {
	return func(p *domain.Profile) {
		p.Goals = goals
	}
}

func WithSemesterWeek(w int) ProfileOption {
	return func(p *domain.Profile) {
		p.SemesterWeek = w
	}
}

func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	p := &domain.Profile{
		Name:         name,
		SemesterWeek: 3,
		Goals:        []string{"Pass every course"},
		Strengths:    []string{"Curiosity"},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestMessage returns a chat message stamped at the given time.
func NewTestMessage(role domain.Role, content string, at time.Time) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}
}
