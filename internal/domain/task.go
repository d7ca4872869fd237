package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidTask marks a task rejected at the storage or transport boundary.
var ErrInvalidTask = errors.New("invalid task")

// Task is a student deliverable. Tasks are read-only once created; the
// planner and the assistant only inspect them.
type Task struct {
	ID               string    `json:"id"`
	Course           string    `json:"course"`
	Title            string    `json:"title"`
	Due              time.Time `json:"due"`
	Effort           Effort    `json:"effort"`
	EstimatedMinutes int       `json:"estimated_minutes"`
}

// Validate checks the fields that ordering and urgency depend on.
func (t Task) Validate() error {
	switch {
	case strings.TrimSpace(t.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidTask)
	case strings.TrimSpace(t.Course) == "":
		return fmt.Errorf("%w: course is required", ErrInvalidTask)
	case strings.TrimSpace(t.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidTask)
	case t.Due.IsZero():
		return fmt.Errorf("%w: due date is required", ErrInvalidTask)
	case !ValidEfforts[t.Effort]:
		return fmt.Errorf("%w: effort %q must be light, moderate or intensive", ErrInvalidTask, t.Effort)
	case t.EstimatedMinutes <= 0:
		return fmt.Errorf("%w: estimated minutes must be positive, got %d", ErrInvalidTask, t.EstimatedMinutes)
	}
	return nil
}

// FocusLabel renders the task the way the weekly plan lists it.
func (t Task) FocusLabel() string {
	return t.Course + ": " + t.Title
}

// ParseEffort parses an effort tier case-insensitively.
func ParseEffort(s string) (Effort, error) {
	e := Effort(strings.ToLower(strings.TrimSpace(s)))
	if !ValidEfforts[e] {
		return "", fmt.Errorf("%w: effort %q must be light, moderate or intensive", ErrInvalidTask, s)
	}
	return e, nil
}

// DueDateLayout is the bare-date form accepted for due dates.
const DueDateLayout = "2006-01-02"

// DefaultDueHour is when a task given only a date falls due.
const DefaultDueHour = 9

// ParseDue accepts RFC 3339 or a bare YYYY-MM-DD date. A bare date falls
// due at DefaultDueHour in loc.
func ParseDue(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(DueDateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: due %q must be YYYY-MM-DD or RFC 3339", ErrInvalidTask, s)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), DefaultDueHour, 0, 0, 0, loc), nil
}
