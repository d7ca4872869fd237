package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/charmbracelet/huh"
)

// taskFormValues collects the raw strings the add-task form edits.
type taskFormValues struct {
	Course  string
	Title   string
	Due     string
	Effort  string
	Minutes string
}

// taskForm builds the interactive add-task form.
func taskForm(v *taskFormValues) *huh.Form {
	if v.Effort == "" {
		v.Effort = string(domain.EffortModerate)
	}
	if v.Minutes == "" {
		v.Minutes = "60"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course").
				Placeholder("Algorithms II").
				Value(&v.Course).
				Validate(validateRequired("course")),
			huh.NewInput().
				Title("Title").
				Placeholder("Problem set 4").
				Value(&v.Title).
				Validate(validateRequired("title")),
			huh.NewInput().
				Title("Due (YYYY-MM-DD)").
				Placeholder(time.Now().AddDate(0, 0, 2).Format(domain.DueDateLayout)).
				Value(&v.Due).
				Validate(validateDue),
			huh.NewSelect[string]().
				Title("Effort").
				Options(
					huh.NewOption("Light", string(domain.EffortLight)),
					huh.NewOption("Moderate", string(domain.EffortModerate)),
					huh.NewOption("Intensive", string(domain.EffortIntensive)),
				).
				Value(&v.Effort),
			huh.NewInput().
				Title("Estimated minutes").
				Placeholder("60").
				Value(&v.Minutes).
				Validate(validatePositiveInt),
		),
	).WithTheme(auroraHuhTheme()).WithShowHelp(false)
}

// toTask converts form values into an unsaved task.
func (v taskFormValues) toTask(loc *time.Location) (*domain.Task, error) {
	due, err := domain.ParseDue(v.Due, loc)
	if err != nil {
		return nil, err
	}
	effort, err := domain.ParseEffort(v.Effort)
	if err != nil {
		return nil, err
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(v.Minutes))
	if err != nil {
		return nil, fmt.Errorf("%w: estimated minutes %q is not a number", domain.ErrInvalidTask, v.Minutes)
	}
	return &domain.Task{
		Course:           strings.TrimSpace(v.Course),
		Title:            strings.TrimSpace(v.Title),
		Due:              due,
		Effort:           effort,
		EstimatedMinutes: minutes,
	}, nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDue accepts a YYYY-MM-DD date or an RFC 3339 timestamp.
func validateDue(s string) error {
	if _, err := domain.ParseDue(s, time.Local); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validatePositiveInt accepts only a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}
