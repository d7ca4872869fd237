package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/google/uuid"
)

// Convert transforms a validated ImportSchema into tasks ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid. A missing effort defaults to moderate.
func Convert(schema *ImportSchema, loc *time.Location) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(schema.Tasks))
	for i, t := range schema.Tasks {
		due, err := domain.ParseDue(t.Due, loc)
		if err != nil {
			return nil, fmt.Errorf("parsing tasks[%d].due: %w", i, err)
		}

		effort := domain.EffortModerate
		if t.Effort != "" {
			if effort, err = domain.ParseEffort(t.Effort); err != nil {
				return nil, fmt.Errorf("parsing tasks[%d].effort: %w", i, err)
			}
		}

		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}

		tasks = append(tasks, domain.Task{
			ID:               id,
			Course:           strings.TrimSpace(t.Course),
			Title:            strings.TrimSpace(t.Title),
			Due:              due,
			Effort:           effort,
			EstimatedMinutes: t.EstimatedMinutes,
		})
	}
	return tasks, nil
}
