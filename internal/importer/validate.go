package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema, loc *time.Location) []error {
	if len(schema.Tasks) == 0 {
		return []error{fmt.Errorf("tasks: at least one task is required")}
	}

	var errs []error
	ids := make(map[string]int)
	for i, t := range schema.Tasks {
		field := fmt.Sprintf("tasks[%d]", i)
		errs = append(errs, validateTask(field, &t, loc)...)

		if t.ID == "" {
			continue
		}
		if first, dup := ids[t.ID]; dup {
			errs = append(errs, fmt.Errorf("%s.id: duplicate id %q (first used by tasks[%d])", field, t.ID, first))
			continue
		}
		ids[t.ID] = i
	}
	return errs
}

func validateTask(field string, t *TaskImport, loc *time.Location) []error {
	var errs []error

	if strings.TrimSpace(t.Course) == "" {
		errs = append(errs, fmt.Errorf("%s.course is required", field))
	}
	if strings.TrimSpace(t.Title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", field))
	}
	if t.Due == "" {
		errs = append(errs, fmt.Errorf("%s.due is required", field))
	} else if _, err := domain.ParseDue(t.Due, loc); err != nil {
		errs = append(errs, fmt.Errorf("%s.due: invalid date %q (expected YYYY-MM-DD or RFC 3339)", field, t.Due))
	}
	if t.Effort != "" {
		if _, err := domain.ParseEffort(t.Effort); err != nil {
			errs = append(errs, fmt.Errorf("%s.effort: invalid value %q", field, t.Effort))
		}
	}
	if t.EstimatedMinutes <= 0 {
		errs = append(errs, fmt.Errorf("%s.estimated_minutes must be positive, got %d", field, t.EstimatedMinutes))
	}

	return errs
}
