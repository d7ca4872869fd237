package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Tasks: []TaskImport{
			{Course: "Statistics", Title: "Regression worksheet", Due: "2025-06-20", EstimatedMinutes: 45},
		},
	}
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema(), time.UTC)
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Tasks: []TaskImport{
			{ID: "stats-1", Course: "Statistics", Title: "Worksheet", Due: "2025-06-20", Effort: "Light", EstimatedMinutes: 30},
			{ID: "bio-1", Course: "Biology", Title: "Lab report", Due: "2025-06-21T17:00:00Z", Effort: "intensive", EstimatedMinutes: 120},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema, time.UTC))
}

func TestValidateImportSchema_NoTasks(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{}, time.UTC)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one task")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Tasks: []TaskImport{
			{Course: "", Title: " ", Due: "", EstimatedMinutes: 0},
			{Course: "Bio", Title: "Lab", Due: "next week", Effort: "heroic", EstimatedMinutes: -5},
		},
	}
	errs := ValidateImportSchema(schema, time.UTC)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := strings.Join(msgs, "\n")
	assert.Len(t, errs, 7)
	assert.Contains(t, joined, "tasks[0].course is required")
	assert.Contains(t, joined, "tasks[0].title is required")
	assert.Contains(t, joined, "tasks[0].due is required")
	assert.Contains(t, joined, "tasks[0].estimated_minutes must be positive")
	assert.Contains(t, joined, `tasks[1].due: invalid date "next week"`)
	assert.Contains(t, joined, `tasks[1].effort: invalid value "heroic"`)
	assert.Contains(t, joined, "tasks[1].estimated_minutes must be positive, got -5")
}

func TestValidateImportSchema_DuplicateIDs(t *testing.T) {
	schema := validMinimalSchema()
	schema.Tasks[0].ID = "same"
	dup := schema.Tasks[0]
	schema.Tasks = append(schema.Tasks, dup)

	errs := ValidateImportSchema(schema, time.UTC)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `tasks[1].id: duplicate id "same" (first used by tasks[0])`)
}
