package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/importer"
	"github.com/alexanderramin/aurora/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

// NewImportService returns an ImportService that resolves bare due dates in
// loc (time.Local when nil).
func NewImportService(uow db.UnitOfWork, loc *time.Location, observers ...UseCaseObserver) ImportService {
	if loc == nil {
		loc = time.Local
	}
	return &importService{uow: uow, loc: loc, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{"task_count": len(schema.Tasks)}
	defer observe(ctx, s.observer, "import-tasks", time.Now(), fields, &err)

	if errs := importer.ValidateImportSchema(schema, s.loc); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	tasks, err := importer.Convert(schema, s.loc)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteTaskRepo(tx)
		for i := range tasks {
			if err := repo.Create(ctx, &tasks[i]); err != nil {
				return fmt.Errorf("creating task %q: %w", tasks[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Tasks: tasks}, nil
}

// formatValidationErrors folds every problem into one ErrInvalidTask.
func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidTask, b.String())
}
