package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/scheduler"
)

// Load writes the demo profile, tasks, initial plan and welcome message in
// one transaction. A store that already has tasks or chat history is left
// alone unless reset is set, in which case tasks, plan and chat history are replaced.
// It reports whether anything was written.
func Load(ctx context.Context, uow db.UnitOfWork, now time.Time, reset bool) (bool, error) {
	loaded := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		messages := repository.NewSQLiteMessageRepo(tx)

		if !reset {
			inUse, err := storeInUse(ctx, tasks, messages)
			if err != nil || inUse {
				return err
			}
		} else {
			if err := tasks.DeleteAll(ctx); err != nil {
				return err
			}
			if err := messages.DeleteAll(ctx); err != nil {
				return err
			}
		}

		profile := Profile()
		if err := repository.NewSQLiteProfileRepo(tx).Upsert(ctx, &profile); err != nil {
			return err
		}

		demo := Tasks(now)
		for i := range demo {
			if err := tasks.Create(ctx, &demo[i]); err != nil {
				return fmt.Errorf("seeding task %s: %w", demo[i].ID, err)
			}
		}

		if err := repository.NewSQLitePlanRepo(tx).Replace(ctx, scheduler.BuildWeeklyPlan(demo)); err != nil {
			return err
		}

		welcome := domain.ChatMessage{
			ID:        WelcomeMessageID,
			Role:      domain.RoleAssistant,
			Content:   WelcomeMessage,
			CreatedAt: now,
		}
		if err := messages.Append(ctx, &welcome); err != nil {
			return err
		}
		loaded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("loading demo data: %w", err)
	}
	return loaded, nil
}

func storeInUse(ctx context.Context, tasks repository.TaskRepo, messages repository.MessageRepo) (bool, error) {
	n, err := tasks.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	history, err := messages.ListRecent(ctx, 1)
	if err != nil {
		return false, err
	}
	return len(history) > 0, nil
}
