package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/intelligence"
	"github.com/alexanderramin/aurora/internal/repository"
	"github.com/alexanderramin/aurora/internal/testutil"
)

// testNow is a Monday morning.
var testNow = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

type testRepos struct {
	database *sql.DB
	tasks    repository.TaskRepo
	profiles repository.ProfileRepo
	plans    repository.PlanRepo
	messages repository.MessageRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		database: database,
		tasks:    repository.NewSQLiteTaskRepo(database),
		profiles: repository.NewSQLiteProfileRepo(database),
		plans:    repository.NewSQLitePlanRepo(database),
		messages: repository.NewSQLiteMessageRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

func testGenerator() *intelligence.Generator {
	return intelligence.NewGenerator(
		intelligence.WithIndexSource(intelligence.FixedIndex(0)),
		intelligence.WithClock(func() time.Time { return testNow }),
	)
}

func newTestChatService(r testRepos, uow db.UnitOfWork) *chatService {
	profiles := NewProfileService(r.profiles, nil)
	plans := NewPlanService(r.tasks, r.plans, r.uow)
	svc := NewChatService(r.tasks, r.messages, profiles, plans, uow, testGenerator()).(*chatService)
	svc.now = func() time.Time { return testNow }
	return svc
}
