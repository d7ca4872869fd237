package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/aurora/internal/db"
)

// NewTestDB returns a migrated in-memory store that is closed when t ends.
// Each call gets its own database.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the production unit of work over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
