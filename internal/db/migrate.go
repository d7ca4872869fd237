package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so it
// is safe to run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		course            TEXT NOT NULL,
		title             TEXT NOT NULL,
		due               TEXT NOT NULL,
		effort            TEXT NOT NULL
		                  CHECK(effort IN ('light','moderate','intensive')),
		estimated_minutes INTEGER NOT NULL CHECK(estimated_minutes > 0),
		created_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due)`,

	`CREATE TABLE IF NOT EXISTS profile (
		id            TEXT PRIMARY KEY CHECK(id = 'default'),
		name          TEXT NOT NULL,
		semester_week INTEGER NOT NULL DEFAULT 1,
		goals         TEXT NOT NULL DEFAULT '[]',
		strengths     TEXT NOT NULL DEFAULT '[]'
	)`,

	`CREATE TABLE IF NOT EXISTS plan_entries (
		day_index   INTEGER PRIMARY KEY CHECK(day_index BETWEEN 0 AND 6),
		day         TEXT NOT NULL,
		focus_areas TEXT NOT NULL,
		energy_tip  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS chat_messages (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		role       TEXT NOT NULL CHECK(role IN ('assistant','user')),
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_chat_messages_created ON chat_messages(created_at)`,
}
