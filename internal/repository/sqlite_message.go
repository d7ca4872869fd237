package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
)

// SQLiteMessageRepo implements MessageRepo using a SQLite database.
type SQLiteMessageRepo struct {
	db db.DBTX
}

// NewSQLiteMessageRepo creates a new SQLiteMessageRepo.
func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, role, content, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, string(m.Role), m.Content, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) ListRecent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	// seq is the insertion order; a message pair written in the same
	// instant must still come back user-then-assistant.
	query := `SELECT id, role, content, created_at FROM (
			SELECT seq, id, role, content, created_at FROM chat_messages
			ORDER BY seq DESC LIMIT ?
		) ORDER BY seq`
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()

	msgs := []domain.ChatMessage{}
	for rows.Next() {
		var (
			m         domain.ChatMessage
			role      string
			createdAt string
		)
		if err := rows.Scan(&m.ID, &role, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Role = domain.Role(role)
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func (r *SQLiteMessageRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("clearing chat messages: %w", err)
	}
	return nil
}
