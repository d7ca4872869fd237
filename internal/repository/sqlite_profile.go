package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database. The
// table holds at most one row, keyed 'default'.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT name, semester_week, goals, strengths FROM profile WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var (
		p                domain.Profile
		goals, strengths string
	)
	if err := row.Scan(&p.Name, &p.SemesterWeek, &goals, &strengths); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	var err error
	if p.Goals, err = decodeStrings(goals); err != nil {
		return nil, fmt.Errorf("profile goals: %w", err)
	}
	if p.Strengths, err = decodeStrings(strengths); err != nil {
		return nil, fmt.Errorf("profile strengths: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	goals, err := encodeStrings(p.Goals)
	if err != nil {
		return err
	}
	strengths, err := encodeStrings(p.Strengths)
	if err != nil {
		return err
	}
	query := `INSERT OR REPLACE INTO profile (id, name, semester_week, goals, strengths)
		VALUES ('default', ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, p.Name, p.SemesterWeek, goals, strengths); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
