package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/aurora/internal/db"
	"github.com/alexanderramin/aurora/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. A plan is
// stored as one row per weekday, keyed by its position.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context) (domain.WeeklyPlan, error) {
	query := `SELECT day, focus_areas, energy_tip FROM plan_entries ORDER BY day_index`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	defer rows.Close()

	var plan domain.WeeklyPlan
	for rows.Next() {
		var (
			e     domain.WeeklyPlanEntry
			focus string
		)
		if err := rows.Scan(&e.Day, &focus, &e.EnergyTip); err != nil {
			return nil, fmt.Errorf("scanning plan entry: %w", err)
		}
		if e.FocusAreas, err = decodeStrings(focus); err != nil {
			return nil, fmt.Errorf("plan entry %s: %w", e.Day, err)
		}
		plan = append(plan, e)
	}
	return plan, rows.Err()
}

// Replace swaps the stored plan wholesale. Callers wanting atomicity run it
// inside a unit of work.
func (r *SQLitePlanRepo) Replace(ctx context.Context, plan domain.WeeklyPlan) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plan_entries`); err != nil {
		return fmt.Errorf("clearing plan: %w", err)
	}
	query := `INSERT INTO plan_entries (day_index, day, focus_areas, energy_tip) VALUES (?, ?, ?, ?)`
	for i, e := range plan {
		focus, err := encodeStrings(e.FocusAreas)
		if err != nil {
			return err
		}
		if _, err := r.db.ExecContext(ctx, query, i, e.Day, focus, e.EnergyTip); err != nil {
			return fmt.Errorf("inserting plan entry %s: %w", e.Day, err)
		}
	}
	return nil
}
