package postgres

import (
	"context"
	"fmt"

	"wellness/internal/domain"
)

var _ domain.EntryRepository = (*DB)(nil)

// ListEntries returns all entries in insertion order.
func (d *DB) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT date, user_id, sleep_hours, mood, stress, activity_min, notes FROM entries ORDER BY seq;",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Date, &e.UserID, &e.SleepHours, &e.Mood, &e.Stress, &e.ActivityMin, &e.Notes); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpsertEntry inserts e or overwrites the row with the same (user_id, date).
// The row keeps its original position.
func (d *DB) UpsertEntry(ctx context.Context, e domain.Entry) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO entries(date, user_id, sleep_hours, mood, stress, activity_min, notes)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   sleep_hours = EXCLUDED.sleep_hours,
		   mood = EXCLUDED.mood,
		   stress = EXCLUDED.stress,
		   activity_min = EXCLUDED.activity_min,
		   notes = EXCLUDED.notes;`,
		e.Date, e.UserID, e.SleepHours, e.Mood, e.Stress, e.ActivityMin, e.Notes,
	)
	if err != nil {
		return fmt.Errorf("postgres: upsert entry: %w", err)
	}
	return nil
}

// ReplaceEntries swaps the collection inside one transaction.
func (d *DB) ReplaceEntries(ctx context.Context, entries []domain.Entry) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries;"); err != nil {
		return fmt.Errorf("postgres: clear entries: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries(date, user_id, sleep_hours, mood, stress, activity_min, notes)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (user_id, date) DO NOTHING;`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Date, e.UserID, e.SleepHours, e.Mood, e.Stress, e.ActivityMin, e.Notes); err != nil {
			return fmt.Errorf("postgres: insert entry: %w", err)
		}
	}
	return tx.Commit()
}
