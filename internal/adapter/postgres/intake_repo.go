package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// Clock times are stored as "HH:MM" text.

// AddIntakeEvent inserts a new intake event.
func (d *DB) AddIntakeEvent(ctx context.Context, userID int64, day string, in domain.Intake, createdAt time.Time) (int64, error) {
	var end sql.NullString
	if in.End != nil {
		end = sql.NullString{String: in.End.String(), Valid: true}
	}

	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO intake_events(user_id, day, name, dose_mg, start_time, end_time, created_at) VALUES($1, $2, $3, $4, $5, $6, $7) RETURNING id;",
		userID, day, in.Name, in.DoseMg, in.Start.String(), end, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// DeleteIntakeEvent removes an intake event by ID, scoped to a user.
func (d *DB) DeleteIntakeEvent(ctx context.Context, userID int64, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM intake_events WHERE id=$1 AND user_id=$2;", id, userID)
	return err
}

// ListIntakesForLocalDay returns the intakes logged for a local
// calendar day, oldest first.
func (d *DB) ListIntakesForLocalDay(ctx context.Context, userID int64, localDay string) ([]domain.IntakeEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, day, name, dose_mg, start_time, end_time, created_at FROM intake_events WHERE user_id=$1 AND day=$2 ORDER BY created_at ASC;",
		userID, localDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanIntakeEvents(rows, userID)
}

// ListRecentIntakeEvents returns the most recent intake events up to limit.
func (d *DB) ListRecentIntakeEvents(ctx context.Context, userID int64, limit int) ([]domain.IntakeEvent, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, day, name, dose_mg, start_time, end_time, created_at FROM intake_events WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2;",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	return scanIntakeEvents(rows, userID)
}

func scanIntakeEvents(rows *sql.Rows, userID int64) ([]domain.IntakeEvent, error) {
	var out []domain.IntakeEvent
	for rows.Next() {
		var (
			e     domain.IntakeEvent
			start string
			end   sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Day, &e.Intake.Name, &e.Intake.DoseMg, &start, &end, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.UserID = userID

		c, err := domain.ParseClock(start)
		if err != nil {
			return nil, err
		}
		e.Intake.Start = c
		if end.Valid {
			c, err := domain.ParseClock(end.String)
			if err != nil {
				return nil, err
			}
			e.Intake.End = &c
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
