package postgres

import (
	"context"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// AddCustomDrink stores a user-defined drink, replacing the dose of an
// existing drink with the same name.
func (d *DB) AddCustomDrink(ctx context.Context, userID int64, name string, doseMg float64) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO custom_drinks(user_id, name, dose_mg, created_at) VALUES($1, $2, $3, $4) ON CONFLICT (user_id, lower(name)) DO UPDATE SET dose_mg = EXCLUDED.dose_mg;",
		userID, name, doseMg, time.Now().UTC(),
	)
	return err
}

// ListCustomDrinks returns the user's custom drinks.
func (d *DB) ListCustomDrinks(ctx context.Context, userID int64) ([]domain.Drink, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT name, dose_mg FROM custom_drinks WHERE user_id=$1 ORDER BY name ASC;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.Drink
	for rows.Next() {
		var dr domain.Drink
		if err := rows.Scan(&dr.Name, &dr.DoseMg); err != nil {
			return nil, err
		}
		dr.Source = domain.SourceCustom
		out = append(out, dr)
	}
	return out, rows.Err()
}

// DeleteCustomDrink removes a custom drink by name.
func (d *DB) DeleteCustomDrink(ctx context.Context, userID int64, name string) error {
	_, err := d.sql.ExecContext(ctx,
		"DELETE FROM custom_drinks WHERE user_id=$1 AND lower(name)=lower($2);", userID, name)
	return err
}
