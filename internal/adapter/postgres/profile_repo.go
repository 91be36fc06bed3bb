package postgres

import (
	"context"
	"database/sql"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// GetProfile returns the stored profile, or nil if none was saved yet.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.PersonalProfile, error) {
	var p domain.PersonalProfile
	err := d.sql.QueryRowContext(ctx,
		"SELECT age, sex, weight_kg FROM profiles WHERE user_id = $1",
		userID,
	).Scan(&p.Age, &p.Sex, &p.WeightKg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile stores or replaces the profile.
func (d *DB) SaveProfile(ctx context.Context, userID int64, p domain.PersonalProfile) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO profiles(user_id, age, sex, weight_kg) VALUES($1, $2, $3, $4) ON CONFLICT (user_id) DO UPDATE SET age = EXCLUDED.age, sex = EXCLUDED.sex, weight_kg = EXCLUDED.weight_kg;",
		userID, p.Age, string(p.Sex), p.WeightKg,
	)
	return err
}
