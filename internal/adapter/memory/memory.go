// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu       sync.Mutex
	intakes  []domain.IntakeEvent
	profiles map[int64]domain.PersonalProfile
	drinks   map[int64][]domain.Drink
	users    []*domain.User
	sessions map[string]*domain.Session

	intakeIDCounter int64
	userIDCounter   int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		profiles: make(map[int64]domain.PersonalProfile),
		drinks:   make(map[int64][]domain.Drink),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.IntakeRepository = (*DB)(nil)
var _ domain.ProfileRepository = (*DB)(nil)
var _ domain.DrinkRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- IntakeRepository ---

// AddIntakeEvent adds an intake event.
func (db *DB) AddIntakeEvent(ctx context.Context, userID int64, day string, in domain.Intake, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.intakeIDCounter++
	id := db.intakeIDCounter

	db.intakes = append(db.intakes, domain.IntakeEvent{
		ID:        id,
		UserID:    userID,
		Day:       day,
		Intake:    in,
		CreatedAt: createdAt.UTC(),
	})
	return id, nil
}

// DeleteIntakeEvent deletes an intake event by ID.
func (db *DB) DeleteIntakeEvent(ctx context.Context, userID int64, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, e := range db.intakes {
		if e.ID == id && e.UserID == userID {
			db.intakes = append(db.intakes[:i], db.intakes[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListIntakesForLocalDay returns the intakes logged for the given day,
// oldest first.
func (db *DB) ListIntakesForLocalDay(ctx context.Context, userID int64, localDay string) ([]domain.IntakeEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.IntakeEvent
	for _, e := range db.intakes {
		if e.UserID == userID && e.Day == localDay {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ListRecentIntakeEvents lists the most recent intake events.
func (db *DB) ListRecentIntakeEvents(ctx context.Context, userID int64, limit int) ([]domain.IntakeEvent, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var result []domain.IntakeEvent
	for _, e := range db.intakes {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- ProfileRepository ---

// GetProfile returns the stored profile, or nil if none exists.
func (db *DB) GetProfile(ctx context.Context, userID int64) (*domain.PersonalProfile, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if p, ok := db.profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

// SaveProfile stores or replaces the profile.
func (db *DB) SaveProfile(ctx context.Context, userID int64, p domain.PersonalProfile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.profiles[userID] = p
	return nil
}

// --- DrinkRepository ---

// AddCustomDrink stores a user-defined drink, replacing any existing
// drink with the same name.
func (db *DB) AddCustomDrink(ctx context.Context, userID int64, name string, doseMg float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	drinks := db.drinks[userID]
	for i, d := range drinks {
		if strings.EqualFold(d.Name, name) {
			drinks[i].DoseMg = doseMg
			return nil
		}
	}
	db.drinks[userID] = append(drinks, domain.Drink{Name: name, DoseMg: doseMg, Source: domain.SourceCustom})
	return nil
}

// ListCustomDrinks returns the user's custom drinks.
func (db *DB) ListCustomDrinks(ctx context.Context, userID int64) ([]domain.Drink, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	result := make([]domain.Drink, len(db.drinks[userID]))
	copy(result, db.drinks[userID])
	return result, nil
}

// DeleteCustomDrink removes a custom drink by name.
func (db *DB) DeleteCustomDrink(ctx context.Context, userID int64, name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	drinks := db.drinks[userID]
	for i, d := range drinks {
		if strings.EqualFold(d.Name, name) {
			db.drinks[userID] = append(drinks[:i], drinks[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user by username.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Username == username {
			return nil, errors.New("user already exists")
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// Count returns the total number of users.
func (db *DB) Count(ctx context.Context) (int, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.users), nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token, userAgent string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
