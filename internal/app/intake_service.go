package app

import (
	"context"
	"errors"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// IntakeService encapsulates caffeine intake logging use cases.
type IntakeService struct {
	repo domain.IntakeRepository
}

// NewIntakeService creates an IntakeService backed by the given repository.
func NewIntakeService(repo domain.IntakeRepository) *IntakeService {
	return &IntakeService{repo: repo}
}

// RecordIntake validates and stores an intake for the given local day.
func (s *IntakeService) RecordIntake(ctx context.Context, userID int64, day string, in domain.Intake) (int64, error) {
	if in.Name == "" {
		return 0, errors.New("name must not be empty")
	}
	if in.DoseMg <= 0 {
		return 0, errors.New("doseMg must be > 0")
	}
	if _, err := time.ParseInLocation("2006-01-02", day, time.Local); err != nil {
		return 0, errors.New("day must be formatted YYYY-MM-DD")
	}
	// Windows of at most a minute are stored without an end time.
	if in.End != nil && in.Instantaneous() {
		in.End = nil
	}
	return s.repo.AddIntakeEvent(ctx, userID, day, in, time.Now())
}

// ListForDay returns the intakes logged for the given local day.
func (s *IntakeService) ListForDay(ctx context.Context, userID int64, day string) ([]domain.IntakeEvent, error) {
	return s.repo.ListIntakesForLocalDay(ctx, userID, day)
}

// ListRecent returns the most recent intake events up to limit.
func (s *IntakeService) ListRecent(ctx context.Context, userID int64, limit int) ([]domain.IntakeEvent, error) {
	return s.repo.ListRecentIntakeEvents(ctx, userID, limit)
}

// Delete removes an intake event by ID.
func (s *IntakeService) Delete(ctx context.Context, userID int64, id int64) error {
	return s.repo.DeleteIntakeEvent(ctx, userID, id)
}

// UndoLast deletes the most recent intake event.
func (s *IntakeService) UndoLast(ctx context.Context, userID int64) (bool, int64, error) {
	items, err := s.repo.ListRecentIntakeEvents(ctx, userID, 1)
	if err != nil {
		return false, 0, err
	}
	if len(items) == 0 {
		return false, 0, nil
	}
	if err := s.repo.DeleteIntakeEvent(ctx, userID, items[0].ID); err != nil {
		return false, 0, err
	}
	return true, items[0].ID, nil
}
