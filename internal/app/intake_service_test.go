package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshtello/caffeine-calculator-app/internal/app"
	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

type mockIntakeRepo struct {
	addFn    func(ctx context.Context, userID int64, day string, in domain.Intake, createdAt time.Time) (int64, error)
	delFn    func(ctx context.Context, userID int64, id int64) error
	forDayFn func(ctx context.Context, userID int64, localDay string) ([]domain.IntakeEvent, error)
	recentFn func(ctx context.Context, userID int64, limit int) ([]domain.IntakeEvent, error)
}

func (m *mockIntakeRepo) AddIntakeEvent(ctx context.Context, userID int64, day string, in domain.Intake, createdAt time.Time) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, day, in, createdAt)
	}
	return 0, nil
}

func (m *mockIntakeRepo) DeleteIntakeEvent(ctx context.Context, userID int64, id int64) error {
	if m.delFn != nil {
		return m.delFn(ctx, userID, id)
	}
	return nil
}

func (m *mockIntakeRepo) ListIntakesForLocalDay(ctx context.Context, userID int64, localDay string) ([]domain.IntakeEvent, error) {
	if m.forDayFn != nil {
		return m.forDayFn(ctx, userID, localDay)
	}
	return nil, nil
}

func (m *mockIntakeRepo) ListRecentIntakeEvents(ctx context.Context, userID int64, limit int) ([]domain.IntakeEvent, error) {
	if m.recentFn != nil {
		return m.recentFn(ctx, userID, limit)
	}
	return nil, nil
}

func clock(h, m int) domain.ClockTime {
	return domain.ClockTime{Hour: h, Minute: m}
}

func TestRecordIntake_Validation(t *testing.T) {
	svc := app.NewIntakeService(&mockIntakeRepo{})

	tests := []struct {
		name string
		day  string
		in   domain.Intake
	}{
		{"empty name", "2026-02-08", domain.Intake{DoseMg: 95, Start: clock(8, 0)}},
		{"zero dose", "2026-02-08", domain.Intake{Name: "coffee", DoseMg: 0, Start: clock(8, 0)}},
		{"negative dose", "2026-02-08", domain.Intake{Name: "coffee", DoseMg: -50, Start: clock(8, 0)}},
		{"bad day", "02/08/2026", domain.Intake{Name: "coffee", DoseMg: 95, Start: clock(8, 0)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordIntake(context.Background(), 1, tc.day, tc.in)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRecordIntake_Success(t *testing.T) {
	repo := &mockIntakeRepo{
		addFn: func(_ context.Context, _ int64, day string, in domain.Intake, _ time.Time) (int64, error) {
			if day != "2026-02-08" {
				t.Fatalf("unexpected day: %s", day)
			}
			if in.Name != "coffee" || in.DoseMg != 95 {
				t.Fatalf("unexpected intake: %+v", in)
			}
			return 42, nil
		},
	}
	svc := app.NewIntakeService(repo)
	id, err := svc.RecordIntake(context.Background(), 1, "2026-02-08", domain.Intake{
		Name: "coffee", DoseMg: 95, Start: clock(8, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}
}

func TestRecordIntake_DropsDegenerateWindow(t *testing.T) {
	repo := &mockIntakeRepo{
		addFn: func(_ context.Context, _ int64, _ string, in domain.Intake, _ time.Time) (int64, error) {
			if in.End != nil {
				t.Fatalf("expected end time dropped, got %+v", in)
			}
			return 1, nil
		},
	}
	svc := app.NewIntakeService(repo)
	end := clock(8, 1)
	if _, err := svc.RecordIntake(context.Background(), 1, "2026-02-08", domain.Intake{
		Name: "coffee", DoseMg: 95, Start: clock(8, 0), End: &end,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUndoLastIntake_Empty(t *testing.T) {
	repo := &mockIntakeRepo{
		recentFn: func(_ context.Context, _ int64, _ int) ([]domain.IntakeEvent, error) {
			return nil, nil
		},
	}
	svc := app.NewIntakeService(repo)
	undone, _, err := svc.UndoLast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if undone {
		t.Fatal("expected undone=false for empty list")
	}
}

func TestUndoLastIntake_Success(t *testing.T) {
	repo := &mockIntakeRepo{
		recentFn: func(_ context.Context, _ int64, _ int) ([]domain.IntakeEvent, error) {
			return []domain.IntakeEvent{{ID: 7, Intake: domain.Intake{Name: "tea", DoseMg: 47}}}, nil
		},
		delFn: func(_ context.Context, _ int64, id int64) error {
			if id != 7 {
				t.Fatalf("expected delete id 7, got %d", id)
			}
			return nil
		},
	}
	svc := app.NewIntakeService(repo)
	undone, id, err := svc.UndoLast(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !undone || id != 7 {
		t.Fatalf("expected undone=true id=7, got undone=%v id=%d", undone, id)
	}
}
