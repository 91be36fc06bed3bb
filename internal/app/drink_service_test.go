package app_test

import (
	"context"
	"testing"

	"github.com/joshtello/caffeine-calculator-app/internal/app"
	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

type mockDrinkRepo struct {
	addFn  func(ctx context.Context, userID int64, name string, doseMg float64) error
	listFn func(ctx context.Context, userID int64) ([]domain.Drink, error)
	delFn  func(ctx context.Context, userID int64, name string) error
}

func (m *mockDrinkRepo) AddCustomDrink(ctx context.Context, userID int64, name string, doseMg float64) error {
	if m.addFn != nil {
		return m.addFn(ctx, userID, name, doseMg)
	}
	return nil
}

func (m *mockDrinkRepo) ListCustomDrinks(ctx context.Context, userID int64) ([]domain.Drink, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDrinkRepo) DeleteCustomDrink(ctx context.Context, userID int64, name string) error {
	if m.delFn != nil {
		return m.delFn(ctx, userID, name)
	}
	return nil
}

func customDrinks(drinks ...domain.Drink) *mockDrinkRepo {
	return &mockDrinkRepo{
		listFn: func(_ context.Context, _ int64) ([]domain.Drink, error) {
			return drinks, nil
		},
	}
}

func recentIntakes(events ...domain.IntakeEvent) *mockIntakeRepo {
	return &mockIntakeRepo{
		recentFn: func(_ context.Context, _ int64, _ int) ([]domain.IntakeEvent, error) {
			return events, nil
		},
	}
}

func TestResolve_CustomWinsOverRecentAndCatalog(t *testing.T) {
	custom := customDrinks(domain.Drink{Name: "Espresso", DoseMg: 75})
	recent := recentIntakes(domain.IntakeEvent{Intake: domain.Intake{Name: "Espresso", DoseMg: 80}})
	svc := app.NewDrinkService(custom, recent)

	got, err := svc.Resolve(context.Background(), 1, "espresso")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Source != domain.SourceCustom || got.DoseMg != 75 {
		t.Errorf("expected custom 75 mg, got %+v", got)
	}
}

func TestResolve_RecentWinsOverCatalog(t *testing.T) {
	recent := recentIntakes(domain.IntakeEvent{Intake: domain.Intake{Name: "Black tea", DoseMg: 60}})
	svc := app.NewDrinkService(customDrinks(), recent)

	got, err := svc.Resolve(context.Background(), 1, "black tea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Source != domain.SourceRecent || got.DoseMg != 60 {
		t.Errorf("expected recent 60 mg, got %+v", got)
	}
}

func TestResolve_FallsBackToCatalog(t *testing.T) {
	svc := app.NewDrinkService(customDrinks(), recentIntakes())

	got, err := svc.Resolve(context.Background(), 1, "green tea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.Source != domain.SourceCatalog || got.DoseMg != 28 {
		t.Errorf("expected catalog 28 mg, got %+v", got)
	}
}

func TestResolve_Unknown(t *testing.T) {
	svc := app.NewDrinkService(customDrinks(), recentIntakes())

	got, err := svc.Resolve(context.Background(), 1, "unobtainium latte")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown drink, got %+v", got)
	}
}

func TestSearch_PriorityAndDedup(t *testing.T) {
	custom := customDrinks(domain.Drink{Name: "Espresso", DoseMg: 75})
	recent := recentIntakes(
		domain.IntakeEvent{Intake: domain.Intake{Name: "Espresso", DoseMg: 80}},
		domain.IntakeEvent{Intake: domain.Intake{Name: "Espresso doppio", DoseMg: 126}},
	)
	svc := app.NewDrinkService(custom, recent)

	got, err := svc.Search(context.Background(), 1, "espresso", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches (custom espresso + recent doppio, catalog deduped), got %+v", got)
	}
	if got[0].Source != domain.SourceCustom || got[0].DoseMg != 75 {
		t.Errorf("expected the custom espresso first, got %+v", got[0])
	}
	if got[1].Name != "Espresso doppio" || got[1].Source != domain.SourceRecent {
		t.Errorf("expected the recent doppio second, got %+v", got[1])
	}
}

func TestAddCustom_Validation(t *testing.T) {
	svc := app.NewDrinkService(&mockDrinkRepo{}, &mockIntakeRepo{})
	if err := svc.AddCustom(context.Background(), 1, "", 50); err == nil {
		t.Error("expected error for empty name")
	}
	if err := svc.AddCustom(context.Background(), 1, "homebrew", 0); err == nil {
		t.Error("expected error for zero dose")
	}
}
