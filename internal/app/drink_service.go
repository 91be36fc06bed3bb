package app

import (
	"context"
	"errors"
	"strings"

	"github.com/joshtello/caffeine-calculator-app/internal/domain"
)

// catalog holds the built-in drinks with typical caffeine doses.
var catalog = []domain.Drink{
	{Name: "Espresso", DoseMg: 63, Source: domain.SourceCatalog},
	{Name: "Coffee (8 oz)", DoseMg: 95, Source: domain.SourceCatalog},
	{Name: "Coffee (12 oz)", DoseMg: 140, Source: domain.SourceCatalog},
	{Name: "Cold brew (12 oz)", DoseMg: 200, Source: domain.SourceCatalog},
	{Name: "Black tea", DoseMg: 47, Source: domain.SourceCatalog},
	{Name: "Green tea", DoseMg: 28, Source: domain.SourceCatalog},
	{Name: "Matcha latte", DoseMg: 70, Source: domain.SourceCatalog},
	{Name: "Cola (12 oz)", DoseMg: 34, Source: domain.SourceCatalog},
	{Name: "Energy drink (8.4 oz)", DoseMg: 80, Source: domain.SourceCatalog},
	{Name: "Energy drink (16 oz)", DoseMg: 160, Source: domain.SourceCatalog},
	{Name: "Dark chocolate (1 oz)", DoseMg: 23, Source: domain.SourceCatalog},
	{Name: "Decaf coffee", DoseMg: 4, Source: domain.SourceCatalog},
}

// How many recent intakes participate in name resolution.
const recentLookback = 50

// DrinkService resolves drink names against three lists with a fixed
// priority: the user's custom drinks, then their recently logged
// intakes, then the built-in catalog.
type DrinkService struct {
	custom  domain.DrinkRepository
	intakes domain.IntakeRepository
}

// NewDrinkService creates a DrinkService backed by the given repositories.
func NewDrinkService(custom domain.DrinkRepository, intakes domain.IntakeRepository) *DrinkService {
	return &DrinkService{custom: custom, intakes: intakes}
}

// Resolve finds the single drink record a name refers to, or nil when
// nothing matches. Matching is case-insensitive and exact.
func (s *DrinkService) Resolve(ctx context.Context, userID int64, name string) (*domain.Drink, error) {
	customs, err := s.custom.ListCustomDrinks(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, d := range customs {
		if strings.EqualFold(d.Name, name) {
			d.Source = domain.SourceCustom
			return &d, nil
		}
	}

	recents, err := s.intakes.ListRecentIntakeEvents(ctx, userID, recentLookback)
	if err != nil {
		return nil, err
	}
	for _, e := range recents {
		if strings.EqualFold(e.Intake.Name, name) {
			return &domain.Drink{Name: e.Intake.Name, DoseMg: e.Intake.DoseMg, Source: domain.SourceRecent}, nil
		}
	}

	for _, d := range catalog {
		if strings.EqualFold(d.Name, name) {
			return &d, nil
		}
	}
	return nil, nil
}

// Search returns drinks whose name contains the query, in resolution
// priority order, deduplicated by name. An empty query lists
// everything up to limit.
func (s *DrinkService) Search(ctx context.Context, userID int64, query string, limit int) ([]domain.Drink, error) {
	if limit <= 0 {
		limit = 20
	}
	q := strings.ToLower(query)

	customs, err := s.custom.ListCustomDrinks(ctx, userID)
	if err != nil {
		return nil, err
	}
	recents, err := s.intakes.ListRecentIntakeEvents(ctx, userID, recentLookback)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]domain.Drink, 0, limit)
	add := func(d domain.Drink) {
		key := strings.ToLower(d.Name)
		if len(out) >= limit || seen[key] || !strings.Contains(key, q) {
			return
		}
		seen[key] = true
		out = append(out, d)
	}

	for _, d := range customs {
		d.Source = domain.SourceCustom
		add(d)
	}
	for _, e := range recents {
		add(domain.Drink{Name: e.Intake.Name, DoseMg: e.Intake.DoseMg, Source: domain.SourceRecent})
	}
	for _, d := range catalog {
		add(d)
	}
	return out, nil
}

// AddCustom validates and stores a user-defined drink.
func (s *DrinkService) AddCustom(ctx context.Context, userID int64, name string, doseMg float64) error {
	if name == "" {
		return errors.New("name must not be empty")
	}
	if doseMg <= 0 {
		return errors.New("doseMg must be > 0")
	}
	return s.custom.AddCustomDrink(ctx, userID, name, doseMg)
}

// DeleteCustom removes a user-defined drink by name.
func (s *DrinkService) DeleteCustom(ctx context.Context, userID int64, name string) error {
	return s.custom.DeleteCustomDrink(ctx, userID, name)
}
