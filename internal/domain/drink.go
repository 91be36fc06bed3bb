package domain

import "context"

// DrinkSource identifies which list a resolved drink came from.
type DrinkSource string

// Lookup priority is custom > recent > catalog.
const (
	SourceCustom  DrinkSource = "custom"
	SourceRecent  DrinkSource = "recent"
	SourceCatalog DrinkSource = "catalog"
)

// Drink is a named beverage with a typical caffeine dose, used to
// prefill intake entries.
type Drink struct {
	Name   string      `json:"name"`
	DoseMg float64     `json:"doseMg"`
	Source DrinkSource `json:"source"`
}

// DrinkRepository is the port for user-defined custom drinks.
type DrinkRepository interface {
	AddCustomDrink(ctx context.Context, userID int64, name string, doseMg float64) error
	ListCustomDrinks(ctx context.Context, userID int64) ([]Drink, error)
	DeleteCustomDrink(ctx context.Context, userID int64, name string) error
}
