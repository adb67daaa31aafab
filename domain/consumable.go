package domain

import (
	"time"
)

type ConsumableType string

const (
	ConsumableFood   ConsumableType = "food"
	ConsumableRecipe ConsumableType = "recipe"
)

var (
	ErrUnknownConsumableType = NewError(ErrInvalidReference, "consumable type must be food or recipe")
	ErrAmbiguousConsumable   = NewError(ErrInvalidReference, "exactly one of food or recipe must be set")
)

// ConsumableRef points at either a food or a recipe, never both. The zero
// value is not a valid reference.
type ConsumableRef struct {
	kind ConsumableType
	id   string
}

func FoodRef(id string) ConsumableRef {
	return ConsumableRef{kind: ConsumableFood, id: id}
}

func RecipeRef(id string) ConsumableRef {
	return ConsumableRef{kind: ConsumableRecipe, id: id}
}

func NewConsumableRef(kind string, id string) (ConsumableRef, error) {
	if id == "" {
		return ConsumableRef{}, ErrAmbiguousConsumable
	}
	switch ConsumableType(kind) {
	case ConsumableFood:
		return FoodRef(id), nil
	case ConsumableRecipe:
		return RecipeRef(id), nil
	default:
		return ConsumableRef{}, ErrUnknownConsumableType
	}
}

// ConsumableRefFromIDs builds a reference from a pair of nullable columns.
func ConsumableRefFromIDs(foodID, recipeID *string) (ConsumableRef, error) {
	switch {
	case foodID != nil && recipeID == nil:
		return NewConsumableRef(string(ConsumableFood), *foodID)
	case foodID == nil && recipeID != nil:
		return NewConsumableRef(string(ConsumableRecipe), *recipeID)
	default:
		return ConsumableRef{}, ErrAmbiguousConsumable
	}
}

func (r ConsumableRef) Type() ConsumableType { return r.kind }

func (r ConsumableRef) ID() string { return r.id }

func (r ConsumableRef) IsFood() bool { return r.kind == ConsumableFood }

func (r ConsumableRef) IsRecipe() bool { return r.kind == ConsumableRecipe }

type (
	// ConsumableSummary is one visible food or recipe annotated with its
	// recent usage, as read from storage.
	ConsumableSummary struct {
		Type           ConsumableType `json:"type"`
		ID             string         `json:"id"`
		Name           string         `json:"name"`
		IsStarred      bool           `json:"is_starred"`
		CreatedAt      time.Time      `json:"created_at"`
		LastConsumedAt *time.Time     `json:"last_consumed_at,omitempty"`
		ConsumedCount  int64          `json:"consumed_count"`
	}

	RankedConsumable struct {
		ConsumableSummary
		Score int64 `json:"score"`
	}
)
