package domain

import (
	"time"
)

var (
	MessageSuccessGetConsumptions   = "consumptions retrieved successfully"
	MessageSuccessGetConsumption    = "consumption retrieved successfully"
	MessageSuccessCreateConsumption = "consumption logged successfully"
	MessageSuccessUpdateConsumption = "consumption updated successfully"
	MessageSuccessDeleteConsumption = "consumption deleted successfully"
	MessageSuccessGetConsumables    = "consumables retrieved successfully"

	MessageFailedGetConsumptions   = "failed to retrieve consumptions"
	MessageFailedGetConsumption    = "failed to retrieve consumption"
	MessageFailedCreateConsumption = "failed to log consumption"
	MessageFailedUpdateConsumption = "failed to update consumption"
	MessageFailedDeleteConsumption = "failed to delete consumption"
	MessageFailedGetConsumables    = "failed to retrieve consumables"

	ErrConsumptionNotFound  = NewError(ErrNotFound, "consumption not found")
	ErrConsumptionForbidden = NewError(ErrForbidden, "consumption belongs to another user")
	ErrConsumableMissing    = NewError(ErrInvalidReference, "consumption references a missing food or recipe")
	ErrConflictingFilters   = NewError(ErrInvalidInput, "filter by at most one of date, food_id or recipe_id")
	ErrInvalidFilterID      = NewError(ErrInvalidInput, "food_id and recipe_id must be valid ids")
)

type ConsumptionFilterKind int

const (
	FilterNone ConsumptionFilterKind = iota
	FilterDate
	FilterFood
	FilterRecipe
)

// ConsumptionFilter selects which consumptions of a user are listed. At most
// one criterion applies.
type ConsumptionFilter struct {
	Kind     ConsumptionFilterKind
	Date     time.Time
	FoodID   string
	RecipeID string
}

func NoFilter() ConsumptionFilter { return ConsumptionFilter{Kind: FilterNone} }

func OnDate(date time.Time) ConsumptionFilter {
	return ConsumptionFilter{Kind: FilterDate, Date: date}
}

func ByFood(foodID string) ConsumptionFilter {
	return ConsumptionFilter{Kind: FilterFood, FoodID: foodID}
}

func ByRecipe(recipeID string) ConsumptionFilter {
	return ConsumptionFilter{Kind: FilterRecipe, RecipeID: recipeID}
}

type (
	ConsumptionRequest struct {
		ConsumableType string  `json:"consumable_type" validate:"required,oneof=food recipe"`
		ConsumableID   string  `json:"consumable_id" validate:"required,uuid"`
		Quantity       float64 `json:"quantity" validate:"gt=0"`
		ConsumedAt     string  `json:"consumed_at" validate:"required,datetime=2006-01-02"`
	}

	ConsumptionResponse struct {
		ID             string         `json:"id"`
		UserID         string         `json:"user_id"`
		ConsumableType ConsumableType `json:"consumable_type"`
		ConsumableID   string         `json:"consumable_id"`
		ConsumableName string         `json:"consumable_name"`
		Quantity       float64        `json:"quantity"`
		ConsumedAt     string         `json:"consumed_at"`
		Macros
	}
)
