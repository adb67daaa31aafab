package domain

import (
	"time"
)

var (
	MessageSuccessCreateFood = "food created successfully"
	MessageSuccessUpdateFood = "food updated successfully"
	MessageSuccessDeleteFood = "food deleted successfully"
	MessageSuccessGetFoods   = "foods retrieved successfully"
	MessageSuccessGetFood    = "food retrieved successfully"

	MessageFailedCreateFood = "failed to create food"
	MessageFailedUpdateFood = "failed to update food"
	MessageFailedDeleteFood = "failed to delete food"
	MessageFailedGetFoods   = "failed to retrieve foods"
	MessageFailedGetFood    = "failed to retrieve food"

	ErrFoodNotFound  = NewError(ErrNotFound, "food not found")
	ErrFoodForbidden = NewError(ErrForbidden, "food belongs to another user")
	ErrFoodInUse     = NewError(ErrConflict, "food is still used by recipes or consumptions")
)

type (
	CreateFoodRequest struct {
		Name    string  `json:"name" validate:"required,max=255"`
		Kcal    float64 `json:"kcal" validate:"gte=0"`
		Fat     float64 `json:"fat" validate:"gte=0"`
		Carbs   float64 `json:"carbs" validate:"gte=0"`
		Protein float64 `json:"protein" validate:"gte=0"`
		Hidden  bool    `json:"hidden"`
		Starred bool    `json:"starred"`
	}

	UpdateFoodRequest struct {
		Name    string  `json:"name" validate:"required,max=255"`
		Kcal    float64 `json:"kcal" validate:"gte=0"`
		Fat     float64 `json:"fat" validate:"gte=0"`
		Carbs   float64 `json:"carbs" validate:"gte=0"`
		Protein float64 `json:"protein" validate:"gte=0"`
		Hidden  *bool   `json:"hidden"`
		Starred *bool   `json:"starred"`
	}

	FoodResponse struct {
		ID        string     `json:"id"`
		UserID    string     `json:"user_id"`
		Name      string     `json:"name"`
		Macros               // per one unit of quantity
		HiddenAt  *time.Time `json:"hidden_at,omitempty"`
		StarredAt *time.Time `json:"starred_at,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
	}

	FoodDetailResponse struct {
		FoodResponse
		Consumptions []ConsumptionResponse `json:"consumptions"`
	}
)
