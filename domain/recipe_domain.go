package domain

import (
	"time"
)

var (
	MessageSuccessGetRecipes       = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail  = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"
	MessageSuccessCreateIngredient = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient removed successfully"

	MessageFailedGetRecipes       = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail  = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedGetIngredient    = "failed to retrieve ingredient"
	MessageFailedCreateIngredient = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to remove ingredient"

	ErrRecipeNotFound      = NewError(ErrNotFound, "recipe not found")
	ErrRecipeForbidden     = NewError(ErrForbidden, "recipe belongs to another user")
	ErrRecipeInUse         = NewError(ErrConflict, "recipe is still referenced by consumptions")
	ErrIngredientNotFound  = NewError(ErrNotFound, "ingredient not found")
	ErrIngredientForbidden = NewError(ErrForbidden, "ingredient belongs to another user")
)

type (
	CreateRecipeRequest struct {
		Name     string  `json:"name" validate:"required,max=255"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
		Hidden   bool    `json:"hidden"`
		Starred  bool    `json:"starred"`
	}

	UpdateRecipeRequest struct {
		Name     string  `json:"name" validate:"required,max=255"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
		Hidden   *bool   `json:"hidden"`
		Starred  *bool   `json:"starred"`
	}

	// RecipeResponse carries the aggregate macros of all ingredients, i.e.
	// the totals for the whole yield of Quantity units.
	RecipeResponse struct {
		ID       string  `json:"id"`
		UserID   string  `json:"user_id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Macros
		HiddenAt  *time.Time `json:"hidden_at,omitempty"`
		StarredAt *time.Time `json:"starred_at,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients  []IngredientResponse  `json:"ingredients"`
		Consumptions []ConsumptionResponse `json:"consumptions"`
	}

	CreateIngredientRequest struct {
		RecipeID string  `json:"recipe_id" validate:"required,uuid"`
		FoodID   string  `json:"food_id" validate:"required,uuid"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
	}

	UpdateIngredientRequest struct {
		FoodID   string  `json:"food_id" validate:"required,uuid"`
		Quantity float64 `json:"quantity" validate:"gt=0"`
	}

	IngredientResponse struct {
		ID       string  `json:"id"`
		UserID   string  `json:"user_id"`
		RecipeID string  `json:"recipe_id"`
		FoodID   string  `json:"food_id"`
		FoodName string  `json:"food_name"`
		Quantity float64 `json:"quantity"`
		Macros
	}
)
