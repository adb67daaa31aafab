package domain

import (
	"time"
)

type (
	// ExportDocument is a full snapshot of one user's data.
	ExportDocument struct {
		UserID       string                 `json:"user_id"`
		ExportedAt   time.Time              `json:"exported_at"`
		Weights      []ExportWeightRow      `json:"weights"`
		Foods        []ExportFoodRow        `json:"foods"`
		Consumptions []ExportConsumptionRow `json:"consumptions"`
		Recipes      []ExportRecipeRow      `json:"recipes"`
		Ingredients  []ExportIngredientRow  `json:"ingredients"`
	}

	ExportWeightRow struct {
		ID         string    `json:"id"`
		Weight     float64   `json:"weight"`
		MeasuredAt string    `json:"measured_at"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	ExportFoodRow struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		Kcal      float64    `json:"kcal"`
		Fat       float64    `json:"fat"`
		Carbs     float64    `json:"carbs"`
		Protein   float64    `json:"protein"`
		HiddenAt  *time.Time `json:"hidden_at"`
		StarredAt *time.Time `json:"starred_at"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}

	ExportConsumptionRow struct {
		ID         string    `json:"id"`
		FoodID     *string   `json:"food_id"`
		RecipeID   *string   `json:"recipe_id"`
		Quantity   float64   `json:"quantity"`
		ConsumedAt string    `json:"consumed_at"`
		CreatedAt  time.Time `json:"created_at"`
		UpdatedAt  time.Time `json:"updated_at"`
	}

	ExportRecipeRow struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		Quantity  float64    `json:"quantity"`
		HiddenAt  *time.Time `json:"hidden_at"`
		StarredAt *time.Time `json:"starred_at"`
		CreatedAt time.Time  `json:"created_at"`
		UpdatedAt time.Time  `json:"updated_at"`
	}

	ExportIngredientRow struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		FoodID    string    `json:"food_id"`
		Quantity  float64   `json:"quantity"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)

// ExportFilename embeds the export date so downloads are recognizable.
func ExportFilename(exportedAt time.Time) string {
	return exportedAt.Format(DateFormat) + "-" + AppName + ".json"
}
