// Package nutrition derives macro totals for composite entities. Nothing here
// is stored: every total is recomputed from the referenced rows, so editing a
// food or an ingredient changes the totals of every recipe and consumption
// that points at it, history included.
package nutrition

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
)

// FoodMacros returns the per-unit macros of a food.
func FoodMacros(f *entities.Food) domain.Macros {
	if f == nil {
		return domain.Macros{}
	}
	return domain.Macros{
		Kcal:    f.Kcal,
		Fat:     f.Fat,
		Carbs:   f.Carbs,
		Protein: f.Protein,
	}
}

// IngredientMacros is food.macro * ingredient.quantity. An ingredient whose
// food was not loaded contributes nothing.
func IngredientMacros(i *entities.Ingredient) domain.Macros {
	return FoodMacros(i.Food).Scale(i.Quantity)
}

// RecipeMacros sums the ingredient macros of a recipe. A recipe without
// ingredients yields zero totals.
func RecipeMacros(r *entities.Recipe) domain.Macros {
	var total domain.Macros
	for idx := range r.Ingredients {
		total = total.Add(IngredientMacros(&r.Ingredients[idx]))
	}
	return total
}

// RecipeUnitMacros spreads the recipe total across its yield.
func RecipeUnitMacros(r *entities.Recipe) domain.Macros {
	return RecipeMacros(r).Divide(r.Quantity)
}

// ConsumptionRef validates the food/recipe columns of a consumption row.
func ConsumptionRef(c *entities.Consumption) (domain.ConsumableRef, error) {
	var foodID, recipeID *string
	if c.FoodID != nil {
		id := c.FoodID.String()
		foodID = &id
	}
	if c.RecipeID != nil {
		id := c.RecipeID.String()
		recipeID = &id
	}
	return domain.ConsumableRefFromIDs(foodID, recipeID)
}

// ConsumptionMacros computes the contribution of a consumption. The food or
// recipe (with ingredients and their foods) must be loaded.
func ConsumptionMacros(c *entities.Consumption) (domain.Macros, error) {
	ref, err := ConsumptionRef(c)
	if err != nil {
		return domain.Macros{}, err
	}
	if ref.IsFood() {
		if c.Food == nil {
			return domain.Macros{}, domain.ErrConsumableMissing
		}
		return FoodMacros(c.Food).Scale(c.Quantity), nil
	}
	if c.Recipe == nil {
		return domain.Macros{}, domain.ErrConsumableMissing
	}
	return RecipeUnitMacros(c.Recipe).Scale(c.Quantity), nil
}

// ConsumableName resolves the display name from whichever side is set.
func ConsumableName(c *entities.Consumption) string {
	switch {
	case c.Food != nil:
		return c.Food.Name
	case c.Recipe != nil:
		return c.Recipe.Name
	default:
		return ""
	}
}

// Total sums a list of macro values.
func Total(values ...domain.Macros) domain.Macros {
	var total domain.Macros
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
