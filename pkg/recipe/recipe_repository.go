package recipe

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"Matrafl-Backend/pkg/food"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, changes RecipeChanges) error
		DeleteRecipe(ctx context.Context, id string) error
		CountRecipeConsumptions(ctx context.Context, id string) (int64, error)

		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, recipeID string) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id string) error
	}

	RecipeChanges struct {
		Name      string
		Quantity  float64
		Hidden    domain.FlagUpdate
		Starred   domain.FlagUpdate
		UpdatedAt time.Time
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients").Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Food").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Food").
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id string, changes RecipeChanges) error {
	updates := map[string]interface{}{
		"name":       changes.Name,
		"quantity":   changes.Quantity,
		"updated_at": changes.UpdatedAt,
	}
	food.SetFlag(updates, "hidden_at", changes.Hidden, changes.UpdatedAt)
	food.SetFlag(updates, "starred_at", changes.Starred, changes.UpdatedAt)

	res := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteRecipe removes the recipe; its ingredients go with it through the
// ON DELETE CASCADE foreign key.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) CountRecipeConsumptions(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Consumption{}).
		Where("recipe_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Omit("Food").Create(ingredient).Error
}

func (r *recipeRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("id = ?", id).
		First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *recipeRepository) GetIngredients(ctx context.Context, recipeID string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Where("recipe_id = ?", recipeID).
		Order("created_at asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	res := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("id = ?", ingredient.ID).
		Updates(map[string]interface{}{
			"food_id":    ingredient.FoodID,
			"quantity":   ingredient.Quantity,
			"updated_at": ingredient.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *recipeRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}
