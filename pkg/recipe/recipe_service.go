package recipe

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"Matrafl-Backend/pkg/food"
	"Matrafl-Backend/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeByID(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		GetOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error

		GetIngredients(ctx context.Context, recipeID string, userID string) ([]domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string, userID string) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodService      food.FoodService
		now              func() time.Time
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodService food.FoodService) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodService:      foodService,
		now:              time.Now,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, ToRecipeResponse(r))
	}
	return result, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	r, err := s.GetOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return ToRecipeResponse(r), nil
}

// GetOwnedRecipe loads a recipe with its ingredients and their foods, and
// rejects it unless userID owns it.
func (s *recipeService) GetOwnedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrRecipeNotFound
	}

	r, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	if !r.OwnedBy(userID) {
		return nil, domain.ErrRecipeForbidden
	}
	return r, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if req.Quantity <= 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := domain.ParseUserID(userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	now := s.now().UTC()
	r := &entities.Recipe{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		HiddenAt:  food.InitialFlag(req.Hidden, now),
		StarredAt: food.InitialFlag(req.Starred, now),
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.recipeRepository.CreateRecipe(ctx, r); err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	return ToRecipeResponse(r), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	if req.Quantity <= 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidQuantity
	}

	r, err := s.GetOwnedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	now := s.now().UTC()
	changes := RecipeChanges{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Hidden:    domain.FlagFromBool(req.Hidden),
		Starred:   domain.FlagFromBool(req.Starred),
		UpdatedAt: now,
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, id, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, fmt.Errorf("update recipe: %w", err)
	}

	r.Name = changes.Name
	r.Quantity = changes.Quantity
	r.HiddenAt = food.ApplyFlag(r.HiddenAt, changes.Hidden, now)
	r.StarredAt = food.ApplyFlag(r.StarredAt, changes.Starred, now)
	r.UpdatedAt = now
	return ToRecipeResponse(r), nil
}

// DeleteRecipe refuses while consumptions still point at the recipe.
func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.GetOwnedRecipe(ctx, id, userID); err != nil {
		return err
	}

	refs, err := s.recipeRepository.CountRecipeConsumptions(ctx, id)
	if err != nil {
		return fmt.Errorf("count recipe consumptions: %w", err)
	}
	if refs > 0 {
		return domain.ErrRecipeInUse
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrRecipeInUse
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func (s *recipeService) GetIngredients(ctx context.Context, recipeID string, userID string) ([]domain.IngredientResponse, error) {
	if _, err := s.GetOwnedRecipe(ctx, recipeID, userID); err != nil {
		return nil, err
	}

	ingredients, err := s.recipeRepository.GetIngredients(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		result = append(result, ToIngredientResponse(i))
	}
	return result, nil
}

func (s *recipeService) GetIngredientByID(ctx context.Context, id string, userID string) (domain.IngredientResponse, error) {
	i, err := s.getOwnedIngredient(ctx, id, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	return ToIngredientResponse(i), nil
}

func (s *recipeService) getOwnedIngredient(ctx context.Context, id string, userID string) (*entities.Ingredient, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrIngredientNotFound
	}

	i, err := s.recipeRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}

	if !i.OwnedBy(userID) {
		return nil, domain.ErrIngredientForbidden
	}
	return i, nil
}

// CreateIngredient requires the caller to own both the recipe and the food.
func (s *recipeService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	if req.Quantity <= 0 {
		return domain.IngredientResponse{}, domain.ErrInvalidQuantity
	}

	r, err := s.GetOwnedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	f, err := s.foodService.GetOwnedFood(ctx, req.FoodID, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	now := s.now().UTC()
	i := &entities.Ingredient{
		ID:        uuid.New(),
		UserID:    r.UserID,
		RecipeID:  r.ID,
		FoodID:    f.ID,
		Quantity:  req.Quantity,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.recipeRepository.CreateIngredient(ctx, i); err != nil {
		return domain.IngredientResponse{}, fmt.Errorf("create ingredient: %w", err)
	}

	i.Food = f
	return ToIngredientResponse(i), nil
}

func (s *recipeService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) (domain.IngredientResponse, error) {
	if req.Quantity <= 0 {
		return domain.IngredientResponse{}, domain.ErrInvalidQuantity
	}

	i, err := s.getOwnedIngredient(ctx, id, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	f, err := s.foodService.GetOwnedFood(ctx, req.FoodID, userID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}

	i.FoodID = f.ID
	i.Food = f
	i.Quantity = req.Quantity
	i.UpdatedAt = s.now().UTC()

	if err := s.recipeRepository.UpdateIngredient(ctx, i); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, fmt.Errorf("update ingredient: %w", err)
	}
	return ToIngredientResponse(i), nil
}

func (s *recipeService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedIngredient(ctx, id, userID); err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteIngredient(ctx, id); err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	return nil
}

// ToRecipeResponse reports the aggregate over all ingredients, so Ingredients
// (and their foods) should be loaded.
func ToRecipeResponse(r *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:        r.ID.String(),
		UserID:    r.UserID.String(),
		Name:      r.Name,
		Quantity:  r.Quantity,
		Macros:    nutrition.RecipeMacros(r),
		HiddenAt:  r.HiddenAt,
		StarredAt: r.StarredAt,
		CreatedAt: r.CreatedAt,
	}
}

func ToIngredientResponse(i *entities.Ingredient) domain.IngredientResponse {
	res := domain.IngredientResponse{
		ID:       i.ID.String(),
		UserID:   i.UserID.String(),
		RecipeID: i.RecipeID.String(),
		FoodID:   i.FoodID.String(),
		Quantity: i.Quantity,
		Macros:   nutrition.IngredientMacros(i),
	}
	if i.Food != nil {
		res.FoodName = i.Food.Name
	}
	return res
}
