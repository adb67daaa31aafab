package recipe

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepository struct {
	recipes      map[string]*entities.Recipe
	ingredients  map[string]*entities.Ingredient
	foods        map[string]*entities.Food
	consumptions map[string]int64
}

func newFakeRecipeRepository() *fakeRecipeRepository {
	return &fakeRecipeRepository{
		recipes:      map[string]*entities.Recipe{},
		ingredients:  map[string]*entities.Ingredient{},
		foods:        map[string]*entities.Food{},
		consumptions: map[string]int64{},
	}
}

// load mimics Preload("Ingredients.Food").
func (r *fakeRecipeRepository) load(recipe *entities.Recipe) *entities.Recipe {
	copied := *recipe
	copied.Ingredients = nil
	for _, i := range r.ingredients {
		if i.RecipeID == recipe.ID {
			ing := *i
			ing.Food = r.foods[i.FoodID.String()]
			copied.Ingredients = append(copied.Ingredients, ing)
		}
	}
	return &copied
}

func (r *fakeRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	copied := *recipe
	r.recipes[recipe.ID.String()] = &copied
	return nil
}

func (r *fakeRecipeRepository) GetRecipeByID(_ context.Context, id string) (*entities.Recipe, error) {
	recipe, ok := r.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.load(recipe), nil
}

func (r *fakeRecipeRepository) GetRecipes(_ context.Context, userID string) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, recipe := range r.recipes {
		if recipe.UserID.String() == userID {
			out = append(out, r.load(recipe))
		}
	}
	return out, nil
}

func (r *fakeRecipeRepository) UpdateRecipe(_ context.Context, id string, changes RecipeChanges) error {
	recipe, ok := r.recipes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	recipe.Name = changes.Name
	recipe.Quantity = changes.Quantity
	return nil
}

func (r *fakeRecipeRepository) DeleteRecipe(_ context.Context, id string) error {
	delete(r.recipes, id)
	for key, i := range r.ingredients {
		if i.RecipeID.String() == id {
			delete(r.ingredients, key)
		}
	}
	return nil
}

func (r *fakeRecipeRepository) CountRecipeConsumptions(_ context.Context, id string) (int64, error) {
	return r.consumptions[id], nil
}

func (r *fakeRecipeRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	copied := *ingredient
	r.ingredients[ingredient.ID.String()] = &copied
	return nil
}

func (r *fakeRecipeRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	i, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *i
	copied.Food = r.foods[i.FoodID.String()]
	return &copied, nil
}

func (r *fakeRecipeRepository) GetIngredients(_ context.Context, recipeID string) ([]*entities.Ingredient, error) {
	var out []*entities.Ingredient
	for _, i := range r.ingredients {
		if i.RecipeID.String() == recipeID {
			copied := *i
			copied.Food = r.foods[i.FoodID.String()]
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRecipeRepository) UpdateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	i, ok := r.ingredients[ingredient.ID.String()]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	i.FoodID = ingredient.FoodID
	i.Quantity = ingredient.Quantity
	return nil
}

func (r *fakeRecipeRepository) DeleteIngredient(_ context.Context, id string) error {
	delete(r.ingredients, id)
	return nil
}

type fakeFoodService struct {
	foods map[string]*entities.Food
}

func (f *fakeFoodService) GetOwnedFood(_ context.Context, id string, userID string) (*entities.Food, error) {
	food, ok := f.foods[id]
	if !ok {
		return nil, domain.ErrFoodNotFound
	}
	if !food.OwnedBy(userID) {
		return nil, domain.ErrFoodForbidden
	}
	return food, nil
}

func (f *fakeFoodService) GetFoods(context.Context, string) ([]domain.FoodResponse, error) {
	return nil, nil
}

func (f *fakeFoodService) GetFoodByID(context.Context, string, string) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeFoodService) CreateFood(context.Context, domain.CreateFoodRequest, string) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeFoodService) UpdateFood(context.Context, string, domain.UpdateFoodRequest, string) (domain.FoodResponse, error) {
	return domain.FoodResponse{}, nil
}

func (f *fakeFoodService) DeleteFood(context.Context, string, string) error {
	return nil
}

type fixture struct {
	svc    *recipeService
	repo   *fakeRecipeRepository
	userID string
	egg    *entities.Food
}

func newFixture() fixture {
	userID := uuid.New()
	egg := &entities.Food{ID: uuid.New(), UserID: userID, Name: "Egg", Kcal: 70, Fat: 5, Carbs: 0.5, Protein: 6}

	repo := newFakeRecipeRepository()
	repo.foods[egg.ID.String()] = egg
	foods := &fakeFoodService{foods: map[string]*entities.Food{egg.ID.String(): egg}}

	return fixture{
		svc: &recipeService{
			recipeRepository: repo,
			foodService:      foods,
			now:              func() time.Time { return time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC) },
		},
		repo:   repo,
		userID: userID.String(),
		egg:    egg,
	}
}

func TestRecipeTotalsFollowIngredients(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	omelette, err := fx.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "Omelette", Quantity: 2}, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, domain.Macros{}, omelette.Macros)

	ing, err := fx.svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		RecipeID: omelette.ID, FoodID: fx.egg.ID.String(), Quantity: 3,
	}, fx.userID)
	require.NoError(t, err)
	assert.Equal(t, "Egg", ing.FoodName)
	assert.InDelta(t, 210, ing.Kcal, 1e-9)

	got, err := fx.svc.GetRecipeByID(ctx, omelette.ID, fx.userID)
	require.NoError(t, err)
	assert.InDelta(t, 210, got.Kcal, 1e-9)
	assert.InDelta(t, 18, got.Protein, 1e-9)

	_, err = fx.svc.UpdateIngredient(ctx, ing.ID, domain.UpdateIngredientRequest{FoodID: fx.egg.ID.String(), Quantity: 4}, fx.userID)
	require.NoError(t, err)

	got, err = fx.svc.GetRecipeByID(ctx, omelette.ID, fx.userID)
	require.NoError(t, err)
	assert.InDelta(t, 280, got.Kcal, 1e-9)

	list, err := fx.svc.GetIngredients(ctx, omelette.ID, fx.userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.InDelta(t, 4, list[0].Quantity, 1e-9)
}

func TestCreateIngredientRequiresOwnedFood(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	recipe, err := fx.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "Omelette", Quantity: 1}, fx.userID)
	require.NoError(t, err)

	foreign := &entities.Food{ID: uuid.New(), UserID: uuid.New(), Name: "Ham"}
	fx.svc.foodService.(*fakeFoodService).foods[foreign.ID.String()] = foreign

	_, err = fx.svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		RecipeID: recipe.ID, FoodID: foreign.ID.String(), Quantity: 1,
	}, fx.userID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = fx.svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		RecipeID: recipe.ID, FoodID: fx.egg.ID.String(), Quantity: 1,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, fx.repo.ingredients)
}

func TestRecipeQuantityMustBePositive(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Name: "Air", Quantity: 0}, fx.userID)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, fx.repo.recipes)
}

func TestDeleteRecipe(t *testing.T) {
	fx := newFixture()
	ctx := context.Background()

	recipe, err := fx.svc.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "Omelette", Quantity: 2}, fx.userID)
	require.NoError(t, err)
	_, err = fx.svc.CreateIngredient(ctx, domain.CreateIngredientRequest{
		RecipeID: recipe.ID, FoodID: fx.egg.ID.String(), Quantity: 3,
	}, fx.userID)
	require.NoError(t, err)

	fx.repo.consumptions[recipe.ID] = 1
	assert.ErrorIs(t, fx.svc.DeleteRecipe(ctx, recipe.ID, fx.userID), domain.ErrRecipeInUse)

	fx.repo.consumptions[recipe.ID] = 0
	assert.ErrorIs(t, fx.svc.DeleteRecipe(ctx, recipe.ID, uuid.NewString()), domain.ErrRecipeForbidden)

	require.NoError(t, fx.svc.DeleteRecipe(ctx, recipe.ID, fx.userID))
	assert.Empty(t, fx.repo.recipes)
	assert.Empty(t, fx.repo.ingredients)

	_, err = fx.svc.GetRecipeByID(ctx, recipe.ID, fx.userID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
