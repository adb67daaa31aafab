package consumption

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"Matrafl-Backend/pkg/food"
	"Matrafl-Backend/pkg/nutrition"
	"Matrafl-Backend/pkg/recipe"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	ConsumptionService interface {
		GetConsumptions(ctx context.Context, userID string, filter domain.ConsumptionFilter) ([]domain.ConsumptionResponse, error)
		GetConsumptionByID(ctx context.Context, id string, userID string) (domain.ConsumptionResponse, error)
		CreateConsumption(ctx context.Context, req domain.ConsumptionRequest, userID string) (domain.ConsumptionResponse, error)
		UpdateConsumption(ctx context.Context, id string, req domain.ConsumptionRequest, userID string) (domain.ConsumptionResponse, error)
		DeleteConsumption(ctx context.Context, id string, userID string) error
	}

	consumptionService struct {
		consumptionRepository ConsumptionRepository
		foodService           food.FoodService
		recipeService         recipe.RecipeService
		now                   func() time.Time
	}
)

func NewConsumptionService(consumptionRepository ConsumptionRepository, foodService food.FoodService, recipeService recipe.RecipeService) ConsumptionService {
	return &consumptionService{
		consumptionRepository: consumptionRepository,
		foodService:           foodService,
		recipeService:         recipeService,
		now:                   time.Now,
	}
}

func (s *consumptionService) GetConsumptions(ctx context.Context, userID string, filter domain.ConsumptionFilter) ([]domain.ConsumptionResponse, error) {
	consumptions, err := s.consumptionRepository.GetConsumptions(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list consumptions: %w", err)
	}

	result := make([]domain.ConsumptionResponse, 0, len(consumptions))
	for _, c := range consumptions {
		res, err := ToConsumptionResponse(c)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *consumptionService) GetConsumptionByID(ctx context.Context, id string, userID string) (domain.ConsumptionResponse, error) {
	c, err := s.getOwnedConsumption(ctx, id, userID)
	if err != nil {
		return domain.ConsumptionResponse{}, err
	}
	return ToConsumptionResponse(c)
}

func (s *consumptionService) getOwnedConsumption(ctx context.Context, id string, userID string) (*entities.Consumption, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrConsumptionNotFound
	}

	c, err := s.consumptionRepository.GetConsumptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConsumptionNotFound
		}
		return nil, fmt.Errorf("get consumption: %w", err)
	}

	if !c.OwnedBy(userID) {
		return nil, domain.ErrConsumptionForbidden
	}
	return c, nil
}

// bind points c at the consumable named by the request, after checking the
// caller owns it. Exactly one side ends up set.
func (s *consumptionService) bind(ctx context.Context, c *entities.Consumption, req domain.ConsumptionRequest, userID string) error {
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	consumedAt, err := time.Parse(domain.DateFormat, req.ConsumedAt)
	if err != nil {
		return domain.ErrInvalidDate
	}

	ref, err := domain.NewConsumableRef(req.ConsumableType, req.ConsumableID)
	if err != nil {
		return err
	}

	c.FoodID, c.Food, c.RecipeID, c.Recipe = nil, nil, nil, nil
	switch {
	case ref.IsFood():
		f, err := s.foodService.GetOwnedFood(ctx, ref.ID(), userID)
		if err != nil {
			return err
		}
		c.FoodID, c.Food = &f.ID, f
	case ref.IsRecipe():
		r, err := s.recipeService.GetOwnedRecipe(ctx, ref.ID(), userID)
		if err != nil {
			return err
		}
		c.RecipeID, c.Recipe = &r.ID, r
	}

	c.Quantity = req.Quantity
	c.ConsumedAt = consumedAt
	return nil
}

func (s *consumptionService) CreateConsumption(ctx context.Context, req domain.ConsumptionRequest, userID string) (domain.ConsumptionResponse, error) {
	userUUID, err := domain.ParseUserID(userID)
	if err != nil {
		return domain.ConsumptionResponse{}, err
	}

	now := s.now().UTC()
	c := &entities.Consumption{
		ID:        uuid.New(),
		UserID:    userUUID,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.bind(ctx, c, req, userID); err != nil {
		return domain.ConsumptionResponse{}, err
	}

	if err := s.consumptionRepository.CreateConsumption(ctx, c); err != nil {
		return domain.ConsumptionResponse{}, fmt.Errorf("create consumption: %w", err)
	}
	return ToConsumptionResponse(c)
}

func (s *consumptionService) UpdateConsumption(ctx context.Context, id string, req domain.ConsumptionRequest, userID string) (domain.ConsumptionResponse, error) {
	c, err := s.getOwnedConsumption(ctx, id, userID)
	if err != nil {
		return domain.ConsumptionResponse{}, err
	}
	if err := s.bind(ctx, c, req, userID); err != nil {
		return domain.ConsumptionResponse{}, err
	}
	c.UpdatedAt = s.now().UTC()

	if err := s.consumptionRepository.UpdateConsumption(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ConsumptionResponse{}, domain.ErrConsumptionNotFound
		}
		return domain.ConsumptionResponse{}, fmt.Errorf("update consumption: %w", err)
	}
	return ToConsumptionResponse(c)
}

func (s *consumptionService) DeleteConsumption(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedConsumption(ctx, id, userID); err != nil {
		return err
	}

	if err := s.consumptionRepository.DeleteConsumption(ctx, id); err != nil {
		return fmt.Errorf("delete consumption: %w", err)
	}
	return nil
}

// ToConsumptionResponse needs the consumable loaded, including a recipe's
// ingredients and their foods.
func ToConsumptionResponse(c *entities.Consumption) (domain.ConsumptionResponse, error) {
	ref, err := nutrition.ConsumptionRef(c)
	if err != nil {
		return domain.ConsumptionResponse{}, err
	}

	macros, err := nutrition.ConsumptionMacros(c)
	if err != nil {
		return domain.ConsumptionResponse{}, err
	}

	return domain.ConsumptionResponse{
		ID:             c.ID.String(),
		UserID:         c.UserID.String(),
		ConsumableType: ref.Type(),
		ConsumableID:   ref.ID(),
		ConsumableName: nutrition.ConsumableName(c),
		Quantity:       c.Quantity,
		ConsumedAt:     c.ConsumedAt.Format(domain.DateFormat),
		Macros:         macros,
	}, nil
}
