package food

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"Matrafl-Backend/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	FoodService interface {
		GetFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id string, userID string) (domain.FoodResponse, error)
		GetOwnedFood(ctx context.Context, id string, userID string) (*entities.Food, error)
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error)
		DeleteFood(ctx context.Context, id string, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
		now            func() time.Time
	}
)

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		now:            time.Now,
	}
}

func (s *foodService) GetFoods(ctx context.Context, userID string) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}

	result := make([]domain.FoodResponse, 0, len(foods))
	for _, f := range foods {
		result = append(result, ToFoodResponse(f))
	}
	return result, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id string, userID string) (domain.FoodResponse, error) {
	f, err := s.GetOwnedFood(ctx, id, userID)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return ToFoodResponse(f), nil
}

// GetOwnedFood loads a food and rejects it unless userID owns it.
func (s *foodService) GetOwnedFood(ctx context.Context, id string, userID string) (*entities.Food, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrFoodNotFound
	}

	f, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}

	if !f.OwnedBy(userID) {
		return nil, domain.ErrFoodForbidden
	}
	return f, nil
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, userID string) (domain.FoodResponse, error) {
	userUUID, err := domain.ParseUserID(userID)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	now := s.now().UTC()
	f := &entities.Food{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      req.Name,
		Kcal:      req.Kcal,
		Fat:       req.Fat,
		Carbs:     req.Carbs,
		Protein:   req.Protein,
		HiddenAt:  InitialFlag(req.Hidden, now),
		StarredAt: InitialFlag(req.Starred, now),
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.foodRepository.CreateFood(ctx, f); err != nil {
		return domain.FoodResponse{}, fmt.Errorf("create food: %w", err)
	}
	return ToFoodResponse(f), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.UpdateFoodRequest, userID string) (domain.FoodResponse, error) {
	f, err := s.GetOwnedFood(ctx, id, userID)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	now := s.now().UTC()
	changes := FoodChanges{
		Name:      req.Name,
		Macros:    domain.Macros{Kcal: req.Kcal, Fat: req.Fat, Carbs: req.Carbs, Protein: req.Protein},
		Hidden:    domain.FlagFromBool(req.Hidden),
		Starred:   domain.FlagFromBool(req.Starred),
		UpdatedAt: now,
	}

	if err := s.foodRepository.UpdateFood(ctx, id, changes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodResponse{}, domain.ErrFoodNotFound
		}
		return domain.FoodResponse{}, fmt.Errorf("update food: %w", err)
	}

	f.Name = changes.Name
	f.Kcal, f.Fat, f.Carbs, f.Protein = req.Kcal, req.Fat, req.Carbs, req.Protein
	f.HiddenAt = ApplyFlag(f.HiddenAt, changes.Hidden, now)
	f.StarredAt = ApplyFlag(f.StarredAt, changes.Starred, now)
	f.UpdatedAt = now
	return ToFoodResponse(f), nil
}

// DeleteFood refuses to delete a food that recipes or consumptions still use.
func (s *foodService) DeleteFood(ctx context.Context, id string, userID string) error {
	if _, err := s.GetOwnedFood(ctx, id, userID); err != nil {
		return err
	}

	refs, err := s.foodRepository.CountFoodReferences(ctx, id)
	if err != nil {
		return fmt.Errorf("count food references: %w", err)
	}
	if refs > 0 {
		return domain.ErrFoodInUse
	}

	if err := s.foodRepository.DeleteFood(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrFoodInUse
		}
		return fmt.Errorf("delete food: %w", err)
	}
	return nil
}

func ToFoodResponse(f *entities.Food) domain.FoodResponse {
	return domain.FoodResponse{
		ID:        f.ID.String(),
		UserID:    f.UserID.String(),
		Name:      f.Name,
		Macros:    nutrition.FoodMacros(f),
		HiddenAt:  f.HiddenAt,
		StarredAt: f.StarredAt,
		CreatedAt: f.CreatedAt,
	}
}
