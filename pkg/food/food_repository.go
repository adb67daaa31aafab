package food

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoods(ctx context.Context, userID string) ([]*entities.Food, error)
		UpdateFood(ctx context.Context, id string, changes FoodChanges) error
		DeleteFood(ctx context.Context, id string) error
		CountFoodReferences(ctx context.Context, id string) (int64, error)
	}

	// FoodChanges is a full replace of the mutable columns, except that the
	// hidden/starred timestamps follow the first-set-wins rule.
	FoodChanges struct {
		Name      string
		Macros    domain.Macros
		Hidden    domain.FlagUpdate
		Starred   domain.FlagUpdate
		UpdatedAt time.Time
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context, userID string) ([]*entities.Food, error) {
	var foods []*entities.Food
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, id string, changes FoodChanges) error {
	updates := map[string]interface{}{
		"name":       changes.Name,
		"kcal":       changes.Macros.Kcal,
		"fat":        changes.Macros.Fat,
		"carbs":      changes.Macros.Carbs,
		"protein":    changes.Macros.Protein,
		"updated_at": changes.UpdatedAt,
	}
	SetFlag(updates, "hidden_at", changes.Hidden, changes.UpdatedAt)
	SetFlag(updates, "starred_at", changes.Starred, changes.UpdatedAt)

	res := r.db.WithContext(ctx).Model(&entities.Food{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

// CountFoodReferences counts ingredients and consumptions pointing at a food.
func (r *foodRepository) CountFoodReferences(ctx context.Context, id string) (int64, error) {
	var ingredients, consumptions int64

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).
		Where("food_id = ?", id).
		Count(&ingredients).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.Consumption{}).
		Where("food_id = ?", id).
		Count(&consumptions).Error; err != nil {
		return 0, err
	}

	return ingredients + consumptions, nil
}
