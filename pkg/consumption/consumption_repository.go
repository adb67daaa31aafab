package consumption

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ConsumptionRepository interface {
		GetConsumptions(ctx context.Context, userID string, filter domain.ConsumptionFilter) ([]*entities.Consumption, error)
		GetConsumptionByID(ctx context.Context, id string) (*entities.Consumption, error)
		CreateConsumption(ctx context.Context, consumption *entities.Consumption) error
		UpdateConsumption(ctx context.Context, consumption *entities.Consumption) error
		DeleteConsumption(ctx context.Context, id string) error
	}

	consumptionRepository struct {
		db *gorm.DB
	}
)

func NewConsumptionRepository(db *gorm.DB) ConsumptionRepository {
	return &consumptionRepository{db: db}
}

// withConsumable loads everything needed to compute macros and names.
func withConsumable(db *gorm.DB) *gorm.DB {
	return db.Preload("Food").Preload("Recipe.Ingredients.Food")
}

func (r *consumptionRepository) GetConsumptions(ctx context.Context, userID string, filter domain.ConsumptionFilter) ([]*entities.Consumption, error) {
	var consumptions []*entities.Consumption

	query := withConsumable(r.db.WithContext(ctx)).Where("user_id = ?", userID)

	switch filter.Kind {
	case domain.FilterDate:
		query = query.Where("consumed_at = ?", filter.Date.Format(domain.DateFormat))
	case domain.FilterFood:
		query = query.Where("food_id = ?", filter.FoodID)
	case domain.FilterRecipe:
		query = query.Where("recipe_id = ?", filter.RecipeID)
	}

	if err := query.Order("updated_at desc").Find(&consumptions).Error; err != nil {
		return nil, err
	}
	return consumptions, nil
}

func (r *consumptionRepository) GetConsumptionByID(ctx context.Context, id string) (*entities.Consumption, error) {
	var consumption entities.Consumption
	if err := withConsumable(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&consumption).Error; err != nil {
		return nil, err
	}
	return &consumption, nil
}

func (r *consumptionRepository) CreateConsumption(ctx context.Context, consumption *entities.Consumption) error {
	return r.db.WithContext(ctx).Omit("Food", "Recipe").Create(consumption).Error
}

// UpdateConsumption writes both reference columns so switching between a
// food and a recipe clears the other side.
func (r *consumptionRepository) UpdateConsumption(ctx context.Context, consumption *entities.Consumption) error {
	res := r.db.WithContext(ctx).Model(&entities.Consumption{}).
		Where("id = ?", consumption.ID).
		Updates(map[string]interface{}{
			"food_id":     consumption.FoodID,
			"recipe_id":   consumption.RecipeID,
			"quantity":    consumption.Quantity,
			"consumed_at": consumption.ConsumedAt,
			"updated_at":  consumption.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *consumptionRepository) DeleteConsumption(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Consumption{}).Error
}
