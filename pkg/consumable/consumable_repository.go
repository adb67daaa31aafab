package consumable

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	ConsumableRepository interface {
		// GetConsumableSummaries lists the visible foods and recipes of a user
		// with their consumptions counted from since (exclusive).
		GetConsumableSummaries(ctx context.Context, userID string, since time.Time) ([]domain.ConsumableSummary, error)
	}

	consumableRepository struct {
		db *gorm.DB
	}

	summaryRow struct {
		ID             string
		Name           string
		IsStarred      bool
		CreatedAt      time.Time
		LastConsumedAt *time.Time
		ConsumedCount  int64
	}
)

func NewConsumableRepository(db *gorm.DB) ConsumableRepository {
	return &consumableRepository{db: db}
}

func (r *consumableRepository) GetConsumableSummaries(ctx context.Context, userID string, since time.Time) ([]domain.ConsumableSummary, error) {
	cutoff := since.Format(domain.DateFormat)

	var foods []summaryRow
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).
		Select("foods.id, foods.name, foods.starred_at IS NOT NULL AS is_starred, foods.created_at, "+
			"MAX(consumptions.consumed_at) AS last_consumed_at, COUNT(consumptions.id) AS consumed_count").
		Joins("LEFT JOIN consumptions ON consumptions.food_id = foods.id AND consumptions.consumed_at > ?", cutoff).
		Where("foods.user_id = ? AND foods.hidden_at IS NULL", userID).
		Group("foods.id").
		Scan(&foods).Error; err != nil {
		return nil, err
	}

	var recipes []summaryRow
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Select("recipes.id, recipes.name, recipes.starred_at IS NOT NULL AS is_starred, recipes.created_at, "+
			"MAX(consumptions.consumed_at) AS last_consumed_at, COUNT(consumptions.id) AS consumed_count").
		Joins("LEFT JOIN consumptions ON consumptions.recipe_id = recipes.id AND consumptions.consumed_at > ?", cutoff).
		Where("recipes.user_id = ? AND recipes.hidden_at IS NULL", userID).
		Group("recipes.id").
		Scan(&recipes).Error; err != nil {
		return nil, err
	}

	summaries := make([]domain.ConsumableSummary, 0, len(foods)+len(recipes))
	for _, row := range foods {
		summaries = append(summaries, row.summary(domain.ConsumableFood))
	}
	for _, row := range recipes {
		summaries = append(summaries, row.summary(domain.ConsumableRecipe))
	}
	return summaries, nil
}

func (row summaryRow) summary(kind domain.ConsumableType) domain.ConsumableSummary {
	return domain.ConsumableSummary{
		Type:           kind,
		ID:             row.ID,
		Name:           row.Name,
		IsStarred:      row.IsStarred,
		CreatedAt:      row.CreatedAt,
		LastConsumedAt: row.LastConsumedAt,
		ConsumedCount:  row.ConsumedCount,
	}
}
