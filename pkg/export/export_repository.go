package export

import (
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	ExportRepository interface {
		GetWeights(ctx context.Context, userID string) ([]*entities.Weight, error)
		GetFoods(ctx context.Context, userID string) ([]*entities.Food, error)
		GetConsumptions(ctx context.Context, userID string) ([]*entities.Consumption, error)
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetIngredients(ctx context.Context, userID string) ([]*entities.Ingredient, error)
	}

	exportRepository struct {
		db *gorm.DB
	}
)

func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepository{db: db}
}

func findByUser[T any](ctx context.Context, db *gorm.DB, userID string) ([]*T, error) {
	var rows []*T
	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *exportRepository) GetWeights(ctx context.Context, userID string) ([]*entities.Weight, error) {
	return findByUser[entities.Weight](ctx, r.db, userID)
}

func (r *exportRepository) GetFoods(ctx context.Context, userID string) ([]*entities.Food, error) {
	return findByUser[entities.Food](ctx, r.db, userID)
}

func (r *exportRepository) GetConsumptions(ctx context.Context, userID string) ([]*entities.Consumption, error) {
	return findByUser[entities.Consumption](ctx, r.db, userID)
}

func (r *exportRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	return findByUser[entities.Recipe](ctx, r.db, userID)
}

func (r *exportRepository) GetIngredients(ctx context.Context, userID string) ([]*entities.Ingredient, error) {
	return findByUser[entities.Ingredient](ctx, r.db, userID)
}
