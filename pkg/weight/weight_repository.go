package weight

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"gorm.io/gorm"
	"time"
)

type (
	WeightRepository interface {
		GetWeights(ctx context.Context, userID string) ([]*entities.Weight, error)
		GetWeightByID(ctx context.Context, id string) (*entities.Weight, error)
		GetWeightByDate(ctx context.Context, userID string, date time.Time) (*entities.Weight, error)
		CreateWeight(ctx context.Context, weight *entities.Weight) error
		UpdateWeight(ctx context.Context, weight *entities.Weight) error
		DeleteWeight(ctx context.Context, id string) error
	}

	weightRepository struct {
		db *gorm.DB
	}
)

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) GetWeights(ctx context.Context, userID string) ([]*entities.Weight, error) {
	var weights []*entities.Weight
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("measured_at desc, created_at asc").
		Find(&weights).Error; err != nil {
		return nil, err
	}
	return weights, nil
}

func (r *weightRepository) GetWeightByID(ctx context.Context, id string) (*entities.Weight, error) {
	var weight entities.Weight
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&weight).Error; err != nil {
		return nil, err
	}
	return &weight, nil
}

// GetWeightByDate returns the earliest recorded row for that day. Nothing
// stops a user from recording two, but reads treat the day as having one.
func (r *weightRepository) GetWeightByDate(ctx context.Context, userID string, date time.Time) (*entities.Weight, error) {
	var weight entities.Weight
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND measured_at = ?", userID, date.Format(domain.DateFormat)).
		Order("created_at asc").
		First(&weight).Error; err != nil {
		return nil, err
	}
	return &weight, nil
}

func (r *weightRepository) CreateWeight(ctx context.Context, weight *entities.Weight) error {
	return r.db.WithContext(ctx).Create(weight).Error
}

func (r *weightRepository) UpdateWeight(ctx context.Context, weight *entities.Weight) error {
	res := r.db.WithContext(ctx).Model(&entities.Weight{}).
		Where("id = ?", weight.ID).
		Updates(map[string]interface{}{
			"weight":      weight.Weight,
			"measured_at": weight.MeasuredAt,
			"updated_at":  weight.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *weightRepository) DeleteWeight(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Weight{}).Error
}
