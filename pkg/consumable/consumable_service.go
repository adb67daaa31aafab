package consumable

import (
	"Matrafl-Backend/domain"
	"context"
	"fmt"
	"time"
)

type (
	ConsumableService interface {
		GetConsumables(ctx context.Context, userID string) ([]domain.RankedConsumable, error)
	}

	consumableService struct {
		consumableRepository ConsumableRepository
		now                  func() time.Time
	}
)

func NewConsumableService(consumableRepository ConsumableRepository) ConsumableService {
	return &consumableService{
		consumableRepository: consumableRepository,
		now:                  time.Now,
	}
}

// GetConsumables returns the user's visible foods and recipes in pick-list order.
func (s *consumableService) GetConsumables(ctx context.Context, userID string) ([]domain.RankedConsumable, error) {
	now := s.now().UTC()
	since := truncateDay(now).AddDate(0, 0, -RecentDays)

	items, err := s.consumableRepository.GetConsumableSummaries(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("list consumables: %w", err)
	}
	return Rank(items, now), nil
}
