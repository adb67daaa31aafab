package weight

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	WeightService interface {
		GetWeights(ctx context.Context, userID string) ([]domain.WeightResponse, error)
		GetWeightByID(ctx context.Context, id string, userID string) (domain.WeightResponse, error)
		GetWeightByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightResponse, error)
		CreateWeight(ctx context.Context, req domain.WeightRequest, userID string) (domain.WeightResponse, error)
		UpdateWeight(ctx context.Context, id string, req domain.WeightRequest, userID string) (domain.WeightResponse, error)
		DeleteWeight(ctx context.Context, id string, userID string) error
	}

	weightService struct {
		weightRepository WeightRepository
		now              func() time.Time
	}
)

func NewWeightService(weightRepository WeightRepository) WeightService {
	return &weightService{
		weightRepository: weightRepository,
		now:              time.Now,
	}
}

func (s *weightService) GetWeights(ctx context.Context, userID string) ([]domain.WeightResponse, error) {
	weights, err := s.weightRepository.GetWeights(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	result := make([]domain.WeightResponse, 0, len(weights))
	for _, w := range weights {
		result = append(result, ToWeightResponse(w))
	}
	return result, nil
}

func (s *weightService) GetWeightByID(ctx context.Context, id string, userID string) (domain.WeightResponse, error) {
	w, err := s.getOwnedWeight(ctx, id, userID)
	if err != nil {
		return domain.WeightResponse{}, err
	}
	return ToWeightResponse(w), nil
}

// GetWeightByDate returns nil without error when nothing was recorded that day.
func (s *weightService) GetWeightByDate(ctx context.Context, userID string, date time.Time) (*domain.WeightResponse, error) {
	w, err := s.weightRepository.GetWeightByDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weight by date: %w", err)
	}

	res := ToWeightResponse(w)
	return &res, nil
}

func (s *weightService) getOwnedWeight(ctx context.Context, id string, userID string) (*entities.Weight, error) {
	if !domain.IsValidID(id) {
		return nil, domain.ErrWeightNotFound
	}

	w, err := s.weightRepository.GetWeightByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWeightNotFound
		}
		return nil, fmt.Errorf("get weight: %w", err)
	}

	if !w.OwnedBy(userID) {
		return nil, domain.ErrWeightForbidden
	}
	return w, nil
}

func parseWeightRequest(req domain.WeightRequest) (time.Time, error) {
	if req.Weight <= 0 {
		return time.Time{}, domain.ErrInvalidQuantity
	}
	measuredAt, err := time.Parse(domain.DateFormat, req.MeasuredAt)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return measuredAt, nil
}

func (s *weightService) CreateWeight(ctx context.Context, req domain.WeightRequest, userID string) (domain.WeightResponse, error) {
	measuredAt, err := parseWeightRequest(req)
	if err != nil {
		return domain.WeightResponse{}, err
	}

	userUUID, err := domain.ParseUserID(userID)
	if err != nil {
		return domain.WeightResponse{}, err
	}

	now := s.now().UTC()
	w := &entities.Weight{
		ID:         uuid.New(),
		UserID:     userUUID,
		Weight:     req.Weight,
		MeasuredAt: measuredAt,
		Timestamp:  entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.weightRepository.CreateWeight(ctx, w); err != nil {
		return domain.WeightResponse{}, fmt.Errorf("create weight: %w", err)
	}
	return ToWeightResponse(w), nil
}

func (s *weightService) UpdateWeight(ctx context.Context, id string, req domain.WeightRequest, userID string) (domain.WeightResponse, error) {
	measuredAt, err := parseWeightRequest(req)
	if err != nil {
		return domain.WeightResponse{}, err
	}

	w, err := s.getOwnedWeight(ctx, id, userID)
	if err != nil {
		return domain.WeightResponse{}, err
	}

	w.Weight = req.Weight
	w.MeasuredAt = measuredAt
	w.UpdatedAt = s.now().UTC()

	if err := s.weightRepository.UpdateWeight(ctx, w); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WeightResponse{}, domain.ErrWeightNotFound
		}
		return domain.WeightResponse{}, fmt.Errorf("update weight: %w", err)
	}
	return ToWeightResponse(w), nil
}

func (s *weightService) DeleteWeight(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwnedWeight(ctx, id, userID); err != nil {
		return err
	}

	if err := s.weightRepository.DeleteWeight(ctx, id); err != nil {
		return fmt.Errorf("delete weight: %w", err)
	}
	return nil
}

func ToWeightResponse(w *entities.Weight) domain.WeightResponse {
	return domain.WeightResponse{
		ID:         w.ID.String(),
		UserID:     w.UserID.String(),
		Weight:     w.Weight,
		MeasuredAt: w.MeasuredAt.Format(domain.DateFormat),
	}
}
