// Package diary assembles the per-day and whole-account overviews from the
// other nutrition services.
package diary

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/pkg/consumable"
	"Matrafl-Backend/pkg/consumption"
	"Matrafl-Backend/pkg/nutrition"
	"Matrafl-Backend/pkg/weight"
	"context"
	"sort"
	"time"
)

type (
	DiaryService interface {
		DaySummary(ctx context.Context, userID string, date time.Time) (domain.DaySummary, error)
		AccountSummary(ctx context.Context, userID string) ([]domain.AccountSummaryRow, error)
	}

	diaryService struct {
		weightService      weight.WeightService
		consumptionService consumption.ConsumptionService
		consumableService  consumable.ConsumableService
	}
)

func NewDiaryService(
	weightService weight.WeightService,
	consumptionService consumption.ConsumptionService,
	consumableService consumable.ConsumableService,
) DiaryService {
	return &diaryService{
		weightService:      weightService,
		consumptionService: consumptionService,
		consumableService:  consumableService,
	}
}

func (s *diaryService) DaySummary(ctx context.Context, userID string, date time.Time) (domain.DaySummary, error) {
	w, err := s.weightService.GetWeightByDate(ctx, userID, date)
	if err != nil {
		return domain.DaySummary{}, err
	}

	consumptions, err := s.consumptionService.GetConsumptions(ctx, userID, domain.OnDate(date))
	if err != nil {
		return domain.DaySummary{}, err
	}

	consumables, err := s.consumableService.GetConsumables(ctx, userID)
	if err != nil {
		return domain.DaySummary{}, err
	}

	totals := make([]domain.Macros, 0, len(consumptions))
	for _, c := range consumptions {
		totals = append(totals, c.Macros)
	}

	return domain.DaySummary{
		Date:         date.Format(domain.DateFormat),
		Weight:       w,
		Consumptions: consumptions,
		Totals:       nutrition.Total(totals...),
		Consumables:  consumables,
	}, nil
}

// AccountSummary has one row per date with a weight or a consumption, newest
// first. Kcal and protein stay nil on days without consumptions.
func (s *diaryService) AccountSummary(ctx context.Context, userID string) ([]domain.AccountSummaryRow, error) {
	weights, err := s.weightService.GetWeights(ctx, userID)
	if err != nil {
		return nil, err
	}

	consumptions, err := s.consumptionService.GetConsumptions(ctx, userID, domain.NoFilter())
	if err != nil {
		return nil, err
	}

	rows := map[string]*domain.AccountSummaryRow{}
	row := func(date string) *domain.AccountSummaryRow {
		r, ok := rows[date]
		if !ok {
			r = &domain.AccountSummaryRow{Date: date}
			rows[date] = r
		}
		return r
	}

	for _, w := range weights {
		r := row(w.MeasuredAt)
		if r.Weight != nil {
			continue
		}
		id, value := w.ID, w.Weight
		r.WeightID, r.Weight = &id, &value
	}

	for _, c := range consumptions {
		r := row(c.ConsumedAt)
		if r.Kcal == nil {
			r.Kcal, r.Protein = new(float64), new(float64)
		}
		*r.Kcal += c.Kcal
		*r.Protein += c.Protein
	}

	result := make([]domain.AccountSummaryRow, 0, len(rows))
	for _, r := range rows {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}
