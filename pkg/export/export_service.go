package export

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/entities"
	"context"
	"fmt"
	"time"
)

type (
	ExportService interface {
		ExportAll(ctx context.Context, userID string) (domain.ExportDocument, error)
	}

	exportService struct {
		exportRepository ExportRepository
		now              func() time.Time
	}
)

func NewExportService(exportRepository ExportRepository) ExportService {
	return &exportService{
		exportRepository: exportRepository,
		now:              time.Now,
	}
}

// ExportAll dumps every row the user owns. Rows are raw columns; derived
// macros are left out since they can be recomputed from the dump.
func (s *exportService) ExportAll(ctx context.Context, userID string) (domain.ExportDocument, error) {
	doc := domain.ExportDocument{
		UserID:       userID,
		ExportedAt:   s.now().UTC(),
		Weights:      []domain.ExportWeightRow{},
		Foods:        []domain.ExportFoodRow{},
		Consumptions: []domain.ExportConsumptionRow{},
		Recipes:      []domain.ExportRecipeRow{},
		Ingredients:  []domain.ExportIngredientRow{},
	}

	weights, err := s.exportRepository.GetWeights(ctx, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export weights: %w", err)
	}
	for _, w := range weights {
		doc.Weights = append(doc.Weights, domain.ExportWeightRow{
			ID:         w.ID.String(),
			Weight:     w.Weight,
			MeasuredAt: w.MeasuredAt.Format(domain.DateFormat),
			CreatedAt:  w.CreatedAt,
			UpdatedAt:  w.UpdatedAt,
		})
	}

	foods, err := s.exportRepository.GetFoods(ctx, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export foods: %w", err)
	}
	for _, f := range foods {
		doc.Foods = append(doc.Foods, domain.ExportFoodRow{
			ID:        f.ID.String(),
			Name:      f.Name,
			Kcal:      f.Kcal,
			Fat:       f.Fat,
			Carbs:     f.Carbs,
			Protein:   f.Protein,
			HiddenAt:  f.HiddenAt,
			StarredAt: f.StarredAt,
			CreatedAt: f.CreatedAt,
			UpdatedAt: f.UpdatedAt,
		})
	}

	consumptions, err := s.exportRepository.GetConsumptions(ctx, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export consumptions: %w", err)
	}
	for _, c := range consumptions {
		doc.Consumptions = append(doc.Consumptions, toConsumptionRow(c))
	}

	recipes, err := s.exportRepository.GetRecipes(ctx, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export recipes: %w", err)
	}
	for _, r := range recipes {
		doc.Recipes = append(doc.Recipes, domain.ExportRecipeRow{
			ID:        r.ID.String(),
			Name:      r.Name,
			Quantity:  r.Quantity,
			HiddenAt:  r.HiddenAt,
			StarredAt: r.StarredAt,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}

	ingredients, err := s.exportRepository.GetIngredients(ctx, userID)
	if err != nil {
		return domain.ExportDocument{}, fmt.Errorf("export ingredients: %w", err)
	}
	for _, i := range ingredients {
		doc.Ingredients = append(doc.Ingredients, domain.ExportIngredientRow{
			ID:        i.ID.String(),
			RecipeID:  i.RecipeID.String(),
			FoodID:    i.FoodID.String(),
			Quantity:  i.Quantity,
			CreatedAt: i.CreatedAt,
			UpdatedAt: i.UpdatedAt,
		})
	}

	return doc, nil
}

func toConsumptionRow(c *entities.Consumption) domain.ExportConsumptionRow {
	row := domain.ExportConsumptionRow{
		ID:         c.ID.String(),
		Quantity:   c.Quantity,
		ConsumedAt: c.ConsumedAt.Format(domain.DateFormat),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.FoodID != nil {
		id := c.FoodID.String()
		row.FoodID = &id
	}
	if c.RecipeID != nil {
		id := c.RecipeID.String()
		row.RecipeID = &id
	}
	return row
}
