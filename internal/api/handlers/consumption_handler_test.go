package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/utils"
	"Matrafl-Backend/pkg/consumption"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConsumptionService struct {
	consumption.ConsumptionService
	filters []domain.ConsumptionFilter
}

func (f *fakeConsumptionService) GetConsumptions(_ context.Context, _ string, filter domain.ConsumptionFilter) ([]domain.ConsumptionResponse, error) {
	f.filters = append(f.filters, filter)
	return []domain.ConsumptionResponse{}, nil
}

func newConsumptionApp() (*fiber.App, *fakeConsumptionService) {
	utils.InitValidator()
	consumptions := &fakeConsumptionService{}
	h := NewConsumptionHandler(consumptions, nil, utils.Validate)

	app := fiber.New()
	app.Get("/consumptions", func(c *fiber.Ctx) error {
		c.Locals("user_id", "user-1")
		return c.Next()
	}, h.GetConsumptions)
	return app, consumptions
}

func TestGetConsumptionsQueryFilters(t *testing.T) {
	foodID := uuid.NewString()

	tests := []struct {
		name   string
		query  string
		status int
		kind   domain.ConsumptionFilterKind
	}{
		{"no filter", "", fiber.StatusOK, domain.FilterNone},
		{"date", "?date=2024-01-01", fiber.StatusOK, domain.FilterDate},
		{"food", "?food_id=" + foodID, fiber.StatusOK, domain.FilterFood},
		{"recipe", "?recipe_id=" + foodID, fiber.StatusOK, domain.FilterRecipe},
		{"two filters", "?date=2024-01-01&food_id=" + foodID, fiber.StatusBadRequest, 0},
		{"bad date", "?date=01/01/2024", fiber.StatusBadRequest, 0},
		{"bad food id", "?food_id=not-a-uuid", fiber.StatusBadRequest, 0},
		{"bad recipe id", "?recipe_id=42", fiber.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, consumptions := newConsumptionApp()

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/consumptions"+tt.query, nil))

			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status != fiber.StatusOK {
				assert.Empty(t, consumptions.filters)
				return
			}
			require.Len(t, consumptions.filters, 1)
			assert.Equal(t, tt.kind, consumptions.filters[0].Kind)
		})
	}
}
