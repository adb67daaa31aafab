package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/consumable"
	"Matrafl-Backend/pkg/consumption"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	ConsumptionHandler interface {
		GetConsumptions(c *fiber.Ctx) error
		GetConsumption(c *fiber.Ctx) error
		CreateConsumption(c *fiber.Ctx) error
		UpdateConsumption(c *fiber.Ctx) error
		DeleteConsumption(c *fiber.Ctx) error
		GetConsumables(c *fiber.Ctx) error
	}

	consumptionHandler struct {
		consumptionService consumption.ConsumptionService
		consumableService  consumable.ConsumableService
		validator          *validator.Validate
	}
)

func NewConsumptionHandler(consumptionService consumption.ConsumptionService, consumableService consumable.ConsumableService, validator *validator.Validate) ConsumptionHandler {
	return &consumptionHandler{
		consumptionService: consumptionService,
		consumableService:  consumableService,
		validator:          validator,
	}
}

// filterFromQuery accepts at most one of ?date=, ?food_id= and ?recipe_id=.
func filterFromQuery(c *fiber.Ctx) (domain.ConsumptionFilter, error) {
	date, foodID, recipeID := c.Query("date"), c.Query("food_id"), c.Query("recipe_id")

	set := 0
	for _, v := range []string{date, foodID, recipeID} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return domain.ConsumptionFilter{}, domain.ErrConflictingFilters
	}

	switch {
	case date != "":
		day, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return domain.ConsumptionFilter{}, domain.ErrInvalidDate
		}
		return domain.OnDate(day), nil
	case foodID != "":
		if !domain.IsValidID(foodID) {
			return domain.ConsumptionFilter{}, domain.ErrInvalidFilterID
		}
		return domain.ByFood(foodID), nil
	case recipeID != "":
		if !domain.IsValidID(recipeID) {
			return domain.ConsumptionFilter{}, domain.ErrInvalidFilterID
		}
		return domain.ByRecipe(recipeID), nil
	default:
		return domain.NoFilter(), nil
	}
}

func (h *consumptionHandler) GetConsumptions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	filter, err := filterFromQuery(c)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetConsumptions, err)
	}

	res, err := h.consumptionService.GetConsumptions(c.Context(), userID, filter)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetConsumptions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConsumptions)
}

func (h *consumptionHandler) GetConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.consumptionService.GetConsumptionByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetConsumption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConsumption)
}

func (h *consumptionHandler) CreateConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateConsumption, err)
	}

	res, err := h.consumptionService.CreateConsumption(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateConsumption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateConsumption)
}

func (h *consumptionHandler) UpdateConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateConsumption, err)
	}

	res, err := h.consumptionService.UpdateConsumption(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateConsumption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateConsumption)
}

func (h *consumptionHandler) DeleteConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.consumptionService.DeleteConsumption(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteConsumption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteConsumption)
}

func (h *consumptionHandler) GetConsumables(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.consumableService.GetConsumables(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetConsumables, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetConsumables)
}
