package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/consumption"
	"Matrafl-Backend/pkg/food"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFood(c *fiber.Ctx) error
		CreateFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService        food.FoodService
		consumptionService consumption.ConsumptionService
		validator          *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, consumptionService consumption.ConsumptionService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService:        foodService,
		consumptionService: consumptionService,
		validator:          validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodService.GetFoods(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

// GetFood returns the food along with every consumption of it.
func (h *foodHandler) GetFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	foodID := c.Params("id")

	f, err := h.foodService.GetFoodByID(c.Context(), foodID, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetFood, err)
	}

	consumptions, err := h.consumptionService.GetConsumptions(c.Context(), userID, domain.ByFood(foodID))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, domain.FoodDetailResponse{
		FoodResponse: f,
		Consumptions: consumptions,
	}, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFood, err)
	}

	res, err := h.foodService.CreateFood(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateFoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFood)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.foodService.DeleteFood(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteFood, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}
