package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/weight"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	WeightHandler interface {
		GetWeights(c *fiber.Ctx) error
		GetWeight(c *fiber.Ctx) error
		CreateWeight(c *fiber.Ctx) error
		UpdateWeight(c *fiber.Ctx) error
		DeleteWeight(c *fiber.Ctx) error
	}

	weightHandler struct {
		weightService weight.WeightService
		validator     *validator.Validate
	}
)

func NewWeightHandler(weightService weight.WeightService, validator *validator.Validate) WeightHandler {
	return &weightHandler{
		weightService: weightService,
		validator:     validator,
	}
}

// GetWeights lists all weights, or with ?date= the one recorded that day
// (null if none).
func (h *weightHandler) GetWeights(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if date := c.Query("date"); date != "" {
		day, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return presenters.ServiceError(c, domain.MessageFailedGetWeight, domain.ErrInvalidDate)
		}

		res, err := h.weightService.GetWeightByDate(c.Context(), userID, day)
		if err != nil {
			return presenters.ServiceError(c, domain.MessageFailedGetWeight, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeight)
	}

	res, err := h.weightService.GetWeights(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWeights, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeights)
}

func (h *weightHandler) GetWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.weightService.GetWeightByID(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetWeight, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeight)
}

func (h *weightHandler) CreateWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateWeight, err)
	}

	res, err := h.weightService.CreateWeight(c.Context(), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateWeight, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateWeight)
}

func (h *weightHandler) UpdateWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.WeightRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateWeight, err)
	}

	res, err := h.weightService.UpdateWeight(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateWeight, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateWeight)
}

func (h *weightHandler) DeleteWeight(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.weightService.DeleteWeight(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteWeight, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteWeight)
}
