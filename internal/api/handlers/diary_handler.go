package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/diary"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	DiaryHandler interface {
		GetDay(c *fiber.Ctx) error
		GetToday(c *fiber.Ctx) error
		GetAccountSummary(c *fiber.Ctx) error
	}

	diaryHandler struct {
		diaryService diary.DiaryService
	}
)

func NewDiaryHandler(diaryService diary.DiaryService) DiaryHandler {
	return &diaryHandler{diaryService: diaryService}
}

func (h *diaryHandler) GetDay(c *fiber.Ctx) error {
	day, err := time.Parse(domain.DateFormat, c.Params("date"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDaySummary, domain.ErrInvalidDate)
	}
	return h.day(c, day)
}

func (h *diaryHandler) GetToday(c *fiber.Ctx) error {
	now := time.Now().UTC()
	return h.day(c, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
}

func (h *diaryHandler) day(c *fiber.Ctx, day time.Time) error {
	userID := c.Locals("user_id").(string)

	res, err := h.diaryService.DaySummary(c.Context(), userID, day)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetDaySummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDaySummary)
}

func (h *diaryHandler) GetAccountSummary(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.diaryService.AccountSummary(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetAccountSummary, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAccountSummary)
}
