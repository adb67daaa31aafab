package handlers

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/export"
	"Matrafl-Backend/pkg/session"
	"Matrafl-Backend/pkg/user"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"time"
)

type (
	AccountHandler interface {
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Export(c *fiber.Ctx) error
	}

	SessionCookie struct {
		Name string
		Days int
	}

	accountHandler struct {
		userService    user.UserService
		sessionService session.SessionService
		exportService  export.ExportService
		validator      *validator.Validate
		cookie         SessionCookie
	}
)

func NewAccountHandler(
	userService user.UserService,
	sessionService session.SessionService,
	exportService export.ExportService,
	validator *validator.Validate,
	cookie SessionCookie,
) AccountHandler {
	return &accountHandler{
		userService:    userService,
		sessionService: sessionService,
		exportService:  exportService,
		validator:      validator,
		cookie:         cookie,
	}
}

func (h *accountHandler) sessionCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

func (h *accountHandler) Login(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookie.Name); token != "" {
		if _, err := h.sessionService.ResolveSession(c.Context(), token); err == nil {
			return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogin)
		}
	}

	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	token, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, domain.ErrInvalidCredentials)
		}
		return presenters.ServiceError(c, domain.MessageFailedLogin, err)
	}

	c.Cookie(h.sessionCookie(token, time.Now().AddDate(0, 0, h.cookie.Days)))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogin)
}

func (h *accountHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessionService.DeleteSession(c.Context(), c.Cookies(h.cookie.Name)); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedLogout, err)
	}

	c.Cookie(h.sessionCookie("", time.Now().Add(-time.Hour)))
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

// Export sends the user's data as a JSON file download.
func (h *accountHandler) Export(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	doc, err := h.exportService.ExportAll(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedExport, err)
	}

	c.Attachment(domain.ExportFilename(doc.ExportedAt))
	return c.Status(fiber.StatusOK).JSON(doc)
}
