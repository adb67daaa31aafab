package middleware

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/internal/api/presenters"
	"Matrafl-Backend/pkg/session"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(sessionService session.SessionService) fiber.Handler
	}

	middleware struct {
		cookieName string
	}
)

func NewMiddleware(cookieName string) Middleware {
	return &middleware{cookieName: cookieName}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	})
}

// AuthMiddleware resolves the session cookie and stores the user id in
// c.Locals("user_id"). Requests without a live session get 401.
func (m *middleware) AuthMiddleware(sessionService session.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := sessionService.ResolveSession(c.Context(), c.Cookies(m.cookieName))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.ErrSessionRequired.Message, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
