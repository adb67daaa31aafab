package middleware

import (
	"Matrafl-Backend/domain"
	"Matrafl-Backend/pkg/session"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionService struct {
	session.SessionService
	err error
}

func (f fakeSessionService) ResolveSession(_ context.Context, token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if token == "good" {
		return "user-1", nil
	}
	return "", domain.ErrSessionRequired
}

func newApp(sessions session.SessionService) *fiber.App {
	m := NewMiddleware("MATRAFL_SESSION")
	app := fiber.New()
	app.Get("/me", m.AuthMiddleware(sessions), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func get(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "MATRAFL_SESSION", Value: cookie})
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	app := newApp(fakeSessionService{})

	resp := get(t, app, "good")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "user-1", string(body))

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "stale").StatusCode)
}

func TestAuthMiddlewareStorageFailure(t *testing.T) {
	app := newApp(fakeSessionService{err: errors.New("connection reset")})

	assert.Equal(t, fiber.StatusInternalServerError, get(t, app, "good").StatusCode)
}
