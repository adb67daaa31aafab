package presenters

import (
	"Matrafl-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrFoodNotFound, fiber.StatusNotFound},
		{fmt.Errorf("wrapped: %w", domain.ErrRecipeForbidden), fiber.StatusForbidden},
		{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{domain.ErrSessionRequired, fiber.StatusUnauthorized},
		{domain.ErrAmbiguousConsumable, fiber.StatusBadRequest},
		{domain.ErrInvalidDate, fiber.StatusBadRequest},
		{domain.ErrFoodInUse, fiber.StatusConflict},
		{domain.ErrMalformedHash, fiber.StatusInternalServerError},
		{errors.New("connection refused"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestServiceErrorHidesStorageFailures(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return ServiceError(c, "failed", errors.New("pq: password authentication failed"))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return ServiceError(c, "failed", domain.ErrFoodNotFound)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode(t, resp.Body)
	assert.False(t, body.Status)
	assert.Equal(t, domain.MessageInternalError, body.Error)

	resp, err = app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "food not found", decode(t, resp.Body).Error)
}

func decode(t *testing.T, r io.Reader) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}
