package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-shopstock-api/internal/service"
)

func TestStatusForError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "shop not found", err: service.ErrShopNotFound, expected: 404},
		{name: "category not found", err: service.ErrCategoryNotFound, expected: 404},
		{name: "product not found", err: service.ErrProductNotFound, expected: 404},
		{name: "foreign shop", err: service.ErrNotShopOwner, expected: 403},
		{name: "oversized image", err: service.ErrImageTooLarge, expected: 413},
		{name: "wrong-shop category", err: service.ErrCategoryWrongShop, expected: 400},
		{name: "negative quantity", err: service.ErrNegativeQuantity, expected: 400},
		{name: "blank names", err: service.ErrCategoryNameEmpty, expected: 400},
		{name: "invalid image uri", err: service.ErrInvalidImageURI, expected: 400},
		{
			name:     "wrapped validation failure",
			err:      fmt.Errorf("%w: Quantity failed on gte", service.ErrValidation),
			expected: 400,
		},
		{name: "unknown repository error", err: errors.New("pq: connection refused"), expected: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, statusForError(tc.err))
		})
	}
}

func TestFailHidesInternalErrors(t *testing.T) {
	app := testApp(uuid.New(), func(app *fiber.App) {
		app.Get("/boom", func(c *fiber.Ctx) error {
			return fail(c, errors.New("pq: connection refused"))
		})
		app.Get("/bad", func(c *fiber.Ctx) error {
			return fail(c, service.ErrNegativeQuantity)
		})
	})

	t.Run("internal failure gets a generic body", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
		assert.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("client error keeps its message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/bad", nil))
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, service.ErrNegativeQuantity.Error(), body["error"])
	})
}
