package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-shopstock-api/internal/model"
)

// --- Mock AI Service ---

type MockAIService struct {
	Prediction *model.AIPrediction
	Err        error
}

func (m *MockAIService) SuggestProductDetails(ctx context.Context, ownerID, shopID uuid.UUID, productName string) (*model.AIPrediction, error) {
	return m.Prediction, m.Err
}

func TestSuggestHandler(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()
	categoryID := uuid.New()

	newApp := func(mock *MockAIService) *fiber.App {
		h := NewAIHandler(mock)
		return testApp(userID, func(app *fiber.App) {
			app.Post("/api/v1/shops/:shopId/ai/suggest", h.Suggest)
		})
	}

	t.Run("returns the prediction", func(t *testing.T) {
		app := newApp(&MockAIService{Prediction: &model.AIPrediction{
			SuggestedCategory: "Drinks",
			ShortDescription:  "A fizzy drink",
			CategoryID:        &categoryID,
		}})

		req := httptest.NewRequest("POST", "/api/v1/shops/"+shopID.String()+"/ai/suggest",
			strings.NewReader(`{"name":"Cola"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Suggestion *model.AIPrediction `json:"suggestion"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Drinks", body.Suggestion.SuggestedCategory)
		assert.Equal(t, categoryID, *body.Suggestion.CategoryID)
	})

	t.Run("no suggestion is a null payload, not an error", func(t *testing.T) {
		app := newApp(&MockAIService{})

		req := httptest.NewRequest("POST", "/api/v1/shops/"+shopID.String()+"/ai/suggest",
			strings.NewReader(`{"name":"Cola"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Suggestion *model.AIPrediction `json:"suggestion"`
		}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Nil(t, body.Suggestion)
	})
}
