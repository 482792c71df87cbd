package handler

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-shopstock-api/internal/service"
)

// --- Mock Export Service ---

type MockExportService struct {
	Result *service.ExportResult
	Err    error
}

func (m *MockExportService) ExportCSV(ownerID, shopID uuid.UUID) (*service.ExportResult, error) {
	return m.Result, m.Err
}

// testApp wires a handler route behind a stub auth middleware
func testApp(userID uuid.UUID, register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	register(app)
	return app
}

func TestExportCSVHandler(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()

	testCases := []struct {
		name               string
		mock               *MockExportService
		target             string
		expectedStatusCode int
	}{
		{
			name: "streams the csv attachment",
			mock: &MockExportService{Result: &service.ExportResult{
				Filename: "inventory_Corner_2025-03-09.csv",
				Data:     []byte("\uFEFFheader\n\"row\""),
			}},
			target:             "/api/v1/shops/" + shopID.String() + "/export",
			expectedStatusCode: 200,
		},
		{
			name:               "empty shop is 204",
			mock:               &MockExportService{Err: service.ErrNoProducts},
			target:             "/api/v1/shops/" + shopID.String() + "/export",
			expectedStatusCode: 204,
		},
		{
			name:               "foreign shop is 403",
			mock:               &MockExportService{Err: service.ErrNotShopOwner},
			target:             "/api/v1/shops/" + shopID.String() + "/export",
			expectedStatusCode: 403,
		},
		{
			name:               "bad shop id is 400",
			mock:               &MockExportService{},
			target:             "/api/v1/shops/not-a-uuid/export",
			expectedStatusCode: 400,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewExportHandler(tc.mock)
			app := testApp(userID, func(app *fiber.App) {
				app.Get("/api/v1/shops/:shopId/export", h.ExportCSV)
			})

			resp, err := app.Test(httptest.NewRequest("GET", tc.target, nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedStatusCode, resp.StatusCode)

			if tc.expectedStatusCode == 200 {
				assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
				assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventory_Corner_2025-03-09.csv")

				body, err := io.ReadAll(resp.Body)
				assert.NoError(t, err)
				assert.Equal(t, "\uFEFFheader\n\"row\"", string(body))
			}
		})
	}
}
