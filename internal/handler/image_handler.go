package handler

import (
	"io"

	"go-shopstock-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct{}

func NewImageHandler() *ImageHandler {
	return &ImageHandler{}
}

// Upload converts a picked image file into the inline data URI stored on a
// product row. Files over the size cap are rejected with no state change.
// POST /api/v1/images
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "A file field is required"})
	}

	if fileHeader.Size > service.MaxImageBytes {
		return c.Status(413).JSON(fiber.Map{"error": service.ErrImageTooLarge.Error()})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Failed to read file"})
	}

	uri, err := service.EncodeImageDataURI(fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"image": uri})
}
