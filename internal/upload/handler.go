package upload

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler stores uploaded images on local disk. Files are served back
// through the static /uploads mount registered in main.
type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/admin/upload/image", h.uploadImage)
	app.Delete("/api/admin/upload/image", h.deleteImage)
}

func (h *Handler) uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "image is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unsupported image type"})
	}

	publicID := uuid.NewString() + ext
	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if err := c.SaveFile(file, filepath.Join(h.dir, publicID)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"url":       "/uploads/" + publicID,
		"public_id": publicID,
	})
}

func (h *Handler) deleteImage(c *fiber.Ctx) error {
	var body struct {
		PublicID string `json:"public_id"`
	}
	if err := c.BodyParser(&body); err != nil || body.PublicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "public_id is required"})
	}

	// the public id is a generated file name; reject anything that tries
	// to climb out of the upload directory.
	if body.PublicID != filepath.Base(body.PublicID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid public_id"})
	}

	if err := os.Remove(filepath.Join(h.dir, body.PublicID)); err != nil {
		if os.IsNotExist(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "image not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Image deleted"})
}
