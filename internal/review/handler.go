package review

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/admin/reviews", h.list)
	app.Put("/api/admin/reviews/:id<[0-9]+>/visibility", h.toggleVisibility)
	app.Put("/api/admin/reviews/:id<[0-9]+>/response", h.respond)
}

func (h *Handler) list(c *fiber.Ctx) error {
	reviews, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": reviews})
}

func (h *Handler) toggleVisibility(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	rv, err := h.service.ToggleVisibility(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": rv})
}

type respondRequest struct {
	AdminResponse string `json:"admin_response"`
}

func (h *Handler) respond(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	payload := new(respondRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	rv, err := h.service.Respond(id, payload.AdminResponse)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "review not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": rv})
}
