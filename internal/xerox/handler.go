package xerox

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
	app.Get("/api/admin/xerox/orders", h.list)
	app.Post("/api/admin/xerox/orders", h.create)
	app.Get("/api/admin/xerox/orders/:id<[0-9]+>", h.get)
	app.Put("/api/admin/xerox/orders/:id<[0-9]+>", h.update)
	app.Delete("/api/admin/xerox/orders/:id<[0-9]+>", h.delete)
	app.Put("/api/admin/xerox/orders/:id<[0-9]+>/status", h.updateStatus)

	app.Get("/api/admin/xerox-pricing", h.listPricing)
	app.Post("/api/admin/xerox-pricing", h.createPricing)
	app.Put("/api/admin/xerox-pricing/:id<[0-9]+>", h.updatePricing)
	app.Delete("/api/admin/xerox-pricing/:id<[0-9]+>", h.deletePricing)
	app.Post("/api/admin/xerox-pricing/seed", h.seedPricing)
}

func (h *Handler) list(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid limit"})
		}
		limit = n
	}

	orders, total, err := h.service.List(ListFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		Limit:         limit,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":       orders,
		"pagination": fiber.Map{"total": total},
	})
}

func (h *Handler) create(c *fiber.Ctx) error {
	payload := new(Order)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *Handler) get(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	ord, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "xerox order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": ord})
}

func (h *Handler) update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	payload := new(Order)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "xerox order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": updated})
}

type statusUpdateRequest struct {
	OrderStatus string `json:"order_status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.OrderStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order_status is required"})
	}

	ord, err := h.service.ChangeStatus(id, payload.OrderStatus)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "xerox order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Xerox order status updated", "data": ord})
}

func (h *Handler) delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.service.Delete(id); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "xerox order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Xerox order deleted"})
}

func (h *Handler) listPricing(c *fiber.Ctx) error {
	pricing, err := h.service.ListPricing()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": pricing})
}

func (h *Handler) createPricing(c *fiber.Ctx) error {
	payload := new(Pricing)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.CreatePricing(*payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *Handler) updatePricing(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	payload := new(Pricing)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdatePricing(id, *payload)
	if err != nil {
		if err == ErrPricingNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pricing entry not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": updated})
}

func (h *Handler) deletePricing(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.service.DeletePricing(id); err != nil {
		if err == ErrPricingNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "pricing entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Pricing entry deleted"})
}

func (h *Handler) seedPricing(c *fiber.Ctx) error {
	inserted, err := h.service.SeedPricing()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Default pricing seeded", "inserted": inserted})
}
