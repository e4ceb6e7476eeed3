package order

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/printshophq/printshop-admin/internal/events"
	"github.com/printshophq/printshop-admin/internal/logger"
)

// Notifier records a persistent notification for the admin inbox. Satisfied
// by the notification service.
type Notifier interface {
	Record(notifType, title, message string) error
}

// Handler delegates order operations to the order service. Placement also
// records an inbox notification and publishes the realtime event the
// console badges listen for.
type Handler struct {
	service  ServiceInterface
	notifier Notifier
	bus      events.Publisher
}

func NewHandler(s ServiceInterface, notifier Notifier, bus events.Publisher) *Handler {
	return &Handler{service: s, notifier: notifier, bus: bus}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.placeOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/admin/orders", h.listOrders)
	app.Get("/api/admin/orders/:id<[0-9]+>", h.getOrder)
	app.Put("/api/admin/orders/:id<[0-9]+>/status", h.updateStatus)
	app.Put("/api/admin/orders/:id<[0-9]+>/payment-status", h.updatePaymentStatus)
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	payload := new(Order)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Place(*payload)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if h.notifier != nil {
		msg := fmt.Sprintf("Order %s placed by %s", created.OrderNumber, created.CustomerName)
		if err := h.notifier.Record("order", "New order received", msg); err != nil {
			logger.Warn("could not record order notification", map[string]interface{}{"order": created.OrderNumber, "error": err.Error()})
		}
	}
	if h.bus != nil {
		h.bus.Publish(events.Event{
			Name: events.OrderCreated,
			Data: map[string]interface{}{
				"order_number": created.OrderNumber,
				"total_amount": created.TotalAmount,
			},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": created})
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid limit"})
		}
		limit = n
	}

	filter := ListFilter{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		Limit:         limit,
	}

	orders, total, err := h.service.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":       orders,
		"pagination": fiber.Map{"total": total},
	})
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	ord, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"data": ord})
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
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		// workflow rejections are business-rule errors, not server faults
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Order status updated", "data": ord})
}

type paymentUpdateRequest struct {
	PaymentStatus string `json:"payment_status"`
}

func (h *Handler) updatePaymentStatus(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	payload := new(paymentUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.PaymentStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "payment_status is required"})
	}

	ord, err := h.service.ChangePaymentStatus(id, payload.PaymentStatus)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Payment status updated", "data": ord})
}
