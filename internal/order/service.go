package order

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printshophq/printshop-admin/internal/metrics"
	"github.com/printshophq/printshop-admin/internal/workflow"
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

// ServiceInterface is what the handler depends on, so tests can stub it.
type ServiceInterface interface {
	Place(ord Order) (Order, error)
	List(f ListFilter) ([]Order, int, error)
	GetByID(id int) (Order, error)
	ChangeStatus(id int, newStatus string) (Order, error)
	ChangePaymentStatus(id int, newStatus string) (Order, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place stores a new storefront order in the initial pending/pending state.
// Totals are derived from the items when the caller left them zero.
func (s *Service) Place(ord Order) (Order, error) {
	if ord.CustomerName == "" {
		return Order{}, errors.New("customer name is required")
	}
	if len(ord.Items) == 0 {
		return Order{}, errors.New("order has no items")
	}

	var subtotal float64
	for i := range ord.Items {
		if ord.Items[i].Quantity <= 0 {
			return Order{}, errors.New("item quantity must be positive")
		}
		if ord.Items[i].Subtotal == 0 {
			ord.Items[i].Subtotal = float64(ord.Items[i].Quantity) * ord.Items[i].UnitPrice
		}
		subtotal += ord.Items[i].Subtotal
	}
	if ord.Subtotal == 0 {
		ord.Subtotal = subtotal
	}
	if ord.TotalAmount == 0 {
		ord.TotalAmount = ord.Subtotal + ord.DeliveryCharges
	}

	ord.OrderNumber = newOrderNumber()
	ord.OrderStatus = workflow.OrderPending
	ord.PaymentStatus = workflow.PaymentPending
	ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}
	metrics.OrdersCreatedTotal.Inc()
	return created, nil
}

func (s *Service) List(f ListFilter) ([]Order, int, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// ChangeStatus applies an order status transition after checking it against
// the workflow table. The returned error carries the rejection reason the
// console surfaces verbatim.
func (s *Service) ChangeStatus(id int, newStatus string) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if err := workflow.CanTransition(ord.OrderStatus, ord.PaymentStatus, newStatus); err != nil {
		metrics.StatusTransitionsRejectedTotal.Inc()
		return Order{}, err
	}

	if err := s.repo.UpdateStatus(id, newStatus); err != nil {
		return Order{}, err
	}
	ord.OrderStatus = newStatus
	return ord, nil
}

// ChangePaymentStatus moves payment from pending to paid or failed.
func (s *Service) ChangePaymentStatus(id int, newStatus string) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if err := workflow.CanTransitionPayment(ord.PaymentStatus, newStatus); err != nil {
		metrics.StatusTransitionsRejectedTotal.Inc()
		return Order{}, err
	}

	if err := s.repo.UpdatePaymentStatus(id, newStatus); err != nil {
		return Order{}, err
	}
	ord.PaymentStatus = newStatus
	return ord, nil
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
