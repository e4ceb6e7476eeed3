package xerox

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/printshophq/printshop-admin/internal/workflow"
)

// Service provides business logic for xerox jobs and the pricing grid.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DefaultPricing is the grid installed by the seed endpoint.
var DefaultPricing = []Pricing{
	{ColorType: "black_white", PaperSize: "A4", PrintSide: "single", PricePerPage: 2.0, IsActive: true},
	{ColorType: "black_white", PaperSize: "A4", PrintSide: "double", PricePerPage: 1.5, IsActive: true},
	{ColorType: "black_white", PaperSize: "A3", PrintSide: "single", PricePerPage: 5.0, IsActive: true},
	{ColorType: "black_white", PaperSize: "A3", PrintSide: "double", PricePerPage: 4.0, IsActive: true},
	{ColorType: "color", PaperSize: "A4", PrintSide: "single", PricePerPage: 10.0, IsActive: true},
	{ColorType: "color", PaperSize: "A4", PrintSide: "double", PricePerPage: 8.0, IsActive: true},
	{ColorType: "color", PaperSize: "A3", PrintSide: "single", PricePerPage: 20.0, IsActive: true},
	{ColorType: "color", PaperSize: "A3", PrintSide: "double", PricePerPage: 16.0, IsActive: true},
}

func (s *Service) Create(ord Order) (Order, error) {
	if ord.CustomerName == "" {
		return Order{}, errors.New("customer name is required")
	}
	if ord.PageCount <= 0 {
		return Order{}, errors.New("page count must be positive")
	}
	if ord.Copies <= 0 {
		ord.Copies = 1
	}
	if ord.ColorType == "" {
		ord.ColorType = "black_white"
	}
	if ord.PaperSize == "" {
		ord.PaperSize = "A4"
	}
	if ord.PrintSide == "" {
		ord.PrintSide = "single"
	}
	if ord.TotalAmount == 0 {
		ord.TotalAmount = float64(ord.PageCount*ord.Copies) * ord.PricePerPage
	}

	ord.OrderNumber = "XRX-" + strings.ToUpper(uuid.NewString()[:8])
	ord.OrderStatus = workflow.XeroxPending
	if ord.PaymentStatus == "" {
		ord.PaymentStatus = workflow.PaymentPending
	}
	ord.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	return s.repo.Create(ord)
}

func (s *Service) List(f ListFilter) ([]Order, int, error) {
	return s.repo.List(f)
}

func (s *Service) GetByID(id int) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Update(id int, ord Order) (Order, error) {
	return s.repo.Update(id, ord)
}

// ChangeStatus sets any valid xerox status. Unlike storefront orders there
// is no transition table and no payment gate.
func (s *Service) ChangeStatus(id int, newStatus string) (Order, error) {
	if !workflow.ValidXeroxStatus(newStatus) {
		return Order{}, fmt.Errorf("unknown xerox status %q", newStatus)
	}

	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}

	if err := s.repo.UpdateStatus(id, newStatus); err != nil {
		return Order{}, err
	}
	ord.OrderStatus = newStatus
	return ord, nil
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *Service) ListPricing() ([]Pricing, error) {
	return s.repo.ListPricing()
}

func (s *Service) CreatePricing(p Pricing) (Pricing, error) {
	if err := validatePricing(p); err != nil {
		return Pricing{}, err
	}
	return s.repo.CreatePricing(p)
}

func (s *Service) UpdatePricing(id int, p Pricing) (Pricing, error) {
	if err := validatePricing(p); err != nil {
		return Pricing{}, err
	}
	return s.repo.UpdatePricing(id, p)
}

func (s *Service) DeletePricing(id int) error {
	return s.repo.DeletePricing(id)
}

func (s *Service) SeedPricing() (int, error) {
	return s.repo.SeedPricing(DefaultPricing)
}

func validatePricing(p Pricing) error {
	if p.ColorType != "black_white" && p.ColorType != "color" {
		return fmt.Errorf("unknown color type %q", p.ColorType)
	}
	if p.PaperSize == "" {
		return errors.New("paper size is required")
	}
	if p.PrintSide != "single" && p.PrintSide != "double" {
		return fmt.Errorf("unknown print side %q", p.PrintSide)
	}
	if p.PricePerPage <= 0 {
		return errors.New("price per page must be positive")
	}
	return nil
}
