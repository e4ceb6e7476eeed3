package coupon

import (
	"errors"
	"strings"
	"time"
)

// Repository defines persistence operations for coupons.
type Repository interface {
	List() ([]Coupon, error)
	GetByID(id int) (Coupon, error)
	Create(cp Coupon) (Coupon, error)
	Update(id int, cp Coupon) (Coupon, error)
	ToggleActive(id int) (Coupon, error)
	Delete(id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Coupon, error) {
	return s.repo.List()
}

func (s *Service) Create(cp Coupon) (Coupon, error) {
	if err := validate(&cp); err != nil {
		return Coupon{}, err
	}
	cp.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Create(cp)
}

func (s *Service) Update(id int, cp Coupon) (Coupon, error) {
	if err := validate(&cp); err != nil {
		return Coupon{}, err
	}
	return s.repo.Update(id, cp)
}

func (s *Service) ToggleActive(id int) (Coupon, error) {
	return s.repo.ToggleActive(id)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}

func validate(cp *Coupon) error {
	cp.Code = strings.ToUpper(strings.TrimSpace(cp.Code))
	if cp.Code == "" {
		return errors.New("code is required")
	}
	if cp.DiscountType != "percentage" && cp.DiscountType != "fixed" {
		return errors.New("discount type must be percentage or fixed")
	}
	if cp.DiscountValue <= 0 {
		return errors.New("discount value must be positive")
	}
	if cp.DiscountType == "percentage" && cp.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	if cp.MinOrderAmount < 0 {
		return errors.New("minimum order amount must be non-negative")
	}
	return nil
}
