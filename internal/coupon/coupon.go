package coupon

import "errors"

// Coupon is a storefront discount code.
type Coupon struct {
	ID                int      `json:"id"`
	Code              string   `json:"code"`
	Description       string   `json:"description"`
	DiscountType      string   `json:"discount_type"`
	DiscountValue     float64  `json:"discount_value"`
	MinOrderAmount    float64  `json:"min_order_amount"`
	MaxDiscountAmount *float64 `json:"max_discount_amount,omitempty"`
	ValidFrom         string   `json:"valid_from,omitempty"`
	ValidUntil        string   `json:"valid_until,omitempty"`
	IsActive          bool     `json:"is_active"`
	CreatedAt         string   `json:"created_at,omitempty"`
}

var (
	ErrNotFound   = errors.New("coupon not found")
	ErrCodeExists = errors.New("a coupon with this code already exists")
)
