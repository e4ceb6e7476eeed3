package xerox

import "errors"

// Order is a print-on-demand job. It is structurally parallel to a
// storefront order but carries its own status vocabulary and no payment
// gate: staff may set any status at any time.
type Order struct {
	ID             int     `json:"id"`
	OrderNumber    string  `json:"order_number"`
	CustomerName   string  `json:"customer_name"`
	CustomerMobile string  `json:"customer_mobile"`
	FileName       string  `json:"file_name"`
	FileSize       int64   `json:"file_size"`
	PageCount      int     `json:"page_count"`
	ColorType      string  `json:"color_type"`
	PaperSize      string  `json:"paper_size"`
	PrintSide      string  `json:"print_side"`
	Copies         int     `json:"copies"`
	PricePerPage   float64 `json:"price_per_page"`
	TotalAmount    float64 `json:"total_amount"`
	OrderStatus    string  `json:"order_status"`
	PaymentStatus  string  `json:"payment_status"`
	CreatedAt      string  `json:"created_at"`
}

// Pricing is one row of the price-per-page grid.
type Pricing struct {
	ID           int     `json:"id"`
	ColorType    string  `json:"color_type"`
	PaperSize    string  `json:"paper_size"`
	PrintSide    string  `json:"print_side"`
	PricePerPage float64 `json:"price_per_page"`
	IsActive     bool    `json:"is_active"`
}

// ListFilter narrows the xerox order listing.
type ListFilter struct {
	Status        string
	PaymentStatus string
	Search        string
	Limit         int
}

var (
	ErrNotFound        = errors.New("xerox order not found")
	ErrPricingNotFound = errors.New("pricing entry not found")
)
