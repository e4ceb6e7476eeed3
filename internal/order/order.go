package order

import "errors"

// OrderItem is one line of an order.
type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
}

// Order is a standard storefront order. Status fields are constrained by
// internal/workflow: order_status follows the fulfilment table and may only
// move forward once payment_status is paid.
type Order struct {
	ID                 int                    `json:"id"`
	OrderNumber        string                 `json:"order_number"`
	CustomerName       string                 `json:"customer_name"`
	CustomerMobile     string                 `json:"customer_mobile"`
	CustomerEmail      string                 `json:"customer_email"`
	ShippingAddress    string                 `json:"shipping_address"`
	Items              []OrderItem            `json:"items"`
	Subtotal           float64                `json:"subtotal"`
	DeliveryCharges    float64                `json:"delivery_charges"`
	TotalAmount        float64                `json:"total_amount"`
	OrderStatus        string                 `json:"order_status"`
	PaymentStatus      string                 `json:"payment_status"`
	PaymentGatewayData map[string]interface{} `json:"payment_gateway_data,omitempty"`
	CreatedAt          string                 `json:"created_at"`
}

// ListFilter narrows the admin order listing.
type ListFilter struct {
	Status        string
	PaymentStatus string
	Search        string
	Limit         int
}

var ErrNotFound = errors.New("order not found")
