package product

import "errors"

// Product is a catalogue item sold through the storefront.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	StockQty    int      `json:"stock_qty"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// ListFilter narrows the product listing.
type ListFilter struct {
	Search   string
	Category string
	Limit    int
}

var ErrNotFound = errors.New("product not found")
