package review

import "errors"

// Review is a customer product review moderated through the console.
type Review struct {
	ID            int    `json:"id"`
	ProductID     int    `json:"product_id"`
	ProductName   string `json:"product_name"`
	CustomerName  string `json:"customer_name"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
	AdminResponse string `json:"admin_response,omitempty"`
	IsVisible     bool   `json:"is_visible"`
	CreatedAt     string `json:"created_at"`
}

var ErrNotFound = errors.New("review not found")
