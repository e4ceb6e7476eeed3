package category

import "errors"

// Category groups products in the storefront.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
	Ord   int    `json:"ord"`
}

var ErrNotFound = errors.New("category not found")
