package xerox

// Repository defines persistence for xerox orders and the pricing grid.
type Repository interface {
	Create(ord Order) (Order, error)
	List(f ListFilter) ([]Order, int, error)
	GetByID(id int) (Order, error)
	Update(id int, ord Order) (Order, error)
	UpdateStatus(id int, status string) error
	Delete(id int) error

	ListPricing() ([]Pricing, error)
	CreatePricing(p Pricing) (Pricing, error)
	UpdatePricing(id int, p Pricing) (Pricing, error)
	DeletePricing(id int) error
	// SeedPricing inserts the default grid, skipping combinations that
	// already exist.
	SeedPricing(defaults []Pricing) (int, error)
}
