package product

// Repository defines persistence operations for products.
type Repository interface {
	List(f ListFilter) ([]Product, int, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}
