package order

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	// List returns the matching orders plus the total match count so the
	// handler can build the pagination envelope.
	List(f ListFilter) ([]Order, int, error)
	GetByID(id int) (Order, error)
	UpdateStatus(id int, status string) error
	UpdatePaymentStatus(id int, status string) error
}
