package admin

// Repository defines persistence operations for admin accounts.
type Repository interface {
	GetByID(id int) (Admin, error)
	GetByEmail(email string) (Admin, error)
	Create(a Admin) (Admin, error)
	Count() (int, error)
}
