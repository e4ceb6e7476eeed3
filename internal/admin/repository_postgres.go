package admin

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(`SELECT id, name, email, password, created_at FROM admins WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Admin, error) {
	var a Admin
	err := r.db.QueryRow(`SELECT id, name, email, password, created_at FROM admins WHERE email = $1`, email).
		Scan(&a.ID, &a.Name, &a.Email, &a.Password, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return Admin{}, ErrNotFound
	}
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Create(a Admin) (Admin, error) {
	err := r.db.QueryRow(`INSERT INTO admins (name, email, password, created_at) VALUES ($1,$2,$3,$4) RETURNING id`,
		a.Name, a.Email, a.Password, a.CreatedAt).Scan(&a.ID)
	if err != nil {
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM admins`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
