package review

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, product_id, product_name, customer_name, rating, comment, admin_response, is_visible, created_at`

func (r *PostgresRepository) List() ([]Review, error) {
	rows, err := r.db.Query(`SELECT ` + columns + ` FROM reviews ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.ProductName, &rv.CustomerName, &rv.Rating,
			&rv.Comment, &rv.AdminResponse, &rv.IsVisible, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *PostgresRepository) ToggleVisibility(id int) (Review, error) {
	var rv Review
	err := r.db.QueryRow(`UPDATE reviews SET is_visible = NOT is_visible WHERE id = $1 RETURNING `+columns, id).
		Scan(&rv.ID, &rv.ProductID, &rv.ProductName, &rv.CustomerName, &rv.Rating,
			&rv.Comment, &rv.AdminResponse, &rv.IsVisible, &rv.CreatedAt)
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepository) SetResponse(id int, response string) (Review, error) {
	var rv Review
	err := r.db.QueryRow(`UPDATE reviews SET admin_response = $1 WHERE id = $2 RETURNING `+columns, response, id).
		Scan(&rv.ID, &rv.ProductID, &rv.ProductName, &rv.CustomerName, &rv.Rating,
			&rv.Comment, &rv.AdminResponse, &rv.IsVisible, &rv.CreatedAt)
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}
