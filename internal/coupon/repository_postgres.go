package coupon

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, code, description, discount_type, discount_value, min_order_amount,
	max_discount_amount, valid_from, valid_until, is_active, created_at`

func (r *PostgresRepository) List() ([]Coupon, error) {
	rows, err := r.db.Query(`SELECT ` + columns + ` FROM coupons ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coupons := make([]Coupon, 0)
	for rows.Next() {
		var cp Coupon
		if err := rows.Scan(&cp.ID, &cp.Code, &cp.Description, &cp.DiscountType, &cp.DiscountValue,
			&cp.MinOrderAmount, &cp.MaxDiscountAmount, &cp.ValidFrom, &cp.ValidUntil, &cp.IsActive, &cp.CreatedAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, cp)
	}
	return coupons, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Coupon, error) {
	var cp Coupon
	err := r.db.QueryRow(`SELECT `+columns+` FROM coupons WHERE id = $1`, id).
		Scan(&cp.ID, &cp.Code, &cp.Description, &cp.DiscountType, &cp.DiscountValue,
			&cp.MinOrderAmount, &cp.MaxDiscountAmount, &cp.ValidFrom, &cp.ValidUntil, &cp.IsActive, &cp.CreatedAt)
	if err == sql.ErrNoRows {
		return Coupon{}, ErrNotFound
	}
	if err != nil {
		return Coupon{}, err
	}
	return cp, nil
}

func (r *PostgresRepository) Create(cp Coupon) (Coupon, error) {
	err := r.db.QueryRow(`INSERT INTO coupons
		(code, description, discount_type, discount_value, min_order_amount, max_discount_amount,
		 valid_from, valid_until, is_active, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		cp.Code, cp.Description, cp.DiscountType, cp.DiscountValue, cp.MinOrderAmount,
		cp.MaxDiscountAmount, cp.ValidFrom, cp.ValidUntil, cp.IsActive, cp.CreatedAt).Scan(&cp.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return Coupon{}, ErrCodeExists
		}
		return Coupon{}, err
	}
	return cp, nil
}

func (r *PostgresRepository) Update(id int, cp Coupon) (Coupon, error) {
	res, err := r.db.Exec(`UPDATE coupons SET code=$1, description=$2, discount_type=$3, discount_value=$4,
		min_order_amount=$5, max_discount_amount=$6, valid_from=$7, valid_until=$8, is_active=$9 WHERE id=$10`,
		cp.Code, cp.Description, cp.DiscountType, cp.DiscountValue, cp.MinOrderAmount,
		cp.MaxDiscountAmount, cp.ValidFrom, cp.ValidUntil, cp.IsActive, id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return Coupon{}, ErrCodeExists
		}
		return Coupon{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Coupon{}, err
	}
	if n == 0 {
		return Coupon{}, ErrNotFound
	}
	cp.ID = id
	return cp, nil
}

func (r *PostgresRepository) ToggleActive(id int) (Coupon, error) {
	var cp Coupon
	err := r.db.QueryRow(`UPDATE coupons SET is_active = NOT is_active WHERE id = $1 RETURNING `+columns, id).
		Scan(&cp.ID, &cp.Code, &cp.Description, &cp.DiscountType, &cp.DiscountValue,
			&cp.MinOrderAmount, &cp.MaxDiscountAmount, &cp.ValidFrom, &cp.ValidUntil, &cp.IsActive, &cp.CreatedAt)
	if err == sql.ErrNoRows {
		return Coupon{}, ErrNotFound
	}
	if err != nil {
		return Coupon{}, err
	}
	return cp, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
