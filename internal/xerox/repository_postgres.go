package xerox

import (
	"database/sql"
	"strconv"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `id, order_number, customer_name, customer_mobile, file_name, file_size, page_count,
	color_type, paper_size, print_side, copies, price_per_page, total_amount, order_status, payment_status, created_at`

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	err := r.db.QueryRow(`INSERT INTO xerox_orders
		(order_number, customer_name, customer_mobile, file_name, file_size, page_count,
		 color_type, paper_size, print_side, copies, price_per_page, total_amount, order_status, payment_status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id`,
		ord.OrderNumber, ord.CustomerName, ord.CustomerMobile, ord.FileName, ord.FileSize, ord.PageCount,
		ord.ColorType, ord.PaperSize, ord.PrintSide, ord.Copies, ord.PricePerPage, ord.TotalAmount,
		ord.OrderStatus, ord.PaymentStatus, ord.CreatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) List(f ListFilter) ([]Order, int, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if f.Status != "" {
		args = append(args, f.Status)
		where += " AND order_status = $" + strconv.Itoa(len(args))
	}
	if f.PaymentStatus != "" {
		args = append(args, f.PaymentStatus)
		where += " AND payment_status = $" + strconv.Itoa(len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := strconv.Itoa(len(args))
		where += " AND (order_number ILIKE $" + n + " OR customer_name ILIKE $" + n + " OR file_name ILIKE $" + n + ")"
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM xerox_orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM xerox_orders` + where + ` ORDER BY id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var ord Order
		if err := rows.Scan(&ord.ID, &ord.OrderNumber, &ord.CustomerName, &ord.CustomerMobile, &ord.FileName,
			&ord.FileSize, &ord.PageCount, &ord.ColorType, &ord.PaperSize, &ord.PrintSide, &ord.Copies,
			&ord.PricePerPage, &ord.TotalAmount, &ord.OrderStatus, &ord.PaymentStatus, &ord.CreatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, ord)
	}
	return orders, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	var ord Order
	err := r.db.QueryRow(`SELECT `+orderColumns+` FROM xerox_orders WHERE id = $1`, id).
		Scan(&ord.ID, &ord.OrderNumber, &ord.CustomerName, &ord.CustomerMobile, &ord.FileName,
			&ord.FileSize, &ord.PageCount, &ord.ColorType, &ord.PaperSize, &ord.PrintSide, &ord.Copies,
			&ord.PricePerPage, &ord.TotalAmount, &ord.OrderStatus, &ord.PaymentStatus, &ord.CreatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) Update(id int, ord Order) (Order, error) {
	res, err := r.db.Exec(`UPDATE xerox_orders SET customer_name=$1, customer_mobile=$2, file_name=$3,
		file_size=$4, page_count=$5, color_type=$6, paper_size=$7, print_side=$8, copies=$9,
		price_per_page=$10, total_amount=$11, payment_status=$12 WHERE id=$13`,
		ord.CustomerName, ord.CustomerMobile, ord.FileName, ord.FileSize, ord.PageCount,
		ord.ColorType, ord.PaperSize, ord.PrintSide, ord.Copies, ord.PricePerPage, ord.TotalAmount,
		ord.PaymentStatus, id)
	if err != nil {
		return Order{}, err
	}
	if err := checkAffected(res); err != nil {
		return Order{}, err
	}
	return r.GetByID(id)
}

func (r *PostgresRepository) UpdateStatus(id int, status string) error {
	res, err := r.db.Exec(`UPDATE xerox_orders SET order_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM xerox_orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresRepository) ListPricing() ([]Pricing, error) {
	rows, err := r.db.Query(`SELECT id, color_type, paper_size, print_side, price_per_page, is_active
		FROM xerox_pricing ORDER BY color_type, paper_size, print_side`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pricing := make([]Pricing, 0)
	for rows.Next() {
		var p Pricing
		if err := rows.Scan(&p.ID, &p.ColorType, &p.PaperSize, &p.PrintSide, &p.PricePerPage, &p.IsActive); err != nil {
			return nil, err
		}
		pricing = append(pricing, p)
	}
	return pricing, rows.Err()
}

func (r *PostgresRepository) CreatePricing(p Pricing) (Pricing, error) {
	err := r.db.QueryRow(`INSERT INTO xerox_pricing (color_type, paper_size, print_side, price_per_page, is_active)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		p.ColorType, p.PaperSize, p.PrintSide, p.PricePerPage, p.IsActive).Scan(&p.ID)
	if err != nil {
		return Pricing{}, err
	}
	return p, nil
}

func (r *PostgresRepository) UpdatePricing(id int, p Pricing) (Pricing, error) {
	res, err := r.db.Exec(`UPDATE xerox_pricing SET color_type=$1, paper_size=$2, print_side=$3,
		price_per_page=$4, is_active=$5 WHERE id=$6`,
		p.ColorType, p.PaperSize, p.PrintSide, p.PricePerPage, p.IsActive, id)
	if err != nil {
		return Pricing{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Pricing{}, err
	}
	if n == 0 {
		return Pricing{}, ErrPricingNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) DeletePricing(id int) error {
	res, err := r.db.Exec(`DELETE FROM xerox_pricing WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPricingNotFound
	}
	return nil
}

func (r *PostgresRepository) SeedPricing(defaults []Pricing) (int, error) {
	inserted := 0
	for _, p := range defaults {
		res, err := r.db.Exec(`INSERT INTO xerox_pricing (color_type, paper_size, print_side, price_per_page, is_active)
			VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (color_type, paper_size, print_side) DO NOTHING`,
			p.ColorType, p.PaperSize, p.PrintSide, p.PricePerPage, p.IsActive)
		if err != nil {
			return inserted, err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
