package order

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `id, order_number, customer_name, customer_mobile, customer_email, shipping_address,
	items, subtotal, delivery_charges, total_amount, order_status, payment_status, payment_gateway_data, created_at`

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}
	gatewayJSON, err := json.Marshal(ord.PaymentGatewayData)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders
		(order_number, customer_name, customer_mobile, customer_email, shipping_address,
		 items, subtotal, delivery_charges, total_amount, order_status, payment_status, payment_gateway_data, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id`,
		ord.OrderNumber, ord.CustomerName, ord.CustomerMobile, ord.CustomerEmail, ord.ShippingAddress,
		itemsJSON, ord.Subtotal, ord.DeliveryCharges, ord.TotalAmount, ord.OrderStatus, ord.PaymentStatus,
		gatewayJSON, ord.CreatedAt).Scan(&ord.ID)
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
		where += " AND (order_number ILIKE $" + n + " OR customer_name ILIKE $" + n + " OR customer_mobile ILIKE $" + n + ")"
	}

	var total int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY id DESC`, orderColumns, where)
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
		ord, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, ord)
	}
	return orders, total, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	ord, err := scanOrder(row.Scan)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET order_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (r *PostgresRepository) UpdatePaymentStatus(id int, status string) error {
	res, err := r.db.Exec(`UPDATE orders SET payment_status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func scanOrder(scan func(dest ...interface{}) error) (Order, error) {
	var ord Order
	var itemsJSON, gatewayJSON []byte
	err := scan(&ord.ID, &ord.OrderNumber, &ord.CustomerName, &ord.CustomerMobile, &ord.CustomerEmail,
		&ord.ShippingAddress, &itemsJSON, &ord.Subtotal, &ord.DeliveryCharges, &ord.TotalAmount,
		&ord.OrderStatus, &ord.PaymentStatus, &gatewayJSON, &ord.CreatedAt)
	if err != nil {
		return Order{}, err
	}
	json.Unmarshal(itemsJSON, &ord.Items)
	json.Unmarshal(gatewayJSON, &ord.PaymentGatewayData)
	return ord, nil
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
