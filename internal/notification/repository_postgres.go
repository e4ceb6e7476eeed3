package notification

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

func (r *PostgresRepository) Create(n Notification) (Notification, error) {
	err := r.db.QueryRow(`INSERT INTO notifications (type, title, message, is_read, created_at)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		n.Type, n.Title, n.Message, n.IsRead, n.CreatedAt).Scan(&n.ID)
	if err != nil {
		return Notification{}, err
	}
	return n, nil
}

func (r *PostgresRepository) List(f ListFilter) ([]Notification, error) {
	where := " WHERE 1=1"
	args := []interface{}{}

	if f.Type != "" {
		args = append(args, f.Type)
		where += " AND type = $" + strconv.Itoa(len(args))
	}
	if f.IsRead != nil {
		args = append(args, *f.IsRead)
		where += " AND is_read = $" + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(`SELECT id, type, title, message, is_read, created_at FROM notifications`+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *PostgresRepository) UnreadCount() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresRepository) MarkRead(id int) error {
	res, err := r.db.Exec(`UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
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
