package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestList_FiltersAndTotal(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM orders").
		WithArgs("pending", "paid").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	rows := sqlmock.NewRows([]string{
		"id", "order_number", "customer_name", "customer_mobile", "customer_email", "shipping_address",
		"items", "subtotal", "delivery_charges", "total_amount", "order_status", "payment_status",
		"payment_gateway_data", "created_at",
	}).AddRow(3, "ORD-CAFE0001", "Ravi", "9000000000", "ravi@example.com", "12 Main St",
		[]byte(`[{"product_name":"Pen","quantity":1,"unit_price":15,"subtotal":15}]`),
		15.0, 10.0, 25.0, "pending", "paid", []byte(`{}`), "2026-08-01T09:00:00Z")

	mock.ExpectQuery("SELECT .* FROM orders.*ORDER BY id DESC").
		WithArgs("pending", "paid", 5).
		WillReturnRows(rows)

	orders, total, err := repo.List(ListFilter{Status: "pending", PaymentStatus: "paid", Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if orders[0].OrderNumber != "ORD-CAFE0001" {
		t.Errorf("unexpected order number %q", orders[0].OrderNumber)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].ProductName != "Pen" {
		t.Errorf("items were not decoded: %+v", orders[0].Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT .* FROM orders WHERE id").
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(42); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatus_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET order_status").
		WithArgs("confirmed", 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(9, "confirmed"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for missing order, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
