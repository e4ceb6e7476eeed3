package product

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func TestList_CategoryFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products").
		WithArgs("stationery").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "stock_qty", "category", "images", "created_at"}).
		AddRow(1, "Notebook", "A5 ruled", 50.0, 120, "stationery", pq.Array([]string{"/uploads/nb.jpg"}), "2026-08-01T09:00:00Z").
		AddRow(2, "Pen", "Blue ink", 15.0, 300, "stationery", pq.Array([]string{}), "2026-08-02T09:00:00Z")
	mock.ExpectQuery("SELECT id, name, description").
		WithArgs("stationery").
		WillReturnRows(rows)

	products, total, err := repo.List(ListFilter{Category: "stationery"})
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("expected 2 products, got %d (total %d)", len(products), total)
	}
	if products[0].Name != "Notebook" {
		t.Errorf("unexpected product name %q", products[0].Name)
	}
	if len(products[0].Images) != 1 {
		t.Errorf("images not decoded: %v", products[0].Images)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(77).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(77); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
