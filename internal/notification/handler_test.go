package notification

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubRepo struct {
	notifications map[int]Notification
	nextID        int
}

func newStubRepo() *stubRepo {
	return &stubRepo{notifications: map[int]Notification{}, nextID: 1}
}

func (r *stubRepo) Create(n Notification) (Notification, error) {
	n.ID = r.nextID
	r.notifications[n.ID] = n
	r.nextID++
	return n, nil
}

func (r *stubRepo) List(f ListFilter) ([]Notification, error) {
	out := []Notification{}
	for _, n := range r.notifications {
		if f.Type != "" && n.Type != f.Type {
			continue
		}
		if f.IsRead != nil && n.IsRead != *f.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (r *stubRepo) UnreadCount() (int, error) {
	count := 0
	for _, n := range r.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *stubRepo) MarkRead(id int) error {
	n, ok := r.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	r.notifications[id] = n
	return nil
}

func setupApp(repo *stubRepo) (*fiber.App, *Service) {
	app := fiber.New()
	svc := NewService(repo)
	NewHandler(svc).RegisterProtectedRoutes(app)
	return app, svc
}

func unreadCount(t *testing.T, app *fiber.App) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/admin/notifications/unread-count", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var out struct {
		Count int `json:"count"`
	}
	json.NewDecoder(res.Body).Decode(&out)
	return out.Count
}

func TestUnreadCount_DropsAfterMarkRead(t *testing.T) {
	repo := newStubRepo()
	app, svc := setupApp(repo)

	svc.Record(TypeOrder, "New order received", "Order ORD-1 placed")
	svc.Record(TypeOrder, "New order received", "Order ORD-2 placed")
	svc.Record(TypeSystem, "Maintenance", "Scheduled downtime")

	if got := unreadCount(t, app); got != 3 {
		t.Fatalf("unread = %d, want 3", got)
	}

	req := httptest.NewRequest("PUT", "/api/admin/notifications/1/read", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("mark read: expected 200 got %d", res.StatusCode)
	}

	if got := unreadCount(t, app); got != 2 {
		t.Errorf("unread after mark read = %d, want 2", got)
	}
}

func TestList_FilterByTypeAndRead(t *testing.T) {
	repo := newStubRepo()
	app, svc := setupApp(repo)

	svc.Record(TypeOrder, "New order received", "Order ORD-1 placed")
	svc.Record(TypeReview, "New review", "3 stars on Notebook")
	repo.MarkRead(2)

	req := httptest.NewRequest("GET", "/api/admin/notifications?type=order&is_read=false", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Data []Notification `json:"data"`
	}
	json.NewDecoder(res.Body).Decode(&out)
	if len(out.Data) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out.Data))
	}
	if out.Data[0].Type != TypeOrder || out.Data[0].IsRead {
		t.Errorf("unexpected notification: %+v", out.Data[0])
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	app, _ := setupApp(newStubRepo())

	req := httptest.NewRequest("PUT", "/api/admin/notifications/99/read", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 404 {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}
