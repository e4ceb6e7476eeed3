package order

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/printshophq/printshop-admin/internal/events"
	"github.com/printshophq/printshop-admin/internal/workflow"
)

type stubRepo struct {
	orders map[int]Order
	nextID int
}

func newStubRepo(seed ...Order) *stubRepo {
	r := &stubRepo{orders: map[int]Order{}, nextID: 1}
	for _, ord := range seed {
		ord.ID = r.nextID
		r.orders[ord.ID] = ord
		r.nextID++
	}
	return r
}

func (r *stubRepo) Create(ord Order) (Order, error) {
	ord.ID = r.nextID
	r.orders[ord.ID] = ord
	r.nextID++
	return ord, nil
}

func (r *stubRepo) List(f ListFilter) ([]Order, int, error) {
	out := []Order{}
	for _, ord := range r.orders {
		if f.Status != "" && ord.OrderStatus != f.Status {
			continue
		}
		if f.PaymentStatus != "" && ord.PaymentStatus != f.PaymentStatus {
			continue
		}
		out = append(out, ord)
	}
	return out, len(out), nil
}

func (r *stubRepo) GetByID(id int) (Order, error) {
	ord, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

func (r *stubRepo) UpdateStatus(id int, status string) error {
	ord, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	ord.OrderStatus = status
	r.orders[id] = ord
	return nil
}

func (r *stubRepo) UpdatePaymentStatus(id int, status string) error {
	ord, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	ord.PaymentStatus = status
	r.orders[id] = ord
	return nil
}

type recordingNotifier struct {
	records []string
}

func (n *recordingNotifier) Record(notifType, title, message string) error {
	n.records = append(n.records, notifType+": "+message)
	return nil
}

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(ev events.Event) {
	b.published = append(b.published, ev)
}

func setupApp(repo *stubRepo, notifier Notifier, bus events.Publisher) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo), notifier, bus)
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func putJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]string) {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest("PUT", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	out := map[string]string{}
	raw := map[string]json.RawMessage{}
	json.NewDecoder(res.Body).Decode(&raw)
	if m, ok := raw["message"]; ok {
		var s string
		json.Unmarshal(m, &s)
		out["message"] = s
	}
	return res.StatusCode, out
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	repo := newStubRepo(Order{
		OrderNumber:   "ORD-AAAA1111",
		OrderStatus:   workflow.OrderConfirmed,
		PaymentStatus: workflow.PaymentPaid,
	})
	app := setupApp(repo, nil, nil)

	status, _ := putJSON(t, app, "/api/admin/orders/1/status", map[string]string{"order_status": "packed"})
	if status != 200 {
		t.Fatalf("expected 200 got %d", status)
	}

	// the console refetches after a successful update; the refetched order
	// must show the new authoritative state
	got, _ := repo.GetByID(1)
	if got.OrderStatus != workflow.OrderPacked {
		t.Errorf("order status = %q, want packed", got.OrderStatus)
	}
}

func TestUpdateStatus_RejectsUnpaidForward(t *testing.T) {
	repo := newStubRepo(Order{
		OrderNumber:   "ORD-BBBB2222",
		OrderStatus:   workflow.OrderPending,
		PaymentStatus: workflow.PaymentPending,
	})
	app := setupApp(repo, nil, nil)

	status, out := putJSON(t, app, "/api/admin/orders/1/status", map[string]string{"order_status": "confirmed"})
	if status != 400 {
		t.Fatalf("expected 400 got %d", status)
	}
	if out["message"] == "" {
		t.Error("rejection reason must be surfaced to the console")
	}

	got, _ := repo.GetByID(1)
	if got.OrderStatus != workflow.OrderPending {
		t.Errorf("rejected update must not change state, got %q", got.OrderStatus)
	}
}

func TestUpdateStatus_UnpaidPendingMayCancel(t *testing.T) {
	repo := newStubRepo(Order{
		OrderStatus:   workflow.OrderPending,
		PaymentStatus: workflow.PaymentPending,
	})
	app := setupApp(repo, nil, nil)

	status, _ := putJSON(t, app, "/api/admin/orders/1/status", map[string]string{"order_status": "cancelled"})
	if status != 200 {
		t.Fatalf("expected 200 got %d", status)
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	repo := newStubRepo(Order{
		OrderStatus:   workflow.OrderPending,
		PaymentStatus: workflow.PaymentPending,
	})
	app := setupApp(repo, nil, nil)

	status, _ := putJSON(t, app, "/api/admin/orders/1/payment-status", map[string]string{"payment_status": "paid"})
	if status != 200 {
		t.Fatalf("expected 200 got %d", status)
	}

	// a second change is no longer offered once paid
	status, _ = putJSON(t, app, "/api/admin/orders/1/payment-status", map[string]string{"payment_status": "failed"})
	if status != 400 {
		t.Fatalf("expected 400 got %d", status)
	}
}

func TestPlaceOrder_PublishesEventAndNotification(t *testing.T) {
	repo := newStubRepo()
	notifier := &recordingNotifier{}
	bus := &recordingBus{}
	app := setupApp(repo, notifier, bus)

	body, _ := json.Marshal(Order{
		CustomerName: "Asha",
		Items: []OrderItem{
			{ProductName: "Notebook", Quantity: 2, UnitPrice: 50},
		},
		DeliveryCharges: 20,
	})
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 201 {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected exactly one event, got %d", len(bus.published))
	}
	ev := bus.published[0]
	if ev.Name != events.OrderCreated {
		t.Errorf("event = %q, want order_created", ev.Name)
	}
	if ev.Data["order_number"] == "" {
		t.Error("event payload must carry the order number")
	}
	if len(notifier.records) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.records))
	}

	// totals derived from items: 2*50 + 20 delivery
	var created struct {
		Data Order `json:"data"`
	}
	created.Data, _ = repo.GetByID(1)
	if created.Data.TotalAmount != 120 {
		t.Errorf("total = %v, want 120", created.Data.TotalAmount)
	}
	if created.Data.OrderStatus != workflow.OrderPending || created.Data.PaymentStatus != workflow.PaymentPending {
		t.Errorf("new order must start pending/pending, got %s/%s", created.Data.OrderStatus, created.Data.PaymentStatus)
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	app := setupApp(newStubRepo(), nil, nil)

	req := httptest.NewRequest("GET", "/api/admin/orders/99", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 404 {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}
