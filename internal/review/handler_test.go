package review

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubRepo struct {
	reviews map[int]Review
}

func newStubRepo(seed ...Review) *stubRepo {
	r := &stubRepo{reviews: map[int]Review{}}
	for i, rv := range seed {
		rv.ID = i + 1
		r.reviews[rv.ID] = rv
	}
	return r
}

func (r *stubRepo) List() ([]Review, error) {
	out := []Review{}
	for _, rv := range r.reviews {
		out = append(out, rv)
	}
	return out, nil
}

func (r *stubRepo) ToggleVisibility(id int) (Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return Review{}, ErrNotFound
	}
	rv.IsVisible = !rv.IsVisible
	r.reviews[id] = rv
	return rv, nil
}

func (r *stubRepo) SetResponse(id int, response string) (Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return Review{}, ErrNotFound
	}
	rv.AdminResponse = response
	r.reviews[id] = rv
	return rv, nil
}

func setupApp(repo *stubRepo) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterProtectedRoutes(app)
	return app
}

func TestToggleVisibility_Hides(t *testing.T) {
	app := setupApp(newStubRepo(Review{ProductName: "Notebook", Rating: 4, IsVisible: true}))

	req := httptest.NewRequest("PUT", "/api/admin/reviews/1/visibility", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var out struct {
		Data Review `json:"data"`
	}
	json.NewDecoder(res.Body).Decode(&out)
	if out.Data.IsVisible {
		t.Error("review should be hidden after toggle")
	}
}

func TestToggleVisibility_NotFound(t *testing.T) {
	app := setupApp(newStubRepo())

	req := httptest.NewRequest("PUT", "/api/admin/reviews/99/visibility", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 404 {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
}

func TestRespond_SetsResponse(t *testing.T) {
	app := setupApp(newStubRepo(Review{ProductName: "Notebook", Rating: 2, IsVisible: true}))

	payload, _ := json.Marshal(map[string]string{"admin_response": "Sorry to hear that, we will do better."})
	req := httptest.NewRequest("PUT", "/api/admin/reviews/1/response", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var out struct {
		Data Review `json:"data"`
	}
	json.NewDecoder(res.Body).Decode(&out)
	if out.Data.AdminResponse != "Sorry to hear that, we will do better." {
		t.Errorf("admin_response = %q", out.Data.AdminResponse)
	}
}

func TestRespond_RejectsEmpty(t *testing.T) {
	app := setupApp(newStubRepo(Review{ProductName: "Notebook", Rating: 2, IsVisible: true}))

	payload, _ := json.Marshal(map[string]string{"admin_response": ""})
	req := httptest.NewRequest("PUT", "/api/admin/reviews/1/response", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}
