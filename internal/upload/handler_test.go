package upload

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	app := fiber.New()
	NewHandler(dir).RegisterProtectedRoutes(app)
	return app, dir
}

func multipartImage(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("fake image bytes"))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestUploadImage_SavesAndReturnsURL(t *testing.T) {
	app, dir := setupApp(t)

	body, contentType := multipartImage(t, "image", "banner.png")
	req := httptest.NewRequest("POST", "/api/admin/upload/image", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var out struct {
		URL      string `json:"url"`
		PublicID string `json:"public_id"`
	}
	json.NewDecoder(res.Body).Decode(&out)
	if out.PublicID == "" || !strings.HasSuffix(out.PublicID, ".png") {
		t.Fatalf("unexpected public_id %q", out.PublicID)
	}
	if out.URL != "/uploads/"+out.PublicID {
		t.Errorf("url = %q, want /uploads/%s", out.URL, out.PublicID)
	}
	if _, err := os.Stat(filepath.Join(dir, out.PublicID)); err != nil {
		t.Errorf("file not written: %v", err)
	}
}

func TestUploadImage_RejectsNonImage(t *testing.T) {
	app, _ := setupApp(t)

	body, contentType := multipartImage(t, "image", "report.pdf")
	req := httptest.NewRequest("POST", "/api/admin/upload/image", body)
	req.Header.Set("Content-Type", contentType)

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestDeleteImage_RemovesFile(t *testing.T) {
	app, dir := setupApp(t)

	name := "abc123.png"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	payload, _ := json.Marshal(map[string]string{"public_id": name})
	req := httptest.NewRequest("DELETE", "/api/admin/upload/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}
}

func TestDeleteImage_RejectsPathTraversal(t *testing.T) {
	app, _ := setupApp(t)

	payload, _ := json.Marshal(map[string]string{"public_id": "../secrets.txt"})
	req := httptest.NewRequest("DELETE", "/api/admin/upload/image", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 400 {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}
