package events

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const guardSecret = "guard-test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": 1,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func guardApp() *fiber.App {
	app := fiber.New()
	app.Use("/ws", UpgradeGuard(guardSecret))
	app.Get("/ws", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doUpgrade(t *testing.T, app *fiber.App, target string) int {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return res.StatusCode
}

func TestUpgradeGuard_RejectsMissingToken(t *testing.T) {
	app := guardApp()
	if status := doUpgrade(t, app, "/ws"); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", status)
	}
}

func TestUpgradeGuard_RejectsForgedToken(t *testing.T) {
	app := guardApp()

	forged := signToken(t, "some-other-secret")
	if status := doUpgrade(t, app, "/ws?token="+forged); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", status)
	}

	if status := doUpgrade(t, app, "/ws?token=not-a-jwt"); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", status)
	}
}

func TestUpgradeGuard_AdmitsValidToken(t *testing.T) {
	app := guardApp()

	token := signToken(t, guardSecret)
	if status := doUpgrade(t, app, "/ws?token="+token); status != fiber.StatusOK {
		t.Fatalf("expected 200 got %d", status)
	}
}

func TestUpgradeGuard_RequiresUpgradeHeaders(t *testing.T) {
	app := guardApp()

	req := httptest.NewRequest("GET", "/ws?token="+signToken(t, guardSecret), nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusUpgradeRequired {
		t.Fatalf("expected 426 got %d", res.StatusCode)
	}
}
