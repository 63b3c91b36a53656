package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"parkhub-backend/internal/adapters/persistence/repositories"
	"parkhub-backend/internal/config"
	"parkhub-backend/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	cfg := &config.Config{
		AppMode:     "dev",
		StoreDriver: "memory",
		Slots:       config.SlotsConfig{CarTotal: 50, BikeTotal: 50},
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	config.AppConfig = cfg

	app := fiber.New()
	Setup(app, NewMemoryRepos(repositories.NewMemoryStore()), cfg)

	token, err := jwt.GenerateAccessToken(1, "tester", "STAFF", cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	return app, token
}

func postJSON(t *testing.T, app *fiber.App, token, path string, body map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp, parsed
}

func getJSON(t *testing.T, app *fiber.App, token, path string, out interface{}) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestParkingRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	gets := []string{
		"/api/dashboard-stats/",
		"/api/expiry-notifications/",
		"/api/slots/",
		"/api/transactions/",
		"/api/passes/",
		"/api/owners/",
		"/api/vehicles/",
		"/api/notifications/",
	}
	for _, path := range gets {
		var body map[string]interface{}
		resp := getJSON(t, app, "", path, &body)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s without token status = %d, want 401", path, resp.StatusCode)
		}
		if body["status"] != "error" {
			t.Fatalf("GET %s unexpected body: %v", path, body)
		}
	}

	posts := []string{"/api/create-pass/", "/api/vehicle-entry/", "/api/vehicle-exit/"}
	for _, path := range posts {
		resp, body := postJSON(t, app, "", path, map[string]string{"vehicle_number": "V1"})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("POST %s without token status = %d, want 401", path, resp.StatusCode)
		}
		if body["status"] != "error" {
			t.Fatalf("POST %s unexpected body: %v", path, body)
		}
	}

	// Health stays public
	var health map[string]interface{}
	if resp := getJSON(t, app, "", "/health", &health); resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d, want 200", resp.StatusCode)
	}
}

func TestVehicleEntryExitFlow(t *testing.T) {
	app, token := newTestApp(t)

	resp, body := postJSON(t, app, token, "/api/vehicle-entry/", map[string]string{
		"vehicle_number": "KA01AB1234",
		"vehicle_type":   "car",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("entry status = %d", resp.StatusCode)
	}
	if body["status"] != "success" || body["message"] != "Vehicle KA01AB1234 entered." {
		t.Fatalf("unexpected body: %v", body)
	}

	// Double entry is rejected
	resp, body = postJSON(t, app, token, "/api/vehicle-entry/", map[string]string{
		"vehicle_number": "KA01AB1234",
		"vehicle_type":   "car",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("double entry status = %d, want 400", resp.StatusCode)
	}
	if body["status"] != "error" || body["message"] != "Vehicle is already parked." {
		t.Fatalf("unexpected body: %v", body)
	}

	resp, body = postJSON(t, app, token, "/api/vehicle-exit/", map[string]string{
		"vehicle_number": "KA01AB1234",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("exit status = %d", resp.StatusCode)
	}
	if body["status"] != "success" {
		t.Fatalf("unexpected body: %v", body)
	}

	// Exit without an open entry
	resp, body = postJSON(t, app, token, "/api/vehicle-exit/", map[string]string{
		"vehicle_number": "KA01AB1234",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second exit status = %d, want 404", resp.StatusCode)
	}
	if body["message"] != "No active parking entry found for this vehicle." {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestCreatePassEndpoint(t *testing.T) {
	app, token := newTestApp(t)

	payload := map[string]string{
		"owner_name":     "Alice",
		"vehicle_number": "KA01AB1234",
		"vehicle_type":   "car",
		"pass_type":      "monthly",
	}

	resp, body := postJSON(t, app, token, "/api/create-pass/", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create-pass status = %d", resp.StatusCode)
	}
	if body["message"] != "Pass for KA01AB1234 created successfully!" {
		t.Fatalf("unexpected body: %v", body)
	}

	resp, body = postJSON(t, app, token, "/api/create-pass/", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate pass status = %d, want 400", resp.StatusCode)
	}
	if body["message"] != "This vehicle already has an active pass." {
		t.Fatalf("unexpected body: %v", body)
	}

	// Missing fields
	resp, _ = postJSON(t, app, token, "/api/create-pass/", map[string]string{"owner_name": "Alice"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing fields status = %d, want 400", resp.StatusCode)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	app, token := newTestApp(t)

	postJSON(t, app, token, "/api/create-pass/", map[string]string{
		"owner_name": "Alice", "vehicle_number": "V1", "vehicle_type": "car", "pass_type": "daily",
	})
	postJSON(t, app, token, "/api/vehicle-entry/", map[string]string{
		"vehicle_number": "V2", "vehicle_type": "bike",
	})

	var stats map[string]interface{}
	resp := getJSON(t, app, token, "/api/dashboard-stats/", &stats)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	if stats["active_passes_count"] != float64(1) {
		t.Fatalf("active_passes_count = %v, want 1", stats["active_passes_count"])
	}
	if stats["slots_filled"] != "1 / 100" {
		t.Fatalf("slots_filled = %v", stats["slots_filled"])
	}

	var notifications []map[string]interface{}
	resp = getJSON(t, app, token, "/api/expiry-notifications/", &notifications)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expiry-notifications status = %d", resp.StatusCode)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 expiring pass, got %d", len(notifications))
	}
	if notifications[0]["days_left"] != float64(1) {
		t.Fatalf("days_left = %v, want 1", notifications[0]["days_left"])
	}

	var slots map[string]interface{}
	resp = getJSON(t, app, token, "/api/slots/", &slots)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("slots status = %d", resp.StatusCode)
	}
	if slots["bikes_occupied"] != float64(1) {
		t.Fatalf("bikes_occupied = %v, want 1", slots["bikes_occupied"])
	}
}

func TestListEndpoints(t *testing.T) {
	app, token := newTestApp(t)

	postJSON(t, app, token, "/api/vehicle-entry/", map[string]string{
		"vehicle_number": "V1", "vehicle_type": "car",
	})
	postJSON(t, app, token, "/api/create-pass/", map[string]string{
		"owner_name": "Alice", "vehicle_number": "V2", "vehicle_type": "bike", "pass_type": "weekly",
	})

	var txs []map[string]interface{}
	if resp := getJSON(t, app, token, "/api/transactions/?limit=10", &txs); resp.StatusCode != http.StatusOK {
		t.Fatalf("transactions status = %d", resp.StatusCode)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0]["status"] != "Parked" {
		t.Fatalf("transaction status = %v, want Parked", txs[0]["status"])
	}

	var passes []map[string]interface{}
	if resp := getJSON(t, app, token, "/api/passes/", &passes); resp.StatusCode != http.StatusOK {
		t.Fatalf("passes status = %d", resp.StatusCode)
	}
	if len(passes) != 1 || passes[0]["vehicle_number"] != "V2" {
		t.Fatalf("unexpected passes: %v", passes)
	}

	var owners []map[string]interface{}
	if resp := getJSON(t, app, token, "/api/owners/", &owners); resp.StatusCode != http.StatusOK {
		t.Fatalf("owners status = %d", resp.StatusCode)
	}
	// Guest (from the walk-in) plus Alice
	if len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(owners))
	}

	var vehicles []map[string]interface{}
	if resp := getJSON(t, app, token, "/api/vehicles/", &vehicles); resp.StatusCode != http.StatusOK {
		t.Fatalf("vehicles status = %d", resp.StatusCode)
	}
	if len(vehicles) != 2 {
		t.Fatalf("expected 2 vehicles, got %d", len(vehicles))
	}
}

func TestAuthFlow(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := postJSON(t, app, "", "/api/auth/register", map[string]string{
		"username": "staff1",
		"email":    "staff1@parkhub.local",
		"password": "supersecret",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("expected access token in response: %v", body)
	}

	resp, body = postJSON(t, app, "", "/api/auth/login", map[string]string{
		"username": "staff1",
		"password": "supersecret",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}

	// Bearer token grants access to /auth/me
	req, _ := http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	meResp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if meResp.StatusCode != http.StatusOK {
		t.Fatalf("me status = %d", meResp.StatusCode)
	}

	// Missing token is rejected
	req, _ = http.NewRequest(http.MethodGet, "/api/auth/me", nil)
	meResp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if meResp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me without token status = %d, want 401", meResp.StatusCode)
	}

	resp, _ = postJSON(t, app, "", "/api/auth/login", map[string]string{
		"username": "staff1",
		"password": "wrongpass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d, want 401", resp.StatusCode)
	}
}
