package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDataRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{"/api/daily", "/api/weekly", "/api/stats/weekly", "/api/settings"} {
		request := httptest.NewRequest(http.MethodGet, target, nil)
		response, err := app.Test(request, -1)
		if err != nil {
			t.Fatalf("request %s failed: %v", target, err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without a cookie, got %d", target, response.StatusCode)
		}
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "short@example.com",
		"password": "short",
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "taken@example.com")

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "Taken@Example.com",
		"password": "long-enough-password",
	}, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate email must conflict even with different casing, got %d", response.StatusCode)
	}
}

func TestLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "login@example.com")

	wrong := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "wrong-password!!",
	}, "")
	wrong.Body.Close()
	if wrong.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", wrong.StatusCode)
	}

	response := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "long-enough-password",
	}, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for valid login, got %d", response.StatusCode)
	}

	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		t.Fatal("expected auth cookie after login")
	}

	authed := doJSON(t, app, http.MethodGet, "/api/settings", nil, cookie)
	defer authed.Body.Close()
	if authed.StatusCode != http.StatusOK {
		t.Fatalf("expected settings to load with cookie, got %d", authed.StatusCode)
	}

	var settings struct {
		Email string `json:"email"`
		Units string `json:"units"`
	}
	decodeJSONBody(t, authed.Body, &settings)
	if settings.Email != "login@example.com" {
		t.Fatalf("unexpected settings email %q", settings.Email)
	}
	if settings.Units != "metric" {
		t.Fatalf("expected metric default units, got %q", settings.Units)
	}
}

func TestRejectsTamperedToken(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := registerTestUser(t, app, "tamper@example.com")

	response := doJSON(t, app, http.MethodGet, "/api/daily", nil, cookie+"x")
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for tampered token, got %d", response.StatusCode)
	}
}
