package httpserver

import (
	"net/http"
	"strings"
	"testing"
)

const registerBody = `{
	"username": "alice",
	"password": "secret1",
	"confirmPassword": "secret1",
	"email": "alice@example.com",
	"fullName": "Alice Kapoor"
}`

func TestRegister_Created(t *testing.T) {
	cl := newClient(t, newTestRouter(t))

	rec := cl.do(http.MethodPost, "/api/auth/register", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	// password never leaves the server
	if strings.Contains(rec.Body.String(), "secret1") || strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password leaked in response: %s", rec.Body.String())
	}

	// registration establishes a session
	rec = cl.do(http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /api/auth/user, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	router := newTestRouter(t)
	cl := newClient(t, router)

	if rec := cl.do(http.MethodPost, "/api/auth/register", registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", rec.Code)
	}

	other := newClient(t, router)
	rec := other.do(http.MethodPost, "/api/auth/register", strings.Replace(registerBody, "alice@example.com", "alice2@example.com", 1))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Username already exists") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)
	newClient(t, router).do(http.MethodPost, "/api/auth/register", registerBody)

	cl := newClient(t, router)
	rec := cl.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = cl.do(http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("expected logged-in user, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	router := newTestRouter(t)
	newClient(t, router).do(http.MethodPost, "/api/auth/register", registerBody)

	cl := newClient(t, router)
	rec := cl.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	rec := cl.do(http.MethodPost, "/api/auth/login", `{"username":"alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	cl.do(http.MethodPost, "/api/auth/register", registerBody)

	rec := cl.do(http.MethodPost, "/api/auth/logout", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = cl.do(http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCurrentUser_Unauthenticated(t *testing.T) {
	cl := newClient(t, newTestRouter(t))
	rec := cl.do(http.MethodGet, "/api/auth/user", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}
