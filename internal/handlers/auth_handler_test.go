package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"messmate-admin/internal/client"
	"messmate-admin/internal/models"
	"messmate-admin/internal/services"
	"messmate-admin/internal/session"

	"github.com/rs/zerolog"
)

type testEnv struct {
	sessions *session.Store
	client   *client.Client
	auth     *services.AuthService
}

func newTestEnv(t *testing.T, backendURL string) *testEnv {
	t.Helper()
	sessions := session.NewStore(t.TempDir(), zerolog.Nop())
	return &testEnv{
		sessions: sessions,
		client:   client.New(backendURL, sessions, zerolog.Nop()),
		auth:     services.NewAuthService("test-secret", zerolog.Nop()),
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "admin_session" {
			return c
		}
	}
	return nil
}

func TestAuthHandler_LoginPersistsSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("backend path = %s, want /api/auth/login", r.URL.Path)
		}
		json.NewEncoder(w).Encode(models.AuthResponse{
			Token: "backend-token",
			User:  &models.User{ID: 1, Name: "Admin", Email: "admin@mess.test", Role: "admin"},
		})
	}))
	defer backend.Close()

	env := newTestEnv(t, backend.URL)
	h := NewAuthHandler(env.client, env.sessions, env.auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@mess.test","password":"pw"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if env.sessions.Token() != "backend-token" {
		t.Errorf("persisted token = %q, want backend-token", env.sessions.Token())
	}
	if u := env.sessions.User(); u == nil || u.Email != "admin@mess.test" {
		t.Errorf("persisted user = %v, want admin@mess.test", u)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("no gateway session cookie set")
	}
	claims, err := env.auth.ValidateToken(cookie.Value)
	if err != nil {
		t.Fatalf("session cookie does not carry a valid gateway token: %v", err)
	}
	if claims.Email != "admin@mess.test" || claims.Role != "admin" {
		t.Errorf("gateway claims = %+v, want email/role from login", claims)
	}

	var resp models.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Token == "backend-token" {
		t.Error("backend token leaked to the browser")
	}
}

func TestAuthHandler_LoginBadCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email or password"})
	}))
	defer backend.Close()

	env := newTestEnv(t, backend.URL)
	h := NewAuthHandler(env.client, env.sessions, env.auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@mess.test","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if env.sessions.Authenticated() {
		t.Error("failed login persisted a session")
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Errorf("body %q does not surface the backend error", rec.Body.String())
	}
	// Bad credentials must not be treated as an expired session.
	if strings.Contains(rec.Body.String(), "session_expired") {
		t.Error("login failure was mapped to session expiry")
	}
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	env := newTestEnv(t, "http://unused.invalid")
	h := NewAuthHandler(env.client, env.sessions, env.auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAuthHandler_LogoutClearsSessionLocally(t *testing.T) {
	backendCalled := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))
	defer backend.Close()

	env := newTestEnv(t, backend.URL)
	if err := env.sessions.Save("tok", &models.User{ID: 1, Role: "admin"}); err != nil {
		t.Fatal(err)
	}
	h := NewAuthHandler(env.client, env.sessions, env.auth, zerolog.Nop())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if env.sessions.Token() != "" || env.sessions.User() != nil {
		t.Error("session store not empty after logout")
	}
	if backendCalled {
		t.Error("logout called the backend; it must be local only")
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Error("logout did not expire the session cookie")
	}
}
