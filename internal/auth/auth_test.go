package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uai-coreday/coreday-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		AdminPassword: "secreta",
		SessionSecret: "test-secret",
		Environment:   "development",
	}
}

func TestHandleLogin(t *testing.T) {
	adminAuth := NewAdminAuth(testConfig())

	t.Run("CorrectPassword", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"password":"secreta"}`))
		rr := httptest.NewRecorder()

		adminAuth.HandleLogin(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected status OK, got %v", rr.Code)
		}

		var sessionCookie *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == SessionCookie {
				sessionCookie = c
			}
		}
		if sessionCookie == nil {
			t.Fatal("expected admin_session cookie to be set")
		}
		if !sessionCookie.HttpOnly {
			t.Error("expected httpOnly cookie")
		}
		if sessionCookie.SameSite != http.SameSiteLaxMode {
			t.Error("expected SameSite=Lax cookie")
		}
		if sessionCookie.Secure {
			t.Error("expected Secure flag off outside production")
		}
		if !adminAuth.ValidateToken(sessionCookie.Value) {
			t.Error("issued cookie value does not validate")
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"password":"nope"}`))
		rr := httptest.NewRecorder()

		adminAuth.HandleLogin(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %v", rr.Code)
		}
	})

	t.Run("EmptyBody", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(""))
		rr := httptest.NewRecorder()

		adminAuth.HandleLogin(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %v", rr.Code)
		}
	})
}

func TestHandleLogout_ClearsCookie(t *testing.T) {
	adminAuth := NewAdminAuth(testConfig())

	req := httptest.NewRequest("DELETE", "/api/admin/login", nil)
	rr := httptest.NewRecorder()

	adminAuth.HandleLogout(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status OK, got %v", rr.Code)
	}

	found := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == SessionCookie {
			found = true
			if c.MaxAge >= 0 {
				t.Errorf("expected expired cookie, got MaxAge %d", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected admin_session cookie in logout response")
	}
}

func TestAuthorize(t *testing.T) {
	adminAuth := NewAdminAuth(testConfig())

	t.Run("ValidToken", func(t *testing.T) {
		token, err := adminAuth.GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken failed: %v", err)
		}
		if err := adminAuth.Authorize(SessionCookie + "=" + token); err != nil {
			t.Errorf("Authorize returned error for valid token: %v", err)
		}
	})

	t.Run("MissingCookie", func(t *testing.T) {
		if err := adminAuth.Authorize(""); err == nil {
			t.Error("expected error for empty cookie header")
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if err := adminAuth.Authorize(SessionCookie + "=not-a-jwt"); err == nil {
			t.Error("expected error for garbage token")
		}
	})

	t.Run("WrongSecret", func(t *testing.T) {
		otro := NewAdminAuth(&config.Config{AdminPassword: "secreta", SessionSecret: "other-secret"})
		token, _ := otro.GenerateToken()
		if err := adminAuth.Authorize(SessionCookie + "=" + token); err == nil {
			t.Error("expected error for token signed with another secret")
		}
	})
}
