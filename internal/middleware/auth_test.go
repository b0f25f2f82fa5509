package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/parkwell/parkwell-go/internal/crypto"
	"github.com/parkwell/parkwell-go/internal/model"
)

const testSecret = "middleware-test-secret"

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func bearerRequest(t *testing.T, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	Authenticate(testSecret)(okHandler(t)).ServeHTTP(rec, bearerRequest(t, ""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")

	rec := httptest.NewRecorder()
	Authenticate(testSecret)(okHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	rec := httptest.NewRecorder()
	Authenticate(testSecret)(okHandler(t)).ServeHTTP(rec, bearerRequest(t, "not-a-jwt"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	token, err := crypto.GenerateToken("user-1", model.RoleAdmin, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := httptest.NewRecorder()
	Authenticate(testSecret)(okHandler(t)).ServeHTTP(rec, bearerRequest(t, token))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, err := crypto.GenerateToken("user-1", model.RoleAttendant, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	var got Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Error("identity missing from context")
		}
		got = identity
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Authenticate(testSecret)(inner).ServeHTTP(rec, bearerRequest(t, token))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got.UserID != "user-1" || got.Role != model.RoleAttendant {
		t.Errorf("identity = %+v, want user-1/ATTENDANT", got)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	token, err := crypto.GenerateToken("user-2", model.RoleAttendant, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler := Authenticate(testSecret)(RequireRole(model.RoleAdmin)(okHandler(t)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, token))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	token, err := crypto.GenerateToken("user-3", model.RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	handler := Authenticate(testSecret)(RequireRole(model.RoleAdmin, model.RoleAttendant)(okHandler(t)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, bearerRequest(t, token))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	rec := httptest.NewRecorder()
	RequireRole(model.RoleAdmin)(okHandler(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
