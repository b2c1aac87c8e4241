package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/pkg/utils"

	"go.uber.org/zap"
)

func TestAuth(t *testing.T) {
	config := utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	okHandler := func(t *testing.T, wantUser, wantRole string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok || userID != wantUser {
				t.Errorf("context user = %s, want %s", userID, wantUser)
			}
			role, _ := utils.GetRoleFromContext(r.Context())
			if role != wantRole {
				t.Errorf("context role = %s, want %s", role, wantRole)
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("Given a valid bearer token then the claims land in context", func(t *testing.T) {
		token, err := utils.GenerateToken(config, "64f000000000000000000001", "user")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		r := httptest.NewRequest("GET", "/api/bookings/abc", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		Auth(config, zap.NewNop())(okHandler(t, "64f000000000000000000001", "user")).ServeHTTP(rec, r)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("Given no authorization header then the request is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/bookings/abc", nil)
		rec := httptest.NewRecorder()

		Auth(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run without a token")
		})).ServeHTTP(rec, r)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Given a token signed with another secret then the request is rejected", func(t *testing.T) {
		token, err := utils.GenerateToken(utils.JWTConfig{Secret: "other", ExpiryHours: 1}, "64f000000000000000000001", "user")
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}

		r := httptest.NewRequest("GET", "/api/bookings/abc", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		Auth(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run with a forged token")
		})).ServeHTTP(rec, r)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("Given a header without the Bearer scheme then the request is rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/bookings/abc", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		Auth(config, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		})).ServeHTTP(rec, r)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestAdmin(t *testing.T) {
	t.Run("Given an admin in context then the handler runs", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/bookings", nil)
		r = r.WithContext(utils.SetUserContext(r.Context(), "64f000000000000000000001", "admin"))
		rec := httptest.NewRecorder()

		ran := false
		Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ran = true
		})).ServeHTTP(rec, r)

		if !ran {
			t.Error("handler must run for admins")
		}
	})

	t.Run("Given a regular user then the request is forbidden", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/bookings", nil)
		r = r.WithContext(utils.SetUserContext(r.Context(), "64f000000000000000000001", "user"))
		rec := httptest.NewRecorder()

		Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run for non-admins")
		})).ServeHTTP(rec, r)

		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("Given no authenticated user then the request is unauthorized", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/bookings", nil)
		rec := httptest.NewRecorder()

		Admin(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run")
		})).ServeHTTP(rec, r)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
