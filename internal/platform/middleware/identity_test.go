package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelink/internal/platform/middleware"
	"lifelink/pkg/requestcontext"
)

type stubValidator struct {
	claims *middleware.JWTClaims
	err    error
}

func (v *stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if v.err != nil {
		return nil, v.err
	}
	return v.claims, nil
}

func TestIdentityAnonymousPassThrough(t *testing.T) {
	called := false
	h := middleware.Identity(&stubValidator{err: errors.New("should not be called")}, discardLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			if sub := requestcontext.Subject(r.Context()); sub != "" {
				t.Errorf("expected no subject, got %q", sub)
			}
		}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("expected anonymous request to pass through")
	}
}

func TestIdentityValidToken(t *testing.T) {
	var subject string
	h := middleware.Identity(&stubValidator{claims: &middleware.JWTClaims{Subject: "user-1"}}, discardLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject = requestcontext.Subject(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if subject != "user-1" {
		t.Errorf("expected subject user-1, got %q", subject)
	}
}

func TestIdentityInvalidTokenRejected(t *testing.T) {
	h := middleware.Identity(&stubValidator{err: errors.New("expired")}, discardLogger())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler must not run for invalid token")
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
