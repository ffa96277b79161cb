package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/infrastructure/token"
)

type stubRevoker struct {
	revoked map[string]bool
	err     error
}

func (s *stubRevoker) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	if s.revoked == nil {
		s.revoked = make(map[string]bool)
	}
	s.revoked[tokenID] = true
	return nil
}

func (s *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[tokenID], nil
}

func issueToken(t *testing.T, m *token.JWTManager, id string, role domain.Role) string {
	t.Helper()
	signed, err := m.Issue(domain.Claims{Subject: id, Email: id + "@x.com", Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	m := token.NewJWTManager("secret", time.Hour)
	signed := issueToken(t, m, "u1", domain.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(m, &stubRevoker{})
	handler := mw(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if identity.ID != "u1" || identity.Role != domain.RoleAdmin {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	m := token.NewJWTManager("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(m, &stubRevoker{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatus(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	m := token.NewJWTManager("secret", time.Hour)

	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mw := Auth(m, &stubRevoker{})
		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for header %q", header)
			return nil
		})

		if code := httpStatus(t, handler(c)); code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	m := token.NewJWTManager("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(m, &stubRevoker{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatus(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWTManager("secret", time.Millisecond)
	verifier := token.NewJWTManager("secret", time.Hour)
	signed := issueToken(t, issuer, "u1", domain.RoleCustomer)

	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(verifier, &stubRevoker{})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatus(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	e := echo.New()
	m := token.NewJWTManager("secret", time.Hour)
	signed := issueToken(t, m, "u1", domain.RoleCustomer)

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	revoker := &stubRevoker{}
	_ = revoker.Revoke(context.Background(), claims.TokenID, claims.ExpiresAt)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(m, revoker)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if code := httpStatus(t, handler(c)); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}
