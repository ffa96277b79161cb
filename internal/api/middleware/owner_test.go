package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

func ownerContext(e *echo.Echo, identity *domain.Identity, paramID string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, *identity)
	}
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c
}

func TestRequireOwner_AdminBypassesIDMatch(t *testing.T) {
	e := echo.New()
	c := ownerContext(e, &domain.Identity{ID: "1", Role: domain.RoleAdmin}, "2")

	called := false
	handler := RequireOwner("id")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("admin must be admitted regardless of id")
	}
}

func TestRequireOwner_MatchingIDAdmitted(t *testing.T) {
	e := echo.New()
	c := ownerContext(e, &domain.Identity{ID: "1", Role: domain.RoleCustomer}, "1")

	called := false
	handler := RequireOwner("id")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("owner must be admitted")
	}
}

func TestRequireOwner_MismatchedIDDenied(t *testing.T) {
	e := echo.New()
	c := ownerContext(e, &domain.Identity{ID: "1", Role: domain.RoleCustomer}, "2")

	handler := RequireOwner("id")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireOwner_MissingParamDenied(t *testing.T) {
	e := echo.New()
	c := ownerContext(e, &domain.Identity{ID: "1", Role: domain.RoleCustomer}, "")

	handler := RequireOwner("id")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireOwner_MissingIdentityDenied(t *testing.T) {
	e := echo.New()
	c := ownerContext(e, nil, "1")

	handler := RequireOwner("id")(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
