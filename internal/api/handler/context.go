package handler

import (
	"github.com/mercatto/commerce-api/internal/api/middleware"
	"github.com/mercatto/commerce-api/internal/core/domain"

	"github.com/labstack/echo/v4"
)

// requireIdentity extracts the identity injected by the Auth middleware.
// Absence means the route was wired without the guard; treat it as an
// unauthorized request rather than trusting an empty identity.
func requireIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return identity, nil
}
