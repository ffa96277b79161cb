package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/api/metrics"
	"github.com/mercatto/commerce-api/internal/core/domain"
)

// RequireOwner enforces the resource-ownership policy on :param-scoped
// routes. ADMIN is checked before the id comparison and passes even when
// the ids differ. Everyone else must own the resource: identity id equal
// to the path parameter. Missing identity or missing parameter denies.
func RequireOwner(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthDeniedTotal.WithLabelValues("ownership").Inc()
				return domain.ErrForbidden
			}

			if identity.Role == domain.RoleAdmin {
				return next(c)
			}

			ownerID := c.Param(param)
			if ownerID == "" || identity.ID != ownerID {
				metrics.AuthDeniedTotal.WithLabelValues("ownership").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
