package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/mercatto/commerce-api/internal/api/metrics"
	"github.com/mercatto/commerce-api/internal/core/domain"
)

// RequireRole enforces role-based access control. With no roles configured
// the guard is a no-op; otherwise the authenticated identity's role must be
// a member of the allowed set. Must run after Auth — a request without an
// identity is denied.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}

			identity, ok := IdentityFrom(c)
			if !ok {
				metrics.AuthDeniedTotal.WithLabelValues("role").Inc()
				return domain.ErrForbidden
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
