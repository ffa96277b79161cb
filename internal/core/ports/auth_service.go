package ports

import (
	"context"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// AuthService turns credentials into bearer tokens and back out again.
type AuthService interface {
	// Login verifies the credentials and returns a signed token plus the
	// account it belongs to. Every failure mode surfaces as
	// domain.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, token string) error
}
