package ports

import (
	"context"
	"time"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// TokenIssuer mints signed, time-limited bearer tokens over identity claims.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier checks signature and expiry and returns the embedded claims.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// TokenRevoker tracks revoked token IDs until their expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// PasswordHasher is the one-way hash boundary for credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check compares plaintext against a stored hash in constant time.
	Check(hash, password string) bool
}
