// Package token implements the bearer-token boundary with HS256 JWTs.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mercatto/commerce-api/internal/core/domain"
)

// JWTManager issues and verifies signed, time-limited bearer tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue mints a token over the given claims. The token ID (jti) is generated
// here so every issued token is individually revocable.
func (m *JWTManager) Issue(claims domain.Claims) (string, error) {
	now := time.Now().UTC()
	sc := sessionClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sc)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Only HS256 is accepted; any other signing method is rejected.
func (m *JWTManager) Verify(token string) (*domain.Claims, error) {
	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if !sc.Role.Valid() || sc.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims := &domain.Claims{
		Subject: sc.Subject,
		Email:   sc.Email,
		Role:    sc.Role,
		TokenID: sc.ID,
	}
	if sc.ExpiresAt != nil {
		claims.ExpiresAt = sc.ExpiresAt.Time
	}
	return claims, nil
}
