package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

// AuthService implements login and logout. Each call is a single atomic
// decision: lookup, verify, issue — no retries.
type AuthService struct {
	users   ports.UserRepository
	hasher  ports.PasswordHasher
	issuer  ports.TokenIssuer
	verify  ports.TokenVerifier
	revoker ports.TokenRevoker
	audit   ports.AuditSink
	logger  zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	verifier ports.TokenVerifier,
	revoker ports.TokenRevoker,
	audit ports.AuditSink,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:   users,
		hasher:  hasher,
		issuer:  issuer,
		verify:  verifier,
		revoker: revoker,
		audit:   audit,
		logger:  logger,
	}
}

// Login verifies the credentials and mints a bearer token. Unknown email,
// wrong password, and infrastructure failures all return ErrUnauthorized:
// the caller must not be able to tell whether the account exists, nor
// whether the store was merely unavailable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Err(err).Msg("login lookup failed")
		s.record(email, domain.ActionLogin, domain.OutcomeDenied)
		return "", nil, domain.ErrUnauthorized
	}

	if !s.hasher.Check(user.PasswordHash, password) {
		s.record(email, domain.ActionLogin, domain.OutcomeDenied)
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.issuer.Issue(domain.Claims{
		Subject: user.ID,
		Email:   user.Email,
		Role:    user.Role,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		s.record(email, domain.ActionLogin, domain.OutcomeDenied)
		return "", nil, domain.ErrUnauthorized
	}

	s.record(email, domain.ActionLogin, domain.OutcomeSuccess)
	return token, user, nil
}

// Logout revokes the presented token until its natural expiry. An invalid or
// already-expired token is still ErrUnauthorized: only holders of a live
// token may revoke it.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.verify.Verify(token)
	if err != nil {
		return domain.ErrUnauthorized
	}

	if err := s.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		s.logger.Error().Err(err).Msg("token revocation failed")
		return domain.ErrUnauthorized
	}

	s.record(claims.Email, domain.ActionLogout, domain.OutcomeSuccess)
	return nil
}

// record appends to the audit trail when a sink is configured. Best-effort
// and non-blocking.
func (s *AuthService) record(email string, action domain.AuthAction, outcome domain.AuthOutcome) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthEvent{
		ActorEmail: email,
		Action:     action,
		Outcome:    outcome,
		At:         time.Now().UTC(),
	})
}
