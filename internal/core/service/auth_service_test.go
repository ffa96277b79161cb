package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mercatto/commerce-api/internal/core/domain"
	"github.com/mercatto/commerce-api/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _ ports.ListUsersFilter) ([]*domain.User, int64, error) {
	return nil, 0, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// stubHasher treats the stored hash as "hash:" + plaintext.
type stubHasher struct{}

func (stubHasher) Hash(password string) (string, error) { return "hash:" + password, nil }
func (stubHasher) Check(hash, password string) bool     { return hash == "hash:"+password }

type stubTokens struct {
	issueErr error
	issued   domain.Claims
	revoked  map[string]bool
}

func newStubTokens() *stubTokens {
	return &stubTokens{revoked: make(map[string]bool)}
}

func (s *stubTokens) Issue(claims domain.Claims) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued = claims
	return "token-for-" + claims.Subject, nil
}

func (s *stubTokens) Verify(token string) (*domain.Claims, error) {
	if token == "" || token == "garbage" {
		return nil, errors.New("malformed token")
	}
	return &domain.Claims{
		Subject:   "u1",
		Email:     "a@x.com",
		Role:      domain.RoleCustomer,
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

func (s *stubTokens) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubTokens) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *recordingSink) Record(event domain.AuthEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingSink) last(t *testing.T) domain.AuthEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatalf("expected an audit event")
	}
	return r.events[len(r.events)-1]
}

func newAuthFixture() (*AuthService, *stubUserRepo, *stubTokens, *recordingSink) {
	repo := newStubUserRepo()
	tokens := newStubTokens()
	sink := &recordingSink{}
	svc := NewAuthService(repo, stubHasher{}, tokens, tokens, tokens, sink, zerolog.Nop())
	return svc, repo, tokens, sink
}

func seedUser(repo *stubUserRepo, id, email, password string, role domain.Role) {
	repo.users[id] = &domain.User{
		ID:           id,
		Name:         "Test",
		Email:        email,
		PasswordHash: "hash:" + password,
		Role:         role,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, tokens, sink := newAuthFixture()
	seedUser(repo, "u1", "a@x.com", "secret123", domain.RoleCustomer)

	token, user, err := svc.Login(context.Background(), "a@x.com", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "token-for-u1" {
		t.Fatalf("unexpected token: %s", token)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if tokens.issued.Subject != "u1" || tokens.issued.Email != "a@x.com" || tokens.issued.Role != domain.RoleCustomer {
		t.Fatalf("claims not projected from account: %+v", tokens.issued)
	}
	if ev := sink.last(t); ev.Outcome != domain.OutcomeSuccess || ev.Action != domain.ActionLogin {
		t.Fatalf("unexpected audit event: %+v", ev)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo, _, sink := newAuthFixture()
	seedUser(repo, "u1", "a@x.com", "secret123", domain.RoleCustomer)

	_, _, err := svc.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if ev := sink.last(t); ev.Outcome != domain.OutcomeDenied {
		t.Fatalf("expected denied audit event, got %+v", ev)
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()
	seedUser(repo, "u1", "a@x.com", "secret123", domain.RoleCustomer)

	_, _, errUnknown := svc.Login(context.Background(), "ghost@x.com", "secret123")
	_, _, errWrongPw := svc.Login(context.Background(), "a@x.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrUnauthorized) {
		t.Fatalf("unknown email: expected ErrUnauthorized, got %v", errUnknown)
	}
	if !errors.Is(errUnknown, errWrongPw) && errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("errors must be indistinguishable: %v vs %v", errUnknown, errWrongPw)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, _, err := svc.Login(context.Background(), "", "x"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

// Infrastructure failures must not be distinguishable from bad credentials.
func TestAuthService_Login_StoreFailureCoerced(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()
	repo.findErr = errors.New("connection refused")

	_, _, err := svc.Login(context.Background(), "a@x.com", "secret123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_IssuerFailureCoerced(t *testing.T) {
	svc, repo, tokens, _ := newAuthFixture()
	seedUser(repo, "u1", "a@x.com", "secret123", domain.RoleCustomer)
	tokens.issueErr = errors.New("signing key unavailable")

	_, _, err := svc.Login(context.Background(), "a@x.com", "secret123")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	svc, _, tokens, sink := newAuthFixture()

	if err := svc.Logout(context.Background(), "some-live-token"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !tokens.revoked["jti-1"] {
		t.Fatalf("token id not revoked")
	}
	if ev := sink.last(t); ev.Action != domain.ActionLogout {
		t.Fatalf("expected logout audit event, got %+v", ev)
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if err := svc.Logout(context.Background(), "garbage"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
